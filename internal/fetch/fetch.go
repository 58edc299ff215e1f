// Package fetch performs the generic "GET a URL and show its JSON" request.
package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var ErrNotJSON = errors.New("response is not valid JSON")

// Width 0 keeps every array element on its own line.
var prettyOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "  "}

// Client issues GET requests and pretty prints JSON bodies.
type Client struct {
	HTTPClient *http.Client
}

// NewClient creates a client, defaulting to http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{HTTPClient: httpClient}
}

// GetJSON fetches rawURL and returns its body pretty printed. The status code
// is not checked; a JSON error document is returned like any other body.
func (c *Client) GetJSON(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return Pretty(b)
}

// Pretty validates b and indents it with two spaces.
func Pretty(b []byte) (string, error) {
	if !gjson.ValidBytes(b) {
		return "", ErrNotJSON
	}
	out := pretty.PrettyOptions(b, prettyOptions)
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return string(out), nil
}
