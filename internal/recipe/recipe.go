package recipe

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// DefaultURL returns one random meal per call.
const DefaultURL = "https://www.themealdb.com/api/json/v1/1/random.php"

var (
	ErrNoMeal  = errors.New("recipe: no meal in response")
	ErrNotJSON = errors.New("recipe: response is not json")
)

// Meal is the part of a recipe record shown to the user.
type Meal struct {
	Name         string
	Category     string
	Area         string
	Instructions string
}

// Client fetches random recipes.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient creates a client for url.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{URL: url, HTTPClient: httpClient}
}

// Random fetches the endpoint and returns the first meal of the response.
func (c *Client) Random(ctx context.Context) (*Meal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse reads the first element of "meals". Further elements are ignored.
func Parse(b []byte) (*Meal, error) {
	if !gjson.ValidBytes(b) {
		return nil, ErrNotJSON
	}
	meals := gjson.GetBytes(b, "meals")
	if !meals.IsArray() {
		return nil, ErrNoMeal
	}
	first := meals.Get("0")
	if !first.IsObject() {
		return nil, ErrNoMeal
	}
	return &Meal{
		Name:         first.Get("strMeal").String(),
		Category:     first.Get("strCategory").String(),
		Area:         first.Get("strArea").String(),
		Instructions: first.Get("strInstructions").String(),
	}, nil
}
