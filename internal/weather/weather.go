package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultURL is the current-weather-by-city endpoint.
const DefaultURL = "https://api.openweathermap.org/data/2.5/weather"

var (
	ErrNotFound  = errors.New("weather: city not found")
	ErrMalformed = errors.New("weather: malformed response")
)

// Report is the subset of a weather payload the terminal displays.
type Report struct {
	Location    string
	Country     string
	Temperature float64
	Description string
	WindSpeed   float64
	Humidity    float64
	Sunrise     time.Time
	Sunset      time.Time
}

// Client queries the weather endpoint.
type Client struct {
	BaseURL    string
	APIKey     string
	Units      string
	HTTPClient *http.Client
}

// NewClient creates a client for baseURL using metric units.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{BaseURL: baseURL, APIKey: apiKey, Units: "metric", HTTPClient: httpClient}
}

// Current fetches the current weather for city.
func (c *Client) Current(ctx context.Context, city string) (*Report, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("weather: bad url: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.APIKey)
	q.Set("units", c.Units)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("weather: unexpected status %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

var requiredFields = []struct {
	path string
	typ  gjson.Type
}{
	{"name", gjson.String},
	{"sys.country", gjson.String},
	{"sys.sunrise", gjson.Number},
	{"sys.sunset", gjson.Number},
	{"main.temp", gjson.Number},
	{"main.humidity", gjson.Number},
	{"weather.0.description", gjson.String},
	{"wind.speed", gjson.Number},
}

// Parse extracts a Report from a raw payload. A missing field, or one of the
// wrong JSON type, is an error.
func Parse(b []byte) (*Report, error) {
	if !gjson.ValidBytes(b) {
		return nil, ErrMalformed
	}
	paths := make([]string, len(requiredFields))
	for i, f := range requiredFields {
		paths[i] = f.path
	}
	res := gjson.GetManyBytes(b, paths...)
	for i, r := range res {
		f := requiredFields[i]
		if !r.Exists() {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformed, f.path)
		}
		if r.Type != f.typ {
			return nil, fmt.Errorf("%w: %s is %s, want %s", ErrMalformed, f.path, r.Type, f.typ)
		}
	}
	return &Report{
		Location:    res[0].String(),
		Country:     res[1].String(),
		Sunrise:     time.Unix(res[2].Int(), 0),
		Sunset:      time.Unix(res[3].Int(), 0),
		Temperature: res[4].Float(),
		Humidity:    res[5].Float(),
		Description: res[6].String(),
		WindSpeed:   res[7].Float(),
	}, nil
}
