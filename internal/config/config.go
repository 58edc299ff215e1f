package config

import (
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/glo0ml34f/fauxterm/internal/command"
	"github.com/glo0ml34f/fauxterm/internal/recipe"
	"github.com/glo0ml34f/fauxterm/internal/weather"
)

type Config struct {
	Weather  WeatherConfig
	Recipe   RecipeConfig
	Terminal TerminalConfig
	Log      LogConfig

	// HTTPTimeout bounds each outbound request. Zero means no timeout.
	HTTPTimeout time.Duration
}

type WeatherConfig struct {
	URL    string
	APIKey string
}

type RecipeConfig struct {
	URL string
}

type TerminalConfig struct {
	Prompt     string // empty means user@host:$
	DateLayout string
	Plain      bool // disable colors and markdown rendering
	Transcript string
}

type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from the environment after loading envFile, or a
// .env file from the working directory or its parents when envFile is empty.
func Load(envFile string) (*Config, error) {
	var err error
	if envFile != "" {
		err = LoadEnvFile(envFile)
	} else {
		err = LoadDefaultEnvFile()
	}
	if err != nil {
		return nil, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from environment variables and defaults.
func FromEnv() *Config {
	return &Config{
		Weather: WeatherConfig{
			URL:    getEnv("FAUXTERM_WEATHER_URL", weather.DefaultURL),
			APIKey: getEnv("OPENWEATHER_API_KEY", ""),
		},
		Recipe: RecipeConfig{
			URL: getEnv("FAUXTERM_RECIPE_URL", recipe.DefaultURL),
		},
		Terminal: TerminalConfig{
			Prompt:     getEnv("FAUXTERM_PROMPT", ""),
			DateLayout: getEnv("FAUXTERM_DATE_LAYOUT", command.DefaultDateLayout),
			Plain:      getEnvAsBool("FAUXTERM_PLAIN", false),
			Transcript: getEnv("FAUXTERM_TRANSCRIPT", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "warn"),
			File:  getEnv("FAUXTERM_LOG_FILE", ""),
		},
		HTTPTimeout: time.Duration(getEnvAsInt("FAUXTERM_HTTP_TIMEOUT", 0)) * time.Second,
	}
}

// Validate checks the configured endpoints.
func (c *Config) Validate() error {
	if err := checkURL("weather", c.Weather.URL); err != nil {
		return err
	}
	if err := checkURL("recipe", c.Recipe.URL); err != nil {
		return err
	}
	if c.HTTPTimeout < 0 {
		return &ConfigError{Field: "http_timeout", Message: "must not be negative"}
	}
	return nil
}

// Warnings lists non fatal problems worth logging at startup.
func (c *Config) Warnings() []string {
	var w []string
	if c.Weather.APIKey == "" {
		w = append(w, "OPENWEATHER_API_KEY is not set; meteo will fail")
	}
	return w
}

func checkURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: field, Message: "invalid url " + strconv.Quote(raw)}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
