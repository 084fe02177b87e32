package commerce

import "errors"

// Config holds configuration for the commerce platform API client.
type Config struct {
	// BaseURL is the platform's API base URL, for example
	// https://yourdomain.commercelayer.io
	BaseURL string
	// AccessToken is the sales-channel bearer token scoped to the market
	// this checkout serves.
	AccessToken string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// Errors for commerce client configuration
var (
	ErrConfigMissingBaseURL     = errors.New("commerce: base URL is required")
	ErrConfigMissingAccessToken = errors.New("commerce: access token is required")
)

// NewConfig creates a commerce client configuration with defaults.
func NewConfig(baseURL, accessToken string) *Config {
	return &Config{
		BaseURL:        baseURL,
		AccessToken:    accessToken,
		TimeoutSeconds: 30,
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.AccessToken == "" {
		return ErrConfigMissingAccessToken
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}
