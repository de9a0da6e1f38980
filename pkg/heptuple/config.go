// Package heptuple provides a Go client for the Vision Heptuple API, the
// backend of the heptuple-dimension text analysis platform. It covers
// authentication (session/token management with durable credential storage),
// the chapter catalogue, text analysis, and federated search across the
// scripture, sayings, and jurisprudence corpora.
package heptuple

import (
	"strings"
	"time"
)

// Default client settings.
const (
	// DefaultBaseURL is the local development API root.
	DefaultBaseURL = "http://localhost:8000/api"

	// DefaultTimeout is the HTTP client timeout for each request.
	DefaultTimeout = 30 * time.Second
)

// Config holds all configuration for the Heptuple API client.
type Config struct {
	// BaseURL is the API base URL. A URL without a trailing "/api" segment
	// is treated as a server root and "/api" is appended.
	BaseURL string

	// Timeout is the HTTP client timeout for each request.
	Timeout time.Duration
}

// DefaultConfig returns a Config with the local development URL and settings.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// WithBaseURL returns a copy of the config with the specified base URL.
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout returns a copy of the config with the specified timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

// apiURL returns the normalized API base URL, always ending in "/api".
func (c Config) apiURL() string {
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}
	return base
}

// rootURL returns the server root, i.e. the API base URL without the
// trailing "/api" segment. Health probes live under the root.
func (c Config) rootURL() string {
	return strings.TrimSuffix(c.apiURL(), "/api")
}
