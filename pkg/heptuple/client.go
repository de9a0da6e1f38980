package heptuple

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Client translates domain operations into HTTP calls routed through a
// Session, and normalizes backend error bodies into *APIError values.
type Client struct {
	cfg        Config
	session    *Session
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an API client on top of the given session. A nil
// logger discards all output.
func NewClient(cfg Config, session *Session, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		cfg:        cfg,
		session:    session,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With("component", "api-client"),
	}
}

// Session returns the session backing this client.
func (c *Client) Session() *Session {
	return c.session
}

// Get performs an authenticated GET and returns the raw JSON body.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, path, nil)
}

// Post performs an authenticated POST with a JSON body and returns the raw
// JSON response body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return c.call(ctx, http.MethodPost, path, payload)
}

// call routes a request through the session and normalizes failures:
// auth errors pass through untouched, non-2xx responses become *APIError
// with the backend's "detail" message when one can be parsed.
func (c *Client) call(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	resp, err := c.session.Do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: errorDetail(resp, fmt.Sprintf("error %d", resp.StatusCode)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return json.RawMessage(data), nil
}

// getJSON performs a GET and decodes the response into dest.
func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	data, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// postJSON performs a POST and decodes the response into dest.
func (c *Client) postJSON(ctx context.Context, path string, body, dest any) error {
	data, err := c.Post(ctx, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Health probes the service health endpoint at the server root. The probe
// bypasses the session and is tolerant by design: any failure (network,
// non-2xx, malformed body) yields nil, for passive status display only.
func (c *Client) Health(ctx context.Context) *HealthStatus {
	var status HealthStatus
	if !c.probe(ctx, c.cfg.rootURL()+"/health", &status) {
		return nil
	}
	return &status
}

// DatabaseHealth probes the storage health endpoint. Same tolerance as
// Health: nil on any failure.
func (c *Client) DatabaseHealth(ctx context.Context) *DatabaseHealth {
	var status DatabaseHealth
	if !c.probe(ctx, c.cfg.rootURL()+"/api/v2/db/health", &status) {
		return nil
	}
	return &status
}

func (c *Client) probe(ctx context.Context, url string, dest any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("health probe failed", "url", url, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	return json.NewDecoder(resp.Body).Decode(dest) == nil
}
