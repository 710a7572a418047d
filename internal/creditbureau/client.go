// Package creditbureau provides the HTTP client for the external credit
// bureau, plus a Redis-backed score cache that fronts it.
//
// Bureau-side failures (unreachable host, timeouts, non-2xx responses) are
// reported as unsuccessful ScoreResults carrying the failure message, not as
// errors: the pipeline's policy maps them to rejections, and encoding them
// as data keeps that policy in one place.
package creditbureau

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ScoreResult is the outcome of one bureau lookup.
type ScoreResult struct {
	Success bool
	Score   int
	Message string
}

// Scorer looks up credit scores. Implemented by Client and ScoreCache.
type Scorer interface {
	Score(ctx context.Context, phone string) (ScoreResult, error)
}

// Config holds connection settings for the bureau API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the bureau's score endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithLogger sets a logger for request diagnostics.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithHTTPClient replaces the underlying HTTP client. Tests use this to
// point at a stub server with custom transport behavior.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// NewClient constructs a bureau client.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("bureau base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// scoreResponse is the bureau's wire format.
type scoreResponse struct {
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// Score looks up the credit score for a phone number. A non-nil error is
// returned only when the context is done; every other failure mode comes
// back as an unsuccessful result.
func (c *Client) Score(ctx context.Context, phone string) (ScoreResult, error) {
	endpoint := c.baseURL + "/v1/scores?" + url.Values{"phone": {phone}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("build bureau request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ScoreResult{}, ctx.Err()
		}
		if c.logger != nil {
			c.logger.WarnContext(ctx, "bureau request failed", "error", err)
		}
		return ScoreResult{Message: "Credit bureau request failed: " + err.Error()}, nil
	}
	defer resp.Body.Close()

	var body scoreResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		message := body.Message
		if decodeErr != nil || message == "" {
			message = fmt.Sprintf("Credit bureau returned status %d", resp.StatusCode)
		}
		if c.logger != nil {
			c.logger.WarnContext(ctx, "bureau returned failure",
				"status", resp.StatusCode,
				"message", message,
			)
		}
		return ScoreResult{Message: message}, nil
	}

	if decodeErr != nil {
		return ScoreResult{Message: "Credit bureau returned an unreadable response"}, nil
	}

	return ScoreResult{Success: true, Score: body.Score}, nil
}
