package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Client talks to the HavenMind backend, or serves the built-in mock
// dataset when no base URL is configured. The mock/live decision is made
// once at construction and never re-evaluated.
type Client struct {
	baseURL string
	http    *http.Client
	mock    bool
	latency bool
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithoutMockLatency disables the artificial per-resource delays of the
// mock provider. Tests use this; the delays exist to exercise realistic
// UI loading states.
func WithoutMockLatency() Option {
	return func(c *Client) { c.latency = false }
}

// NewClient builds a client against baseURL. An empty baseURL switches the
// client into mock mode for its whole lifetime. The default HTTP client
// carries a cookie jar so calls ride the same authenticated session as the
// rest of the application.
func NewClient(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		mock:    baseURL == "",
		latency: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mock reports whether the client serves the built-in dataset.
func (c *Client) Mock() bool { return c.mock }

// request issues exactly one network call and normalizes the outcome: a
// missing base URL fails with ErrNotConfigured, a non-2xx status fails
// with a TransportError carrying the raw response body, a 204 resolves to
// the zero value of T, and any other success decodes the body as T without
// further validation. No retries, timeouts, or backoff.
func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T
	if c.baseURL == "" {
		return zero, ErrNotConfigured
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	log.Debug("api request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(resp.Body)
		return zero, &TransportError{Status: resp.StatusCode, Message: strings.TrimSpace(string(text))}
	}
	if resp.StatusCode == http.StatusNoContent {
		return zero, nil
	}

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return zero, fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return result, nil
}

// sleep applies a mock-provider delay, honoring context cancellation.
func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	if !c.latency {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
