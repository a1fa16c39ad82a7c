// Package httpx provides the shared HTTP client used for all remote fetches.
// It adds bounded retry on transient status codes and per-call timeouts on
// top of net/http; everything downstream of the resolver goes through it.
package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// TextTimeout covers plain-text downloads and metadata API probes.
	TextTimeout = 20 * time.Second
	// PDFTimeout covers full PDF bodies, which can be tens of megabytes.
	PDFTimeout = 60 * time.Second

	defaultMaxAttempts = 5
	defaultBackoff     = 500 * time.Millisecond
	defaultUserAgent   = "librarian/0.1 (+https://github.com/akorhonen/librarian)"
)

// retryStatuses are the transient HTTP statuses worth another attempt.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Response is a fully-read HTTP response. Reading the body eagerly keeps the
// retry loop simple and lets callers inspect size before deciding anything.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the response carries HTTP 200.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Client wraps http.Client with retry and a fixed User-Agent.
type Client struct {
	hc          *http.Client
	maxAttempts int
	backoff     time.Duration
	userAgent   string
}

// New creates a Client with the default retry policy.
func New() *Client {
	return &Client{
		hc:          &http.Client{},
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		userAgent:   defaultUserAgent,
	}
}

// Get issues a GET with the given per-request timeout, retrying network
// errors and transient statuses with doubling backoff. A non-retryable
// status is returned to the caller as a normal Response, not an error; after
// the attempt budget is spent the last response or error wins.
func (c *Client) Get(ctx context.Context, rawURL string, timeout time.Duration) (*Response, error) {
	var lastErr error
	var lastResp *Response

	delay := c.backoff
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			slog.Debug("Retrying request", "url", rawURL, "attempt", attempt+1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2
		}

		resp, err := c.get(ctx, rawURL, timeout)
		if err != nil {
			lastErr = err
			lastResp = nil
			continue
		}
		if retryStatuses[resp.StatusCode] {
			lastErr = nil
			lastResp = resp
			continue
		}
		return resp, nil
	}

	if lastResp != nil {
		return lastResp, nil
	}
	return nil, fmt.Errorf("GET %s failed after %d attempts: %w", rawURL, c.maxAttempts, lastErr)
}

// GetJSON fetches rawURL with the text/API timeout and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) error {
	resp, err := c.Get(ctx, rawURL, TextTimeout)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("GET %s returned status %d", rawURL, resp.StatusCode)
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("failed to decode JSON from %s: %w", rawURL, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string, timeout time.Duration) (*Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
