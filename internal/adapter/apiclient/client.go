// Package apiclient is the outbound adapter for the marketplace HTTP API.
// Every method issues exactly one request; there is no retry, caching or
// request deduplication.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"emerald-console/internal/core/port"
)

// Client implements port.Marketplace over HTTP and JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

var _ port.Marketplace = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient. Timeouts, if any, are the
// transport's business.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New returns a client for the API rooted at baseURL, for example
// "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// operation describes one endpoint call. failure is the fixed message
// reported to users when the call does not succeed.
type operation struct {
	name    string
	failure string
	method  string
	path    string
	query   url.Values
	body    any
}

// do performs op and decodes a successful response into out, which may be
// nil for empty responses.
func (c *Client) do(ctx context.Context, op operation, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.observe(op.name, err, time.Since(started))
	}()

	fail := func(cause error) error {
		return &port.RequestFailedError{Message: op.failure, Err: cause}
	}

	target := c.baseURL + op.path
	if len(op.query) > 0 {
		target += "?" + op.query.Encode()
	}

	var body io.Reader
	if op.body != nil {
		data, err := json.Marshal(op.body)
		if err != nil {
			return fail(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, op.method, target, body)
	if err != nil {
		return fail(err)
	}
	req.Header.Set("Accept", "application/json")
	if op.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fail(fmt.Errorf("%s %s: %s", op.method, op.path, resp.Status))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
