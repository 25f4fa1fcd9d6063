// Package apiclient is the HTTP client core for the content backend: URL
// construction against one base address and plain or bearer-authenticated
// requests. It performs no retries, caching, or timeout enforcement.
package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
	"github.com/culturahub/portal/internal/metrics"
)

// DefaultBaseURL is used when no base address is configured. Development only.
const DefaultBaseURL = "http://localhost:5000/api"

// Client implements ports.APIClient.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

var _ ports.APIClient = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New returns a Client for baseURL. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, log zerolog.Logger, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		base: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{},
		log:  log.With().Str("component", "apiclient").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalised base address.
func (c *Client) BaseURL() string { return c.base }

// BuildURL strips every leading slash from endpoint and joins it to the base
// with a single slash.
func (c *Client) BuildURL(endpoint string) string {
	return c.base + "/" + strings.TrimLeft(endpoint, "/")
}

// Call performs an unauthenticated request.
func (c *Client) Call(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*http.Response, error) {
	return c.do(ctx, endpoint, opts, false, "")
}

// CallWithAuth performs a request carrying Authorization: Bearer <token>.
func (c *Client) CallWithAuth(ctx context.Context, endpoint, token string, opts *ports.RequestOptions) (*http.Response, error) {
	return c.do(ctx, endpoint, opts, true, token)
}

func (c *Client) do(ctx context.Context, endpoint string, opts *ports.RequestOptions, withAuth bool, token string) (*http.Response, error) {
	url := c.BuildURL(endpoint)
	method := http.MethodGet
	var body io.Reader
	header := make(http.Header)
	if opts != nil {
		if opts.Method != "" {
			method = opts.Method
		}
		body = opts.Body
		for k, vs := range opts.Header {
			for _, v := range vs {
				header.Add(k, v)
			}
		}
	}
	if withAuth {
		header.Set("Authorization", "Bearer "+token)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, url, err)
	}
	req.Header = header

	resource := resourceLabel(endpoint)
	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	metrics.APIRequestDuration.WithLabelValues(resource).Observe(elapsed.Seconds())

	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(resource, method, "error").Inc()
		c.log.Debug().Err(err).Str("method", method).Str("url", url).Dur("elapsed", elapsed).Msg("api request failed")
		return nil, &domain.NetworkError{Method: method, URL: url, Err: err}
	}

	metrics.APIRequestsTotal.WithLabelValues(resource, method, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Bool("auth", withAuth).
		Dur("elapsed", elapsed).
		Msg("api request")

	return resp, nil
}

// resourceLabel reduces an endpoint to its first path segment so metric
// cardinality stays bounded ("products/search/vase" → "products").
func resourceLabel(endpoint string) string {
	e := strings.TrimLeft(endpoint, "/")
	if i := strings.IndexAny(e, "/?"); i >= 0 {
		e = e[:i]
	}
	if e == "" {
		return "root"
	}
	return e
}
