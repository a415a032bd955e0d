// Package transport provides polite HTTP access to external gazetteer
// services: a mandatory User-Agent, JSON content negotiation, request
// timeouts, and per-host rate limiting so that no upstream service is
// hammered during interactive research sessions.
package transport

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/agentstation/gazetteer/pkg/logging"
)

// DefaultUserAgent is used when the caller does not supply a user agent.
// Upstream gazetteers strongly prefer a unique, contactable identifier,
// so using the default logs a warning.
const DefaultUserAgent = "gazetteer/0.1 (+https://github.com/agentstation/gazetteer)"

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

// DefaultRequestInterval is the minimum spacing between requests to a
// single host. Nominatim's usage policy requires at most one request
// per second; the other services are no stricter.
var DefaultRequestInterval = time.Second

// Client is an HTTP client shared by all source adapters.
type Client struct {
	http      *http.Client
	userAgent string

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRequestInterval sets the minimum spacing between requests to a
// single host.
func WithRequestInterval(d time.Duration) Option {
	return func(c *Client) { c.interval = d }
}

// WithHTTPClient replaces the underlying HTTP client, used by adapter
// tests to serve canned responses.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

// New creates a transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		userAgent: DefaultUserAgent,
		limiters:  make(map[string]*rate.Limiter),
		interval:  DefaultRequestInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.userAgent == DefaultUserAgent {
		logging.Warn().
			Str("user_agent", c.userAgent).
			Msg("Using default User-Agent; please configure a unique, contactable user agent string")
	}
	return c
}

// Get performs a rate-limited GET request against url.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Do performs an HTTP request with politeness headers applied, waiting
// on the per-host rate limiter first.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter(req.URL.Host).Wait(req.Context()); err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return c.http.Do(req)
}

// limiter returns the rate limiter for a host, creating it on first use.
func (c *Client) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	limiter, ok := c.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(c.interval), 1)
		c.limiters[host] = limiter
	}
	return limiter
}
