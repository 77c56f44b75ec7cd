// Package geocode resolves free-text address queries to coordinates via the
// Nominatim (OpenStreetMap) search API.
package geocode

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL     = "https://nominatim.openstreetmap.org"
	defaultUserAgent   = "CorrelAid Map Project"
	defaultTimeout     = 10 * time.Second
	defaultMinInterval = 1100 * time.Millisecond // Nominatim fair use: ~1 req/s
)

// Client resolves a query string to a coordinate.
type Client interface {
	// Geocode performs a single lookup. An unmatched query yields
	// Matched=false with a nil error; errors indicate transport or
	// response-format failures.
	Geocode(ctx context.Context, query string) (*Result, error)
}

// Result holds the lookup output. Lon/Lat follow GeoJSON axis order
// (longitude first).
type Result struct {
	Lon     float64
	Lat     float64
	Matched bool
}

// Option configures the Nominatim client.
type Option func(*nominatim)

// WithBaseURL overrides the Nominatim endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(n *nominatim) {
		n.baseURL = u
	}
}

// WithUserAgent sets the client identifier sent with each request.
func WithUserAgent(ua string) Option {
	return func(n *nominatim) {
		n.userAgent = ua
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(n *nominatim) {
		n.httpClient = hc
	}
}

// WithMinInterval sets the minimum spacing between outbound requests.
func WithMinInterval(d time.Duration) Option {
	return func(n *nominatim) {
		n.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithLimiter injects a rate limiter directly. Tests pass
// rate.NewLimiter(rate.Inf, 1) to run without real delays.
func WithLimiter(l *rate.Limiter) Option {
	return func(n *nominatim) {
		n.limiter = l
	}
}

type nominatim struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a Nominatim-backed Client with the given options.
func NewClient(opts ...Option) Client {
	n := &nominatim{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		limiter:    rate.NewLimiter(rate.Every(defaultMinInterval), 1),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
