// Package http provides the plain-HTTP implementation of shopcrawl.Fetcher
// plus sitemap-based URL discovery. It is suitable for sites that don't
// require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/shopcrawl"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout's shorter plain-HTTP budget.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements shopcrawl.Fetcher at compile time.
var _ shopcrawl.Fetcher = (*Fetcher)(nil)

// defaultMinimalHeaderHosts are origins known to reject the full browser-like
// header set with "request header too large" responses.
var defaultMinimalHeaderHosts = map[string]bool{
	"www.douglas.pt": true,
	"douglas.pt":     true,
}

// Fetcher retrieves HTML content from URLs with a browser-like header set.
// For hosts known to reject large header sets it degrades to a minimal
// User-Agent-only set, and it retries once with minimal headers when an
// origin responds 431.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	transport    http.RoundTripper
	minimalHosts map[string]bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent presented to sites.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTransport overrides the underlying round tripper. Used by tests to
// intercept requests at the transport level.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithMinimalHeadersFor adds hosts that should always receive the minimal
// header set, in addition to the built-in defaults.
func WithMinimalHeadersFor(hosts ...string) Option {
	return func(f *Fetcher) {
		for _, h := range hosts {
			f.minimalHosts[h] = true
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    shopcrawl.DefaultUserAgent,
		minimalHosts: make(map[string]bool),
	}
	for h := range defaultMinimalHeaderHosts {
		f.minimalHosts[h] = true
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: f.transport,
	}

	return f
}

// Fetch retrieves the page at the given URL. Non-200 responses are reported
// as EUNAVAILABLE errors; timeouts and connection failures as ETIMEOUT /
// EUNAVAILABLE respectively.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*shopcrawl.FetchResult, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid URL %q", rawURL)
	}

	minimal := f.minimalHosts[u.Host]
	result, err := f.fetch(ctx, rawURL, minimal)
	if err != nil {
		return nil, err
	}

	// Some origins reject large header sets outright; retry once with a
	// minimal User-Agent-only set before giving up.
	if result.StatusCode == http.StatusRequestHeaderFieldsTooLarge && !minimal {
		result, err = f.fetch(ctx, rawURL, true)
		if err != nil {
			return nil, err
		}
	}

	if result.StatusCode != http.StatusOK {
		return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "HTTP %d for %s", result.StatusCode, rawURL)
	}

	return result, nil
}

// fetch issues a single GET with either the full browser-like header set or
// the minimal one.
func (f *Fetcher) fetch(ctx context.Context, rawURL string, minimal bool) (*shopcrawl.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "creating request for %s: %v", rawURL, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	if !minimal {
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")
		req.Header.Set("Connection", "keep-alive")
		req.Header.Set("Upgrade-Insecure-Requests", "1")
		req.Header.Set("Pragma", "no-cache")
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, shopcrawl.Errorf(shopcrawl.ETIMEOUT, "fetch canceled for %s: %v", rawURL, ctx.Err())
		}
		return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "fetching %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "reading %s: %v", rawURL, err)
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &shopcrawl.FetchResult{
		StatusCode: resp.StatusCode,
		HTML:       string(body),
		FinalURL:   finalURL,
	}, nil
}

// Close releases resources. For the HTTP fetcher this closes idle
// connections held by the transport.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
