// Package rod implements a shopcrawl.Fetcher using Chrome browser automation.
// It renders JavaScript-heavy storefronts that serve empty or skeletal HTML
// to plain HTTP clients.
package rod

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fwojciec/shopcrawl"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements shopcrawl.Fetcher at compile time.
var _ shopcrawl.Fetcher = (*Fetcher)(nil)

// DefaultFetchTimeout bounds a single rendered page load.
const DefaultFetchTimeout = 30 * time.Second

// consentClickTimeout bounds each cookie banner dismissal attempt so a
// missing banner cannot stall the fetch.
const consentClickTimeout = 2 * time.Second

// consentSelectors are tried in order against the loaded page. Cookie
// banners overlay content and their markup pollutes extracted text, so the
// first matching button is clicked before the HTML is captured.
var consentSelectors = []string{
	"#onetrust-accept-btn-handler",
	"button[id*='accept-cookies']",
	"button[id*='cookie-accept']",
	"button[data-testid='uc-accept-all-button']",
	"button[aria-label*='Accept']",
	".cookie-consent-accept",
}

// Fetcher retrieves rendered HTML from URLs using a headless Chrome browser.
// The browser is launched lazily on first use so that constructing a Fetcher
// is cheap for crawls that never need rendering.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout   time.Duration
	settle    time.Duration
	userAgent string

	launchOnce sync.Once
	launchErr  error
	browser    *rod.Browser
	launcher   *launcher.Launcher
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page load timeout. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettleDelay sets how long to wait after the load event before capturing
// HTML, giving client-side rendering time to populate the DOM.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithUserAgent overrides the browser's user agent string.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher. The browser is not launched until the
// first Fetch call. Close must be called when the Fetcher is no longer
// needed.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		settle:    shopcrawl.DefaultWaitTime,
		userAgent: shopcrawl.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ensureBrowser launches the browser on first use. Launch failures are
// sticky; a Fetcher whose browser failed to start returns the same error
// from every Fetch.
func (f *Fetcher) ensureBrowser() error {
	f.launchOnce.Do(func() {
		lnchr := launcher.New().
			Set("disable-background-timer-throttling").
			Set("disable-backgrounding-occluded-windows").
			Set("disable-renderer-backgrounding").
			Set("disable-dev-shm-usage").
			Set("disable-hang-monitor").
			Leakless(true).
			Headless(true)

		u, err := lnchr.Launch()
		if err != nil {
			f.launchErr = shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "launching browser: %v", err)
			return
		}

		browser := rod.New().ControlURL(u)
		if err := browser.Connect(); err != nil {
			lnchr.Kill()
			f.launchErr = shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "connecting to browser: %v", err)
			return
		}

		f.browser = browser
		f.launcher = lnchr
	})
	return f.launchErr
}

// Fetch navigates to the URL and returns the fully rendered HTML. The page
// is given a settle delay after the load event and any recognized cookie
// consent banner is dismissed before capture.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.ETIMEOUT, "fetch canceled for %s", url)
	}
	if err := f.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, mapRodErr(ctx, url, err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	if f.userAgent != "" {
		override := proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}
		if err := page.SetUserAgent(&override); err != nil {
			return nil, mapRodErr(ctx, url, err)
		}
	}

	if err := page.Navigate(url); err != nil {
		return nil, mapRodErr(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, mapRodErr(ctx, url, err)
	}

	if f.settle > 0 {
		select {
		case <-time.After(f.settle):
		case <-ctx.Done():
			return nil, shopcrawl.Errorf(shopcrawl.ETIMEOUT, "fetch timed out for %s", url)
		}
	}

	f.dismissConsent(page)

	html, err := page.HTML()
	if err != nil {
		return nil, mapRodErr(ctx, url, err)
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &shopcrawl.FetchResult{
		StatusCode: 200,
		HTML:       html,
		FinalURL:   finalURL,
	}, nil
}

// dismissConsent clicks the first recognized cookie consent button, if any.
// Failures are ignored; a stubborn banner degrades extraction quality but
// must not fail the fetch.
func (f *Fetcher) dismissConsent(page *rod.Page) {
	for _, sel := range consentSelectors {
		has, el, err := page.Has(sel)
		if err != nil || !has {
			continue
		}
		el = el.Timeout(consentClickTimeout)
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			continue
		}
		return
	}
}

// Close releases browser resources. Close is safe to call even when the
// browser was never launched.
func (f *Fetcher) Close() error {
	if f.browser == nil {
		return nil
	}
	err := f.browser.Close()
	if f.launcher != nil {
		f.launcher.Kill()
	}
	return err
}

// mapRodErr converts rod failures into application errors, distinguishing
// timeouts from navigation failures.
func mapRodErr(ctx context.Context, url string, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return shopcrawl.Errorf(shopcrawl.ETIMEOUT, "fetch timed out for %s", url)
	}
	return shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "rendering %s: %v", url, err)
}
