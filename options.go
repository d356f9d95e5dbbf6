package shopcrawl

import "time"

// Default crawl parameters. These match the generic defaults the profiler
// falls back to when it can't learn anything about a site.
const (
	DefaultMaxDepth       = 2
	DefaultMaxPages       = 20
	DefaultWaitTime       = 1 * time.Second
	DefaultSessionTimeout = 120 * time.Second

	// DefaultUserAgent is the browser-like identity both fetchers present.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Mode identifies the traversal strategy a session runs in.
type Mode string

// Traversal modes.
const (
	// ModeBasic is the breadth-first HTTP traversal with link following.
	ModeBasic Mode = "basic"

	// ModeSinglePage fetches exactly the seed URL over HTTP, no link following.
	ModeSinglePage Mode = "single-page"

	// ModeJSRendered renders the seed URL in a headless browser. This mode
	// does not follow links; it exists to get one fully-rendered page.
	ModeJSRendered Mode = "js-rendered"
)

// CrawlOptions is the fully-resolved, immutable configuration for one crawl
// session. Callers assemble it before starting the session; the crawl core
// never reads ambient state.
//
// Zero values mean "unset" and are filled from the site profile and then the
// package defaults when the session starts.
type CrawlOptions struct {
	// MaxDepth is the maximum link-following depth; the seed is depth 0.
	MaxDepth int

	// MaxPages caps the number of pages visited in the session.
	MaxPages int

	// UseJSRendering renders the seed page in a headless browser instead of
	// crawling. Ignored when SinglePageOnly is set.
	UseJSRendering bool

	// SinglePageOnly fetches exactly the seed URL with no link following,
	// regardless of any other flag.
	SinglePageOnly bool

	// FollowLinks enables the breadth-first traversal. Defaults to true.
	// It is forced off by SinglePageOnly.
	FollowLinks bool

	// ProductURLPatterns are regexp patterns identifying product URLs. When
	// empty, a built-in substring heuristic is used instead.
	ProductURLPatterns []string

	// ExcludedURLPatterns are regexp patterns for URLs to skip. When provided
	// they fully replace the built-in defaults.
	ExcludedURLPatterns []string

	// WaitTime is the delay between page fetches in the basic traversal.
	WaitTime time.Duration

	// ExtractProductSchema enables schema.org Product extraction on product
	// pages. Defaults to true.
	ExtractProductSchema bool

	// RespectRobots consults robots.txt before each fetch in the basic
	// traversal. Disallowed URLs are skipped, not counted as errors.
	RespectRobots bool

	// SeedFromSitemap pre-seeds the frontier from the site's sitemap in the
	// basic traversal, when a sitemap service is configured.
	SeedFromSitemap bool

	// UserAgent overrides the identity presented to the site.
	UserAgent string

	// Timeout bounds the whole session (profiling + crawling + extraction).
	// On expiry the session returns whatever it collected so far.
	Timeout time.Duration

	// SkipProfiling disables the site-profiling step; package defaults fill
	// any unset parameters instead.
	SkipProfiling bool
}

// DefaultOptions returns options with the package defaults applied and
// link following enabled.
func DefaultOptions() CrawlOptions {
	return CrawlOptions{
		MaxDepth:             DefaultMaxDepth,
		MaxPages:             DefaultMaxPages,
		FollowLinks:          true,
		WaitTime:             DefaultWaitTime,
		ExtractProductSchema: true,
		UserAgent:            DefaultUserAgent,
		Timeout:              DefaultSessionTimeout,
	}
}

// SelectMode returns the traversal mode the options resolve to, applying the
// priority order: single-page wins over JS rendering, JS rendering wins over
// link following, and anything else degrades to a single plain-HTTP fetch.
func (o CrawlOptions) SelectMode() Mode {
	switch {
	case o.SinglePageOnly:
		return ModeSinglePage
	case o.UseJSRendering:
		return ModeJSRendered
	case o.FollowLinks:
		return ModeBasic
	default:
		return ModeSinglePage
	}
}

// Validate returns an error if the options are internally inconsistent.
func (o CrawlOptions) Validate() error {
	if o.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must be >= 0, got %d", o.MaxDepth)
	}
	if o.MaxPages < 0 {
		return Errorf(EINVALID, "max pages must be >= 0, got %d", o.MaxPages)
	}
	if o.WaitTime < 0 {
		return Errorf(EINVALID, "wait time must be >= 0, got %s", o.WaitTime)
	}
	return nil
}
