package shopcrawl

import "context"

// Platform identifies an e-commerce platform detected from a page.
type Platform string

// Known e-commerce platforms.
const (
	PlatformUnknown     Platform = ""
	PlatformShopify     Platform = "shopify"
	PlatformWooCommerce Platform = "woocommerce"
	PlatformMagento     Platform = "magento"
	PlatformBigCommerce Platform = "bigcommerce"
	PlatformPrestaShop  Platform = "prestashop"
)

// CrawlProfile is the parameter set a site profiler proposes for a seed URL.
// The caller's explicit options always override it.
type CrawlProfile struct {
	Platform           Platform
	MaxDepth           int
	MaxPages           int
	UseJSRendering     bool
	ProductURLPatterns []string
}

// PlatformDetector identifies e-commerce platforms from raw HTML.
type PlatformDetector interface {
	// Detect analyzes HTML and returns the identified platform.
	// Returns PlatformUnknown if no fingerprint matches.
	Detect(html string) Platform

	// RequiresJS reports whether the page leans on a client-side framework
	// (Vue, React, Angular) heavily enough to need browser rendering.
	RequiresJS(html string) bool

	// ProductPatterns scans the HTML for common product-URL path patterns
	// (/product/, /products/, /item/, /items/, /p/) and returns those found.
	ProductPatterns(html string) []string
}

// Profiler inspects a seed URL and proposes crawl parameters. Profiling is
// strictly best-effort: it never fails and never blocks the crawl — on
// timeout it degrades to URL-string heuristics, on any other error it returns
// a generic default profile.
type Profiler interface {
	Profile(ctx context.Context, seedURL string) *CrawlProfile
}
