package shopcrawl

import "context"

// SitemapService discovers URLs from a site's sitemap.
type SitemapService interface {
	// DiscoverURLs finds URLs for the site, first checking robots.txt for
	// Sitemap directives and then falling back to /sitemap.xml. Sitemap
	// indexes are resolved recursively.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
