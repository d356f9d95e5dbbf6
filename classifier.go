package shopcrawl

// URLClassifier normalizes, validates, and categorizes URLs for one crawl
// session. All methods are pure with respect to the classifier's pattern set:
// the same input always yields the same result, and none of them fail —
// malformed URLs are simply dropped or classified negative.
type URLClassifier interface {
	// IsSameDomain reports whether the URL's network location exactly matches
	// the session's seed domain. No subdomain wildcarding.
	IsSameDomain(url string) bool

	// IsExcluded reports whether the URL matches any exclusion pattern
	// (static assets, cart/checkout/account paths, and so on).
	IsExcluded(url string) bool

	// IsProductURL heuristically judges whether the URL points at a single
	// product listing. False positives and negatives are expected and only
	// affect statistics and whether schema extraction is attempted.
	IsProductURL(url string) bool

	// ExtractLinks resolves every anchor in the HTML against currentURL and
	// returns the absolute URLs that are same-domain and not excluded.
	// Malformed hrefs are silently dropped.
	ExtractLinks(html string, currentURL string) []string
}
