// Package goquery provides HTML-backed implementations of the shopcrawl
// classification and extraction interfaces: URL classification and link
// extraction, e-commerce platform detection, plain-text flattening, and
// schema.org Product extraction.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopcrawl"
)

// Compile-time interface verification.
var _ shopcrawl.URLClassifier = (*Classifier)(nil)

// defaultExcludedPatterns cover static assets and common non-product paths.
var defaultExcludedPatterns = []string{
	`.*\.(css|js|jpg|jpeg|png|gif|pdf|zip|ico)$`,
	`.*/tag/.*$`,
	`.*/category/.*$`,
	`.*/page/.*$`,
	`.*/wp-admin/.*$`,
	`.*/wp-content/.*$`,
	`.*/cart/.*$`,
	`.*/checkout/.*$`,
	`.*/my-account/.*$`,
	`.*/login/.*$`,
	`.*/register/.*$`,
}

// defaultProductPattern is the fallback heuristic used when no custom
// product-URL patterns are supplied. It is a rough substring match with no
// ground truth; misclassification only affects statistics and whether schema
// extraction is attempted.
var defaultProductPattern = regexp.MustCompile(`(?i)product|item`)

// Classifier categorizes URLs for one crawl session. All methods are pure
// functions over the classifier's immutable pattern set and never fail.
type Classifier struct {
	domain   string
	product  []*regexp.Regexp
	excluded []*regexp.Regexp
}

// NewClassifier creates a Classifier scoped to the seed URL's domain.
//
// Custom product patterns replace the built-in substring heuristic; custom
// excluded patterns fully replace the built-in defaults. Invalid patterns are
// rejected with EINVALID.
func NewClassifier(seedURL string, productPatterns, excludedPatterns []string) (*Classifier, error) {
	seed, err := url.Parse(seedURL)
	if err != nil || seed.Host == "" {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid seed URL %q", seedURL)
	}

	c := &Classifier{domain: seed.Host}

	for _, p := range productPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid product URL pattern %q: %v", p, err)
		}
		c.product = append(c.product, re)
	}

	if excludedPatterns == nil {
		excludedPatterns = defaultExcludedPatterns
	}
	for _, p := range excludedPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid excluded URL pattern %q: %v", p, err)
		}
		c.excluded = append(c.excluded, re)
	}

	return c, nil
}

// IsSameDomain reports whether the URL's host exactly matches the seed
// domain. Subdomains are considered different domains.
func (c *Classifier) IsSameDomain(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == c.domain
}

// IsExcluded reports whether the URL matches any exclusion pattern.
func (c *Classifier) IsExcluded(rawURL string) bool {
	for _, re := range c.excluded {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// IsProductURL reports whether the URL looks like a product page. With custom
// patterns it is true iff any pattern matches; otherwise the default
// substring heuristic applies.
func (c *Classifier) IsProductURL(rawURL string) bool {
	if len(c.product) == 0 {
		return defaultProductPattern.MatchString(rawURL)
	}
	for _, re := range c.product {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// ExtractLinks resolves every anchor href against currentURL and returns the
// absolute URLs that are same-domain and not excluded, in document order with
// duplicates removed. Malformed hrefs and non-HTTP schemes (javascript:,
// mailto:, tel:, data:) are silently dropped.
func (c *Classifier) ExtractLinks(html string, currentURL string) []string {
	base, err := url.Parse(currentURL)
	if err != nil {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !c.IsSameDomain(resolved) || c.IsExcluded(resolved) {
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)
	})

	return links
}

// resolveURL resolves a relative href against a base URL, stripping the
// fragment so URLs differing only by anchor deduplicate. Returns "" when the
// href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
