package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopcrawl"
)

// Compile-time interface verification.
var _ shopcrawl.PlatformDetector = (*Detector)(nil)

// Detector identifies e-commerce platforms from HTML content. It checks the
// meta generator tag first, then platform-specific markers in the raw markup.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// commonProductPatterns are the generic path patterns swept for when no
// platform fingerprint yields product URL patterns.
var commonProductPatterns = []string{
	"/product/",
	"/products/",
	"/item/",
	"/items/",
	"/p/",
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformUnknown if no fingerprint matches.
func (d *Detector) Detect(html string) shopcrawl.Platform {
	lower := strings.ToLower(html)

	if generator := metaGenerator(html); generator != "" {
		switch {
		case strings.Contains(generator, "shopify"):
			return shopcrawl.PlatformShopify
		case strings.Contains(generator, "woocommerce"), strings.Contains(generator, "wordpress"):
			return shopcrawl.PlatformWooCommerce
		case strings.Contains(generator, "magento"):
			return shopcrawl.PlatformMagento
		case strings.Contains(generator, "bigcommerce"):
			return shopcrawl.PlatformBigCommerce
		case strings.Contains(generator, "prestashop"):
			return shopcrawl.PlatformPrestaShop
		}
	}

	switch {
	case strings.Contains(lower, "shopify"):
		return shopcrawl.PlatformShopify
	case strings.Contains(lower, "woocommerce"), strings.Contains(lower, "wp-content"):
		return shopcrawl.PlatformWooCommerce
	case strings.Contains(lower, "magento"):
		return shopcrawl.PlatformMagento
	case strings.Contains(lower, "bigcommerce"):
		return shopcrawl.PlatformBigCommerce
	case strings.Contains(lower, "prestashop"):
		return shopcrawl.PlatformPrestaShop
	}

	return shopcrawl.PlatformUnknown
}

// RequiresJS reports whether the page leans on a client-side framework
// heavily enough to need browser rendering.
func (d *Detector) RequiresJS(html string) bool {
	lower := strings.ToLower(html)
	for _, marker := range []string{"vue", "react", "angular", "axios", "fetch("} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ProductPatterns scans the HTML for common product-URL path patterns and
// returns those present, in sweep order.
func (d *Detector) ProductPatterns(html string) []string {
	lower := strings.ToLower(html)
	var patterns []string
	for _, p := range commonProductPatterns {
		if strings.Contains(lower, p) {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// metaGenerator returns the lowercased content of the page's meta generator
// tag, or "" when absent or the HTML cannot be parsed.
func metaGenerator(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})
	return generator
}
