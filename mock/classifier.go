package mock

import "github.com/fwojciec/shopcrawl"

var _ shopcrawl.URLClassifier = (*URLClassifier)(nil)

// URLClassifier is a mock implementation of shopcrawl.URLClassifier.
type URLClassifier struct {
	IsSameDomainFn func(url string) bool
	IsExcludedFn   func(url string) bool
	IsProductURLFn func(url string) bool
	ExtractLinksFn func(html, currentURL string) []string
}

func (c *URLClassifier) IsSameDomain(url string) bool {
	return c.IsSameDomainFn(url)
}

func (c *URLClassifier) IsExcluded(url string) bool {
	return c.IsExcludedFn(url)
}

func (c *URLClassifier) IsProductURL(url string) bool {
	return c.IsProductURLFn(url)
}

func (c *URLClassifier) ExtractLinks(html, currentURL string) []string {
	return c.ExtractLinksFn(html, currentURL)
}
