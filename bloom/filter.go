// Package bloom provides probabilistic URL deduplication for the crawl
// frontier.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultCapacity sizes the filter for a typical bounded storefront crawl.
// The page cap is far smaller, but the filter also absorbs every discovered
// link that was never fetched.
const DefaultCapacity = 10000

// DefaultFalsePositiveRate is the accepted chance of wrongly treating a new
// URL as already seen. A false positive skips one page; a false negative is
// impossible, so a page is never fetched twice.
const DefaultFalsePositiveRate = 0.01

// Filter tracks which URLs have been offered to the frontier.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewDefaultFilter creates a filter with the default capacity and false
// positive rate.
func NewDefaultFilter() *Filter {
	return NewFilter(DefaultCapacity, DefaultFalsePositiveRate)
}

// Seen reports whether the URL might have been added before.
func (f *Filter) Seen(url string) bool {
	return f.f.TestString(url)
}

// SeenOrAdd records the URL and reports whether it was already present.
// This is the single operation frontier admission needs: one call both
// checks and claims the URL.
func (f *Filter) SeenOrAdd(url string) bool {
	return f.f.TestOrAddString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
