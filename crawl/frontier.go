package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/shopcrawl"
	"github.com/fwojciec/shopcrawl/bloom"
)

// Compile-time interface verification.
var _ shopcrawl.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory breadth-first URL frontier with Bloom filter
// deduplication. URLs are dequeued in the order they were admitted, so pages
// closer to the seed are always visited before deeper ones.
//
// Frontier is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu       sync.Mutex
	seen     *bloom.Filter
	queue    []shopcrawl.QueueEntry
	visited  int
	maxDepth int
	maxPages int
}

// NewFrontier creates a Frontier that admits URLs up to maxDepth links from
// the seed and dequeues at most maxPages of them.
func NewFrontier(maxDepth, maxPages int) *Frontier {
	return &Frontier{
		seen:     bloom.NewDefaultFilter(),
		maxDepth: maxDepth,
		maxPages: maxPages,
	}
}

// Admit offers a URL at the given depth to the frontier. It returns false
// when the URL is too deep or has already been seen. URL fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (f *Frontier) Admit(rawURL string, depth int) bool {
	if depth > f.maxDepth {
		return false
	}
	url := stripFragment(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.SeenOrAdd(url) {
		return false
	}
	f.queue = append(f.queue, shopcrawl.QueueEntry{URL: url, Depth: depth})
	return true
}

// Next dequeues the oldest pending entry and counts it as visited. The bool
// result is false when the queue is empty or the page budget is exhausted.
func (f *Frontier) Next() (shopcrawl.QueueEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 || f.visited >= f.maxPages {
		return shopcrawl.QueueEntry{}, false
	}
	entry := f.queue[0]
	f.queue = f.queue[1:]
	f.visited++
	return entry, true
}

// Visited returns the number of entries dequeued so far.
func (f *Frontier) Visited() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited
}

// Pending returns the number of admitted entries not yet dequeued.
func (f *Frontier) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL has been admitted before. URL fragments are
// stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Seen(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
