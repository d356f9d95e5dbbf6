package shopcrawl

import "context"

// QueueEntry is a pending traversal unit: a URL plus the depth it was
// discovered at. The seed is depth 0.
type QueueEntry struct {
	URL   string
	Depth int
}

// URLFrontier maintains the bounded-traversal state for one session: the
// visited set, the pending FIFO queue, and the depth/page caps. A frontier is
// owned exclusively by one session and never shared.
type URLFrontier interface {
	// Admit enqueues a URL discovered at the given depth. Returns false
	// without enqueuing if the URL has already been seen (queued or visited)
	// or the depth exceeds the frontier's maximum.
	Admit(url string, depth int) bool

	// Next dequeues the next entry in FIFO (breadth-first) order and marks it
	// visited. Returns false when the queue is empty or the page cap has been
	// reached, whichever comes first.
	Next() (QueueEntry, bool)

	// Visited returns the number of URLs dequeued so far.
	Visited() int

	// Pending returns the number of queued, not-yet-visited entries.
	Pending() int

	// Seen reports whether the URL has been queued or visited.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting between page fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, domain string) error
}
