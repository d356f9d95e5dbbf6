package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/shopcrawl"
	"golang.org/x/time/rate"
)

var _ shopcrawl.DomainLimiter = (*Limiter)(nil)

// Limiter provides per-domain rate limiting using token buckets. Each domain
// gets its own limiter, so pacing one site never slows another.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval rate.Limit
}

// NewLimiter creates a Limiter that allows one request per interval per
// domain with a burst of 1, matching the polite fixed delay between page
// fetches.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		interval: rate.Limit(rps),
	}
}

// Wait blocks until the domain's rate limit allows another request. Returns
// an error if the context is canceled first.
func (l *Limiter) Wait(ctx context.Context, domain string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(l.interval, 1)
		l.limiters[domain] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
