package mock

import (
	"context"

	"github.com/fwojciec/shopcrawl"
)

var _ shopcrawl.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of shopcrawl.URLFrontier.
type URLFrontier struct {
	AdmitFn   func(url string, depth int) bool
	NextFn    func() (shopcrawl.QueueEntry, bool)
	VisitedFn func() int
	PendingFn func() int
	SeenFn    func(url string) bool
}

func (f *URLFrontier) Admit(url string, depth int) bool {
	return f.AdmitFn(url, depth)
}

func (f *URLFrontier) Next() (shopcrawl.QueueEntry, bool) {
	return f.NextFn()
}

func (f *URLFrontier) Visited() int {
	return f.VisitedFn()
}

func (f *URLFrontier) Pending() int {
	return f.PendingFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ shopcrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of shopcrawl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
