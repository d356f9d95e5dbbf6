package mock

import (
	"context"

	"github.com/fwojciec/shopcrawl"
)

var _ shopcrawl.Profiler = (*Profiler)(nil)

// Profiler is a mock implementation of shopcrawl.Profiler.
type Profiler struct {
	ProfileFn func(ctx context.Context, seedURL string) *shopcrawl.CrawlProfile
}

func (p *Profiler) Profile(ctx context.Context, seedURL string) *shopcrawl.CrawlProfile {
	return p.ProfileFn(ctx, seedURL)
}
