package mock

import (
	"context"

	"github.com/fwojciec/shopcrawl"
)

var _ shopcrawl.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of shopcrawl.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, userAgent, url string) bool
}

func (p *RobotsPolicy) Allowed(ctx context.Context, userAgent, url string) bool {
	return p.AllowedFn(ctx, userAgent, url)
}
