package mock

import (
	"context"

	"github.com/fwojciec/shopcrawl"
)

var _ shopcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of shopcrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*shopcrawl.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
