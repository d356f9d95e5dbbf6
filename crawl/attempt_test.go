package crawl_test

import (
	"context"
	"testing"

	"github.com/fwojciec/shopcrawl"
	"github.com/fwojciec/shopcrawl/crawl"
	"github.com/fwojciec/shopcrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_Fetch_returns_first_success(t *testing.T) {
	t.Parallel()

	primary := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			return &shopcrawl.FetchResult{StatusCode: 200, HTML: "<html>rendered</html>", FinalURL: url}, nil
		},
	}
	fallback := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			t.Fatal("fallback must not run when the primary succeeds")
			return nil, nil
		},
	}

	plan := crawl.NewPlan(
		crawl.Attempt{Name: "render", Fetcher: primary},
		crawl.Attempt{Name: "http", Fetcher: fallback},
	)

	res, name, err := plan.Fetch(context.Background(), "https://shop.example.com")
	require.NoError(t, err)
	assert.Equal(t, "render", name)
	assert.Equal(t, "<html>rendered</html>", res.HTML)
}

func TestPlan_Fetch_falls_back_on_retryable_error(t *testing.T) {
	t.Parallel()

	primary := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "browser crashed")
		},
	}
	fallback := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			return &shopcrawl.FetchResult{StatusCode: 200, HTML: "<html>plain</html>", FinalURL: url}, nil
		},
	}

	plan := crawl.NewPlan(
		crawl.Attempt{Name: "render", Fetcher: primary},
		crawl.Attempt{Name: "http", Fetcher: fallback},
	)

	res, name, err := plan.Fetch(context.Background(), "https://shop.example.com")
	require.NoError(t, err)
	assert.Equal(t, "http", name)
	assert.Equal(t, "<html>plain</html>", res.HTML)
}

func TestPlan_Fetch_stops_on_fatal_error(t *testing.T) {
	t.Parallel()

	primary := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "malformed URL")
		},
	}
	fallbackCalled := false
	fallback := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			fallbackCalled = true
			return &shopcrawl.FetchResult{StatusCode: 200, HTML: "x", FinalURL: url}, nil
		},
	}

	plan := crawl.NewPlan(
		crawl.Attempt{Name: "render", Fetcher: primary},
		crawl.Attempt{Name: "http", Fetcher: fallback},
	)

	_, _, err := plan.Fetch(context.Background(), "::bad::")
	require.Error(t, err)
	assert.Equal(t, shopcrawl.EINVALID, shopcrawl.ErrorCode(err))
	assert.False(t, fallbackCalled)
}

func TestPlan_Fetch_returns_last_error_when_all_fail(t *testing.T) {
	t.Parallel()

	first := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			return nil, shopcrawl.Errorf(shopcrawl.ETIMEOUT, "render timed out")
		},
	}
	second := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "HTTP 503")
		},
	}

	plan := crawl.NewPlan(
		crawl.Attempt{Name: "render", Fetcher: first},
		crawl.Attempt{Name: "http", Fetcher: second},
	)

	_, _, err := plan.Fetch(context.Background(), "https://shop.example.com")
	require.Error(t, err)
	assert.Equal(t, shopcrawl.EUNAVAILABLE, shopcrawl.ErrorCode(err))
}

func TestClassify_maps_errors_to_outcomes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, crawl.OutcomeSuccess, crawl.Classify(ctx, nil))
	assert.Equal(t, crawl.OutcomeRetryable, crawl.Classify(ctx, shopcrawl.Errorf(shopcrawl.ETIMEOUT, "t")))
	assert.Equal(t, crawl.OutcomeRetryable, crawl.Classify(ctx, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "u")))
	assert.Equal(t, crawl.OutcomeFatal, crawl.Classify(ctx, shopcrawl.Errorf(shopcrawl.EINVALID, "i")))

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, crawl.OutcomeFatal, crawl.Classify(canceled, shopcrawl.Errorf(shopcrawl.ETIMEOUT, "t")))
}
