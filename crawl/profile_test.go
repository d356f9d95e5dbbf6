package crawl_test

import (
	"context"
	"testing"

	"github.com/fwojciec/shopcrawl"
	"github.com/fwojciec/shopcrawl/crawl"
	"github.com/fwojciec/shopcrawl/goquery"
	"github.com/fwojciec/shopcrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubProbe(html string, err error) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*shopcrawl.FetchResult, error) {
			if err != nil {
				return nil, err
			}
			return &shopcrawl.FetchResult{StatusCode: 200, HTML: html, FinalURL: url}, nil
		},
	}
}

func TestProfiler_Profile_recognizes_shopify(t *testing.T) {
	t.Parallel()

	html := `<html><head><script src="https://cdn.shopify.com/app.js"></script></head><body></body></html>`
	p := crawl.NewProfiler(stubProbe(html, nil), goquery.NewDetector(), nil)

	profile := p.Profile(context.Background(), "https://shop.example.com")
	require.NotNil(t, profile)

	assert.Equal(t, shopcrawl.PlatformShopify, profile.Platform)
	assert.Equal(t, 3, profile.MaxDepth)
	assert.Equal(t, []string{"/products/"}, profile.ProductURLPatterns)
	assert.False(t, profile.UseJSRendering)
}

func TestProfiler_Profile_forces_rendering_for_magento(t *testing.T) {
	t.Parallel()

	html := `<html><head><meta name="generator" content="Magento 2"></head><body></body></html>`
	p := crawl.NewProfiler(stubProbe(html, nil), goquery.NewDetector(), nil)

	profile := p.Profile(context.Background(), "https://shop.example.com")
	require.NotNil(t, profile)

	assert.Equal(t, shopcrawl.PlatformMagento, profile.Platform)
	assert.True(t, profile.UseJSRendering)
}

func TestProfiler_Profile_sweeps_generic_product_patterns(t *testing.T) {
	t.Parallel()

	html := `<html><body><a href="/item/1">One</a><a href="/item/2">Two</a></body></html>`
	p := crawl.NewProfiler(stubProbe(html, nil), goquery.NewDetector(), nil)

	profile := p.Profile(context.Background(), "https://shop.example.com")
	require.NotNil(t, profile)

	assert.Equal(t, shopcrawl.PlatformUnknown, profile.Platform)
	assert.Contains(t, profile.ProductURLPatterns, "/item/")
}

func TestProfiler_Profile_timeout_falls_back_to_URL_heuristics(t *testing.T) {
	t.Parallel()

	timeout := shopcrawl.Errorf(shopcrawl.ETIMEOUT, "probe timed out")
	p := crawl.NewProfiler(stubProbe("", timeout), goquery.NewDetector(), nil)

	profile := p.Profile(context.Background(), "https://widgets.myshopify.com")
	require.NotNil(t, profile)
	assert.Equal(t, shopcrawl.PlatformShopify, profile.Platform)
	assert.Equal(t, []string{"/products/"}, profile.ProductURLPatterns)

	profile = p.Profile(context.Background(), "https://www.sephora.com")
	require.NotNil(t, profile)
	assert.True(t, profile.UseJSRendering, "known JS-heavy storefronts force rendering")

	profile = p.Profile(context.Background(), "https://blog.example.com/product/widget")
	require.NotNil(t, profile)
	assert.Equal(t, shopcrawl.PlatformWooCommerce, profile.Platform)
}

func TestProfiler_Profile_other_failures_yield_generic_defaults(t *testing.T) {
	t.Parallel()

	unreachable := shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "connection refused")
	p := crawl.NewProfiler(stubProbe("", unreachable), goquery.NewDetector(), nil)

	profile := p.Profile(context.Background(), "https://shop.example.com")
	require.NotNil(t, profile)

	assert.Equal(t, shopcrawl.PlatformUnknown, profile.Platform)
	assert.Equal(t, 2, profile.MaxDepth)
	assert.Equal(t, 10, profile.MaxPages)
	assert.False(t, profile.UseJSRendering)
	assert.Empty(t, profile.ProductURLPatterns)
}
