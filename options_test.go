package shopcrawl_test

import (
	"testing"
	"time"

	"github.com/fwojciec/shopcrawl"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := shopcrawl.DefaultOptions()

	assert.Equal(t, 2, opts.MaxDepth)
	assert.Equal(t, 20, opts.MaxPages)
	assert.True(t, opts.FollowLinks)
	assert.True(t, opts.ExtractProductSchema)
	assert.Equal(t, time.Second, opts.WaitTime)
	assert.Equal(t, 120*time.Second, opts.Timeout)
	assert.False(t, opts.UseJSRendering)
	assert.False(t, opts.SinglePageOnly)
}

func TestCrawlOptions_SelectMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts shopcrawl.CrawlOptions
		want shopcrawl.Mode
	}{
		{
			name: "single page wins over everything",
			opts: shopcrawl.CrawlOptions{SinglePageOnly: true, UseJSRendering: true, FollowLinks: true},
			want: shopcrawl.ModeSinglePage,
		},
		{
			name: "js rendering wins over link following",
			opts: shopcrawl.CrawlOptions{UseJSRendering: true, FollowLinks: true},
			want: shopcrawl.ModeJSRendered,
		},
		{
			name: "follow links runs the basic traversal",
			opts: shopcrawl.CrawlOptions{FollowLinks: true},
			want: shopcrawl.ModeBasic,
		},
		{
			name: "nothing set degrades to a single plain fetch",
			opts: shopcrawl.CrawlOptions{},
			want: shopcrawl.ModeSinglePage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.opts.SelectMode())
		})
	}
}

func TestCrawlOptions_Validate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, shopcrawl.DefaultOptions().Validate())
	})

	t.Run("negative depth is rejected", func(t *testing.T) {
		t.Parallel()
		err := shopcrawl.CrawlOptions{MaxDepth: -1}.Validate()
		assert.Equal(t, shopcrawl.EINVALID, shopcrawl.ErrorCode(err))
	})

	t.Run("negative wait time is rejected", func(t *testing.T) {
		t.Parallel()
		err := shopcrawl.CrawlOptions{WaitTime: -time.Second}.Validate()
		assert.Equal(t, shopcrawl.EINVALID, shopcrawl.ErrorCode(err))
	})
}
