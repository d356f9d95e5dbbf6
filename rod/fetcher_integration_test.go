//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/shopcrawl/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_renders_client_side_content(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Shop</title></head><body>
<div id="app"></div>
<script>
document.getElementById("app").innerHTML = "<h1>Rendered Widget Catalog</h1>";
</script>
</body></html>`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	f := rod.NewFetcher(rod.WithSettleDelay(200 * time.Millisecond))
	defer f.Close()

	res, err := f.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, srv.URL+"/", res.FinalURL)

	// The heading only exists after script execution; a plain HTTP fetch
	// would see an empty app div.
	assert.Contains(t, res.HTML, "Rendered Widget Catalog")
}

func TestFetcher_Integration_dismisses_cookie_banner(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>
<div id="banner">We use cookies
  <button id="onetrust-accept-btn-handler"
    onclick="document.getElementById('banner').remove()">Accept</button>
</div>
<p>Product listing</p>
</body></html>`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	f := rod.NewFetcher(rod.WithSettleDelay(100 * time.Millisecond))
	defer f.Close()

	res, err := f.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, res.HTML, "Product listing")
	assert.NotContains(t, res.HTML, "We use cookies")
}

func TestFetcher_Integration_reuses_browser_across_fetches(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>ok</p></body></html>`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	f := rod.NewFetcher(rod.WithSettleDelay(0))
	defer f.Close()

	for i := 0; i < 3; i++ {
		res, err := f.Fetch(ctx, srv.URL)
		require.NoError(t, err)
		assert.Contains(t, res.HTML, "ok")
	}
}
