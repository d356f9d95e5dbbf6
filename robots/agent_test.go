package robots_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/shopcrawl/robots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent_Allowed_honors_disallow_rules(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /checkout\nDisallow: /cart\n"))
	})

	a, err := robots.NewAgent(nil)
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, a.Allowed(ctx, "shopcrawl", srv.URL+"/products/widget"))
	assert.False(t, a.Allowed(ctx, "shopcrawl", srv.URL+"/checkout"))
	assert.False(t, a.Allowed(ctx, "shopcrawl", srv.URL+"/cart/items"))
}

func TestAgent_Allowed_fails_open_without_robots_txt(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	a, err := robots.NewAgent(nil)
	require.NoError(t, err)

	assert.True(t, a.Allowed(context.Background(), "shopcrawl", srv.URL+"/anything"))
}

func TestAgent_Allowed_fails_open_when_host_is_unreachable(t *testing.T) {
	t.Parallel()

	a, err := robots.NewAgent(nil)
	require.NoError(t, err)

	assert.True(t, a.Allowed(context.Background(), "shopcrawl", "http://127.0.0.1:1/page"))
	assert.True(t, a.Allowed(context.Background(), "shopcrawl", "::not-a-url::"))
}

func TestAgent_Allowed_caches_policy_per_host(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("User-agent: *\nDisallow: /private\n"))
	})

	a, err := robots.NewAgent(nil)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		a.Allowed(ctx, "shopcrawl", srv.URL+"/products/widget")
	}
	assert.Equal(t, int64(1), hits.Load())
}

func TestAgent_Allowed_distinguishes_user_agents(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: badbot\nDisallow: /\n\nUser-agent: *\nDisallow:\n"))
	})

	a, err := robots.NewAgent(nil)
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, a.Allowed(ctx, "badbot", srv.URL+"/products"))
	assert.True(t, a.Allowed(ctx, "goodbot", srv.URL+"/products"))
}
