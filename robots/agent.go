// Package robots implements a shopcrawl.RobotsPolicy backed by live
// robots.txt files. Parsed files are cached per host so a crawl consults
// each site's policy at most once.
package robots

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/shopcrawl"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/temoto/robotstxt"
)

// Ensure Agent implements shopcrawl.RobotsPolicy at compile time.
var _ shopcrawl.RobotsPolicy = (*Agent)(nil)

// DefaultCacheSize is the number of hosts whose parsed robots.txt is kept.
const DefaultCacheSize = 128

// fetchTimeout bounds the robots.txt request itself; policy lookup must
// never dominate crawl time.
const fetchTimeout = 5 * time.Second

// maxRobotsBody caps how much of a robots.txt is read.
const maxRobotsBody = 512 * 1024

// Agent answers robots.txt queries for crawled URLs. Missing, unreachable,
// or malformed robots.txt files fail open: the URL is treated as allowed.
//
// Agent is safe for concurrent use.
type Agent struct {
	client *http.Client
	cache  *lru.Cache[string, *robotstxt.RobotsData]
}

// NewAgent creates a new Agent. If client is nil, a client with a short
// timeout is used.
func NewAgent(client *http.Client) (*Agent, error) {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	cache, err := lru.New[string, *robotstxt.RobotsData](DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Agent{client: client, cache: cache}, nil
}

// Allowed reports whether userAgent may fetch rawURL according to the URL's
// host robots.txt. Any failure to obtain or parse the policy returns true.
func (a *Agent) Allowed(ctx context.Context, userAgent, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return true
	}

	data := a.policyFor(ctx, u)
	if data == nil {
		return true
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, userAgent)
}

// policyFor returns the parsed robots.txt for the URL's host, fetching and
// caching it on first use. Returns nil when no usable policy exists.
func (a *Agent) policyFor(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	key := u.Scheme + "://" + u.Host
	if data, ok := a.cache.Get(key); ok {
		return data
	}

	data := a.fetch(ctx, key+"/robots.txt")
	// Cache nil results too so an unreachable robots.txt is not re-fetched
	// for every page of the crawl.
	a.cache.Add(key, data)
	return data
}

func (a *Agent) fetch(ctx context.Context, robotsURL string) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBody))
	if err != nil {
		return nil
	}

	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil
	}
	return data
}
