package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/shopcrawl"
)

// Ensure SitemapService implements shopcrawl.SitemapService.
var _ shopcrawl.SitemapService = (*SitemapService)(nil)

// maxSitemapURLs caps discovery so a huge catalog sitemap cannot flood the
// frontier; the crawl's own page cap is far smaller anyway.
const maxSitemapURLs = 500

// SitemapService discovers URLs from a site's sitemaps over HTTP. It is used
// to pre-seed the crawl frontier with known URLs before link discovery.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds URLs for the site rooted at baseURL. Sitemap URLs are
// taken from robots.txt Sitemap directives first, falling back to
// /sitemap.xml; sitemap indexes are resolved recursively. Returns an empty
// slice when the site publishes no sitemap.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid base URL %q", baseURL)
	}
	root := *base
	root.Path = ""

	sitemapURLs := s.findSitemapURLs(ctx, &root)
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var urls []string

	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue // one broken sitemap doesn't fail discovery
		}
		for _, u := range found {
			if len(urls) >= maxSitemapURLs {
				return urls, nil
			}
			if !seenURLs[u] {
				seenURLs[u] = true
				urls = append(urls, u)
			}
		}
	}

	return urls, nil
}

// findSitemapURLs discovers sitemap locations from robots.txt or falls back
// to /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) []string {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := s.sitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	if s.exists(ctx, fallback.String()) {
		return []string{fallback.String()}
	}
	return nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	return sitemaps
}

// processSitemap fetches and parses one sitemap, handling both urlset and
// sitemapindex documents.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "parsing sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, child := range root.SelectElements("sitemap") {
			loc := child.SelectElement("loc")
			if loc == nil {
				continue
			}
			nested := strings.TrimSpace(loc.Text())
			if nested == "" {
				continue
			}
			found, err := s.processSitemap(ctx, nested, seen)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}
			urls = append(urls, found...)
		}
		return urls, nil
	}

	var urls []string
	for _, el := range root.SelectElements("url") {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, targetURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
