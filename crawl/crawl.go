// Package crawl implements the crawl session orchestration: the frontier,
// the site profiler, per-domain rate limiting, and the state machine that
// turns a seed URL and options into a CrawlResult.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shopcrawl"
	"github.com/google/uuid"
)

// state names one phase of a crawl session's lifecycle.
type state string

const (
	stateInit      state = "init"
	stateProfiling state = "profiling"
	stateCrawling  state = "crawling"
	stateError     state = "error"
	stateFinalized state = "finalized"
)

// ClassifierFunc builds a URL classifier scoped to a seed URL with the given
// pattern overrides. Empty pattern slices select the built-in defaults.
type ClassifierFunc func(seedURL string, productPatterns, excludedPatterns []string) (shopcrawl.URLClassifier, error)

// Crawler runs crawl sessions. HTTPFetcher, Extractor, and NewClassifier are
// required; everything else is optional and degrades gracefully when absent.
//
// A Crawler is safe for concurrent use: sessions share no state beyond the
// injected collaborators.
type Crawler struct {
	HTTPFetcher shopcrawl.Fetcher
	JSFetcher   shopcrawl.Fetcher

	Extractor shopcrawl.Extractor
	// FallbackExtractor runs when the primary extractor errors or yields
	// empty text for a page.
	FallbackExtractor shopcrawl.Extractor
	Schemas           shopcrawl.SchemaExtractor

	NewClassifier ClassifierFunc

	Profiler shopcrawl.Profiler
	Sitemaps shopcrawl.SitemapService
	Robots   shopcrawl.RobotsPolicy

	Metrics *Metrics
	Logger  *slog.Logger
}

// Crawl runs one session against seedURL and returns the collected
// documents. The whole session is bounded by the options' timeout; on expiry
// the documents collected so far are returned rather than discarded.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, opts shopcrawl.CrawlOptions) (*shopcrawl.CrawlResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	seed, err := url.Parse(seedURL)
	if err != nil || seed.Host == "" {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "invalid seed URL %q", seedURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = shopcrawl.DefaultSessionTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := &shopcrawl.CrawlResult{
		SessionID: uuid.NewString(),
		SeedURL:   seedURL,
	}
	logger := c.logger().With("session", result.SessionID, "seed", seedURL)
	logger.Debug("session state", "state", stateInit)

	var profile *shopcrawl.CrawlProfile
	if c.Profiler != nil && !opts.SkipProfiling {
		logger.Debug("session state", "state", stateProfiling)
		profile = c.Profiler.Profile(ctx, seedURL)
	}
	resolved := resolveOptions(opts, profile)
	result.Mode = resolved.SelectMode()

	classifier, err := c.NewClassifier(seedURL, resolved.ProductURLPatterns, resolved.ExcludedURLPatterns)
	if err != nil {
		return nil, err
	}

	logger.Debug("session state", "state", stateCrawling, "mode", result.Mode)
	switch result.Mode {
	case shopcrawl.ModeSinglePage:
		err = c.fetchOne(ctx, c.httpPlan(), seedURL, resolved, classifier, result, logger)
	case shopcrawl.ModeJSRendered:
		err = c.fetchOne(ctx, c.jsPlan(), seedURL, resolved, classifier, result, logger)
	case shopcrawl.ModeBasic:
		c.runBasic(ctx, seed, resolved, classifier, result, logger)
	}
	if err != nil {
		logger.Debug("session state", "state", stateError)
		return nil, err
	}

	logger.Debug("session state", "state", stateFinalized)
	logger.Info("session finished",
		"mode", result.Mode,
		"pages", result.Stats.TotalPages,
		"products", result.Stats.ProductPages,
		"schemas", result.Stats.SchemaFound,
		"errors", result.Stats.Errors,
	)
	return result, nil
}

// httpPlan is the single-strategy plan used by the plain fetch paths.
func (c *Crawler) httpPlan() *Plan {
	return NewPlan(Attempt{Name: "http", Fetcher: c.HTTPFetcher})
}

// jsPlan prefers the rendering fetcher and falls back to plain HTTP when
// rendering fails or no rendering fetcher is configured.
func (c *Crawler) jsPlan() *Plan {
	if c.JSFetcher == nil {
		return c.httpPlan()
	}
	return NewPlan(
		Attempt{Name: "render", Fetcher: c.JSFetcher},
		Attempt{Name: "http", Fetcher: c.HTTPFetcher},
	)
}

// fetchOne handles the single-document modes: fetch the seed, extract, done.
// An unreachable seed is a session failure here since there is nothing else
// to return.
func (c *Crawler) fetchOne(ctx context.Context, plan *Plan, seedURL string, resolved shopcrawl.CrawlOptions, classifier shopcrawl.URLClassifier, result *shopcrawl.CrawlResult, logger *slog.Logger) error {
	res, strategy, err := c.timedFetch(ctx, plan, seedURL)
	if err != nil {
		c.Metrics.IncError(shopcrawl.ErrorCode(err))
		result.Stats.Errors++
		if code := shopcrawl.ErrorCode(err); code == shopcrawl.ETIMEOUT || code == shopcrawl.EINVALID {
			return err
		}
		return shopcrawl.Errorf(shopcrawl.ENOTFOUND, "no content extracted from %s", seedURL)
	}
	c.Metrics.IncPage(strategy)

	doc, err := c.buildDocument(seedURL, res, resolved, classifier)
	if err != nil {
		result.Stats.Errors++
		return shopcrawl.Errorf(shopcrawl.ENOTFOUND, "no content extracted from %s", seedURL)
	}
	appendDocument(result, doc)
	c.Metrics.IncDocument()
	if doc.Schema != nil {
		c.Metrics.IncSchemaHit()
	}
	logger.Debug("page collected", "url", seedURL, "strategy", strategy, "product", doc.IsProduct)
	return nil
}

// runBasic is the breadth-first traversal. Page-level failures increment the
// error counter and move on; an expired session budget ends the walk with
// whatever was collected. A session that produced no documents is reported
// with a warning, not an error.
func (c *Crawler) runBasic(ctx context.Context, seed *url.URL, resolved shopcrawl.CrawlOptions, classifier shopcrawl.URLClassifier, result *shopcrawl.CrawlResult, logger *slog.Logger) {
	frontier := NewFrontier(resolved.MaxDepth, resolved.MaxPages)
	frontier.Admit(seed.String(), 0)
	c.preSeedFromSitemap(ctx, seed, resolved, classifier, frontier, logger)

	var limiter shopcrawl.DomainLimiter
	if resolved.WaitTime > 0 {
		limiter = NewLimiter(1 / resolved.WaitTime.Seconds())
	}
	plan := c.httpPlan()

	for {
		entry, ok := frontier.Next()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			logger.Warn("session budget expired, returning partial results",
				"collected", len(result.Documents),
				"pending", frontier.Pending(),
			)
			break
		}

		if resolved.RespectRobots && c.Robots != nil && !c.Robots.Allowed(ctx, resolved.UserAgent, entry.URL) {
			logger.Debug("skipping disallowed URL", "url", entry.URL)
			continue
		}

		if limiter != nil {
			if err := limiter.Wait(ctx, seed.Host); err != nil {
				continue
			}
		}

		res, strategy, err := c.timedFetch(ctx, plan, entry.URL)
		if err != nil {
			logger.Debug("session state", "state", stateError, "url", entry.URL, "err", err)
			c.Metrics.IncError(shopcrawl.ErrorCode(err))
			result.Stats.Errors++
			continue
		}
		c.Metrics.IncPage(strategy)

		doc, err := c.buildDocument(entry.URL, res, resolved, classifier)
		if err != nil {
			c.Metrics.IncError(shopcrawl.ErrorCode(err))
			result.Stats.Errors++
			continue
		}
		appendDocument(result, doc)
		c.Metrics.IncDocument()
		if doc.Schema != nil {
			c.Metrics.IncSchemaHit()
		}
		logger.Debug("page collected", "url", entry.URL, "depth", entry.Depth, "product", doc.IsProduct)

		if entry.Depth < resolved.MaxDepth {
			for _, link := range classifier.ExtractLinks(res.HTML, entry.URL) {
				frontier.Admit(link, entry.Depth+1)
			}
		}
	}

	if len(result.Documents) == 0 {
		logger.Warn("crawl produced no documents", "errors", result.Stats.Errors)
	}
}

// preSeedFromSitemap admits sitemap-discovered URLs at depth 1 so known pages
// are crawled even when nothing links to them. Discovery failures are not
// session failures.
func (c *Crawler) preSeedFromSitemap(ctx context.Context, seed *url.URL, resolved shopcrawl.CrawlOptions, classifier shopcrawl.URLClassifier, frontier *Frontier, logger *slog.Logger) {
	if !resolved.SeedFromSitemap || c.Sitemaps == nil {
		return
	}
	urls, err := c.Sitemaps.DiscoverURLs(ctx, seed.Scheme+"://"+seed.Host)
	if err != nil {
		logger.Debug("sitemap discovery failed", "err", err)
		return
	}
	admitted := 0
	for _, u := range urls {
		if !classifier.IsSameDomain(u) || classifier.IsExcluded(u) {
			continue
		}
		if frontier.Admit(u, 1) {
			admitted++
		}
	}
	logger.Debug("frontier pre-seeded from sitemap", "discovered", len(urls), "admitted", admitted)
}

// timedFetch runs a fetch plan and records its duration.
func (c *Crawler) timedFetch(ctx context.Context, plan *Plan, url string) (*shopcrawl.FetchResult, string, error) {
	begin := time.Now()
	res, strategy, err := plan.Fetch(ctx, url)
	c.Metrics.ObserveFetch(time.Since(begin))
	return res, strategy, err
}

// buildDocument extracts text and, for product pages, structured schema from
// a fetched page. Pages whose extraction yields no text are errors: an empty
// document is worthless downstream.
func (c *Crawler) buildDocument(pageURL string, res *shopcrawl.FetchResult, resolved shopcrawl.CrawlOptions, classifier shopcrawl.URLClassifier) (shopcrawl.Document, error) {
	text, err := c.Extractor.Text(res.HTML)
	if (err != nil || strings.TrimSpace(text) == "") && c.FallbackExtractor != nil {
		text, err = c.FallbackExtractor.Text(res.HTML)
	}
	if err != nil {
		return shopcrawl.Document{}, err
	}
	if strings.TrimSpace(text) == "" {
		return shopcrawl.Document{}, shopcrawl.Errorf(shopcrawl.ENOTFOUND, "no text content in %s", pageURL)
	}

	doc := shopcrawl.Document{
		SourceURL:   pageURL,
		Text:        text,
		IsProduct:   classifier.IsProductURL(pageURL),
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(text)),
	}
	if doc.IsProduct && resolved.ExtractProductSchema && c.Schemas != nil {
		if schema, ok := c.Schemas.ProductSchema(res.HTML); ok {
			doc.Schema = schema
		}
	}
	return doc, nil
}

// appendDocument adds a document to the result and maintains the aggregate
// counters. Documents are appended strictly in visit order.
func appendDocument(result *shopcrawl.CrawlResult, doc shopcrawl.Document) {
	result.Documents = append(result.Documents, doc)
	result.Stats.TotalPages++
	if doc.IsProduct {
		result.Stats.ProductPages++
	}
	if doc.Schema != nil {
		result.Stats.SchemaFound++
	}
}

// resolveOptions fills unset options from the site profile first and the
// package defaults second. Explicit caller values always win.
func resolveOptions(opts shopcrawl.CrawlOptions, profile *shopcrawl.CrawlProfile) shopcrawl.CrawlOptions {
	resolved := opts
	if profile != nil {
		if resolved.MaxDepth == 0 && profile.MaxDepth > 0 {
			resolved.MaxDepth = profile.MaxDepth
		}
		if resolved.MaxPages == 0 && profile.MaxPages > 0 {
			resolved.MaxPages = profile.MaxPages
		}
		if len(resolved.ProductURLPatterns) == 0 {
			resolved.ProductURLPatterns = profile.ProductURLPatterns
		}
		if profile.UseJSRendering {
			resolved.UseJSRendering = true
		}
	}
	if resolved.MaxDepth == 0 {
		resolved.MaxDepth = shopcrawl.DefaultMaxDepth
	}
	if resolved.MaxPages == 0 {
		resolved.MaxPages = shopcrawl.DefaultMaxPages
	}
	if resolved.WaitTime == 0 {
		resolved.WaitTime = shopcrawl.DefaultWaitTime
	}
	if resolved.UserAgent == "" {
		resolved.UserAgent = shopcrawl.DefaultUserAgent
	}
	return resolved
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
