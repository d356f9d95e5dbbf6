package crawl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/shopcrawl"
)

var _ shopcrawl.Profiler = (*Profiler)(nil)

// ProbeTimeout bounds the profiling fetch. Profiling is best-effort and must
// never eat into the crawl's own time budget.
const ProbeTimeout = 5 * time.Second

// jsRequiredDomains are storefronts known to serve skeletal HTML without
// JavaScript. When the probe cannot reach the site, their presence in the
// seed URL still forces rendering.
var jsRequiredDomains = []string{"lancome", "sephora", "ulta", "macys", "nordstrom"}

// Profiler inspects a seed URL before crawling and recommends crawl
// parameters for the site. Profile never fails: a site that cannot be
// probed gets conservative defaults.
type Profiler struct {
	Fetcher  shopcrawl.Fetcher
	Detector shopcrawl.PlatformDetector
	Logger   *slog.Logger
}

// NewProfiler creates a Profiler using the given probe fetcher and platform
// detector. A nil logger discards log output.
func NewProfiler(fetcher shopcrawl.Fetcher, detector shopcrawl.PlatformDetector, logger *slog.Logger) *Profiler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Profiler{Fetcher: fetcher, Detector: detector, Logger: logger}
}

// Profile fetches the seed page once with a short timeout and derives crawl
// parameters from platform fingerprints in its HTML. A probe timeout falls
// back to heuristics over the URL string itself; any other failure yields
// the generic default profile.
func (p *Profiler) Profile(ctx context.Context, seedURL string) *shopcrawl.CrawlProfile {
	probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	res, err := p.Fetcher.Fetch(probeCtx, seedURL)
	if err != nil {
		if shopcrawl.ErrorCode(err) == shopcrawl.ETIMEOUT {
			p.Logger.Warn("site profiling timed out, using URL heuristics",
				"url", seedURL,
			)
			return profileFromURL(seedURL)
		}
		p.Logger.Warn("site profiling failed, using defaults",
			"url", seedURL,
			"err", err,
		)
		return genericProfile()
	}

	return p.profileFromHTML(res.HTML)
}

// profileFromHTML derives a profile from the probed page source.
func (p *Profiler) profileFromHTML(html string) *shopcrawl.CrawlProfile {
	profile := &shopcrawl.CrawlProfile{
		Platform: p.Detector.Detect(html),
		MaxDepth: shopcrawl.DefaultMaxDepth,
		MaxPages: shopcrawl.DefaultMaxPages,
	}

	switch profile.Platform {
	case shopcrawl.PlatformShopify:
		profile.ProductURLPatterns = []string{"/products/"}
		profile.MaxDepth = 3
	case shopcrawl.PlatformWooCommerce:
		profile.ProductURLPatterns = []string{"/product/"}
		profile.MaxDepth = 3
	case shopcrawl.PlatformMagento:
		profile.UseJSRendering = true
	case shopcrawl.PlatformBigCommerce:
		profile.ProductURLPatterns = []string{"/products/"}
	}

	if p.Detector.RequiresJS(html) {
		profile.UseJSRendering = true
	}

	if len(profile.ProductURLPatterns) == 0 {
		profile.ProductURLPatterns = p.Detector.ProductPatterns(html)
	}

	return profile
}

// profileFromURL derives a profile from the seed URL text alone. Used when
// the probe request times out.
func profileFromURL(seedURL string) *shopcrawl.CrawlProfile {
	profile := genericProfile()
	url := strings.ToLower(seedURL)

	switch {
	case strings.Contains(url, "shopify"):
		profile.Platform = shopcrawl.PlatformShopify
		profile.ProductURLPatterns = []string{"/products/"}
	case strings.Contains(url, "woocommerce"), strings.Contains(url, "wp-content"), strings.Contains(url, "/product/"):
		profile.Platform = shopcrawl.PlatformWooCommerce
		profile.ProductURLPatterns = []string{"/product/"}
	}

	for _, domain := range jsRequiredDomains {
		if strings.Contains(url, domain) {
			profile.UseJSRendering = true
			break
		}
	}

	return profile
}

// genericProfile is the conservative parameter set used when nothing is
// known about the site.
func genericProfile() *shopcrawl.CrawlProfile {
	return &shopcrawl.CrawlProfile{
		Platform: shopcrawl.PlatformUnknown,
		MaxDepth: 2,
		MaxPages: 10,
	}
}
