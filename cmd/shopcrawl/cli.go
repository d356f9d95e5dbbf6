package main

import (
	"strings"
	"time"

	"github.com/fwojciec/shopcrawl"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs string `arg:"" name:"urls" required:"" help:"Seed URL, or a comma-separated list crawled as independent sessions"`

	MaxDepth   int           `help:"Maximum link-following depth (0 = site default)"`
	MaxPages   int           `help:"Maximum pages per session (0 = site default)"`
	SinglePage bool          `short:"s" help:"Fetch only the seed URL, no crawling"`
	Render     bool          `short:"j" help:"Render the seed page in a headless browser (one page, no crawling)"`
	Wait       time.Duration `default:"1s" help:"Delay between page fetches"`
	Timeout    time.Duration `default:"120s" help:"Wall-clock budget per session"`

	ProductPattern []string `help:"Product URL regexp (repeatable); overrides platform-inferred patterns"`
	ExcludePattern []string `help:"Excluded URL regexp (repeatable); replaces the built-in exclusions"`

	NoSchema      bool   `help:"Skip schema.org Product extraction"`
	Robots        bool   `help:"Respect robots.txt during crawling"`
	Sitemap       bool   `help:"Pre-seed the crawl from the site's sitemap"`
	SkipProfiling bool   `help:"Skip the site-profiling probe"`
	UserAgent     string `help:"Override the User-Agent presented to the site"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// Seeds returns the individual seed URLs from the comma-separated argument.
func (c *CLI) Seeds() []string {
	var seeds []string
	for _, s := range strings.Split(c.URLs, ",") {
		if s = strings.TrimSpace(s); s != "" {
			seeds = append(seeds, s)
		}
	}
	return seeds
}

// Options assembles the crawl options for one session.
func (c *CLI) Options() shopcrawl.CrawlOptions {
	return shopcrawl.CrawlOptions{
		MaxDepth:             c.MaxDepth,
		MaxPages:             c.MaxPages,
		UseJSRendering:       c.Render,
		SinglePageOnly:       c.SinglePage,
		FollowLinks:          true,
		ProductURLPatterns:   c.ProductPattern,
		ExcludedURLPatterns:  c.ExcludePattern,
		WaitTime:             c.Wait,
		ExtractProductSchema: !c.NoSchema,
		RespectRobots:        c.Robots,
		SeedFromSitemap:      c.Sitemap,
		UserAgent:            c.UserAgent,
		Timeout:              c.Timeout,
		SkipProfiling:        c.SkipProfiling,
	}
}
