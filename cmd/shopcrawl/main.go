// Command shopcrawl crawls e-commerce sites and prints the consolidated
// text of each session, ready for downstream extraction.
package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shopcrawl"
	"github.com/fwojciec/shopcrawl/crawl"
	"github.com/fwojciec/shopcrawl/goquery"
	shophttp "github.com/fwojciec/shopcrawl/http"
	"github.com/fwojciec/shopcrawl/robots"
	"github.com/fwojciec/shopcrawl/rod"
	slogdec "github.com/fwojciec/shopcrawl/slog"
	"github.com/fwojciec/shopcrawl/trafilatura"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shopcrawl"),
		kong.Description("Crawl e-commerce sites and extract product-oriented text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := stdslog.LevelInfo
	if cli.Verbose {
		level = stdslog.LevelDebug
	}
	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: level}))

	userAgent := cli.UserAgent
	if userAgent == "" {
		userAgent = shopcrawl.DefaultUserAgent
	}

	httpFetcher := shophttp.NewFetcher(shophttp.WithUserAgent(userAgent))
	jsFetcher := rod.NewFetcher(
		rod.WithUserAgent(userAgent),
		rod.WithSettleDelay(cli.Wait),
	)
	defer jsFetcher.Close()

	probeFetcher := shophttp.NewFetcher(
		shophttp.WithTimeout(crawl.ProbeTimeout),
		shophttp.WithUserAgent(userAgent),
	)
	profiler := slogdec.NewLoggingProfiler(
		crawl.NewProfiler(probeFetcher, goquery.NewDetector(), logger),
		logger,
	)

	robotsAgent, err := robots.NewAgent(nil)
	if err != nil {
		return fmt.Errorf("failed to create robots agent: %w", err)
	}

	crawler := &crawl.Crawler{
		HTTPFetcher:       slogdec.NewLoggingFetcher(httpFetcher, logger),
		JSFetcher:         slogdec.NewLoggingFetcher(jsFetcher, logger),
		Extractor:         goquery.NewTextExtractor(),
		FallbackExtractor: trafilatura.NewExtractor(),
		Schemas:           goquery.NewSchemaExtractor(),
		NewClassifier: func(seedURL string, productPatterns, excludedPatterns []string) (shopcrawl.URLClassifier, error) {
			return goquery.NewClassifier(seedURL, productPatterns, excludedPatterns)
		},
		Profiler: profiler,
		Sitemaps: shophttp.NewSitemapService(nil),
		Robots:   robotsAgent,
		Metrics:  crawl.NewMetrics(),
		Logger:   logger,
	}

	seeds := cli.Seeds()
	if len(seeds) == 0 {
		return fmt.Errorf("no seed URLs provided")
	}
	opts := cli.Options()

	// Seeds run as independent sessions; one failing site must not cancel
	// the others.
	results := make([]*shopcrawl.CrawlResult, len(seeds))
	errs := make([]error, len(seeds))
	var g errgroup.Group
	for i, seed := range seeds {
		g.Go(func() error {
			results[i], errs[i] = crawler.Crawl(ctx, seed, opts)
			return nil
		})
	}
	_ = g.Wait()

	failures := 0
	for i, seed := range seeds {
		if errs[i] != nil {
			failures++
			fmt.Fprintf(stderr, "crawl of %s failed: %s\n", seed, shopcrawl.ErrorMessage(errs[i]))
			continue
		}
		fmt.Fprintln(stdout, results[i].ConsolidatedText())
	}
	if failures == len(seeds) {
		return fmt.Errorf("all %d crawl sessions failed", len(seeds))
	}
	return nil
}
