package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopcrawl"
)

// Ensure LoggingProfiler implements shopcrawl.Profiler.
var _ shopcrawl.Profiler = (*LoggingProfiler)(nil)

// LoggingProfiler wraps a Profiler with debug logging.
type LoggingProfiler struct {
	next   shopcrawl.Profiler
	logger *slog.Logger
}

// NewLoggingProfiler creates a new LoggingProfiler.
func NewLoggingProfiler(next shopcrawl.Profiler, logger *slog.Logger) *LoggingProfiler {
	return &LoggingProfiler{next: next, logger: logger}
}

// Profile delegates to the wrapped profiler and logs the outcome.
func (p *LoggingProfiler) Profile(ctx context.Context, seedURL string) (profile *shopcrawl.CrawlProfile) {
	defer func(begin time.Time) {
		p.logger.Info("site profiled",
			"url", seedURL,
			"platform", profile.Platform,
			"max_depth", profile.MaxDepth,
			"max_pages", profile.MaxPages,
			"js", profile.UseJSRendering,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Profile(ctx, seedURL)
}
