// Package slog provides logging decorators for shopcrawl interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopcrawl"
)

// Ensure LoggingFetcher implements shopcrawl.Fetcher.
var _ shopcrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   shopcrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next shopcrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *shopcrawl.FetchResult, err error) {
	defer func(begin time.Time) {
		var status, bytes int
		if res != nil {
			status = res.StatusCode
			bytes = len(res.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
