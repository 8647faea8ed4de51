// Package slog provides logging decorators around core interfaces. The
// core stays free of log formatting; callers inject a *slog.Logger here.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/wzkariampuzha/geardocs"
)

// Ensure LoggingFetcher implements geardocs.Fetcher.
var _ geardocs.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-URL logging.
type LoggingFetcher struct {
	next   geardocs.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next geardocs.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchAll delegates to the wrapped fetcher and logs each URL's outcome.
func (f *LoggingFetcher) FetchAll(ctx context.Context, urls []string) []geardocs.FetchResult {
	begin := time.Now()
	results := f.next.FetchAll(ctx, urls)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			f.logger.Warn("fetch failed",
				"url", res.URL,
				"err", res.Err,
			)
			continue
		}
		f.logger.Debug("fetch",
			"url", res.URL,
			"bytes", len(res.Body),
		)
	}

	f.logger.Info("fetch pass",
		"urls", len(urls),
		"failed", failed,
		"duration", time.Since(begin),
	)
	return results
}
