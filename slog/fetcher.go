// Package slog provides log/slog decorators for mdtools services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdtools"
)

// Ensure LoggingFetcher implements mdtools.Fetcher.
var _ mdtools.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   mdtools.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mdtools.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *mdtools.FetchResult, err error) {
	defer func(begin time.Time) {
		var n int
		var contentType string
		if res != nil {
			n, contentType = len(res.Body), res.ContentType
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"content_type", contentType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
