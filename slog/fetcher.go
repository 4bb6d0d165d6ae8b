// Package slog provides logging decorators for the feed pipeline.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/openkassel/mensafeed"
)

// Ensure LoggingFetcher implements mensafeed.Fetcher at compile time.
var _ mensafeed.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging. Besides timing,
// it records a digest of the fetched markup so consecutive runs against
// an unchanged page are recognizable in the logs.
type LoggingFetcher struct {
	next   mensafeed.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mensafeed.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("page fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}

	f.logger.Info("page fetch",
		"url", url,
		"bytes", len(html),
		"digest", xxhash.Sum64String(html),
		"duration", time.Since(begin),
	)
	return html, nil
}
