package slog

import (
	"log/slog"
	"time"

	"github.com/openkassel/mensafeed"
)

// Ensure LoggingBuilder implements mensafeed.FeedBuilder at compile time.
var _ mensafeed.FeedBuilder = (*LoggingBuilder)(nil)

// LoggingBuilder wraps a FeedBuilder with structured logging.
type LoggingBuilder struct {
	next   mensafeed.FeedBuilder
	logger *slog.Logger
}

// NewLoggingBuilder creates a new LoggingBuilder.
func NewLoggingBuilder(next mensafeed.FeedBuilder, logger *slog.Logger) *LoggingBuilder {
	return &LoggingBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs day and meal counts.
func (b *LoggingBuilder) Build(canteen string, days []*mensafeed.Day) (string, error) {
	begin := time.Now()
	doc, err := b.next.Build(canteen, days)
	if err != nil {
		b.logger.Error("feed build",
			"canteen", canteen,
			"err", err,
		)
		return "", err
	}

	meals := 0
	for _, d := range days {
		meals += len(d.Meals)
	}
	b.logger.Info("feed build",
		"canteen", canteen,
		"days", len(days),
		"dated_days", mensafeed.CountDated(days),
		"meals", meals,
		"bytes", len(doc),
		"duration", time.Since(begin),
	)
	return doc, nil
}
