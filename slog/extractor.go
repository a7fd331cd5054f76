// Package slog provides logging decorators for decant service interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/decantlabs/decant"
)

// Ensure LoggingExtractor implements decant.Extractor.
var _ decant.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   decant.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next decant.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html, pageURL string) (article *decant.Article, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"url", pageURL,
			"usable", err == nil && article != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
