// Package slog provides log/slog decorators for clipper services.
package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/clipper"
)

var _ clipper.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of each extraction.
type LoggingExtractor struct {
	next   clipper.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next clipper.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (x *LoggingExtractor) Extract(ctx context.Context, dc *clipper.DocumentContext) (rec *clipper.Record, err error) {
	defer func(begin time.Time) {
		var category clipper.Category
		var title string
		var bodyLen int
		if rec != nil {
			category, title, bodyLen = rec.Category, rec.Title, utf8.RuneCountInString(rec.Body)
		}
		url := ""
		if dc != nil {
			url = dc.URL
		}
		x.logger.Info("extract",
			"url", url,
			"category", category,
			"title", title,
			"body", bodyLen,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return x.next.Extract(ctx, dc)
}
