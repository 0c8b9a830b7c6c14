package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/clipper"
)

var _ clipper.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging of each decision.
type LoggingClassifier struct {
	next   clipper.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next clipper.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the category.
func (c *LoggingClassifier) Classify(rawURL string, doc clipper.Document) clipper.Category {
	begin := time.Now()
	category := c.next.Classify(rawURL, doc)
	c.logger.Debug("classify",
		"url", rawURL,
		"category", category,
		"duration", time.Since(begin),
	)
	return category
}
