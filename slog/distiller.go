package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/clipper"
)

var _ clipper.Distiller = (*LoggingDistiller)(nil)

// LoggingDistiller wraps a Distiller with debug logging.
type LoggingDistiller struct {
	next   clipper.Distiller
	logger *slog.Logger
}

// NewLoggingDistiller creates a new LoggingDistiller.
func NewLoggingDistiller(next clipper.Distiller, logger *slog.Logger) *LoggingDistiller {
	return &LoggingDistiller{next: next, logger: logger}
}

// Distill delegates to the wrapped distiller and logs the text length.
func (d *LoggingDistiller) Distill(html string) (out *clipper.Distilled, err error) {
	defer func(begin time.Time) {
		var n int
		if out != nil {
			n = len(out.Text)
		}
		d.logger.Debug("distill",
			"bytes", len(html),
			"text", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Distill(html)
}
