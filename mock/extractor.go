package mock

import (
	"context"

	"github.com/fwojciec/clipper"
)

var (
	_ clipper.Extractor  = (*Extractor)(nil)
	_ clipper.Classifier = (*Classifier)(nil)
	_ clipper.Distiller  = (*Distiller)(nil)
)

// Extractor is a mock implementation of clipper.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, dc *clipper.DocumentContext) (*clipper.Record, error)
}

func (e *Extractor) Extract(ctx context.Context, dc *clipper.DocumentContext) (*clipper.Record, error) {
	return e.ExtractFn(ctx, dc)
}

// Classifier is a mock implementation of clipper.Classifier.
type Classifier struct {
	ClassifyFn func(rawURL string, doc clipper.Document) clipper.Category
}

func (c *Classifier) Classify(rawURL string, doc clipper.Document) clipper.Category {
	return c.ClassifyFn(rawURL, doc)
}

// Distiller is a mock implementation of clipper.Distiller.
type Distiller struct {
	DistillFn func(html string) (*clipper.Distilled, error)
}

func (d *Distiller) Distill(html string) (*clipper.Distilled, error) {
	return d.DistillFn(html)
}
