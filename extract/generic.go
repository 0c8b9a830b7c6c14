package extract

import (
	"context"

	"github.com/fwojciec/clipper"
)

var _ clipper.Extractor = (*GenericExtractor)(nil)

// GenericExtractor reads the main text of pages no other extractor claims.
type GenericExtractor struct {
	Selectors clipper.GenericSelectors
}

// NewGenericExtractor creates a GenericExtractor using s. A non-positive
// MaxLength falls back to clipper.DefaultGenericMaxLength.
func NewGenericExtractor(s clipper.GenericSelectors) *GenericExtractor {
	if s.MaxLength <= 0 {
		s.MaxLength = clipper.DefaultGenericMaxLength
	}
	return &GenericExtractor{Selectors: s}
}

// Extract implements clipper.Extractor.
//
// The first container long enough wins. Without one the whole body, pruned
// of page chrome, is used. Output longer than MaxLength is cut and ends with
// clipper.TruncationMarker.
func (x *GenericExtractor) Extract(_ context.Context, dc *clipper.DocumentContext) (*clipper.Record, error) {
	doc := dc.Document
	s := x.Selectors

	body := ExtractField(doc, s.Containers)
	if body == "" {
		if n := doc.Find("body"); n != nil {
			body = n.PrunedText(s.Prune...)
		}
	}
	if body == "" {
		body = ExtractFieldRelaxed(doc, s.Containers)
	}

	rec := clipper.NewRecord(clipper.CategoryGeneric)
	rec.Title = doc.Title()
	rec.Body = Truncate(body, s.MaxLength)
	return rec, nil
}
