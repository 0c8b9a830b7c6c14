package extract

import (
	"context"
	"fmt"

	"github.com/fwojciec/clipper"
)

var _ clipper.Extractor = (*CommerceExtractor)(nil)

// CommerceExtractor reads product listings.
type CommerceExtractor struct {
	Selectors clipper.CommerceSelectors
}

// NewCommerceExtractor creates a CommerceExtractor using s.
func NewCommerceExtractor(s clipper.CommerceSelectors) *CommerceExtractor {
	return &CommerceExtractor{Selectors: s}
}

// Extract implements clipper.Extractor.
func (x *CommerceExtractor) Extract(_ context.Context, dc *clipper.DocumentContext) (*clipper.Record, error) {
	doc := dc.Document
	s := x.Selectors

	price := ExtractField(doc, s.Price)
	rating := ExtractField(doc, s.Rating)
	description := ExtractField(doc, s.Description)
	if description == "" {
		description = ExtractFieldRelaxed(doc, s.Description)
	}

	rec := clipper.NewRecord(clipper.CategoryCommerce)
	rec.Title = firstNonEmpty(ExtractField(doc, s.Title), doc.Title())
	rec.Body = fmt.Sprintf("Price: %s\nRating: %s\n\n%s", orNA(price), orNA(rating), description)
	rec.Metadata[clipper.MetaPrice] = price
	rec.Metadata[clipper.MetaRating] = rating
	rec.Metadata[clipper.MetaCatalogID] = clipper.CatalogID(dc.URL)
	rec.Metadata[clipper.MetaImageURL] = ExtractField(doc, s.Image)
	return rec, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
