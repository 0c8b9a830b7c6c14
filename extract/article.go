package extract

import (
	"context"
	"strings"

	"github.com/fwojciec/clipper"
)

var _ clipper.Extractor = (*ArticleExtractor)(nil)

// ArticleExtractor reads articles and blog posts.
type ArticleExtractor struct {
	Selectors clipper.ArticleSelectors

	// Distiller, when set, supplies the body for pages whose markup none of
	// the body candidates match. It also fills author, date and image when
	// the selector chains found none.
	Distiller clipper.Distiller
}

// NewArticleExtractor creates an ArticleExtractor using s. distiller may be nil.
func NewArticleExtractor(s clipper.ArticleSelectors, distiller clipper.Distiller) *ArticleExtractor {
	return &ArticleExtractor{Selectors: s, Distiller: distiller}
}

// Extract implements clipper.Extractor.
func (x *ArticleExtractor) Extract(_ context.Context, dc *clipper.DocumentContext) (*clipper.Record, error) {
	doc := dc.Document
	s := x.Selectors

	title := ExtractField(doc, s.Title)
	author := ExtractField(doc, s.Author)
	date := ExtractField(doc, s.Date)
	image := ExtractField(doc, s.Image)
	body := ExtractField(doc, s.Body)

	if body == "" && x.Distiller != nil {
		// A failed distillation leaves the body to the relaxed chain below.
		if d, err := x.Distiller.Distill(doc.HTML()); err == nil && d != nil {
			body = strings.TrimSpace(d.Text)
			title = firstNonEmpty(title, strings.TrimSpace(d.Title))
			author = firstNonEmpty(author, strings.TrimSpace(d.Author))
			date = firstNonEmpty(date, strings.TrimSpace(d.Date))
			image = firstNonEmpty(image, strings.TrimSpace(d.Image))
		}
	}
	if body == "" {
		body = ExtractFieldRelaxed(doc, s.Body)
	}

	rec := clipper.NewRecord(clipper.CategoryArticle)
	rec.Title = firstNonEmpty(title, doc.Title())
	rec.Body = body
	rec.Metadata[clipper.MetaAuthor] = author
	rec.Metadata[clipper.MetaPublishedDate] = date
	rec.Metadata[clipper.MetaImageURL] = image
	return rec, nil
}
