// Package readability implements clipper.Distiller with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/clipper"
	"github.com/go-shiori/go-readability"
)

var _ clipper.Distiller = (*Distiller)(nil)

// Distiller wraps go-readability to recover the main text of an article.
type Distiller struct{}

// NewDistiller creates a new Distiller.
func NewDistiller() *Distiller {
	return &Distiller{}
}

// Distill extracts the readable text and byline from rawHTML.
func (d *Distiller) Distill(rawHTML string) (*clipper.Distilled, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clipper.Errorf(clipper.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	out := &clipper.Distilled{
		Title:  article.Title,
		Text:   strings.TrimSpace(article.TextContent),
		Author: article.Byline,
		Image:  article.Image,
	}
	if article.PublishedTime != nil {
		out.Date = article.PublishedTime.Format("2006-01-02")
	}
	return out, nil
}
