// Package trafilatura implements clipper.Distiller with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/clipper"
	"github.com/markusmobius/go-trafilatura"
)

var _ clipper.Distiller = (*Distiller)(nil)

// Distiller wraps go-trafilatura to recover the main text of an article.
type Distiller struct{}

// NewDistiller creates a new Distiller.
func NewDistiller() *Distiller {
	return &Distiller{}
}

// Distill extracts the main content and article metadata from rawHTML.
func (d *Distiller) Distill(rawHTML string) (*clipper.Distilled, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clipper.Errorf(clipper.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}

	out := &clipper.Distilled{
		Title:  result.Metadata.Title,
		Text:   strings.TrimSpace(result.ContentText),
		Author: result.Metadata.Author,
		Image:  result.Metadata.Image,
	}
	if !result.Metadata.Date.IsZero() {
		out.Date = result.Metadata.Date.Format("2006-01-02")
	}
	return out, nil
}
