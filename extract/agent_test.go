package extract_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/fwojciec/clipper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent_Handle(t *testing.T) {
	t.Parallel()

	const page = `<html><head><title>Broken Page</title></head><body><p>Some visible text.</p></body></html>`

	t.Run("returns the extracted record", func(t *testing.T) {
		t.Parallel()

		a := extract.NewAgent(staticExtractor(&clipper.Record{Category: clipper.CategoryArticle, Title: "Post"}))

		resp := a.Handle(context.Background(), "https://example.com/post", parse(t, page), nil)

		require.NotNil(t, resp)
		assert.Empty(t, resp.Error)
		assert.Equal(t, "https://example.com/post", resp.URL)
		assert.Equal(t, "Post", resp.Title)
		assert.Contains(t, resp.Metadata, clipper.MetaAuthor)
	})

	t.Run("degrades on extractor error", func(t *testing.T) {
		t.Parallel()

		a := extract.NewAgent(&mock.Extractor{
			ExtractFn: func(context.Context, *clipper.DocumentContext) (*clipper.Record, error) {
				return nil, clipper.Errorf(clipper.EINTERNAL, "selector table corrupt")
			},
		})

		resp := a.Handle(context.Background(), "https://example.com", parse(t, page), nil)

		assert.Equal(t, "selector table corrupt", resp.Error)
		assert.Equal(t, clipper.CategoryGeneric, resp.Category)
		assert.Equal(t, "Broken Page", resp.Title)
		assert.Equal(t, "Some visible text.", resp.Body)
	})

	t.Run("degrades on panic", func(t *testing.T) {
		t.Parallel()

		a := extract.NewAgent(&mock.Extractor{
			ExtractFn: func(context.Context, *clipper.DocumentContext) (*clipper.Record, error) {
				panic("unexpected shape")
			},
		})

		resp := a.Handle(context.Background(), "https://example.com", parse(t, page), nil)

		assert.Equal(t, "extraction panicked: unexpected shape", resp.Error)
		assert.Equal(t, "Broken Page", resp.Title)
	})

	t.Run("degrades on missing record", func(t *testing.T) {
		t.Parallel()

		a := extract.NewAgent(staticExtractor(nil))

		resp := a.Handle(context.Background(), "https://example.com", parse(t, page), nil)

		assert.Equal(t, "no record produced", resp.Error)
	})

	t.Run("degraded body is a bounded prefix", func(t *testing.T) {
		t.Parallel()

		a := extract.NewAgent(&mock.Extractor{
			ExtractFn: func(context.Context, *clipper.DocumentContext) (*clipper.Record, error) {
				return nil, errors.New("boom")
			},
		})
		long := `<html><body><p>` + strings.Repeat("é", 3000) + `</p></body></html>`

		resp := a.Handle(context.Background(), "https://example.com", parse(t, long), nil)

		assert.Equal(t, "boom", resp.Error)
		assert.Equal(t, clipper.DefaultDegradedBodyLength, utf8.RuneCountInString(resp.Body))
	})

	t.Run("survives a document that panics", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			TitleFn: func() string { panic("detached") },
			FindFn:  func(string) clipper.Node { panic("detached") },
		}
		a := extract.NewAgent(&mock.Extractor{
			ExtractFn: func(context.Context, *clipper.DocumentContext) (*clipper.Record, error) {
				return nil, errors.New("boom")
			},
		})

		resp := a.Handle(context.Background(), "https://example.com", doc, nil)

		assert.Equal(t, "boom", resp.Error)
		assert.Empty(t, resp.Title)
		assert.Empty(t, resp.Body)
	})
}

func TestAgent_Selection(t *testing.T) {
	t.Parallel()

	var seen string
	a := extract.NewAgent(&mock.Extractor{
		ExtractFn: func(_ context.Context, dc *clipper.DocumentContext) (*clipper.Record, error) {
			seen = dc.Selection
			return clipper.NewRecord(clipper.CategoryGeneric), nil
		},
	})

	a.CaptureSelection("  highlighted words \n")
	assert.Equal(t, "highlighted words", a.Selection())

	a.Handle(context.Background(), "https://example.com", &mock.Document{}, nil)

	assert.Equal(t, "highlighted words", seen)
}
