package extract_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("uses first qualifying container", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("Main content sentence. ", 12)
		html := `<html><head><title>Page</title></head><body>
<nav>Menu</nav>
<main><header>Site header</header><p>` + body + `</p><aside>Related</aside></main>
<footer>Copyright</footer>
</body></html>`
		x := extract.NewGenericExtractor(clipper.DefaultSelectors().Generic)

		rec, err := x.Extract(context.Background(), &clipper.DocumentContext{Document: parse(t, html)})

		require.NoError(t, err)
		assert.Equal(t, clipper.CategoryGeneric, rec.Category)
		assert.Equal(t, "Page", rec.Title)
		assert.Equal(t, strings.TrimSpace(body), rec.Body)
		assert.Empty(t, rec.Metadata)
	})

	t.Run("falls back to pruned body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><header>Top</header><div class="content">Short</div><p>Loose text</p><div class="ad">Buy!</div><footer>Bottom</footer></body></html>`
		x := extract.NewGenericExtractor(clipper.DefaultSelectors().Generic)

		rec, err := x.Extract(context.Background(), &clipper.DocumentContext{Document: parse(t, html)})

		require.NoError(t, err)
		assert.Equal(t, "Short\n\nLoose text", rec.Body)
	})

	t.Run("truncates long output with marker", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>` + strings.Repeat("x", 300) + `</p></main></body></html>`
		sel := clipper.DefaultSelectors().Generic
		sel.MaxLength = 250
		x := extract.NewGenericExtractor(sel)

		rec, err := x.Extract(context.Background(), &clipper.DocumentContext{Document: parse(t, html)})

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(rec.Body, clipper.TruncationMarker))
		assert.Equal(t, 250+utf8.RuneCountInString(clipper.TruncationMarker), utf8.RuneCountInString(rec.Body))
	})

	t.Run("defaults the length limit", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>` + strings.Repeat("y", 6000) + `</p></main></body></html>`
		x := extract.NewGenericExtractor(clipper.GenericSelectors{
			Containers: []clipper.FieldCandidate{{Selector: "main", MinLength: 200}},
		})

		rec, err := x.Extract(context.Background(), &clipper.DocumentContext{Document: parse(t, html)})

		require.NoError(t, err)
		assert.Equal(t, clipper.DefaultGenericMaxLength+utf8.RuneCountInString(clipper.TruncationMarker), utf8.RuneCountInString(rec.Body))
	})
}
