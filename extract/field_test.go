package extract_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/stretchr/testify/assert"
)

func TestExtractField(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><p>nothing here</p></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{
			clipper.Text("#a"),
			clipper.Attr("#b", "href"),
			{Selector: "p", Accessor: clipper.Accessor{Pattern: `\d+`}},
		})

		assert.Equal(t, "", got)
	})

	t.Run("skips an absent first candidate", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><span id="b">$19.99</span></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{clipper.Text("#a"), clipper.Text("#b")})

		assert.Equal(t, "$19.99", got)
	})

	t.Run("first acceptable candidate wins", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><h1>Heading</h1><div class="title">Title</div></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{clipper.Text(".title"), clipper.Text("h1")})

		assert.Equal(t, "Title", got)
	})

	t.Run("empty matches are misses", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div id="a">   </div><img id="i"><p id="b">value</p></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{
			clipper.Text("#a"),
			clipper.Attr("#i", "src"),
			clipper.Text("#b"),
		})

		assert.Equal(t, "value", got)
	})

	t.Run("enforces minimum length", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div id="teaser">short</div><div id="full">a much longer body</div></body></html>`)
		candidates := []clipper.FieldCandidate{
			{Selector: "#teaser", MinLength: 10},
			{Selector: "#full", MinLength: 10},
		}

		assert.Equal(t, "a much longer body", extract.ExtractField(doc, candidates))
	})

	t.Run("relaxed extraction ignores minimum length", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div id="teaser">short</div></body></html>`)
		candidates := []clipper.FieldCandidate{{Selector: "#teaser", MinLength: 10}}

		assert.Equal(t, "", extract.ExtractField(doc, candidates))
		assert.Equal(t, "short", extract.ExtractFieldRelaxed(doc, candidates))
	})

	t.Run("rejects values matching reject pattern", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><article><img src="/img/avatar.png"></article><div class="hero"><img src="/img/hero.png"></div></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{
			{Selector: "article img", Accessor: clipper.Accessor{Attr: "src"}, Reject: "(?i)avatar"},
			{Selector: ".hero img", Accessor: clipper.Accessor{Attr: "src"}, Reject: "(?i)avatar"},
		})

		assert.Equal(t, "/img/hero.png", got)
	})

	t.Run("pattern returns first capture group", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><span id="r" aria-label="4.5 out of 5 stars">★★★★</span></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{
			{Selector: "#r", Accessor: clipper.Accessor{Pattern: `(\d+\.?\d*)\s*(?:out of|stars?)`}},
			{Selector: "#r", Accessor: clipper.Accessor{Attr: "aria-label", Pattern: `(\d+\.?\d*)\s*(?:out of|stars?)`}},
		})

		assert.Equal(t, "4.5", got)
	})

	t.Run("pattern without groups returns whole match", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><p id="p">Order 12345 shipped</p></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{
			{Selector: "#p", Accessor: clipper.Accessor{Pattern: `\d+`}},
		})

		assert.Equal(t, "12345", got)
	})

	t.Run("prunes before measuring", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><article><nav>Home About Contact</nav><p>Body</p></article></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{
			{Selector: "article", Accessor: clipper.Accessor{Prune: []string{"nav"}}, MinLength: 5},
		})

		assert.Equal(t, "", got)
	})

	t.Run("invalid selectors and patterns are misses", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><p id="ok">fine</p></body></html>`)

		got := extract.ExtractField(doc, []clipper.FieldCandidate{
			clipper.Text("[[["),
			{Selector: "#ok", Accessor: clipper.Accessor{Pattern: "(unclosed"}},
			{Selector: "#ok", Reject: "(unclosed"},
			{Selector: ""},
			clipper.Text("#ok"),
		})

		assert.Equal(t, "fine", got)
	})

	t.Run("nil document", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", extract.ExtractField(nil, []clipper.FieldCandidate{clipper.Text("p")}))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("long text ends with marker", func(t *testing.T) {
		t.Parallel()

		got := extract.Truncate(strings.Repeat("é", 12), 10)

		assert.True(t, strings.HasSuffix(got, clipper.TruncationMarker))
		assert.Equal(t, 10+utf8.RuneCountInString(clipper.TruncationMarker), utf8.RuneCountInString(got))
	})

	t.Run("text at the limit is unchanged", func(t *testing.T) {
		t.Parallel()

		s := strings.Repeat("a", 10)

		assert.Equal(t, s, extract.Truncate(s, 10))
	})

	t.Run("non-positive limit disables truncation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", extract.Truncate("abc", 0))
	})
}
