package clipper_test

import (
	"testing"

	"github.com/fwojciec/clipper"
	"github.com/stretchr/testify/assert"
)

func TestFormatItem(t *testing.T) {
	t.Parallel()

	t.Run("task list shows progress", func(t *testing.T) {
		t.Parallel()

		item := &clipper.Item{
			Title:    "Todo List",
			Category: clipper.CategoryText,
			Body:     "- [ ] a\n- [x] b",
		}

		expected := "# Todo List\nCategory: text\n\nTasks (1/2 done)\n- [ ] a\n- [x] b"
		assert.Equal(t, expected, clipper.FormatItem(item))
	})

	t.Run("article shows metadata and body", func(t *testing.T) {
		t.Parallel()

		item := &clipper.Item{
			Title:     "Post",
			SourceURL: "https://ex.com/p",
			Category:  clipper.CategoryArticle,
			Metadata:  map[string]string{"author": "Ann", "publishedDate": "", "imageUrl": ""},
			Body:      "Hello.",
		}

		expected := "# Post\nSource: https://ex.com/p\nCategory: article\nauthor: Ann\n\nHello."
		assert.Equal(t, expected, clipper.FormatItem(item))
	})

	t.Run("recipe body gets sections", func(t *testing.T) {
		t.Parallel()

		item := &clipper.Item{
			Title:    "Pancakes",
			Category: clipper.CategoryGeneric,
			Body:     "Ingredients\n- 2 cups flour\nInstructions\n1. Mix well.",
		}

		expected := "# Pancakes\nCategory: generic\n\n## Ingredients\n- 2 cups flour\n\n## Instructions\n1. Mix well."
		assert.Equal(t, expected, clipper.FormatItem(item))
	})

	t.Run("falls back to source url for title", func(t *testing.T) {
		t.Parallel()

		item := &clipper.Item{SourceURL: "https://ex.com", Category: clipper.CategoryGeneric, Body: "x"}

		assert.Equal(t, "# https://ex.com\nCategory: generic\n\nx", clipper.FormatItem(item))
	})
}
