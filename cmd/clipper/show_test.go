package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/clipper"
	main "github.com/fwojciec/clipper/cmd/clipper"
	"github.com/fwojciec/clipper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	recipe := &clipper.Item{
		ID:        "item-1",
		Title:     "Pancakes",
		SourceURL: "https://example.com/pancakes",
		Category:  clipper.CategoryArticle,
		Metadata:  map[string]string{clipper.MetaAuthor: "Ann"},
		Body:      "Ingredients\n- 2 cups flour\n- 1 egg\nInstructions\n1. Mix.\n2. Fry.",
	}
	items := &mock.ItemService{
		FindItemByIDFn: func(_ context.Context, id string) (*clipper.Item, error) {
			if id == recipe.ID {
				return recipe, nil
			}
			return nil, clipper.Errorf(clipper.ENOTFOUND, "item not found")
		},
	}

	t.Run("shows re-parsed item", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Items: items}

		err := (&main.ShowCmd{ID: "item-1"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, clipper.FormatItem(recipe)+"\n", stdout.String())
		assert.Contains(t, stdout.String(), "## Ingredients\n- 2 cups flour\n- 1 egg")
	})

	t.Run("raw prints stored body", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Items: items}

		err := (&main.ShowCmd{ID: "item-1", Raw: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, recipe.Body+"\n", stdout.String())
	})

	t.Run("reports missing item", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Items: items}

		err := (&main.ShowCmd{ID: "nope"}).Run(deps)

		assert.Equal(t, clipper.ENOTFOUND, clipper.ErrorCode(err))
		assert.Contains(t, stderr.String(), `item "nope" not found`)
	})
}
