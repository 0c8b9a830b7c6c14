package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/clipper"
	main "github.com/fwojciec/clipper/cmd/clipper"
	"github.com/fwojciec/clipper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	stored := []*clipper.Item{
		{ID: "a", Title: "A", Category: clipper.CategoryGeneric},
		{ID: "b", Title: "B", Category: clipper.CategoryGeneric},
	}
	items := &mock.ItemService{
		FindItemsFn: func(_ context.Context, _ clipper.ItemFilter) ([]*clipper.Item, error) {
			return stored, nil
		},
	}

	t.Run("saves every item and commits", func(t *testing.T) {
		t.Parallel()

		var saved []string
		var committed bool
		exporter := &mock.ItemExporter{
			SaveFn: func(_ context.Context, item *clipper.Item) error {
				saved = append(saved, item.ID)
				return nil
			},
			CommitFn: func() error {
				committed = true
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Items:    items,
			Exporter: exporter,
		}

		err := (&main.ExportCmd{Dir: "/tmp/out"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, saved)
		assert.True(t, committed)
		assert.Contains(t, stdout.String(), "Exported 2 items to /tmp/out")
	})

	t.Run("aborts when an item fails", func(t *testing.T) {
		t.Parallel()

		var aborted bool
		exporter := &mock.ItemExporter{
			SaveFn: func(_ context.Context, item *clipper.Item) error {
				if item.ID == "b" {
					return errors.New("disk full")
				}
				return nil
			},
			CommitFn: func() error {
				t.Fatal("commit should not be called")
				return nil
			},
			AbortFn: func() error {
				aborted = true
				return nil
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Items:    items,
			Exporter: exporter,
		}

		err := (&main.ExportCmd{Dir: "/tmp/out"}).Run(deps)

		require.Error(t, err)
		assert.True(t, aborted)
		assert.Contains(t, stderr.String(), "error: export b: disk full")
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Items:  items,
		}

		err := (&main.ExportCmd{Dir: "/tmp/out", Category: "podcast"}).Run(deps)

		assert.Equal(t, clipper.EINVALID, clipper.ErrorCode(err))
	})
}
