package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var filter clipper.ItemFilter
	if c.Category != "" {
		category := clipper.Category(c.Category)
		if !category.Valid() {
			err := clipper.Errorf(clipper.EINVALID, "unknown category %q", c.Category)
			fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
			return err
		}
		filter.Category = &category
	}

	items, err := deps.Items.FindItems(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	exporter := deps.Exporter
	if exporter == nil {
		exporter = fs.NewExporter(filepath.Dir(dir), filepath.Base(dir))
	}

	for _, item := range items {
		if err := exporter.Save(deps.Ctx, item); err != nil {
			_ = exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error: export %s: %s\n", item.ID, clipper.ErrorMessage(err))
			return err
		}
	}

	if err := exporter.Commit(); err != nil {
		_ = exporter.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d items to %s\n", len(items), dir)
	return nil
}
