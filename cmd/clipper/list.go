package main

import (
	"fmt"

	"github.com/fwojciec/clipper"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := clipper.ItemFilter{Limit: c.Limit}
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

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No items found. Use 'clipper extract --save' to add one.")
		return nil
	}

	for _, item := range items {
		title := item.Title
		if title == "" {
			title = item.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %s  %s\n", item.ID, item.Category, item.CreatedAt.Format("2006-01-02"), title)
	}

	return nil
}
