package main

import (
	"fmt"

	"github.com/fwojciec/clipper"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	item, err := deps.Items.FindItemByID(deps.Ctx, c.ID)
	if err != nil {
		if clipper.ErrorCode(err) == clipper.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: item %q not found. Use 'clipper list' to see saved items.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	if c.Raw {
		fmt.Fprintln(deps.Stdout, item.Body)
		return nil
	}

	fmt.Fprintln(deps.Stdout, clipper.FormatItem(item))
	return nil
}
