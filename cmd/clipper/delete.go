package main

import (
	"fmt"

	"github.com/fwojciec/clipper"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return clipper.Errorf(clipper.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Items.DeleteItem(deps.Ctx, c.ID); err != nil {
		if clipper.ErrorCode(err) == clipper.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: item %q not found. Use 'clipper list' to see saved items.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted item %s\n", c.ID)
	return nil
}
