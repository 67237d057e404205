package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gribskov/tree/pkg/errors"
	"github.com/gribskov/tree/pkg/newick"
	"github.com/gribskov/tree/pkg/tree"
)

// reorderCommand creates the reorder command for sorting children by subtree size.
func (c *CLI) reorderCommand() *cobra.Command {
	var (
		output    string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "reorder [file]",
		Short: "Sort every node's children by subtree size",
		Long: `Sort every node's children by subtree size.

With --direction left (the default), larger subtrees come first, producing a
ladder that leans left when drawn. With --direction right, larger subtrees
come last. Ties keep their original relative order.

Examples:
  newick reorder tree.nwk                  # Largest clades first
  newick reorder tree.nwk -d right         # Largest clades last
  newick reorder tree.nwk -o sorted.nwk    # Write result to a file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReorder(cmd.Context(), args[0], output, direction)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&direction, "direction", "d", c.Config.Direction, "sort direction: left (largest first), right (largest last)")

	return cmd
}

// runReorder parses the input, sorts children recursively, and re-serializes.
func (c *CLI) runReorder(ctx context.Context, input, output, direction string) error {
	logger := loggerFromContext(ctx)

	dir, err := tree.ParseDirection(direction)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDirection, err, "direction %q", direction)
	}

	data, err := readInput(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}

	root, err := newick.ParseBytes(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidNewick, err, "parse %s", input)
	}

	prog := newProgress(logger)
	root.SortBySize(dir)
	prog.done(fmt.Sprintf("Reordered %d nodes (%s)", root.Size(), dir))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := newick.Write(out, root); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if output != "" {
		printSuccess("Reorder complete")
		printFile(output)
	}
	return nil
}
