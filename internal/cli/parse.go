package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gribskov/tree/pkg/errors"
	"github.com/gribskov/tree/pkg/newick"
	"github.com/gribskov/tree/pkg/tree"
)

// parseCommand creates the parse command for validating Newick input.
func (c *CLI) parseCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse Newick input and re-emit it in canonical form",
		Long: `Parse Newick input and re-emit it in canonical form.

The input is validated against the Newick grammar. On success the tree is
serialized back out with normalized whitespace, so the output is a canonical
form of the input. Use "-" to read from stdin.

Examples:
  newick parse tree.nwk                # Validate and print canonical form
  newick parse tree.nwk -o clean.nwk   # Write canonical form to a file
  cat tree.nwk | newick parse -        # Read from stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runParse reads, parses and re-serializes a single tree.
func (c *CLI) runParse(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}

	prog := newProgress(logger)
	root, err := newick.ParseBytes(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidNewick, err, "parse %s", input)
	}
	prog.done(fmt.Sprintf("Parsed %d nodes", root.Size()))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := newick.Write(out, root); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if output != "" {
		printSuccess("Parse complete")
		printFile(output)
		printTreeStats(root.Size(), len(root.Leaves(tree.PreOrder)), root.Depth())
	}
	return nil
}
