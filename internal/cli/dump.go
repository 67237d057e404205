package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gribskov/tree/pkg/errors"
	"github.com/gribskov/tree/pkg/newick"
)

// dumpCommand creates the dump command for printing indented tree listings.
func (c *CLI) dumpCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print a depth-indented listing of a Newick tree",
		Long: `Print a depth-indented listing of a Newick tree.

Each node is printed on its own line, indented by its depth. Anonymous nodes
are shown as "-". Branch lengths and comments are included when present.

Examples:
  newick dump tree.nwk
  cat tree.nwk | newick dump -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDump(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runDump parses the input and writes the indented listing.
func (c *CLI) runDump(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}

	root, err := newick.ParseBytes(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidNewick, err, "parse %s", input)
	}
	logger.Debugf("Parsed %d nodes", root.Size())

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	return root.Dump(out)
}
