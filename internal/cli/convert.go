package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gribskov/tree/pkg/errors"
	pkgio "github.com/gribskov/tree/pkg/io"
	"github.com/gribskov/tree/pkg/newick"
	"github.com/gribskov/tree/pkg/tree"
)

// Supported conversion formats.
const (
	formatNewick = "newick"
	formatJSON   = "json"
)

// convertCommand creates the convert command for translating between formats.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert trees between Newick and JSON",
		Long: `Convert trees between Newick and JSON.

The input format is detected automatically: input starting with "{" is read
as JSON, everything else as Newick. By default the tree is converted to the
other format; use --to to force a target format.

Examples:
  newick convert tree.nwk                  # Newick to JSON on stdout
  newick convert tree.json -o out.nwk      # JSON back to Newick
  newick convert tree.nwk --to newick      # Canonicalize without switching`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], output, to)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&to, "to", "", "target format: newick, json (default: the other format)")

	return cmd
}

// runConvert reads the input in its detected format and writes the target format.
func (c *CLI) runConvert(ctx context.Context, input, output, to string) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}

	var root *tree.Node
	from := formatNewick
	if isJSONInput(data) {
		from = formatJSON
		root, err = pkgio.ReadJSON(bytes.NewReader(data))
	} else {
		root, err = newick.ParseBytes(data)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidNewick, err, "parse %s", input)
	}

	// resolve and validate the target before the output file is touched
	switch to {
	case "":
		if from == formatNewick {
			to = formatJSON
		} else {
			to = formatNewick
		}
	case formatNewick, formatJSON:
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s (available: newick, json)", to)
	}
	logger.Debugf("Converting %s to %s (%d nodes)", from, to, root.Size())

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if to == formatNewick {
		err = newick.Write(out, root)
	} else {
		err = pkgio.WriteJSON(root, out)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if output != "" {
		printSuccess("Converted %s to %s", from, to)
		printFile(output)
	}
	return nil
}

// isJSONInput reports whether data looks like a JSON document rather than Newick.
func isJSONInput(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
