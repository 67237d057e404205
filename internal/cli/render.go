package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gribskov/tree/pkg/errors"
	"github.com/gribskov/tree/pkg/newick"
	"github.com/gribskov/tree/pkg/render"
)

// renderCommand creates the render command for generating tree visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a Newick tree as DOT, SVG or PNG",
		Long: `Render a Newick tree as a node-link diagram.

The tree is converted to Graphviz DOT and rendered with the dot layout
engine. Anonymous internal nodes are drawn as points. With --detailed,
branch lengths appear as edge labels and comments are included in node
labels.

Examples:
  newick render tree.nwk -o tree.svg
  newick render tree.nwk -f png -o tree.png
  newick render tree.nwk -f dot              # Print DOT source`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&format, "format", "f", c.Config.Render.Format, "output format: dot, svg, png")
	cmd.Flags().BoolVar(&detailed, "detailed", c.Config.Render.Detailed, "include branch lengths and comments")

	return cmd
}

// runRender parses the input, builds DOT, and renders the requested format.
func (c *CLI) runRender(ctx context.Context, input, output, format string, detailed bool) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}

	root, err := newick.ParseBytes(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidNewick, err, "parse %s", input)
	}

	dot := render.ToDOT(root, render.Options{Detailed: detailed})

	prog := newProgress(logger)
	var rendered []byte
	switch format {
	case "dot":
		rendered = []byte(dot)
	case "svg":
		rendered, err = render.RenderSVG(dot)
	case "png":
		rendered, err = render.RenderPNG(dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s (available: dot, svg, png)", format)
	}
	if err != nil {
		printError("Render failed")
		return fmt.Errorf("render %s: %w", format, err)
	}
	prog.done(fmt.Sprintf("Rendered %d nodes as %s", root.Size(), format))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if output != "" {
		printSuccess("Render complete")
		printFile(output)
		printNewline()
		printNextStep("View", "open "+output)
	}
	return nil
}
