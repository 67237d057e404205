package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gribskov/tree/pkg/errors"
	"github.com/gribskov/tree/pkg/newick"
	"github.com/gribskov/tree/pkg/tree"
)

// statsCommand creates the stats command for summarizing a tree.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		order string
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show node, leaf and depth counts for a Newick tree",
		Long: `Show node, leaf and depth counts for a Newick tree.

With --list, the names of all nodes are printed in traversal order. The
traversal order is controlled with --order: "dfs" visits each subtree fully
before its siblings, "bfs" visits the tree level by level.

Examples:
  newick stats tree.nwk
  newick stats tree.nwk --list
  newick stats tree.nwk --list --order bfs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), args[0], order, list)
		},
	}

	cmd.Flags().StringVar(&order, "order", c.Config.Order, "traversal order: dfs, bfs")
	cmd.Flags().BoolVar(&list, "list", false, "list node names in traversal order")

	return cmd
}

// runStats parses the input and prints summary statistics.
func (c *CLI) runStats(ctx context.Context, input, order string, list bool) error {
	logger := loggerFromContext(ctx)

	ord, err := tree.ParseOrder(order)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOrder, err, "order %q", order)
	}

	data, err := readInput(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}

	root, err := newick.ParseBytes(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidNewick, err, "parse %s", input)
	}
	logger.Debugf("Parsed %d nodes", root.Size())

	leaves := root.Leaves(ord)

	printKeyValue("Nodes", StyleNumber.Render(fmt.Sprintf("%d", root.Size())))
	printKeyValue("Leaves", StyleNumber.Render(fmt.Sprintf("%d", len(leaves))))
	printKeyValue("Depth", StyleNumber.Render(fmt.Sprintf("%d", root.Depth())))
	printKeyValue("Children", StyleNumber.Render(fmt.Sprintf("%d", root.Degree())))

	if list {
		printNewline()
		printInfo("Nodes in %s order:", StyleHighlight.Render(ord.String()))
		var names []string
		for n := range root.Walk(ord) {
			names = append(names, nodeLabel(n))
		}
		printDetail("%s", strings.Join(names, " "))
	}
	return nil
}

// nodeLabel returns a display label for a node, "-" when anonymous.
func nodeLabel(n *tree.Node) string {
	if n.Name != nil {
		return *n.Name
	}
	return "-"
}
