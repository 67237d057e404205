// Package render converts trees to Graphviz DOT and renders them as
// SVG or PNG images via goccy/go-graphviz.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gribskov/tree/pkg/tree"
)

// Options configures tree diagram rendering.
type Options struct {
	// Detailed includes branch lengths on edges and comments in node
	// labels. When false, only names are shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
//
// Anonymous nodes (no name) are rendered as small points; leaves get a
// distinct fill so clades read at a glance.
func ToDOT(root *tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	// stable ids assigned in pre-order
	ids := make(map[*tree.Node]string)
	i := 0
	for n := range root.Walk(tree.PreOrder) {
		ids[n] = fmt.Sprintf("n%d", i)
		i++
	}

	for n := range root.Walk(tree.PreOrder) {
		attrs := fmtAttrs(n, opts.Detailed)
		fmt.Fprintf(&buf, "  %s [%s];\n", ids[n], strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for n := range root.Walk(tree.PreOrder) {
		for _, c := range n.Children() {
			if opts.Detailed && c.Length != nil {
				fmt.Fprintf(&buf, "  %s -> %s [label=%q];\n", ids[n], ids[c],
					strconv.FormatFloat(*c.Length, 'g', -1, 64))
				continue
			}
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n], ids[c])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n *tree.Node, detailed bool) []string {
	if n.Name == nil && !(detailed && n.Comment != nil) {
		return []string{`label=""`, "shape=point", "width=0.12"}
	}

	label := ""
	if n.Name != nil {
		label = *n.Name
	}
	if detailed && n.Comment != nil {
		label += "\n" + *n.Comment
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.IsLeaf() {
		attrs = append(attrs, "fillcolor=lightyellow")
	}
	return attrs
}
