package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes a human-readable, depth-indented listing of the subtree to w.
// Each line shows one node: its name (or "-" when anonymous), the branch
// length when present, and the comment when present. The exact layout is
// diagnostic output and not a stable interchange format; use the newick or
// io packages for round-trippable serialization.
func (n *Node) Dump(w io.Writer) error {
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", f.depth), f.node.describe()); err != nil {
			return err
		}
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.children[i], depth: f.depth + 1})
		}
	}
	return nil
}

// String returns the indented dump of the subtree.
func (n *Node) String() string {
	var sb strings.Builder
	_ = n.Dump(&sb)
	return sb.String()
}

// describe formats a single node for the dump: label, then ":length" and
// "[comment]" for the fields that are present.
func (n *Node) describe() string {
	var sb strings.Builder
	sb.WriteString(n.label())
	if n.Length != nil {
		sb.WriteString(" :")
		sb.WriteString(strconv.FormatFloat(*n.Length, 'g', -1, 64))
	}
	if n.Comment != nil {
		sb.WriteString(" [")
		sb.WriteString(*n.Comment)
		sb.WriteString("]")
	}
	return sb.String()
}
