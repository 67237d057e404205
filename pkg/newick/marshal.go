package newick

import (
	"bytes"
	"io"
	"strconv"

	"github.com/gribskov/tree/pkg/tree"
)

// Marshal serializes the tree rooted at n as Newick text, terminated by a
// semicolon. Re-parsing the output yields a tree equal to the original:
// names and comments are emitted verbatim, branch lengths in the shortest
// form that parses back to the same float64.
func Marshal(n *tree.Node) []byte {
	var buf bytes.Buffer
	appendTree(&buf, n)
	buf.WriteByte(';')
	return buf.Bytes()
}

// MarshalString is Marshal returning a string.
func MarshalString(n *tree.Node) string {
	return string(Marshal(n))
}

// Write serializes the tree rooted at n to w, terminated by a semicolon
// and a newline.
func Write(w io.Writer, n *tree.Node) error {
	out := Marshal(n)
	out = append(out, '\n')
	_, err := w.Write(out)
	return err
}

// wtoken is one unit of pending serializer output: a whole subtree, the
// trailer of a node whose children have been emitted, or a literal byte.
type wtoken struct {
	subtree *tree.Node
	suffix  *tree.Node
	lit     byte
}

// appendTree emits the subtree with an explicit work stack, mirroring the
// parser's resistance to deeply nested trees.
func appendTree(buf *bytes.Buffer, root *tree.Node) {
	stack := []wtoken{{subtree: root}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case t.lit != 0:
			buf.WriteByte(t.lit)
		case t.suffix != nil:
			appendSuffix(buf, t.suffix)
		default:
			n := t.subtree
			kids := n.Children()
			if len(kids) == 0 {
				appendSuffix(buf, n)
				continue
			}
			buf.WriteByte('(')
			// pushed in reverse so the pops produce: first child, then
			// ",child" for each sibling, then ")" and the node's trailer
			stack = append(stack, wtoken{suffix: n}, wtoken{lit: ')'})
			for i := len(kids) - 1; i > 0; i-- {
				stack = append(stack, wtoken{subtree: kids[i]}, wtoken{lit: ','})
			}
			stack = append(stack, wtoken{subtree: kids[0]})
		}
	}
}

// appendSuffix emits a node's trailer, only for the fields that are present.
func appendSuffix(buf *bytes.Buffer, n *tree.Node) {
	if n.Name != nil {
		buf.WriteString(*n.Name)
	}
	if n.Length != nil {
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(*n.Length, 'g', -1, 64))
	}
	if n.Comment != nil {
		buf.WriteByte('[')
		buf.WriteString(*n.Comment)
		buf.WriteByte(']')
	}
}
