package tree

import (
	"errors"
)

var (
	// ErrNilNode is returned by [Node.Attach] when the child is nil.
	ErrNilNode = errors.New("child must not be nil")

	// ErrCycle is returned by [Node.Attach] when attaching the child would
	// create a cycle, i.e. the child is the node itself or one of its
	// ancestors. Trees stay acyclic by construction.
	ErrCycle = errors.New("child must not contain its new parent")
)

// Node is a vertex in a multi-way (arbitrary fan-out) tree.
//
// Name, Length and Comment are optional: a nil pointer means the field is
// absent, which is distinct from an empty string or a zero length. Absence
// is never encoded with a sentinel value.
//
// Children are ordered and exclusively owned by their parent. Dropping the
// last reference to a node releases its entire subtree; there is no explicit
// teardown. The zero value is a valid anonymous leaf.
//
// Node is not safe for concurrent mutation without external synchronization.
type Node struct {
	Name    *string  // optional label
	Length  *float64 // optional branch length to the parent
	Comment *string  // optional annotation

	children []*Node
}

// New creates an anonymous node with no children.
func New() *Node {
	return &Node{}
}

// NewNamed creates a named node with no children.
func NewNamed(name string) *Node {
	n := &Node{}
	n.SetName(name)
	return n
}

// SetName sets the node's label.
func (n *Node) SetName(name string) { n.Name = &name }

// SetLength sets the node's branch length.
func (n *Node) SetLength(length float64) { n.Length = &length }

// SetComment sets the node's annotation.
func (n *Node) SetComment(comment string) { n.Comment = &comment }

// NewChild creates a named node, attaches it as the last child and returns it.
func (n *Node) NewChild(name string) *Node {
	c := NewNamed(name)
	n.children = append(n.children, c)
	return c
}

// Attach appends an existing subtree as the last child, transferring
// ownership to n. Returns ErrNilNode for a nil child, or ErrCycle if the
// child is n itself or already contains n in its subtree.
func (n *Node) Attach(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	for m := range child.Walk(PreOrder) {
		if m == n {
			return ErrCycle
		}
	}
	n.children = append(n.children, child)
	return nil
}

// ReplaceWith overwrites n's name, length, comment and children with those
// of src, transferring ownership of src's subtree to n while keeping n's
// identity (links from n's parent stay valid). src must not be an ancestor
// of n and must not be used afterwards.
func (n *Node) ReplaceWith(src *Node) {
	n.Name = src.Name
	n.Length = src.Length
	n.Comment = src.Comment
	n.children = src.children
}

// Children returns the node's children in order.
// The returned slice is a copy; the nodes it points to are shared.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Degree returns the number of direct children.
func (n *Node) Degree() int { return len(n.children) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Size returns the number of nodes in the subtree, including n itself.
// A solitary leaf has size 1.
func (n *Node) Size() int {
	size := 0
	for range n.Walk(PreOrder) {
		size++
	}
	return size
}

// Depth returns the number of levels in the subtree. A solitary leaf has
// depth 1; a root with only leaf children has depth 2.
func (n *Node) Depth() int {
	depth := 0
	level := []*Node{n}
	for len(level) > 0 {
		depth++
		var next []*Node
		for _, m := range level {
			next = append(next, m.children...)
		}
		level = next
	}
	return depth
}

// label returns the node's name for display, or a placeholder when absent.
func (n *Node) label() string {
	if n.Name != nil {
		return *n.Name
	}
	return "-"
}
