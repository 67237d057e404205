package tree

import (
	"fmt"
	"slices"
	"strings"
)

// Direction selects how [Node.SortBySize] arranges children. The naming
// follows a left-to-right rendering of the tree: Left places the largest
// subtree first (leftmost), Right places it last.
type Direction int

const (
	// Left orders children by descending subtree size (largest first).
	Left Direction = iota
	// Right orders children by ascending subtree size (largest last).
	Right
)

// String returns the direction's flag spelling ("left" or "right").
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// ParseDirection converts a flag value into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown direction: %q (want left or right)", s)
}

// SortBySize reorders the children of every node in the subtree by each
// child's subtree size, in the given direction. The sort is stable: children
// of equal size keep their relative order. Only child ordering changes;
// node identity and tree membership are untouched.
//
// Subtree sizes are computed once up front, so the whole operation is
// O(n log n) in the number of nodes.
func (n *Node) SortBySize(dir Direction) {
	nodes := n.Nodes(BreadthFirst)

	// breadth-first order lists parents before children, so a reverse
	// sweep sees every child's size before its parent needs it
	sizes := make(map[*Node]int, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		m := nodes[i]
		size := 1
		for _, c := range m.children {
			size += sizes[c]
		}
		sizes[m] = size
	}

	for _, m := range nodes {
		slices.SortStableFunc(m.children, func(a, b *Node) int {
			if dir == Left {
				return sizes[b] - sizes[a]
			}
			return sizes[a] - sizes[b]
		})
	}
}
