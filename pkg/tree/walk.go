package tree

import (
	"fmt"
	"iter"
	"strings"
)

// Order selects the sequence a traversal produces. It is passed explicitly
// to [Node.Walk] and friends rather than stored on the tree, so two callers
// iterating the same tree cannot disagree about a hidden current mode.
type Order int

const (
	// PreOrder visits each node immediately before its children, exhausting
	// every child's subtree before moving to the next sibling (depth-first).
	PreOrder Order = iota
	// BreadthFirst visits nodes level by level, left to right within a level.
	BreadthFirst
)

// String returns the order's flag spelling ("dfs" or "bfs").
func (o Order) String() string {
	if o == BreadthFirst {
		return "bfs"
	}
	return "dfs"
}

// ParseOrder converts a flag value into an Order.
// Accepted spellings: "dfs", "pre", "preorder" and "bfs", "breadth", "level".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "dfs", "pre", "preorder":
		return PreOrder, nil
	case "bfs", "breadth", "level":
		return BreadthFirst, nil
	}
	return PreOrder, fmt.Errorf("unknown traversal order: %q (want dfs or bfs)", s)
}

// Walk returns a lazy iterator over the subtree rooted at n, in the given
// order. The sequence is finite and restartable: ranging over it a second
// time replays the traversal from the start. Both orders are implemented
// with an explicit stack or queue, so arbitrarily deep trees cannot
// exhaust the goroutine stack.
//
// Mutating the tree while a traversal is in progress is undefined.
func (n *Node) Walk(order Order) iter.Seq[*Node] {
	if order == BreadthFirst {
		return n.walkBreadthFirst()
	}
	return n.walkPreOrder()
}

func (n *Node) walkPreOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{n}
		for len(stack) > 0 {
			m := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(m) {
				return
			}
			// push children reversed so the first child is popped next
			for i := len(m.children) - 1; i >= 0; i-- {
				stack = append(stack, m.children[i])
			}
		}
	}
}

func (n *Node) walkBreadthFirst() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		queue := []*Node{n}
		for len(queue) > 0 {
			m := queue[0]
			queue = queue[1:]
			if !yield(m) {
				return
			}
			queue = append(queue, m.children...)
		}
	}
}

// Nodes materializes the traversal as a slice, in traversal order.
func (n *Node) Nodes(order Order) []*Node {
	nodes := make([]*Node, 0, len(n.children)+1)
	for m := range n.Walk(order) {
		nodes = append(nodes, m)
	}
	return nodes
}

// Leaves returns the childless nodes of the subtree, preserving the
// relative order of the given traversal.
func (n *Node) Leaves(order Order) []*Node {
	var leaves []*Node
	for m := range n.Walk(order) {
		if m.IsLeaf() {
			leaves = append(leaves, m)
		}
	}
	return leaves
}
