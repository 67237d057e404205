// Package tree implements a multi-way tree with ordered, exclusively owned
// children, the data structure underlying Newick-format phylogenies.
//
// A [Node] carries three optional fields (name, branch length, comment),
// each modeled as a pointer so that "absent" stays distinct from an empty
// or zero value. Children are attached with [Node.NewChild] or
// [Node.Attach]; attachment rejects cycles, so every reachable structure
// is a tree by construction.
//
// Traversal is a lazy iterator ([Node.Walk]) parameterized by an explicit
// [Order] (pre-order depth-first or breadth-first), with [Node.Nodes] and
// [Node.Leaves] as materialized conveniences. [Node.SortBySize] reorders
// children by subtree size at every level, and [Node.Dump] produces a
// diagnostic indented listing.
//
// All traversals and aggregates use explicit stacks or queues rather than
// recursion, so deeply nested trees (including adversarial parser input)
// cannot overflow the goroutine stack.
//
// Serialization lives in the companion packages: pkg/newick for the Newick
// interchange format and pkg/io for JSON.
package tree
