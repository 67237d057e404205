// Package newick reads and writes trees in the Newick phylogenetic tree
// interchange format.
//
// A Newick subtree is either a leaf label or a parenthesized, comma-separated
// list of subtrees; either form may be followed by a label, a colon-prefixed
// branch length, and a bracketed comment, and the whole tree is terminated
// by an optional semicolon:
//
//	((b,c)a,(e,f)d);
//	(raccoon:19.2,bear:6.8):0.9[root];
//
// Structural problems (unbalanced parentheses, missing subtrees, trailing
// content) fail with a [SyntaxError] wrapping [ErrMalformed] and no partial
// tree is returned. An unparsable branch length is deliberately not an
// error: inputs in the wild carry non-numeric annotations after the colon,
// so the length is simply left absent.
//
// The parser and serializer are iterative, with explicit stacks in place of
// recursive descent, so adversarially deep input cannot overflow the
// goroutine stack.
package newick

import (
	"errors"
	"fmt"
)

// ErrMalformed is the structural parse failure category. Every
// [SyntaxError] wraps it, so callers can test with
// errors.Is(err, newick.ErrMalformed) without inspecting details.
var ErrMalformed = errors.New("malformed newick")

// SyntaxError describes a structural parse failure at a byte offset in the
// input. It unwraps to [ErrMalformed].
type SyntaxError struct {
	Offset int    // byte offset into the input
	Msg    string // what was wrong at that position
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed newick at offset %d: %s", e.Offset, e.Msg)
}

// Unwrap returns ErrMalformed for errors.Is compatibility.
func (e *SyntaxError) Unwrap() error { return ErrMalformed }
