package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gribskov/tree/pkg/tree"
)

// ReadJSON decodes a JSON tree from r.
//
// The input must be a single JSON object in the format produced by
// [WriteJSON]: optional "name", "length" and "comment" fields plus an
// optional "children" array of the same shape. Absent fields decode to
// absent (nil) node fields.
//
// The returned tree is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.Node, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return toNode(doc), nil
}

// ImportJSON reads the JSON file at path and returns the decoded tree.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func toNode(doc document) *tree.Node {
	n := tree.New()
	n.Name = doc.Name
	n.Length = doc.Length
	n.Comment = doc.Comment
	for _, c := range doc.Children {
		// children built fresh from the document, so Attach cannot cycle
		_ = n.Attach(toNode(c))
	}
	return n
}
