package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gribskov/tree/pkg/tree"
)

// document is the JSON shape of one node. Children nest directly, and
// optional fields are omitted when absent so they decode back to nil.
type document struct {
	Name     *string    `json:"name,omitempty"`
	Length   *float64   `json:"length,omitempty"`
	Comment  *string    `json:"comment,omitempty"`
	Children []document `json:"children,omitempty"`
}

// WriteJSON encodes the tree rooted at n as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(n *tree.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromNode(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(n *tree.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(n, f)
}

func fromNode(n *tree.Node) document {
	doc := document{
		Name:    n.Name,
		Length:  n.Length,
		Comment: n.Comment,
	}
	for _, c := range n.Children() {
		doc.Children = append(doc.Children, fromNode(c))
	}
	return doc
}
