// Package io provides JSON import and export for multi-way trees.
//
// # Overview
//
// This package enables serialization of trees to and from a nested JSON
// document. The format is designed for:
//
//   - Integration with external tools that produce or consume tree data
//   - Lossless interchange with the Newick text format
//   - Round-trip preservation: import, transform, export, re-import identically
//
// # JSON Format
//
// Each node is an object; children nest directly:
//
//	{
//	  "name": "root",
//	  "children": [
//	    {"name": "a", "length": 0.5, "children": [{"name": "b"}]},
//	    {"name": "c", "comment": "outgroup"}
//	  ]
//	}
//
// All fields are optional. Absent name, length and comment are omitted from
// the output and decode back to absent (nil) fields, so "no length" stays
// distinguishable from a length of zero.
//
// # Import / Export
//
// Use [ImportJSON] and [ExportJSON] for files, or [ReadJSON] and [WriteJSON]
// for any io.Reader/io.Writer:
//
//	root, err := io.ImportJSON("tree.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.ExportJSON(root, "out.json")
//
// # Concurrency
//
// All functions are safe to call concurrently with other readers of the same
// tree, but not with concurrent modifications. Imported trees are independent
// instances that can be modified freely.
package io
