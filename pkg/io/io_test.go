package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gribskov/tree/pkg/newick"
	"github.com/gribskov/tree/pkg/tree"
)

func TestWriteJSON(t *testing.T) {
	root := tree.NewNamed("root")
	a := root.NewChild("a")
	a.SetLength(0.5)
	c := root.NewChild("c")
	c.SetComment("outgroup")

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"name": "root"`, `"length": 0.5`, `"comment": "outgroup"`, `"children"`} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteJSON() output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"length": 0,`) {
		t.Error("WriteJSON() emitted a zero sentinel for an absent length")
	}
}

func TestRoundTrip(t *testing.T) {
	root, err := newick.ParseString("((b:1,c:2)a,(e,f)d[clade]):0.5;")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if got, want := newick.MarshalString(back), newick.MarshalString(root); got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestReadJSONAbsentFields(t *testing.T) {
	in := `{"children":[{"name":"a"},{"length":2}]}`
	root, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if root.Name != nil {
		t.Errorf("root Name = %q, want absent", *root.Name)
	}
	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("root has %d children, want 2", len(kids))
	}
	if kids[0].Length != nil {
		t.Errorf("first child Length = %v, want absent", *kids[0].Length)
	}
	if kids[1].Name != nil {
		t.Errorf("second child Name = %q, want absent", *kids[1].Name)
	}
	if kids[1].Length == nil || *kids[1].Length != 2 {
		t.Errorf("second child Length = %v, want 2", kids[1].Length)
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("ReadJSON() error = nil, want decode error")
	}
}

func TestExportImportFile(t *testing.T) {
	root, err := newick.ParseString("((b,c)a,(e,f)d);")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "tree.json")
	if err := ExportJSON(root, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if back.Size() != 7 {
		t.Errorf("imported Size() = %d, want 7", back.Size())
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("ImportJSON() error = nil, want open error")
	}
}
