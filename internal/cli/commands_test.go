package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gribskov/tree/pkg/errors"
	"github.com/gribskov/tree/pkg/newick"
)

// newTestCLI creates a CLI with discarded logs and default config.
func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(io.Discard, LogInfo)
}

// writeTestFile writes content to a temp file and returns its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunParse(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "( b , c ) a ;")
	output := filepath.Join(t.TempDir(), "out.nwk")

	if err := c.runParse(context.Background(), input, output); err != nil {
		t.Fatalf("runParse() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "(b,c)a;\n" {
		t.Errorf("canonical form = %q, want %q", got, "(b,c)a;\n")
	}
}

func TestRunParseMalformed(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "bad.nwk", "(a,b")

	err := c.runParse(context.Background(), input, "")
	if err == nil {
		t.Fatal("runParse() should fail on unbalanced input")
	}
	if !errors.Is(err, errors.ErrCodeInvalidNewick) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidNewick)
	}
}

func TestRunParseMissingFile(t *testing.T) {
	c := newTestCLI(t)

	err := c.runParse(context.Background(), filepath.Join(t.TempDir(), "nope.nwk"), "")
	if err == nil {
		t.Fatal("runParse() should fail on missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

// Commands log through the logger attached to their context, not a global.
func TestRunParseUsesContextLogger(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(a,b);")

	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, LogInfo))

	if err := c.runParse(ctx, input, filepath.Join(t.TempDir(), "out.nwk")); err != nil {
		t.Fatalf("runParse() error: %v", err)
	}
	if !strings.Contains(buf.String(), "Parsed 3 nodes") {
		t.Errorf("context logger output missing progress line:\n%s", buf.String())
	}
}

func TestRunDump(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(b:0.5,c)a;")
	output := filepath.Join(t.TempDir(), "out.txt")

	if err := c.runDump(context.Background(), input, output); err != nil {
		t.Fatalf("runDump() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	for _, line := range []string{"a\n", "  b :0.5\n", "  c\n"} {
		if !strings.Contains(got, line) {
			t.Errorf("dump output missing %q:\n%s", line, got)
		}
	}
}

func TestRunReorder(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		want      string
	}{
		{"left puts large clades first", "left", "((b,c)d,a);\n"},
		{"right puts large clades last", "right", "(a,(b,c)d);\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			input := writeTestFile(t, "in.nwk", "(a,(b,c)d);")
			output := filepath.Join(t.TempDir(), "out.nwk")

			if err := c.runReorder(context.Background(), input, output, tt.direction); err != nil {
				t.Fatalf("runReorder() error: %v", err)
			}

			data, err := os.ReadFile(output)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(data); got != tt.want {
				t.Errorf("reordered = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunReorderBadDirection(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(a,b);")

	err := c.runReorder(context.Background(), input, "", "sideways")
	if err == nil {
		t.Fatal("runReorder() should reject unknown direction")
	}
	if !errors.Is(err, errors.ErrCodeInvalidDirection) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidDirection)
	}
}

func TestRunStats(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "((b,c)a,(e,f)d);")

	if err := c.runStats(context.Background(), input, "dfs", true); err != nil {
		t.Fatalf("runStats() error: %v", err)
	}
	if err := c.runStats(context.Background(), input, "bfs", false); err != nil {
		t.Fatalf("runStats() bfs error: %v", err)
	}
}

func TestRunStatsBadOrder(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(a,b);")

	err := c.runStats(context.Background(), input, "spiral", false)
	if err == nil {
		t.Fatal("runStats() should reject unknown order")
	}
	if !errors.Is(err, errors.ErrCodeInvalidOrder) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidOrder)
	}
}

func TestRunConvertToJSON(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(b:0.5,c)a;")
	output := filepath.Join(t.TempDir(), "out.json")

	if err := c.runConvert(context.Background(), input, output, ""); err != nil {
		t.Fatalf("runConvert() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	for _, want := range []string{`"name": "a"`, `"name": "b"`, `"length": 0.5`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON output missing %s:\n%s", want, got)
		}
	}
}

func TestRunConvertRoundTrip(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "((b,c)a,(e,f)d);")
	jsonPath := filepath.Join(t.TempDir(), "tree.json")
	backPath := filepath.Join(t.TempDir(), "back.nwk")

	if err := c.runConvert(context.Background(), input, jsonPath, "json"); err != nil {
		t.Fatalf("convert to json: %v", err)
	}
	if err := c.runConvert(context.Background(), jsonPath, backPath, "newick"); err != nil {
		t.Fatalf("convert back to newick: %v", err)
	}

	data, err := os.ReadFile(backPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "((b,c)a,(e,f)d);\n" {
		t.Errorf("round trip = %q, want %q", got, "((b,c)a,(e,f)d);\n")
	}
}

// An unknown target format fails before the output file is created.
func TestRunConvertBadFormat(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(a,b);")
	output := filepath.Join(t.TempDir(), "out.xml")

	err := c.runConvert(context.Background(), input, output, "xml")
	if err == nil {
		t.Fatal("runConvert() should reject unknown format")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("output file should not exist after a rejected format, stat err = %v", statErr)
	}
}

func TestIsJSONInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`{"name": "a"}`, true},
		{"  \n\t{", true},
		{"(a,b);", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isJSONInput([]byte(tt.input)); got != tt.want {
			t.Errorf("isJSONInput(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRunRenderDOT(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(b,c)a;")
	output := filepath.Join(t.TempDir(), "out.dot")

	if err := c.runRender(context.Background(), input, output, "dot", false); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "digraph") {
		t.Errorf("DOT output missing digraph header:\n%s", got)
	}
	for _, name := range []string{"a", "b", "c"} {
		if !strings.Contains(got, `"`+name+`"`) {
			t.Errorf("DOT output missing node label %q", name)
		}
	}
}

func TestRunRenderBadFormat(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(a,b);")

	err := c.runRender(context.Background(), input, "", "gif", false)
	if err == nil {
		t.Fatal("runRender() should reject unknown format")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

// Commands still succeed when the input is a serialized subtree without
// a trailing semicolon.
func TestRunParseNoSemicolon(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestFile(t, "in.nwk", "(e,f)d")
	output := filepath.Join(t.TempDir(), "out.nwk")

	if err := c.runParse(context.Background(), input, output); err != nil {
		t.Fatalf("runParse() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "(e,f)d;\n" {
		t.Errorf("canonical form = %q, want %q", got, "(e,f)d;\n")
	}
}

// Grafting replaces a node in place while leaving its identity intact.
func TestGraftViaLibrary(t *testing.T) {
	root, err := newick.ParseString("((b,c)a,d);")
	if err != nil {
		t.Fatal(err)
	}

	target := root.Children()[1]
	if err := newick.Graft(target, []byte("(x,y)z;")); err != nil {
		t.Fatalf("Graft() error: %v", err)
	}

	if got := newick.MarshalString(root); got != "((b,c)a,(x,y)z);" {
		t.Errorf("after graft = %q, want %q", got, "((b,c)a,(x,y)z);")
	}
}
