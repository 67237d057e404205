package newick

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gribskov/tree/pkg/tree"
)

// Parse reads Newick text from r and returns the root of the parsed tree.
func Parse(r io.Reader) (*tree.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseString parses Newick text from a string.
func ParseString(s string) (*tree.Node, error) {
	return ParseBytes([]byte(s))
}

// ParseFile parses Newick text from the file at path.
func ParseFile(path string) (*tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes parses Newick text from data.
//
// The terminating semicolon is optional when the tree ends the input, but
// nothing other than whitespace may follow the tree (or the semicolon).
func ParseBytes(data []byte) (*tree.Node, error) {
	p := &parser{data: data}
	return p.parse()
}

// Graft replaces the subtree rooted at dst with the tree parsed from data,
// keeping dst's identity so links from its parent stay valid. On a parse
// error dst is left untouched.
func Graft(dst *tree.Node, data []byte) error {
	root, err := ParseBytes(data)
	if err != nil {
		return err
	}
	dst.ReplaceWith(root)
	return nil
}

// parser is a cursor over the raw input. Nesting is tracked with an
// explicit stack of open group nodes instead of recursive descent.
type parser struct {
	data []byte
	pos  int
}

func (p *parser) parse() (*tree.Node, error) {
	var stack []*tree.Node // open parenthesized groups, innermost last
	var cur *tree.Node     // completed subtree awaiting , ) ; or EOF

	for {
		p.skipSpace()
		if p.eof() {
			if cur == nil {
				return nil, p.errorf("unexpected end of input")
			}
			if len(stack) > 0 {
				return nil, p.errorf("unbalanced parentheses")
			}
			return cur, nil
		}
		switch c := p.data[p.pos]; c {
		case '(':
			if cur != nil {
				return nil, p.errorf("unexpected '('")
			}
			p.pos++
			stack = append(stack, tree.New())

		case ',':
			if len(stack) == 0 {
				return nil, p.errorf("unexpected ','")
			}
			if cur == nil {
				return nil, p.errorf("missing subtree before ','")
			}
			_ = stack[len(stack)-1].Attach(cur)
			cur = nil
			p.pos++

		case ')':
			if len(stack) == 0 {
				return nil, p.errorf("unbalanced parentheses")
			}
			if cur == nil {
				return nil, p.errorf("missing subtree before ')'")
			}
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			_ = group.Attach(cur)
			p.pos++
			if err := p.suffix(group); err != nil {
				return nil, err
			}
			cur = group

		case ';':
			if cur == nil {
				return nil, p.errorf("missing subtree before ';'")
			}
			if len(stack) > 0 {
				return nil, p.errorf("unbalanced parentheses")
			}
			p.pos++
			p.skipSpace()
			if !p.eof() {
				return nil, p.errorf("unexpected content after ';'")
			}
			return cur, nil

		default:
			if cur != nil {
				return nil, p.errorf("unexpected character %q", c)
			}
			leaf := tree.New()
			start := p.pos
			if err := p.suffix(leaf); err != nil {
				return nil, err
			}
			if p.pos == start {
				return nil, p.errorf("unexpected character %q", c)
			}
			cur = leaf
		}
	}
}

// suffix parses the optional trailer of a subtree onto n: a label, a
// colon-prefixed branch length, and a bracketed comment, in that order.
// Any combination may be absent.
func (p *parser) suffix(n *tree.Node) error {
	start := p.pos
	for !p.eof() && !isStructural(p.data[p.pos]) {
		p.pos++
	}
	if name := strings.TrimSpace(string(p.data[start:p.pos])); name != "" {
		n.SetName(name)
	}

	if !p.eof() && p.data[p.pos] == ':' {
		p.pos++
		p.skipSpace()
		start = p.pos
		for !p.eof() && !isStructural(p.data[p.pos]) && !isSpace(p.data[p.pos]) {
			p.pos++
		}
		if f, err := strconv.ParseFloat(string(p.data[start:p.pos]), 64); err == nil {
			n.SetLength(f)
		}
		// an unparsable length is not an error; the field stays absent
	}

	p.skipSpace()
	if !p.eof() && p.data[p.pos] == '[' {
		p.pos++
		start = p.pos
		for !p.eof() && p.data[p.pos] != ']' {
			p.pos++
		}
		if p.eof() {
			return p.errorf("unterminated comment")
		}
		n.SetComment(string(p.data[start:p.pos]))
		p.pos++
	}
	return nil
}

func (p *parser) eof() bool { return p.pos >= len(p.data) }

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.data[p.pos]) {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func isStructural(c byte) bool {
	switch c {
	case '(', ')', ',', ':', ';', '[', ']':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
