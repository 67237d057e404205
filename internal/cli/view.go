package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gribskov/tree/pkg/errors"
	"github.com/gribskov/tree/pkg/newick"
	"github.com/gribskov/tree/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// viewCommand creates the view command for interactive tree browsing.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a Newick tree interactively in the terminal",
		Long: `Browse a Newick tree interactively in the terminal.

Navigate with the arrow keys or j/k, collapse and expand clades with enter,
and quit with q. Collapsed clades show their subtree size.

Examples:
  newick view tree.nwk`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0])
		},
	}

	return cmd
}

// runView parses the input and starts the interactive browser.
func (c *CLI) runView(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}

	root, err := newick.ParseBytes(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidNewick, err, "parse %s", input)
	}
	logger.Debugf("Browsing %d nodes", root.Size())

	model := NewTreeModel(root)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

// =============================================================================
// TreeModel - Interactive tree browsing
// =============================================================================

// treeRow is one visible line in the browser: a node at a given depth.
type treeRow struct {
	node  *tree.Node
	depth int
}

// TreeModel is the bubbletea model for interactive tree browsing.
type TreeModel struct {
	Root      *tree.Node
	Cursor    int
	Height    int
	Offset    int
	collapsed map[*tree.Node]bool
	rows      []treeRow
}

// NewTreeModel creates a new tree browser model with all clades expanded.
func NewTreeModel(root *tree.Node) TreeModel {
	m := TreeModel{
		Root:      root,
		Height:    20,
		collapsed: make(map[*tree.Node]bool),
	}
	m.rebuild()
	return m
}

// rebuild recomputes the visible rows from the collapse state.
// Children of collapsed nodes are skipped.
func (m *TreeModel) rebuild() {
	m.rows = m.rows[:0]

	type frame struct {
		node  *tree.Node
		depth int
	}
	stack := []frame{{m.Root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m.rows = append(m.rows, treeRow{f.node, f.depth})
		if m.collapsed[f.node] {
			continue
		}
		children := f.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.depth + 1})
		}
	}

	if m.Cursor >= len(m.rows) {
		m.Cursor = len(m.rows) - 1
	}
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			node := m.rows[m.Cursor].node
			if !node.IsLeaf() {
				m.collapsed[node] = !m.collapsed[node]
				m.rebuild()
			}
		case "e":
			m.collapsed = make(map[*tree.Node]bool)
			m.rebuild()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tree Browser"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ collapse/expand  e expand all  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := cursor + strings.Repeat("  ", row.depth) + rowMarker(row.node, m.collapsed[row.node]) + nodeLabel(row.node)
		if extra := rowDetail(row.node, m.collapsed[row.node]); extra != "" {
			line += " " + listDimStyle.Render(extra)
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if row.node.IsLeaf() {
			b.WriteString(listNormalStyle.Render(line))
		} else {
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.rows))))

	return b.String()
}

// rowMarker returns the expansion indicator for a node.
func rowMarker(n *tree.Node, collapsed bool) string {
	if n.IsLeaf() {
		return "  "
	}
	if collapsed {
		return "+ "
	}
	return "- "
}

// rowDetail returns the dim suffix for a row: branch length, comment, and
// subtree size when collapsed.
func rowDetail(n *tree.Node, collapsed bool) string {
	var parts []string
	if n.Length != nil {
		parts = append(parts, ":"+strconv.FormatFloat(*n.Length, 'g', -1, 64))
	}
	if n.Comment != nil {
		parts = append(parts, "["+*n.Comment+"]")
	}
	if collapsed {
		parts = append(parts, fmt.Sprintf("(%d nodes)", n.Size()))
	}
	return strings.Join(parts, " ")
}
