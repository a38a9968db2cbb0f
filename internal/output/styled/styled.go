// Package styled draws a decision tree for terminals with lipgloss.
package styled

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/buckeye43210/pyPERM/internal/model"
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	GroupStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA"))
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))
	ElseStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#F59E0B"))
	LeafStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	EnumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).PaddingRight(1)
)

// Renderer draws each group as a rounded box-drawing tree.
type Renderer struct{}

// New creates a styled Renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(w io.Writer, t *model.Tree) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(TitleStyle.Render(t.Title) + "\n")
	for _, g := range t.Groups {
		root := newTree(GroupStyle.Render(g.Title))
		for _, b := range g.Branches {
			root.Child(node(b))
		}
		bw.WriteString(root.String() + "\n")
	}
	return bw.Flush()
}

func newTree(root string) *tree.Tree {
	return tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(EnumStyle)
}

func node(b *model.Branch) any {
	if b.IsLeaf() {
		return LeafStyle.Render(b.Label)
	}
	style := ValueStyle
	if b.Label == model.ElseLabel {
		style = ElseStyle
	}
	t := newTree(style.Render(b.Label))
	for _, c := range b.Children {
		t.Child(node(c))
	}
	return t
}
