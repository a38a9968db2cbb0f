// Package text renders a decision tree as tab-indented plain text, one label
// per line.
package text

import (
	"bufio"
	"io"
	"strings"

	"github.com/buckeye43210/pyPERM/internal/model"
)

// Renderer writes the plain text layout: the title, each group title behind
// one tab, then branches indented one tab per level starting at two.
type Renderer struct{}

// New creates a text Renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(w io.Writer, tree *model.Tree) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(tree.Title + "\n")
	for _, g := range tree.Groups {
		bw.WriteString("\t" + g.Title + "\n")
		for _, b := range g.Branches {
			b.Walk(func(br *model.Branch, depth int) {
				bw.WriteString(strings.Repeat("\t", depth+2) + br.Label + "\n")
			})
		}
	}
	bw.WriteString("\n")
	return bw.Flush()
}
