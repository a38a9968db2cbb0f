// Package gemtext renders a decision tree as gemtext: top-level branches are
// bullets, decision points nested bullets, and leaves link lines.
package gemtext

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/buckeye43210/pyPERM/internal/model"
)

// DefaultBase prefixes leaf links when none is configured.
const DefaultBase = "gemini://localhost/item/"

// Renderer writes gemtext with leaf links under base.
type Renderer struct {
	base string
}

// New creates a gemtext Renderer. An empty base selects DefaultBase.
func New(base string) *Renderer {
	if base == "" {
		base = DefaultBase
	}
	return &Renderer{base: base}
}

func (r *Renderer) Render(w io.Writer, tree *model.Tree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n\n", tree.Title)
	for _, g := range tree.Groups {
		fmt.Fprintf(bw, "## %s\n", g.Title)
		for _, b := range g.Branches {
			b.Walk(func(br *model.Branch, depth int) {
				r.line(bw, br, depth+1)
			})
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// line writes one branch; depth is 1 for top-level branches.
func (r *Renderer) line(bw *bufio.Writer, b *model.Branch, depth int) {
	indent := strings.Repeat("  ", depth-1)
	switch {
	case depth == 1:
		fmt.Fprintf(bw, "* %s\n", b.Label)
	case b.IsLeaf():
		fmt.Fprintf(bw, "%s  => %s %s\n", indent, r.Link(b.Label), b.Label)
	default:
		fmt.Fprintf(bw, "%s* %s\n", indent, b.Label)
	}
}

// Link returns the resource path a leaf labeled name points at.
func (r *Renderer) Link(name string) string {
	return r.base + url.PathEscape(name)
}
