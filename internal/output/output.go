package output

import (
	"context"
	"io"

	"github.com/buckeye43210/pyPERM/internal/model"
)

// Output defines the interface for decision tree destinations.
type Output interface {
	Write(ctx context.Context, tree *model.Tree) error
	Close() error
}

// Renderer turns a tree into text in one format. Renderers never modify the tree.
type Renderer interface {
	Render(w io.Writer, tree *model.Tree) error
}
