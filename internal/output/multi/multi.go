// Package multi sends one built tree to several destinations, e.g. stdout
// plus one file per --output path.
package multi

import (
	"context"
	"errors"
	"fmt"

	"github.com/buckeye43210/pyPERM/internal/model"
	"github.com/buckeye43210/pyPERM/internal/output"
)

// pather is implemented by destinations backed by a file.
type pather interface {
	Path() string
}

// Multi renders the same tree into every destination, in order. A failing
// destination does not stop the others; a cancelled context does.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi over outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write hands tree to each destination and joins their errors. File-backed
// destinations are named in their error.
func (m *Multi) Write(ctx context.Context, tree *model.Tree) error {
	var errs []error
	for _, o := range m.outputs {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if err := o.Write(ctx, tree); err != nil {
			if p, ok := o.(pather); ok {
				err = fmt.Errorf("%s: %w", p.Path(), err)
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every destination.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
