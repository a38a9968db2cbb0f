package stdout

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/buckeye43210/pyPERM/internal/model"
	"github.com/buckeye43210/pyPERM/internal/output"
)

// Output renders trees to stdout.
type Output struct {
	w        io.Writer
	renderer output.Renderer
}

// Option configures a stdout Output.
type Option func(*Output)

// WithWriter replaces os.Stdout, for tests and embedding.
func WithWriter(w io.Writer) Option {
	return func(o *Output) { o.w = w }
}

// New creates a stdout Output using r.
func New(r output.Renderer, opts ...Option) *Output {
	o := &Output{w: os.Stdout, renderer: r}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Output) Write(ctx context.Context, tree *model.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.renderer.Render(o.w, tree); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
