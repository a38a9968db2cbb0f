package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/buckeye43210/pyPERM/internal/model"
	"github.com/buckeye43210/pyPERM/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Output.
type Option func(*Output)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// WithPerm sets the mode of the written file. Default: 0644.
func WithPerm(mode os.FileMode) Option {
	return func(o *Output) { o.perm = mode }
}

// Output writes a rendered tree to a file. The tree is rendered into a
// temporary file in the same directory and renamed over path, so a failed
// render never leaves a truncated file behind.
type Output struct {
	path     string
	renderer output.Renderer
	bufSize  int
	perm     os.FileMode
}

// New creates a file output that renders trees to path.
func New(path string, r output.Renderer, opts ...Option) *Output {
	o := &Output{
		path:     path,
		renderer: r,
		bufSize:  defaultBufSize,
		perm:     0644,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Path returns the destination path.
func (o *Output) Path() string {
	return o.path
}

// Write renders the tree and replaces the file's contents with it.
func (o *Output) Write(ctx context.Context, tree *model.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(o.path), "."+filepath.Base(o.path)+".*")
	if err != nil {
		return fmt.Errorf("file output: create %s: %w", o.path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	w := bufio.NewWriterSize(tmp, o.bufSize)
	if err := o.renderer.Render(w, tree); err != nil {
		tmp.Close()
		return fmt.Errorf("file output: render %s: %w", o.path, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("file output: flush %s: %w", o.path, err)
	}
	if err := tmp.Chmod(o.perm); err != nil {
		tmp.Close()
		return fmt.Errorf("file output: chmod %s: %w", o.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file output: close %s: %w", o.path, err)
	}
	if err := os.Rename(tmp.Name(), o.path); err != nil {
		return fmt.Errorf("file output: rename %s: %w", o.path, err)
	}
	return nil
}

// Close is a no-op; every Write completes its file.
func (o *Output) Close() error {
	return nil
}
