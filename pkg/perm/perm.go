package perm

import (
	"fmt"
	"io"
	"os"

	"github.com/buckeye43210/pyPERM/internal/engine"
	"github.com/buckeye43210/pyPERM/internal/engine/taxonomy"
	"github.com/buckeye43210/pyPERM/internal/output"
)

// Perm builds and renders decision trees.
type Perm struct {
	engine *engine.Engine
	render output.Options
}

// New creates a Perm instance.
func New(opts ...Option) *Perm {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := taxonomy.DocumentOrder
	if o.order == LexicalOrder {
		order = taxonomy.LexicalOrder
	}
	engOpts := []engine.Option{engine.WithOrder(order)}
	if o.logger != nil {
		engOpts = append(engOpts, engine.WithLogger(o.logger))
	}

	return &Perm{
		engine: engine.New(engOpts...),
		render: output.Options{GemtextBase: o.gemtextBase, Indent: o.indent},
	}
}

// Build parses the three documents and builds the tree. A priority group
// naming an unknown category, or naming none, is an error; other input
// problems are logged as warnings.
func (p *Perm) Build(attributes, categories, priorities io.Reader) (Tree, error) {
	t, _, err := p.engine.Process(engine.Documents{
		Attributes: attributes,
		Categories: categories,
		Priorities: priorities,
	})
	if err != nil {
		return Tree{}, fmt.Errorf("perm: %w", err)
	}
	return treeFromModel(t), nil
}

// BuildFiles is Build over files on disk.
func (p *Perm) BuildFiles(attrPath, catPath, priPath string) (Tree, error) {
	var readers [3]io.Reader
	for i, path := range []string{attrPath, catPath, priPath} {
		f, err := os.Open(path)
		if err != nil {
			return Tree{}, fmt.Errorf("perm: %w", err)
		}
		defer f.Close()
		readers[i] = f
	}
	return p.Build(readers[0], readers[1], readers[2])
}

// Render writes tree to w in format: "text", "gemtext", "styled", "json"
// or "yaml".
func (p *Perm) Render(w io.Writer, tree Tree, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("perm: %w", err)
	}
	r, err := output.NewRenderer(f, p.render)
	if err != nil {
		return fmt.Errorf("perm: %w", err)
	}
	return r.Render(w, tree.toModel())
}

// Formats lists the format names Render accepts.
func Formats() []string {
	fs := output.Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return names
}

