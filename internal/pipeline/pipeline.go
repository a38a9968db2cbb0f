package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/buckeye43210/pyPERM/internal/engine"
	"github.com/buckeye43210/pyPERM/internal/model"
	"github.com/buckeye43210/pyPERM/internal/output"
	"github.com/buckeye43210/pyPERM/internal/source"
)

// Processor builds a tree from documents. *engine.Engine satisfies it.
type Processor interface {
	Process(docs engine.Documents) (*model.Tree, engine.Report, error)
}

// Pipeline connects a source, engine, and output into one build.
type Pipeline struct {
	source source.Source
	engine Processor
	output output.Output
}

// New creates a Pipeline from the given components.
func New(src source.Source, eng Processor, out output.Output) *Pipeline {
	return &Pipeline{
		source: src,
		engine: eng,
		output: out,
	}
}

// Run loads the documents, builds the tree and writes it. Nothing is written
// unless the tree was built in full.
func (p *Pipeline) Run(ctx context.Context) (rep engine.Report, err error) {
	docs, release, err := p.source.Load(ctx)
	if err != nil {
		return engine.Report{}, fmt.Errorf("pipeline load: %w", err)
	}
	defer func() {
		if rerr := release(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("pipeline release: %w", rerr))
		}
	}()

	if err := ctx.Err(); err != nil {
		return engine.Report{}, err
	}
	tree, rep, err := p.engine.Process(docs)
	if err != nil {
		return rep, fmt.Errorf("pipeline process: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	if err := p.output.Write(ctx, tree); err != nil {
		return rep, fmt.Errorf("pipeline output: %w", err)
	}
	return rep, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
