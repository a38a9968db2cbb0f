package engine

import (
	"io"
	"log/slog"

	"github.com/buckeye43210/pyPERM/internal/engine/builder"
	"github.com/buckeye43210/pyPERM/internal/engine/taxonomy"
	"github.com/buckeye43210/pyPERM/internal/model"
	"github.com/buckeye43210/pyPERM/internal/outline"
)

// Documents are the three inputs a tree is built from.
type Documents struct {
	Attributes io.Reader
	Categories io.Reader
	Priorities io.Reader
}

// Report summarizes one Process call. Unresolved, DuplicateNames and
// Overlaps describe input problems that did not stop construction.
type Report struct {
	Items          int
	Values         int
	Categories     int
	Inferred       int
	Groups         int
	Branches       int
	Leaves         int
	Unresolved     []string
	DuplicateNames []string
	Overlaps       []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithOrder sets the order of sibling branches. Default: taxonomy.DocumentOrder.
func WithOrder(o taxonomy.Order) Option {
	return func(e *Engine) { e.order = o }
}

// WithLogger sets the logger warnings are reported to. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine orchestrates the parse → partition → build pipeline.
type Engine struct {
	order  taxonomy.Order
	logger *slog.Logger
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{order: taxonomy.DocumentOrder}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Process parses the documents and builds the decision tree.
func (e *Engine) Process(docs Documents) (*model.Tree, Report, error) {
	catalog, err := outline.ParseAttributes(docs.Attributes)
	if err != nil {
		return nil, Report{}, err
	}
	cats, err := outline.ParseCategories(docs.Categories)
	if err != nil {
		return nil, Report{}, err
	}
	prio, err := outline.ParsePriorities(docs.Priorities)
	if err != nil {
		return nil, Report{}, err
	}
	return e.Build(catalog, cats, prio)
}

// Build resolves the partition and builds the tree from already parsed input.
func (e *Engine) Build(catalog model.Catalog, cats model.Categories, prio model.Priority) (*model.Tree, Report, error) {
	tax := taxonomy.New(cats, catalog, e.order)
	rep := Report{
		Items:          len(catalog.Items),
		Values:         len(catalog.Values()),
		Categories:     len(tax.Names()),
		Inferred:       len(tax.Inferred()),
		Groups:         len(prio.Groups),
		Unresolved:     tax.Unresolved(),
		DuplicateNames: catalog.DuplicateNames(),
		Overlaps:       tax.Overlaps(),
	}
	e.warn(tax, rep)

	tree, err := builder.New(catalog, tax).Build(prio)
	if err != nil {
		return nil, rep, err
	}
	rep.Branches, rep.Leaves = tree.Stats()

	e.logger.Debug("decision tree built",
		"title", tree.Title,
		"items", rep.Items,
		"categories", rep.Categories,
		"inferred", rep.Inferred,
		"groups", rep.Groups,
		"branches", rep.Branches,
		"leaves", rep.Leaves,
		"order", e.order.String(),
	)
	return tree, rep, nil
}

func (e *Engine) warn(tax *taxonomy.Taxonomy, rep Report) {
	for _, v := range rep.Unresolved {
		e.logger.Warn("attribute value belongs to no category, ignoring it", "value", v)
	}
	for _, n := range rep.DuplicateNames {
		e.logger.Warn("duplicate item name, leaf labels will collide", "item", n)
	}
	for _, v := range rep.Overlaps {
		first, _ := tax.CategoryOf(v)
		e.logger.Warn("value listed under several categories", "value", v, "first", first)
	}
}
