package perm

import "log/slog"

// Order selects how sibling branches are ordered.
type Order int

const (
	// DocumentOrder follows the categories document, with inferred values
	// after the listed ones.
	DocumentOrder Order = iota
	// LexicalOrder sorts sibling values by label.
	LexicalOrder
)

type options struct {
	order       Order
	logger      *slog.Logger
	gemtextBase string
	indent      bool
}

// Option configures a Perm instance.
type Option func(*options)

// WithOrder sets the sibling order. Default: DocumentOrder.
func WithOrder(o Order) Option {
	return func(opts *options) {
		opts.order = o
	}
}

// WithLogger sets the logger input warnings go to. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

// WithGemtextBase sets the prefix of gemtext leaf links.
// Default: "gemini://localhost/item/".
func WithGemtextBase(base string) Option {
	return func(opts *options) {
		opts.gemtextBase = base
	}
}

// WithIndent toggles pretty-printed JSON. Default: true.
func WithIndent(indent bool) Option {
	return func(opts *options) {
		opts.indent = indent
	}
}

func defaultOptions() options {
	return options{
		order:  DocumentOrder,
		indent: true,
	}
}
