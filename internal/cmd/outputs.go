package cmd

import (
	"io"

	"github.com/buckeye43210/pyPERM/internal/config"
	"github.com/buckeye43210/pyPERM/internal/output"
	"github.com/buckeye43210/pyPERM/internal/output/file"
	"github.com/buckeye43210/pyPERM/internal/output/multi"
	"github.com/buckeye43210/pyPERM/internal/output/stdout"
)

// newOutput assembles the destinations: stdout when no paths are given,
// otherwise one file per path plus stdout if requested.
func newOutput(cfg config.OutputConfig, w io.Writer) (output.Output, error) {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	opts := output.Options{GemtextBase: cfg.GemtextBase, Indent: cfg.Indent}

	var outs []output.Output
	if len(cfg.Paths) == 0 || cfg.Stdout {
		r, err := output.NewRenderer(format, opts)
		if err != nil {
			return nil, err
		}
		outs = append(outs, stdout.New(r, stdout.WithWriter(w)))
	}
	for _, path := range cfg.Paths {
		r, err := output.NewRenderer(output.FormatForPath(path, format), opts)
		if err != nil {
			return nil, err
		}
		outs = append(outs, file.New(path, r))
	}

	if len(outs) == 1 {
		return outs[0], nil
	}
	return multi.New(outs...), nil
}
