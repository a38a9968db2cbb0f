// Package source loads the three outline documents a decision tree is built from.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/buckeye43210/pyPERM/internal/engine"
)

// Source defines the interface for document providers.
type Source interface {
	// Load returns the documents and a release func the caller runs once
	// the documents have been consumed.
	Load(ctx context.Context) (engine.Documents, func() error, error)
}

// Files reads the documents from named files. When FS is nil the paths are
// opened on the local disk.
type Files struct {
	Attributes string
	Categories string
	Priorities string
	FS         fs.FS
}

// Load reads all three files up front so a missing one fails before any work.
func (f Files) Load(ctx context.Context) (engine.Documents, func() error, error) {
	targets := []struct {
		role string
		path string
	}{
		{"attributes", f.Attributes},
		{"categories", f.Categories},
		{"priorities", f.Priorities},
	}

	data := make([][]byte, len(targets))
	for i, t := range targets {
		if err := ctx.Err(); err != nil {
			return engine.Documents{}, nil, err
		}
		b, err := f.read(t.path)
		if err != nil {
			return engine.Documents{}, nil, fmt.Errorf("source: %s file %q: %w", t.role, t.path, err)
		}
		data[i] = b
	}

	docs := engine.Documents{
		Attributes: bytes.NewReader(data[0]),
		Categories: bytes.NewReader(data[1]),
		Priorities: bytes.NewReader(data[2]),
	}
	return docs, func() error { return nil }, nil
}

func (f Files) read(path string) ([]byte, error) {
	if f.FS != nil {
		return fs.ReadFile(f.FS, path)
	}
	return os.ReadFile(path)
}
