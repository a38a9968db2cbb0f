// Package structured encodes a decision tree as JSON or YAML for other tools.
package structured

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/buckeye43210/pyPERM/internal/model"
)

// Renderer encodes the tree in one machine-readable format.
type Renderer struct {
	yaml   bool
	indent bool
}

// JSON returns a JSON Renderer, indented with two spaces when indent is set.
func JSON(indent bool) *Renderer {
	return &Renderer{indent: indent}
}

// YAML returns a YAML Renderer.
func YAML() *Renderer {
	return &Renderer{yaml: true}
}

func (r *Renderer) Render(w io.Writer, t *model.Tree) error {
	if r.yaml {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("yaml output: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	if r.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("json output: %w", err)
	}
	return nil
}
