package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/buckeye43210/pyPERM/internal/output/gemtext"
	"github.com/buckeye43210/pyPERM/internal/output/structured"
	"github.com/buckeye43210/pyPERM/internal/output/styled"
	"github.com/buckeye43210/pyPERM/internal/output/text"
)

// Format names a rendering style.
type Format string

const (
	FormatText    Format = "text"    // tab-indented plain text
	FormatGemtext Format = "gemtext" // bullets and gemini links
	FormatStyled  Format = "styled"  // colored terminal tree
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// ErrUnknownFormat is returned for format names perm does not render.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatGemtext, FormatStyled, FormatJSON, FormatYAML}
}

// ParseFormat converts a case-insensitive format name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want text, gemtext, styled, json or yaml)", ErrUnknownFormat, s)
}

// FormatForPath infers a format from a file extension, returning fallback
// when the extension implies none.
func FormatForPath(path string, fallback Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return FormatText
	case ".gmi", ".gemini":
		return FormatGemtext
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return fallback
	}
}

// Options tune individual renderers.
type Options struct {
	GemtextBase string // link prefix for gemtext leaves
	Indent      bool   // pretty-print json
}

// NewRenderer returns the renderer for f.
func NewRenderer(f Format, opts Options) (Renderer, error) {
	switch f {
	case FormatText:
		return text.New(), nil
	case FormatGemtext:
		return gemtext.New(opts.GemtextBase), nil
	case FormatStyled:
		return styled.New(), nil
	case FormatJSON:
		return structured.JSON(opts.Indent), nil
	case FormatYAML:
		return structured.YAML(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
}
