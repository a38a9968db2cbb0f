// Package testdata embeds a small drinks catalog with the documents needed to
// build its decision tree, plus the expected renderings.
package testdata

import (
	"embed"
	"strings"
)

// File names inside FS.
const (
	AttributesFile = "attributes.txt"
	CategoriesFile = "categories.txt"
	PrioritiesFile = "priorities.txt"
	TextGolden     = "expected_text.golden"
	GemtextGolden  = "expected_gemtext.golden"
)

//go:embed *.txt *.golden
var FS embed.FS

// Read returns the named embedded file. It panics on unknown names.
func Read(name string) string {
	b, err := FS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// Reader returns a reader over the named embedded file.
func Reader(name string) *strings.Reader {
	return strings.NewReader(Read(name))
}
