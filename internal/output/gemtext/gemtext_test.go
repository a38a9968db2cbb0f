package gemtext

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buckeye43210/pyPERM/internal/engine"
	"github.com/buckeye43210/pyPERM/internal/engine/testdata"
	"github.com/buckeye43210/pyPERM/internal/model"
)

func sampleTree(t *testing.T) *model.Tree {
	t.Helper()
	eng := engine.New(engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	tree, _, err := eng.Process(engine.Documents{
		Attributes: testdata.Reader(testdata.AttributesFile),
		Categories: testdata.Reader(testdata.CategoriesFile),
		Priorities: testdata.Reader(testdata.PrioritiesFile),
	})
	require.NoError(t, err)
	return tree
}

func TestRenderMatchesGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("").Render(&buf, sampleTree(t)))

	assert.Equal(t, testdata.Read(testdata.GemtextGolden), buf.String())
}

func TestRenderLayout(t *testing.T) {
	tree := &model.Tree{Title: "T", Groups: []model.Group{{
		Title: "G",
		Branches: []*model.Branch{{Label: "top", Children: []*model.Branch{
			{Label: "mid", Children: []*model.Branch{model.Leaf("Deep One")}},
			model.Leaf("Shallow"),
		}}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, New("gemini://example.org/i/").Render(&buf, tree))

	want := strings.Join([]string{
		"# T",
		"",
		"## G",
		"* top",
		"  * mid",
		"      => gemini://example.org/i/Deep%20One Deep One",
		"    => gemini://example.org/i/Shallow Shallow",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestLinkEscapesLabel(t *testing.T) {
	r := New("")
	assert.Equal(t, "gemini://localhost/item/Root%20Beer", r.Link("Root Beer"))
	assert.Equal(t, "gemini://localhost/item/a%2Fb", r.Link("a/b"))
}
