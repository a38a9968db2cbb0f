package stdout

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buckeye43210/pyPERM/internal/model"
	"github.com/buckeye43210/pyPERM/internal/output/text"
)

func testTree() *model.Tree {
	return &model.Tree{Title: "Finder", Groups: []model.Group{{
		Title:    "By color",
		Branches: []*model.Branch{{Label: "X:blue", Children: []*model.Branch{model.Leaf("C")}}},
	}}}
}

func TestWriteRendersToWriter(t *testing.T) {
	var buf bytes.Buffer
	out := New(text.New(), WithWriter(&buf))

	require.NoError(t, out.Write(context.Background(), testTree()))
	require.NoError(t, out.Close())

	assert.Equal(t, "Finder\n\tBy color\n\t\tX:blue\n\t\t\tC\n\n", buf.String())
}

func TestWriteHonoursCancellation(t *testing.T) {
	var buf bytes.Buffer
	out := New(text.New(), WithWriter(&buf))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := out.Write(ctx, testTree())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len(), "nothing may be written after cancellation")
}

type failingRenderer struct{}

func (failingRenderer) Render(io.Writer, *model.Tree) error { return errors.New("boom") }

func TestWriteWrapsRenderErrors(t *testing.T) {
	out := New(failingRenderer{}, WithWriter(io.Discard))

	err := out.Write(context.Background(), testTree())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdout output: boom")
}
