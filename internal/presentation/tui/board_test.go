package tui_test

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/presentation/tui"
)

func plainOutput(buf *strings.Builder) *termenv.Output {
	return termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
}

func TestRenderGrid_Plain(t *testing.T) {
	g, err := lattice.New[string](3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Put(0, 0, "rook"))
	require.NoError(t, g.Put(2, 1, "knight"))

	var buf strings.Builder
	require.NoError(t, tui.RenderGrid(plainOutput(&buf), g, 0))

	assert.Equal(t, "r . . \n. . k \n", buf.String())
}

func TestRenderGrid_EmptyGrid(t *testing.T) {
	g, err := lattice.New[string](2, 2)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, tui.RenderGrid(plainOutput(&buf), g, 0))

	assert.Equal(t, ". . \n. . \n", buf.String())
}

func TestRenderGrid_Clamped(t *testing.T) {
	g, err := lattice.New[string](10, 1)
	require.NoError(t, err)
	require.NoError(t, g.Put(0, 0, "x"))

	var buf strings.Builder
	require.NoError(t, tui.RenderGrid(plainOutput(&buf), g, 8))

	assert.Equal(t, "x . . . …\n", buf.String())
}
