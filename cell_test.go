package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/lattice"
)

func TestCell_ZeroValueIsAbsent(t *testing.T) {
	var c lattice.Cell[string]
	assert.False(t, c.HasValue())

	v, ok := c.Value()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestCell_SomeAndNone(t *testing.T) {
	some := lattice.Some(13)
	assert.True(t, some.HasValue())
	v, ok := some.Value()
	assert.True(t, ok)
	assert.Equal(t, 13, v)

	none := lattice.None[int]()
	assert.False(t, none.HasValue())
	v, ok = none.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
}
