package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lowpoint/grid"
)

func TestCell_Step(t *testing.T) {
	c := grid.Cell{Row: 2, Col: 2}
	want := []grid.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 3}, {Row: 1, Col: 2}, {Row: 3, Col: 2}}
	for i, d := range grid.Orthogonal {
		assert.Equal(t, want[i], c.Step(d))
		assert.True(t, c.Adjacent(c.Step(d)))
	}
}

func TestCell_Manhattan(t *testing.T) {
	a := grid.Cell{Row: 0, Col: 3}
	b := grid.Cell{Row: 1, Col: 1}
	assert.Equal(t, 3, a.Manhattan(b))
	assert.Equal(t, 3, b.Manhattan(a))
	assert.Equal(t, 0, a.Manhattan(a))
	assert.False(t, a.Adjacent(b))
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "R1, C0", grid.Cell{Row: 1, Col: 0}.String())
}
