package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowpoint/grid"
)

//----------------------------------------------------------------------------//
// New and accessor tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"LongerLaterRow", [][]int{{1}, {2, 3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.values)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_Dimensions(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, 6, g.Size())

	v, err := g.AltitudeAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	v, err = g.Altitude(grid.Cell{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

// TestNew_DeepCopy ensures mutating the input after construction is not observed.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g := grid.MustNew(in)
	in[0][0] = 99

	v, err := g.AltitudeAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	out := g.Values()
	out[1][1] = -1
	v, _ = g.AltitudeAt(1, 1)
	assert.Equal(t, 4, v, "Values must return a copy")
}

func TestAltitudeAt_OutOfRange(t *testing.T) {
	g := grid.MustNew([][]int{{1, 2}, {3, 4}})
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		_, err := g.AltitudeAt(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "AltitudeAt(%d,%d)", rc[0], rc[1])
	}
}

func TestInBounds(t *testing.T) {
	g := grid.MustNew([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	assert.True(t, g.Contains(grid.Cell{Row: 1, Col: 0}))
	assert.False(t, g.Contains(grid.Cell{Row: 0, Col: 3}))
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.MustNew([][]int{{1}, {}}) })
}

//----------------------------------------------------------------------------//
// Fingerprint tests
//----------------------------------------------------------------------------//

func TestFingerprint(t *testing.T) {
	a := grid.MustNew([][]int{{1, 2}, {3, 4}})
	b := grid.MustNew([][]int{{1, 2}, {3, 4}})
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// same data, different shape
	c := grid.MustNew([][]int{{1, 2, 3, 4}})
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	d := grid.MustNew([][]int{{1, 2}, {3, 5}})
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}
