package grid

import (
	"encoding/binary"

	"github.com/dgryski/go-farm"
	"github.com/pkg/errors"
)

// Grid is an immutable rectangular array of integer altitudes.
// data holds rows*cols values in row-major order.
type Grid struct {
	rows, cols int
	data       []int
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to values are not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d columns, want %d", r, len(row), cols)
		}
	}
	data := make([]int, 0, rows*cols)
	for _, row := range values {
		data = append(data, row...)
	}

	return &Grid{rows: rows, cols: cols, data: data}, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(values [][]int) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether c lies within the grid.
func (g *Grid) Contains(c Cell) bool {
	return g.InBounds(c.Row, c.Col)
}

// AltitudeAt returns the altitude stored at (row, col).
// Returns ErrOutOfRange for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) AltitudeAt(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfRange, "(%d,%d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.data[g.Index(row, col)], nil
}

// Altitude is AltitudeAt for a Cell.
func (g *Grid) Altitude(c Cell) (int, error) {
	return g.AltitudeAt(c.Row, c.Col)
}

// Index maps (row, col) to its row-major offset. The caller guarantees bounds.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Size returns Rows()*Columns().
func (g *Grid) Size() int { return len(g.data) }

// Values returns a deep copy of the altitudes as a 2D slice.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.data[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Fingerprint returns a 64-bit farm hash of the dimensions and altitudes.
// Equal grids always share a fingerprint.
// Complexity: O(R×C).
func (g *Grid) Fingerprint() uint64 {
	buf := make([]byte, 0, 8*(len(g.data)+2))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.rows))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.cols))
	for _, v := range g.data {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
	}
	return farm.Fingerprint64(buf)
}
