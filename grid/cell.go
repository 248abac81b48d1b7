package grid

import "fmt"

// Cell is a 0-indexed (Row, Col) coordinate.
type Cell struct {
	Row, Col int
}

// String formats the cell the way results are reported: "R<row>, C<col>".
func (c Cell) String() string {
	return fmt.Sprintf("R%d, C%d", c.Row, c.Col)
}

// Step returns the cell one unit away in direction d. The result may lie
// outside any particular grid.
func (c Cell) Step(d Direction) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether o is one orthogonal step away from c.
func (c Cell) Adjacent(o Cell) bool {
	return c.Manhattan(o) == 1
}

// Direction is a unit step along a single axis.
type Direction struct{ DRow, DCol int }

var (
	Left  = Direction{DCol: -1}
	Right = Direction{DCol: +1}
	Up    = Direction{DRow: -1}
	Down  = Direction{DRow: +1}
)

// Orthogonal lists the four neighbour directions in the fixed visiting order
// used by searches: left, right, up, down.
var Orthogonal = [4]Direction{Left, Right, Up, Down}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
