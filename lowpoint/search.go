package lowpoint

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lowpoint/grid"
)

// frame is one entry of the explicit traversal stack.
type frame struct {
	cell  grid.Cell
	alt   int
	next  int  // index into grid.Orthogonal of the next neighbour to try
	moved bool // a qualifying neighbour was found
}

// searcher encapsulates the state of a single FindLowestPoint call.
type searcher struct {
	g     *grid.Grid
	opts  Options
	start grid.Cell

	visited []bool      // per-path marker, row-major
	stack   []frame     // cells of the current path with iteration state
	drops   []int       // drop sequence of the current path
	path    []grid.Cell // cells of the current path

	best     Candidate
	bestPath []grid.Cell

	terminals, steps int
}

// FindLowestPoint returns the lowest cell reachable from (startRow, startCol)
// by orthogonal steps to cells of equal or lower altitude, never revisiting a
// cell within one path. See Better for how ties are resolved.
//
// The start cell itself is the initial best, so a result is returned even
// when no downhill move exists.
//
// Returns ErrNilGrid if g is nil and ErrInvalidStart if the start lies outside
// the grid; in both cases nothing is traversed.
func FindLowestPoint(g *grid.Grid, startRow, startCol int, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(startRow, startCol) {
		return nil, errors.Wrapf(ErrInvalidStart, "(%d,%d) in %dx%d grid",
			startRow, startCol, g.Rows(), g.Columns())
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Seed the best candidate with the start cell
	start := grid.Cell{Row: startRow, Col: startCol}
	alt, err := g.Altitude(start)
	if err != nil {
		return nil, err
	}
	s := &searcher{
		g:       g,
		opts:    o,
		start:   start,
		visited: make([]bool, g.Size()),
		best: Candidate{
			Cell:     start,
			Altitude: alt,
			Drops:    make([]int, 0),
		},
		bestPath: []grid.Cell{start},
	}

	// 4. Traverse every maximal path
	if err = s.walk(alt); err != nil {
		return nil, err
	}

	// 5. Hand the caller its own copies
	return &Result{
		Start:     start,
		Cell:      s.best.Cell,
		Altitude:  s.best.Altitude,
		Drops:     append([]int{}, s.best.Drops...),
		Path:      append([]grid.Cell{}, s.bestPath...),
		Terminals: s.terminals,
		Steps:     s.steps,
	}, nil
}

// walk runs the depth-first backtracking loop from the start cell.
func (s *searcher) walk(startAlt int) error {
	s.push(s.start, startAlt)

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]

		if top.next < len(grid.Orthogonal) {
			n := top.cell.Step(grid.Orthogonal[top.next])
			top.next++

			if !s.g.Contains(n) || s.visited[s.g.Index(n.Row, n.Col)] {
				continue
			}
			alt, err := s.g.Altitude(n)
			if err != nil {
				return err
			}
			if alt > top.alt {
				continue
			}

			top.moved = true
			s.drops = append(s.drops, top.alt-alt)
			s.steps++
			s.push(n, alt) // invalidates top
			continue
		}

		// All neighbours tried: a dead end is a terminal for this path.
		if !top.moved {
			s.consider(top.cell, top.alt)
		}
		s.pop()
	}

	return nil
}

func (s *searcher) push(c grid.Cell, alt int) {
	s.visited[s.g.Index(c.Row, c.Col)] = true
	s.stack = append(s.stack, frame{cell: c, alt: alt})
	s.path = append(s.path, c)
}

func (s *searcher) pop() {
	top := s.stack[len(s.stack)-1]
	s.visited[s.g.Index(top.cell.Row, top.cell.Col)] = false
	s.stack = s.stack[:len(s.stack)-1]
	s.path = s.path[:len(s.path)-1]
	if len(s.drops) > 0 {
		s.drops = s.drops[:len(s.drops)-1]
	}
}

// consider evaluates a terminal cell reached by the current path.
func (s *searcher) consider(c grid.Cell, alt int) {
	s.terminals++
	cand := Candidate{
		Cell:     c,
		Altitude: alt,
		Drops:    s.drops,
		Distance: c.Manhattan(s.start),
	}
	if s.opts.OnTerminal != nil {
		s.opts.OnTerminal(cand)
	}
	if !Better(cand, s.best, s.start, s.opts.TieBreak) {
		return
	}

	s.best.Cell = c
	s.best.Altitude = alt
	s.best.Drops = append(s.best.Drops[:0], s.drops...)
	s.best.Distance = cand.Distance
	s.bestPath = append(s.bestPath[:0], s.path...)
}
