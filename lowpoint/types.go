package lowpoint

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lowpoint/grid"
)

var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to FindLowestPoint.
	ErrNilGrid = errors.New("lowpoint: grid is nil")

	// ErrInvalidStart indicates that the start coordinate lies outside the grid.
	// No traversal is performed.
	ErrInvalidStart = errors.New("lowpoint: start cell out of range")

	// ErrUnknownTieBreak indicates an unrecognised tie-break rule name.
	ErrUnknownTieBreak = errors.New("lowpoint: unknown tie-break rule")
)

// TieBreak selects how two candidates with equal altitude and identical drop
// sequences are ordered by their position relative to the start cell.
type TieBreak int

const (
	// Manhattan prefers the smaller |Δrow| + |Δcol|.
	Manhattan TieBreak = iota
	// RowThenColumn prefers the smaller |Δrow|, then the smaller |Δcol|.
	RowThenColumn
)

// String returns the configuration name of the rule.
func (t TieBreak) String() string {
	switch t {
	case Manhattan:
		return "manhattan"
	case RowThenColumn:
		return "row-then-column"
	default:
		return "unknown"
	}
}

// ParseTieBreak maps a configuration name back to its rule.
func ParseTieBreak(name string) (TieBreak, error) {
	switch name {
	case "", "manhattan":
		return Manhattan, nil
	case "row-then-column":
		return RowThenColumn, nil
	default:
		return Manhattan, errors.Wrapf(ErrUnknownTieBreak, "%q", name)
	}
}

// closer reports whether a is strictly closer to start than b under t.
func (t TieBreak) closer(a, b, start grid.Cell) bool {
	if t == RowThenColumn {
		ra, rb := absInt(a.Row-start.Row), absInt(b.Row-start.Row)
		if ra != rb {
			return ra < rb
		}
		return absInt(a.Col-start.Col) < absInt(b.Col-start.Col)
	}
	return a.Manhattan(start) < b.Manhattan(start)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Option configures optional behaviour of FindLowestPoint.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// TieBreak orders candidates that tie on altitude and drop sequence.
	TieBreak TieBreak

	// OnTerminal, if non-nil, is invoked for every terminal candidate before it
	// is compared with the current best. The candidate's slices are only valid
	// for the duration of the call.
	OnTerminal func(c Candidate)
}

// DefaultOptions returns Options with the Manhattan rule and no hooks.
func DefaultOptions() Options {
	return Options{
		TieBreak:   Manhattan,
		OnTerminal: nil,
	}
}

// WithTieBreak returns an Option that selects the distance rule.
func WithTieBreak(rule TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = rule
	}
}

// WithOnTerminal returns an Option that installs fn as the terminal hook.
func WithOnTerminal(fn func(c Candidate)) Option {
	return func(o *Options) {
		o.OnTerminal = fn
	}
}

// Candidate is a terminal cell reached by some path from the start.
type Candidate struct {
	Cell     grid.Cell
	Altitude int

	// Drops[i] is the altitude decrease of step i along the path (always ≥ 0).
	Drops []int

	// Distance is the Manhattan distance from the start cell.
	Distance int
}

// Result is the outcome of FindLowestPoint. It is owned by the caller.
type Result struct {
	// Start is the query's start cell.
	Start grid.Cell

	// Cell is the winning terminal cell; Altitude its altitude.
	Cell     grid.Cell
	Altitude int

	// Drops is the drop sequence of the winning path; empty when the start
	// cell itself wins.
	Drops []int

	// Path lists the cells of the winning path, Start first and Cell last.
	Path []grid.Cell

	// Terminals counts terminal candidates evaluated; Steps counts the
	// downhill moves taken across all explored paths.
	Terminals int
	Steps     int
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.Drops = append(make([]int, 0, len(r.Drops)), r.Drops...)
	out.Path = append(make([]grid.Cell, 0, len(r.Path)), r.Path...)
	return &out
}

// Row returns the winning row.
func (r *Result) Row() int { return r.Cell.Row }

// Col returns the winning column.
func (r *Result) Col() int { return r.Cell.Col }
