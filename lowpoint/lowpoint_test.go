package lowpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowpoint/grid"
	"github.com/katalvlaran/lowpoint/lowpoint"
)

// sampleMap is the 4×4 reference map:
//
//	      C0  C1  C2  C3
//	  R0  67  72  93   5
//	  R1  38  53  71  48
//	  R2  64  56  52  44
//	  R3  44  51  57  49
func sampleMap(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New([][]int{
		{67, 72, 93, 5},
		{38, 53, 71, 48},
		{64, 56, 52, 44},
		{44, 51, 57, 49},
	})
	require.NoError(t, err)
	return g
}

func TestFindLowestPoint_SampleMap(t *testing.T) {
	g := sampleMap(t)
	cases := []struct {
		name       string
		start      grid.Cell
		want       grid.Cell
		wantAlt    int
		wantDrops  []int
		wantLength int
	}{
		// 72→53→38 (drops 19,15) beats 72→67→38 (drops 5,29) at the first step.
		{"R0C1", grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 1, Col: 0}, 38, []int{19, 15}, 3},
		{"R1C3", grid.Cell{Row: 1, Col: 3}, grid.Cell{Row: 0, Col: 3}, 5, []int{43}, 2},
		// 57→49→44 beats 57→51→44 and 57→52→44 at the point of divergence.
		{"R3C2", grid.Cell{Row: 3, Col: 2}, grid.Cell{Row: 2, Col: 3}, 44, []int{8, 5}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := lowpoint.FindLowestPoint(g, tc.start.Row, tc.start.Col)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Cell)
			assert.Equal(t, tc.want.Row, res.Row())
			assert.Equal(t, tc.want.Col, res.Col())
			assert.Equal(t, tc.wantAlt, res.Altitude)
			assert.Equal(t, tc.wantDrops, res.Drops)
			assert.Len(t, res.Path, tc.wantLength)
			assert.Equal(t, tc.start, res.Start)
			assert.Equal(t, tc.start, res.Path[0])
			assert.Equal(t, tc.want, res.Path[len(res.Path)-1])
		})
	}
}

func TestFindLowestPoint_NilGrid(t *testing.T) {
	res, err := lowpoint.FindLowestPoint(nil, 0, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, lowpoint.ErrNilGrid)
}

func TestFindLowestPoint_InvalidStart(t *testing.T) {
	g := sampleMap(t)
	for _, rc := range [][2]int{{4, 0}, {0, 4}, {-1, 0}, {0, -1}} {
		called := false
		res, err := lowpoint.FindLowestPoint(g, rc[0], rc[1],
			lowpoint.WithOnTerminal(func(lowpoint.Candidate) { called = true }))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, lowpoint.ErrInvalidStart, "start (%d,%d)", rc[0], rc[1])
		assert.False(t, called, "no traversal may happen for an invalid start")
	}
}

// TestFindLowestPoint_IsolatedMinimum checks that a start lower than all its
// neighbours is its own answer with an empty drop sequence.
func TestFindLowestPoint_IsolatedMinimum(t *testing.T) {
	g := grid.MustNew([][]int{
		{9, 9, 9},
		{9, 1, 9},
		{9, 9, 9},
	})
	res, err := lowpoint.FindLowestPoint(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 1, Col: 1}, res.Cell)
	assert.Equal(t, 1, res.Altitude)
	assert.NotNil(t, res.Drops)
	assert.Empty(t, res.Drops)
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}}, res.Path)
	assert.Equal(t, 1, res.Terminals)
	assert.Equal(t, 0, res.Steps)
}

func TestFindLowestPoint_SingleCell(t *testing.T) {
	g := grid.MustNew([][]int{{42}})
	res, err := lowpoint.FindLowestPoint(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{}, res.Cell)
	assert.Equal(t, 42, res.Altitude)
	assert.Empty(t, res.Drops)
}

// TestFindLowestPoint_PlateauKeepsStart covers the prefix rule: a terminal at
// the start's altitude reached by lateral moves has drops [0], of which the
// start's empty sequence is a prefix, so the start is kept.
func TestFindLowestPoint_PlateauKeepsStart(t *testing.T) {
	g := grid.MustNew([][]int{{5, 5}})
	res, err := lowpoint.FindLowestPoint(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, res.Cell)
	assert.Empty(t, res.Drops)
	assert.Equal(t, 1, res.Terminals)
}

// TestFindLowestPoint_FirstFoundWins checks that a full tie (equal altitude,
// drops and distance) keeps the candidate found first; left is explored first.
func TestFindLowestPoint_FirstFoundWins(t *testing.T) {
	g := grid.MustNew([][]int{{1, 5, 9, 5, 1}})
	res, err := lowpoint.FindLowestPoint(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, res.Cell)
	assert.Equal(t, []int{4, 4}, res.Drops)
	assert.Equal(t, 2, res.Terminals)
}

// TestFindLowestPoint_RevisitAcrossPaths verifies that visitation is scoped to
// the current path: a cell used by one path is available to a later one.
func TestFindLowestPoint_RevisitAcrossPaths(t *testing.T) {
	g := grid.MustNew([][]int{
		{9, 7},
		{8, 1},
	})
	var terminals []grid.Cell
	res, err := lowpoint.FindLowestPoint(g, 0, 0, lowpoint.WithOnTerminal(func(c lowpoint.Candidate) {
		terminals = append(terminals, c.Cell)
	}))
	require.NoError(t, err)
	// (1,1) is reached via (0,1) and again via (1,0).
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 1}}, terminals)
	// 9→8→1 (drops 1,7) loses to 9→7→1 (drops 2,6).
	assert.Equal(t, []int{2, 6}, res.Drops)
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}, res.Path)
	assert.Equal(t, 4, res.Steps)
}

func TestFindLowestPoint_OnTerminalSeesDrops(t *testing.T) {
	g := sampleMap(t)
	var seen [][]int
	_, err := lowpoint.FindLowestPoint(g, 3, 2, lowpoint.WithOnTerminal(func(c lowpoint.Candidate) {
		assert.Equal(t, 44, c.Altitude)
		assert.Equal(t, c.Cell.Manhattan(grid.Cell{Row: 3, Col: 2}), c.Distance)
		seen = append(seen, append([]int(nil), c.Drops...))
	}))
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{6, 7}, {8, 5}, {5, 8}}, seen)
}

func TestFindLowestPoint_TieBreakOptionAccepted(t *testing.T) {
	g := sampleMap(t)
	a, err := lowpoint.FindLowestPoint(g, 0, 1, lowpoint.WithTieBreak(lowpoint.RowThenColumn))
	require.NoError(t, err)
	b, err := lowpoint.FindLowestPoint(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, b.Cell, a.Cell)
}

func TestResult_Clone(t *testing.T) {
	res, err := lowpoint.FindLowestPoint(sampleMap(t), 0, 1)
	require.NoError(t, err)
	cp := res.Clone()
	require.Equal(t, res, cp)
	cp.Drops[0] = -1
	cp.Path[0] = grid.Cell{Row: 9, Col: 9}
	assert.Equal(t, 19, res.Drops[0])
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, res.Path[0])

	var nilRes *lowpoint.Result
	assert.Nil(t, nilRes.Clone())
}

func TestParseTieBreak(t *testing.T) {
	for _, rule := range []lowpoint.TieBreak{lowpoint.Manhattan, lowpoint.RowThenColumn} {
		got, err := lowpoint.ParseTieBreak(rule.String())
		require.NoError(t, err)
		assert.Equal(t, rule, got)
	}
	got, err := lowpoint.ParseTieBreak("")
	require.NoError(t, err)
	assert.Equal(t, lowpoint.Manhattan, got)

	_, err = lowpoint.ParseTieBreak("euclid")
	assert.ErrorIs(t, err, lowpoint.ErrUnknownTieBreak)
	assert.Equal(t, "unknown", lowpoint.TieBreak(7).String())
}
