// Package render formats grids and search results for terminals.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lowpoint/grid"
	"github.com/katalvlaran/lowpoint/lowpoint"
)

const cellWidth = 4

// Styles used by Highlight.
var (
	StartStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	PathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	TargetStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	LabelStyle  = lipgloss.NewStyle().Faint(true)
)

// Map writes g as a table with "C<i>" column headers and "R<i>" row labels,
// each padded to four characters.
func Map(w io.Writer, g *grid.Grid) error {
	return writeMap(w, g, func(_ grid.Cell, s string) string { return s }, func(s string) string { return s })
}

// Highlight writes g like Map, styling the start cell, the winning path and
// the winning cell of res.
func Highlight(w io.Writer, g *grid.Grid, res *lowpoint.Result) error {
	onPath := make(map[grid.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}
	style := func(c grid.Cell, s string) string {
		switch {
		case c == res.Cell:
			return TargetStyle.Render(s)
		case c == res.Start:
			return StartStyle.Render(s)
		case onPath[c]:
			return PathStyle.Render(s)
		default:
			return s
		}
	}
	return writeMap(w, g, style, func(s string) string { return LabelStyle.Render(s) })
}

func writeMap(w io.Writer, g *grid.Grid, cell func(grid.Cell, string) string, label func(string) string) error {
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", cellWidth))
	for c := 0; c < g.Columns(); c++ {
		sb.WriteString(label(fmt.Sprintf("%*s", cellWidth, fmt.Sprintf("C%d", c))))
	}
	sb.WriteByte('\n')

	for r := 0; r < g.Rows(); r++ {
		sb.WriteString(label(fmt.Sprintf("%*s", cellWidth, fmt.Sprintf("R%d", r))))
		for c := 0; c < g.Columns(); c++ {
			alt, err := g.AltitudeAt(r, c)
			if err != nil {
				return err
			}
			sb.WriteString(cell(grid.Cell{Row: r, Col: c}, fmt.Sprintf("%*d", cellWidth, alt)))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Result writes the one-line answer for res.
func Result(w io.Writer, res *lowpoint.Result) error {
	_, err := fmt.Fprintf(w, "The lowest reachable point occurs at R%d, C%d with an altitude of %d\n",
		res.Row(), res.Col(), res.Altitude)
	return err
}
