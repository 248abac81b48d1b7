package lowpoint

import "github.com/katalvlaran/lowpoint/grid"

// Better reports whether candidate strictly beats best for a query started at
// start. The order is:
//
//  1. lower altitude wins;
//  2. on equal altitude, the first index where the drop sequences differ
//     decides, larger drop winning;
//  3. if no index differs and the sequences have the same length, rule
//     decides by position relative to start.
//
// A sequence that is a strict prefix of the other is neither better nor
// worse, and full ties are not better, so the existing best is kept.
// Complexity: O(min(len(candidate.Drops), len(best.Drops))).
func Better(candidate, best Candidate, start grid.Cell, rule TieBreak) bool {
	if candidate.Altitude != best.Altitude {
		return candidate.Altitude < best.Altitude
	}

	n := min(len(candidate.Drops), len(best.Drops))
	for i := 0; i < n; i++ {
		if candidate.Drops[i] != best.Drops[i] {
			return candidate.Drops[i] > best.Drops[i] // steeper divergence
		}
	}
	if len(candidate.Drops) != len(best.Drops) {
		return false
	}

	return rule.closer(candidate.Cell, best.Cell, start)
}
