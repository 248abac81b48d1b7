// Package lowpoint finds the lowest cell reachable from a start cell of a
// grid.Grid by walking downhill.
//
// What:
//
//   - FindLowestPoint explores every maximal simple path from the start whose
//     steps go to an orthogonal neighbour of equal or lower altitude, and keeps
//     a single running best terminal cell.
//   - A terminal cell is one with no qualifying neighbour: every neighbour is
//     off the grid, already on the current path, or strictly higher.
//   - Ties on altitude are broken by the path's drop sequence (the larger drop
//     at the first point of divergence wins), then by distance from the start.
//     Anything still tied keeps the candidate found first.
//
// Why:
//
//   - Drainage and runoff questions on height maps: where does water that
//     starts here end up, preferring the steepest route.
//   - A compact example of exhaustive backtracking with a path-dependent
//     objective, where memoised shortest-path techniques do not apply.
//
// Determinism:
//
//   - Neighbours are visited in the fixed order left, right, up, down, so
//     repeated queries on the same grid return identical results.
//
// Complexity:
//
//   - Time:   O(number of simple non-increasing paths from start) × O(R×C)
//     for candidate comparison; exponential on long plateaus.
//   - Memory: O(R×C) for the visited marker, the frame stack and the best path.
//
// Options:
//
//   - WithTieBreak(rule)  distance rule for equal drop sequences
//     (Manhattan by default, or RowThenColumn).
//   - WithOnTerminal(fn)  hook invoked with every terminal candidate evaluated.
//
// Errors:
//
//   - ErrNilGrid        grid pointer is nil.
//   - ErrInvalidStart   start cell lies outside the grid.
package lowpoint
