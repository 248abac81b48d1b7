// SPDX-License-Identifier: MIT
// Package: lowpoint/terrain
//
// Package terrain generates rolling height maps for lowpoint queries.
//
// Model:
//   • Row 0 draws each altitude uniformly from [0, max].
//   • Every later cell averages two jittered neighbours: the cell to its left
//     (or a fresh uniform draw in column 0) and the cell above. Jitter is
//     uniform in [-jitter, +jitter]. The average truncates toward zero and is
//     clamped to [0, max].
//   • Neighbouring cells therefore differ by a few units, which yields the
//     slopes and small plateaus the search is meant for.
//
// Determinism:
//   • Draw order is row-major and fixed: for each cell, the column-0 draw (if
//     any), then the left jitter, then the top jitter.
//   • WithSeed(s) reproduces the same grid for the same (rows, cols, s).
//
// Complexity:
//   • Time O(rows*cols), Space O(rows*cols) for the returned grid.
package terrain
