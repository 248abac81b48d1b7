// Package grid provides a read-only view over a rectangular grid of integer
// altitudes, the input to every lowpoint query.
//
// What:
//
//   - Grid wraps a rectangular [][]int, deep-copied at construction and stored
//     row-major in a flat slice.
//   - Cell addresses a (Row, Col) coordinate; Direction is an orthogonal unit
//     step (Left, Right, Up, Down).
//   - Fingerprint hashes dimensions and altitudes for use as a cache key.
//
// Complexity:
//
//   - New:         O(R×C) time and memory.
//   - AltitudeAt:  O(1).
//   - Fingerprint: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: coordinate outside [0,Rows) × [0,Columns).
package grid
