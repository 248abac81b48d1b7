// SPDX-License-Identifier: MIT
// Package: lowpoint/terrain
//
// errors.go — sentinel errors for the terrain package.
//
// Callers branch with errors.Is; implementations attach context by wrapping.
// Option constructors panic on meaningless values instead.

package terrain

import "github.com/pkg/errors"

// ErrBadSize indicates rows or cols smaller than 1.
var ErrBadSize = errors.New("terrain: rows and cols must be ≥ 1")
