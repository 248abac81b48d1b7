// SPDX-License-Identifier: MIT
// Package: lowpoint/terrain
//
// generate.go — Generate(rows, cols) height-map constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrBadSize).
//   • Fills cells in row-major order; see doc.go for the draw order.
//   • Returns only sentinel-wrapped errors; never panics at runtime.

package terrain

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lowpoint/grid"
)

const minDim = 1

// Generate builds a rows×cols height map.
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	// 1) Validate size before any allocation.
	if rows < minDim || cols < minDim {
		return nil, errors.Wrapf(ErrBadSize, "rows=%d, cols=%d", rows, cols)
	}
	cfg := newConfig(opts...)

	// 2) Fill row-major.
	values := make([][]int, rows)
	for r := 0; r < rows; r++ {
		values[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			if r == 0 {
				values[r][c] = cfg.uniform()
				continue
			}
			var side int
			if c == 0 {
				side = cfg.uniform()
			} else {
				side = values[r][c-1]
			}
			top := values[r-1][c]
			// left jitter is drawn before top jitter
			a := cfg.jitterOf(side)
			b := cfg.jitterOf(top)
			values[r][c] = cfg.clamp((a + b) / 2)
		}
	}

	// 3) Hand over to grid; it deep-copies, which is cheap next to generation.
	return grid.New(values)
}

func (c *config) uniform() int {
	return c.rng.Intn(c.maxAltitude + 1)
}

func (c *config) jitterOf(alt int) int {
	return alt + c.rng.Intn(2*c.jitter+1) - c.jitter
}

func (c *config) clamp(alt int) int {
	if alt < 0 {
		return 0
	}
	if alt > c.maxAltitude {
		return c.maxAltitude
	}
	return alt
}
