// SPDX-License-Identifier: MIT
// Package: lowpoint/terrain
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Generate itself never panics.
//   • Seeding is explicit via WithSeed or WithRand; the default seed is 0.

package terrain

import "math/rand"

// Defaults for the generator.
const (
	DefaultMaxAltitude = 100
	DefaultJitter      = 5
	DefaultSeed        = 0
)

// Option customizes generation by mutating a config before any draw.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	maxAltitude int
	jitter      int
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxAltitude: DefaultMaxAltitude,
		jitter:      DefaultJitter,
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("terrain: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMaxAltitude sets the upper clamp (and row-0 range) of altitudes.
// Panics if max < 0.
func WithMaxAltitude(max int) Option {
	if max < 0 {
		panic("terrain: WithMaxAltitude(max<0)")
	}
	return func(c *config) {
		c.maxAltitude = max
	}
}

// WithJitter sets the half-width of the uniform jitter. Panics if j < 0.
func WithJitter(j int) Option {
	if j < 0 {
		panic("terrain: WithJitter(j<0)")
	}
	return func(c *config) {
		c.jitter = j
	}
}
