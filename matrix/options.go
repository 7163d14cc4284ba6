// SPDX-License-Identifier: MIT

// Package matrix: functional options for the Random factory.
//
// Contract (strict):
//   - Options are functional (type RandomOption func(*randomConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs (programmer error);
//     the factory itself returns sentinel errors, never panics.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   - Prefer WithSeed for reproducible benchmark sessions.
//   - WithRand shares one stream across several calls (e.g. A then B).
package matrix

import (
	"math/rand"
	"time"
)

// Defaults mirror the original benchmark: integer values drawn from [0, 100).
const (
	DefaultValueLo = 0
	DefaultValueHi = 100
)

const (
	panicWithRandNil = "matrix: WithRand(nil)"
)

// RandomOption customizes Random before generation starts.
type RandomOption func(*randomConfig)

// randomConfig is the resolved factory configuration.
type randomConfig struct {
	rng    *rand.Rand // nil → time-seeded source
	lo, hi int        // half-open integer range [lo, hi)
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Identical (seed, n) pairs produce bit-identical matrices.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic(panicWithRandNil)
	}

	return func(c *randomConfig) { c.rng = r }
}

// WithValueRange sets the half-open integer range [lo, hi) for entries.
// Validation happens in Random (ErrInvalidValueRange) so config-driven
// callers get an error instead of a panic.
func WithValueRange(lo, hi int) RandomOption {
	return func(c *randomConfig) { c.lo, c.hi = lo, hi }
}

// newRandomConfig applies options in order over deterministic defaults.
func newRandomConfig(opts ...RandomOption) randomConfig {
	cfg := randomConfig{lo: DefaultValueLo, hi: DefaultValueHi}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
