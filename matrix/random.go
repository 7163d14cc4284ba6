// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
	"time"
)

// Random returns an n×n matrix of integer-valued float64 entries drawn
// uniformly from [lo, hi) (default [0, 100)).
//
// Implementation:
//   - Stage 1: validate n and the value range.
//   - Stage 2: fill the flat buffer in row-major order from one RNG stream.
//
// Determinism:
//   - With WithSeed, the same (seed, n) yields bit-identical output.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0), ErrInvalidValueRange (lo >= hi).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Random(n int, opts ...RandomOption) (*Dense, error) {
	cfg := newRandomConfig(opts...)
	if n <= 0 {
		return nil, fmt.Errorf("Random(%d): %w", n, ErrInvalidDimensions)
	}
	if cfg.lo >= cfg.hi {
		return nil, fmt.Errorf("Random: [%d,%d): %w", cfg.lo, cfg.hi, ErrInvalidValueRange)
	}

	m := &Dense{r: n, c: n, data: make([]float64, n*n)}
	span := cfg.hi - cfg.lo
	for i := range m.data {
		m.data[i] = float64(cfg.lo + cfg.rng.Intn(span))
	}

	return m, nil
}

// RandomPair returns the two operands of one benchmark session.
// A is seeded with seed and B with seed+1, so the operands differ while the
// pair stays reproducible. When seeded is false both draw from one
// time-seeded stream.
func RandomPair(n int, seed int64, seeded bool) (a, b *Dense, err error) {
	optsA := []RandomOption{WithSeed(seed)}
	optsB := []RandomOption{WithSeed(seed + 1)}
	if !seeded {
		shared := rand.New(rand.NewSource(time.Now().UnixNano()))
		optsA = []RandomOption{WithRand(shared)}
		optsB = optsA
	}
	if a, err = Random(n, optsA...); err != nil {
		return nil, nil, err
	}
	if b, err = Random(n, optsB...); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
