// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/matpar/executor"
)

// DefaultTolerance is the relative tolerance used to verify parallel products.
const DefaultTolerance = 1e-9

// Config describes one sweep. Worker counts and backends are visited in the
// given order: for each worker count, every backend.
type Config struct {
	Size      int
	Workers   []int
	Backends  []executor.Kind
	Seed      int64
	Seeded    bool
	Fractions []float64
	Verify    bool
	Tolerance float64
}

// validate rejects configurations no cell of which could run.
func (c Config) validate() error {
	switch {
	case c.Size < 1:
		return fmt.Errorf("%w: size %d", ErrInvalidSweep, c.Size)
	case len(c.Workers) == 0:
		return fmt.Errorf("%w: no worker counts", ErrInvalidSweep)
	case len(c.Backends) == 0:
		return fmt.Errorf("%w: no backends", ErrInvalidSweep)
	}

	return nil
}

// session identifies the operands; tables are only comparable within one.
type session struct {
	Size   int
	Seed   int64
	Seeded bool
}

func (c Config) session() session {
	return session{Size: c.Size, Seed: c.Seed, Seeded: c.Seeded}
}

func (c Config) tolerance() float64 {
	if c.Tolerance > 0 {
		return c.Tolerance
	}

	return DefaultTolerance
}
