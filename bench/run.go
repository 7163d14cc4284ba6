// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/katalvlaran/matpar/executor"
	"github.com/katalvlaran/matpar/matrix"
)

// Run is one (backend, workers) cell of a sweep. Err != nil marks a failed
// cell; its Seconds still hold the time spent before the failure.
type Run struct {
	ID       string
	Backend  executor.Kind
	Workers  int
	Seconds  float64
	Product  *matrix.Dense // kept only with WithKeepProducts
	Verified bool
	Err      error
}

// Failed reports whether the cell did not produce a usable timing.
func (r Run) Failed() bool { return r.Err != nil }
