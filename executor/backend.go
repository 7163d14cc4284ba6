// SPDX-License-Identifier: MIT

package executor

import (
	"context"

	"github.com/katalvlaran/matpar/matrix"
	"github.com/katalvlaran/matpar/partition"
)

// Backend runs every chunk of a Job concurrently and blocks until all of
// them have finished or failed.
//
// Submit returns one Result per chunk, indexed by chunk order. Entries for
// chunks that did not complete are zero values. A chunk fault is reported as
// *ExecutionError; cancellation as the context's error.
type Backend interface {
	Name() Kind
	Submit(ctx context.Context, job Job) ([]Result, error)
	Close() error
}

// Warmer is implemented by backends that keep standing workers. Warm(n)
// readies at least n of them so the next run of n chunks starts none.
type Warmer interface {
	Warm(n int) error
}

// Job is one partitioned multiply. Left and Right are read-only.
type Job struct {
	Left, Right *matrix.Dense
	Chunks      []partition.Chunk
	Kernel      matrix.KernelName

	// InjectFault makes chunk FaultIndex fail on purpose.
	InjectFault bool
	FaultIndex  int
}

// faulty reports whether c is the chunk selected for a simulated fault.
func (j Job) faulty(c partition.Chunk) bool {
	return j.InjectFault && c.Index == j.FaultIndex
}

// Result is the sub-product of one chunk, shape (Chunk.Len(), n).
type Result struct {
	Chunk partition.Chunk
	Rows  *matrix.Dense
}
