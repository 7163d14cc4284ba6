// SPDX-License-Identifier: MIT

package executor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matpar/partition"
)

var (
	// ErrExecutionFailed is matched by every *ExecutionError.
	ErrExecutionFailed = errors.New("executor: execution failed")

	// ErrUnknownBackend indicates a backend name that is not registered.
	ErrUnknownBackend = errors.New("executor: unknown backend")

	// ErrOperandShape indicates operands that are nil, non-square or of
	// different dimension.
	ErrOperandShape = errors.New("executor: operands must be square and of equal dimension")

	// errCrashRequested makes a worker process exit without replying.
	errCrashRequested = errors.New("executor: simulated worker crash")
)

// ExecutionError reports a worker-level fault in one chunk.
type ExecutionError struct {
	Chunk partition.Chunk
	Err   error
}

// Error implements error.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executor: chunk %d rows %s: %v", e.Chunk.Index, e.Chunk, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ExecutionError) Unwrap() error { return e.Err }

// Is reports a match against ErrExecutionFailed.
func (e *ExecutionError) Is(target error) bool { return target == ErrExecutionFailed }
