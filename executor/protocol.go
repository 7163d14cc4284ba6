// SPDX-License-Identifier: MIT

package executor

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matpar/matrix"
	"github.com/katalvlaran/matpar/partition"
)

// WorkerEnv switches a binary into worker mode when set to "1".
const WorkerEnv = "MATPAR_WORKER"

// Exit codes of a worker process.
const (
	exitProtocol = 2
	exitCrash    = 3
)

// task carries one chunk to a worker: the chunk's rows of the left operand
// and the whole right operand, both row-major.
type task struct {
	Chunk    partition.Chunk
	LeftRows int
	N        int
	Left     []float64
	Right    []float64
	Kernel   matrix.KernelName
	Crash    bool
}

// reply is a worker's answer to one task. Err is non-empty when the kernel
// failed; Data is then nil.
type reply struct {
	Chunk partition.Chunk
	Rows  int
	Cols  int
	Data  []float64
	Err   string
}

// newTask copies nothing: Left and Right alias the job operands and are only
// read by the encoder.
func newTask(job Job, c partition.Chunk) (task, error) {
	left, err := job.Left.RawRows(c.Start, c.End)
	if err != nil {
		return task{}, err
	}
	right, err := job.Right.RawRows(0, job.Right.Rows())
	if err != nil {
		return task{}, err
	}

	return task{
		Chunk:    c,
		LeftRows: c.Len(),
		N:        job.Right.Rows(),
		Left:     left,
		Right:    right,
		Kernel:   job.Kernel,
		Crash:    job.faulty(c),
	}, nil
}

// decodeReply turns a reply into a chunk block of width n or a kernel error.
func decodeReply(c partition.Chunk, n int, rp reply) (*matrix.Dense, error) {
	if rp.Err != "" {
		return nil, errors.New(rp.Err)
	}
	if rp.Chunk != c {
		return nil, fmt.Errorf("reply for chunk %d, want %d", rp.Chunk.Index, c.Index)
	}
	if rp.Rows != c.Len() {
		return nil, fmt.Errorf("reply has %d rows, want %d", rp.Rows, c.Len())
	}
	if rp.Cols != n {
		return nil, fmt.Errorf("reply has %d columns, want %d", rp.Cols, n)
	}

	return matrix.NewDenseFrom(rp.Rows, rp.Cols, rp.Data)
}

// serveTask computes one task.
func serveTask(t task) reply {
	rp := reply{Chunk: t.Chunk}
	left, err := matrix.NewDenseFrom(t.LeftRows, t.N, t.Left)
	if err != nil {
		rp.Err = err.Error()
		return rp
	}
	right, err := matrix.NewDenseFrom(t.N, t.N, t.Right)
	if err != nil {
		rp.Err = err.Error()
		return rp
	}
	out, err := matrix.KernelByName(t.Kernel)(left, right, 0, t.LeftRows)
	if err != nil {
		rp.Err = err.Error()
		return rp
	}
	rp.Rows, rp.Cols = out.Rows(), out.Cols()
	rp.Data, _ = out.RawRows(0, out.Rows())

	return rp
}

// ServeWorker decodes tasks from r and encodes replies to w until r is
// exhausted. It returns nil on a clean EOF.
//
// A one-shot process worker sees exactly one task; a pool worker sees many
// over the same stream.
func ServeWorker(r io.Reader, w io.Writer) error {
	dec := gob.NewDecoder(r)
	enc := gob.NewEncoder(w)
	for {
		var t task
		if err := dec.Decode(&t); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("executor: worker decode: %w", err)
		}
		if t.Crash {
			return errCrashRequested
		}
		if err := enc.Encode(serveTask(t)); err != nil {
			return fmt.Errorf("executor: worker encode: %w", err)
		}
	}
}

// RunWorkerIfRequested serves the worker protocol on stdin/stdout and exits
// the process when WorkerEnv is set to "1". Otherwise it returns immediately.
func RunWorkerIfRequested() {
	if os.Getenv(WorkerEnv) != "1" {
		return
	}
	err := ServeWorker(os.Stdin, os.Stdout)
	switch {
	case err == nil:
		os.Exit(0)
	case errors.Is(err, errCrashRequested):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCrash)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitProtocol)
	}
}
