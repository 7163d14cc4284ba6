// SPDX-License-Identifier: MIT
package executor

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/katalvlaran/matpar/matrix"
	"github.com/katalvlaran/matpar/partition"
	"github.com/stretchr/testify/require"
)

// TestServeWorker_Stream drives the worker loop in-process over buffers.
func TestServeWorker_Stream(t *testing.T) {
	a, b, err := matrix.RandomPair(6, 5, true)
	require.NoError(t, err)
	want, err := matrix.Mul(a, b)
	require.NoError(t, err)
	chunks, err := partition.Partition(6, 2)
	require.NoError(t, err)
	job := Job{Left: a, Right: b, Chunks: chunks, Kernel: matrix.KernelNaive}

	var in, out bytes.Buffer
	enc := gob.NewEncoder(&in)
	for _, c := range chunks {
		tk, err := newTask(job, c)
		require.NoError(t, err)
		require.NoError(t, enc.Encode(tk))
	}
	require.NoError(t, ServeWorker(&in, &out)) // clean EOF

	dec := gob.NewDecoder(&out)
	for _, c := range chunks {
		var rp reply
		require.NoError(t, dec.Decode(&rp))
		rows, err := decodeReply(c, 6, rp)
		require.NoError(t, err)
		expect, err := want.SliceRows(c.Start, c.End)
		require.NoError(t, err)
		require.True(t, rows.Equal(expect))
	}
}

func TestServeWorker_CrashAndGarbage(t *testing.T) {
	var in bytes.Buffer
	require.NoError(t, gob.NewEncoder(&in).Encode(task{Crash: true}))
	require.ErrorIs(t, ServeWorker(&in, &bytes.Buffer{}), errCrashRequested)

	err := ServeWorker(bytes.NewBufferString("not gob"), &bytes.Buffer{})
	require.Error(t, err)
}

func TestServeTask_BadShape(t *testing.T) {
	rp := serveTask(task{LeftRows: 2, N: 2, Left: []float64{1}, Right: []float64{1, 2, 3, 4}})
	require.NotEmpty(t, rp.Err)

	_, err := decodeReply(partition.Chunk{}, 2, rp)
	require.Error(t, err)
}

func TestDecodeReply_Mismatch(t *testing.T) {
	c := partition.Chunk{Index: 1, Start: 2, End: 4}
	_, err := decodeReply(c, 1, reply{Chunk: partition.Chunk{Index: 0, Start: 0, End: 2}, Rows: 2, Cols: 1, Data: []float64{1, 2}})
	require.Error(t, err)
	_, err = decodeReply(c, 1, reply{Chunk: c, Rows: 3, Cols: 1, Data: []float64{1, 2, 3}})
	require.Error(t, err)

	// Consistent data of the wrong width is still rejected here, not at reassembly.
	_, err = decodeReply(c, 3, reply{Chunk: c, Rows: 2, Cols: 1, Data: []float64{1, 2}})
	require.ErrorContains(t, err, "1 columns")
	require.ErrorContains(t, err, "want 3")
	got, err := decodeReply(c, 1, reply{Chunk: c, Rows: 2, Cols: 1, Data: []float64{1, 2}})
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
}
