// SPDX-License-Identifier: MIT

package executor

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Wait lingers on a killed worker's pipes.
const waitDelay = 2 * time.Second

// Command describes how to start a worker process.
type Command struct {
	Path string
	Args []string
	Env  []string // appended to os.Environ(), after WorkerEnv=1
}

// DefaultCommand re-executes the running binary in worker mode.
func DefaultCommand() (Command, error) {
	path, err := os.Executable()
	if err != nil {
		return Command{}, fmt.Errorf("executor: locate executable: %w", err)
	}

	return Command{Path: path}, nil
}

// worker is one running worker process and its gob streams.
type worker struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	enc    *gob.Encoder
	dec    *gob.Decoder
	stderr *bytes.Buffer // nil for pooled workers
}

// startWorker launches c. With a non-nil ctx the process is killed when ctx
// ends; pooled workers pass context.Background and are killed explicitly.
func startWorker(ctx context.Context, c Command, captureStderr bool) (*worker, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Env = append(append(os.Environ(), WorkerEnv+"=1"), c.Env...)
	cmd.WaitDelay = waitDelay

	w := &worker{cmd: cmd}
	if captureStderr {
		w.stderr = &bytes.Buffer{}
		cmd.Stderr = w.stderr
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err = cmd.Start(); err != nil {
		return nil, err
	}
	w.stdin = stdin
	w.enc = gob.NewEncoder(stdin)
	w.dec = gob.NewDecoder(stdout)

	return w, nil
}

// roundTrip sends one task and waits for its reply.
func (w *worker) roundTrip(t task) (reply, error) {
	var rp reply
	if err := w.enc.Encode(t); err != nil {
		return rp, fmt.Errorf("send task: %w", err)
	}
	if err := w.dec.Decode(&rp); err != nil {
		return rp, fmt.Errorf("read reply: %w", err)
	}

	return rp, nil
}

// pid returns the OS process id, or 0 before Start.
func (w *worker) pid() int {
	if w.cmd.Process == nil {
		return 0
	}

	return w.cmd.Process.Pid
}

// kill terminates the process without reaping it.
func (w *worker) kill() {
	if w.cmd.Process != nil {
		_ = w.cmd.Process.Kill()
	}
}

// wait closes stdin and reaps the process, folding captured stderr into the
// error when there is any.
func (w *worker) wait() error {
	_ = w.stdin.Close()
	err := w.cmd.Wait()
	if err != nil && w.stderr != nil {
		if msg := strings.TrimSpace(w.stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
	}

	return err
}
