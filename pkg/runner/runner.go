// Package runner executes external commands for checks, bounding every
// invocation with a timeout and classifying how it ended.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"time"
)

var (
	// ErrNotFound is returned when the command cannot be located or started.
	ErrNotFound = errors.New("command not found")
	// ErrTimeout is returned when the command did not finish before its deadline.
	ErrTimeout = errors.New("command timed out")
)

// DefaultWaitDelay bounds how long Run waits for output pipes to close
// after the deadline has killed the process.
const DefaultWaitDelay = 250 * time.Millisecond

// Runner abstracts command execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct {
	WaitDelay time.Duration // defaults to DefaultWaitDelay
}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunContext executes a command and returns its captured output.
// The process is killed when ctx expires.
func (r *RealRunner) RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay == 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// Completion describes a command that started and exited before its deadline.
type Completion struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (c Completion) Success() bool {
	return c.ExitCode == 0
}

// Output returns stdout, or stderr when stdout is empty.
func (c Completion) Output() string {
	if c.Stdout != "" {
		return c.Stdout
	}
	return c.Stderr
}

// exitCoder matches *exec.ExitError and test doubles carrying an exit status.
type exitCoder interface {
	ExitCode() int
}

// Run invokes name with args under timeout.
//
// A nonzero exit status is not an error: the returned Completion carries it
// and the caller decides whether it matters. The error is non-nil only when
// the command never completed, and then wraps ErrNotFound, ErrTimeout, or
// the underlying start failure.
func Run(r Runner, timeout time.Duration, name string, args ...string) (Completion, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := r.RunContext(ctx, name, args...)
	c := Completion{Stdout: stdout, Stderr: stderr}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return c, fmt.Errorf("%s did not finish within %s: %w", name, timeout, ErrTimeout)
	}
	if err == nil {
		return c, nil
	}

	var coder exitCoder
	if errors.As(err, &coder) {
		c.ExitCode = coder.ExitCode()
		return c, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return c, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return c, fmt.Errorf("run %s: %w", name, err)
}
