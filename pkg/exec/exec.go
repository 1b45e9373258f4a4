// Package exec starts the bundled interpreter and relays its output.
package exec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner starts a child process and streams its standard output.
type Runner interface {
	// Run starts name with args, relays the child's stdout to stdout and waits
	// for it to exit. A non-nil error means the child was never created.
	Run(name string, args []string, stdout io.Writer) (Result, error)
}

// Result describes how a child process finished.
type Result struct {
	ExitCode int   // -1 when the child was terminated by a signal
	Err      error // relay or wait failure
}

// OK returns true if the child exited cleanly with status 0.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// StartError reports that the child process could not be created.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Name, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// RealRunner is the production implementation.
// Stdin and Stderr default to the parent's streams.
type RealRunner struct {
	Stdin  io.Reader
	Stderr io.Writer
}

// startFunc is swapped in tests to simulate process creation failures.
var startFunc = func(cmd *exec.Cmd) error {
	return cmd.Start()
}

// Run implements Runner using os/exec.
func (r *RealRunner) Run(name string, args []string, stdout io.Writer) (Result, error) {
	// #nosec G204 -- name and args are compile-time literals of the bundle layout.
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, &StartError{Name: name, Err: err}
	}
	if err := startFunc(cmd); err != nil {
		return Result{}, &StartError{Name: name, Err: err}
	}

	_, relayErr := Relay(stdout, pipe)
	if relayErr != nil {
		// Keep the child from blocking on a full pipe before Wait closes it.
		_, _ = io.Copy(io.Discard, pipe)
	}
	waitErr := cmd.Wait()

	return result(cmd, relayErr, waitErr), nil
}

func result(cmd *exec.Cmd, relayErr, waitErr error) Result {
	res := Result{ExitCode: -1}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	switch {
	case relayErr != nil:
		res.Err = fmt.Errorf("relay output: %w", relayErr)
	case waitErr != nil && errors.As(waitErr, &exitErr):
		res.Err = exitErr
	case waitErr != nil:
		res.Err = fmt.Errorf("wait: %w", waitErr)
	}
	return res
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(name string, args []string, stdout io.Writer) (Result, error)
}

// Run calls the mock function.
func (m *MockRunner) Run(name string, args []string, stdout io.Writer) (Result, error) {
	if m.RunFunc != nil {
		return m.RunFunc(name, args, stdout)
	}
	return Result{}, nil
}
