// Package exec runs external commands behind an interface that tests can stub.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the process is
// killed, in case it left children holding them open.
const waitDelay = time.Second

// CmdResult holds the captured output of a finished command.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs external commands.
type CommandRunner interface {
	// Run executes name with args. A process that exits non-zero is not an
	// error: ExitCode is set and err is nil. err is reserved for failures to
	// run at all (binary missing, ctx deadline, io).
	Run(ctx context.Context, name string, args ...string) (CmdResult, error)
}

// RealRunner runs commands with os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

func (r *RealRunner) Run(ctx context.Context, name string, args ...string) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// A killed process also yields an ExitError; report the deadline instead.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// LookPath searches for an executable named file in the directories named
// by the PATH environment variable.
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
