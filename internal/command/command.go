package command

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os/exec"
)

// Describes one external process invocation.
type Invocation struct {
	Path   string    // Binary name or path, resolved via PATH when bare.
	Args   []string  // Arguments, excluding the binary itself.
	Env    []string  // Full process environment; nil inherits the parent's.
	Stdout io.Writer // Standard output sink; nil discards.
	Stderr io.Writer // Standard error sink; nil discards.
}

// Outcome of a completed invocation.
type Result struct {
	ExitCode int // Exit code of the process.
}

// Runs external processes on the local host.
type Local struct{}

// Runs the invocation and waits for it to complete.
//
// A non-zero exit code is not treated as an error; the caller decides.
// An error is returned only when the process could not be started at all.
// Whether the binary itself was missing can be checked with [IsNotFound].
func (Local) Invoke(ctx context.Context, inv Invocation) (Result, error) {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Env = inv.Env
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{}, err
	}

	return Result{}, nil
}

// Reports whether an invocation error means the binary does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
