package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	triageerrors "github.com/rileyhilliard/triage/internal/errors"
)

// Shell runs batched commands. Collector commands are written for POSIX sh,
// so the user's $SHELL is deliberately not consulted.
const Shell = "/bin/sh"

// Result holds the captured output of a local command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Capture runs a command locally and captures all output.
// A non-zero exit is reported through Result.ExitCode, not as an error.
func Capture(cmd string, workDir string) (*Result, error) {
	return CaptureContext(context.Background(), cmd, workDir)
}

// CaptureContext runs a command locally through the shell and captures stdout and stderr.
// The process is killed when ctx is done; in that case the context error is returned
// wrapped with ErrExec.
func CaptureContext(ctx context.Context, cmd string, workDir string) (*Result, error) {
	command := exec.CommandContext(ctx, Shell, "-c", cmd)

	if workDir != "" {
		command.Dir = workDir
	}

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	runErr := command.Run()
	result := &Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, triageerrors.WrapWithCode(ctxErr, triageerrors.ErrExec,
			"Local command was interrupted",
			"The command took too long or was cancelled.")
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, triageerrors.WrapWithCode(runErr, triageerrors.ErrExec,
			"Couldn't run the command locally",
			"Make sure "+Shell+" exists and is executable.")
	}

	return result, nil
}
