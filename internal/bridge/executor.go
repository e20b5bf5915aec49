package bridge

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"plexport/internal/platform"
)

// ExecExecutor is the production Executor built on os/exec. Each Run launches
// a fresh child process with no interactive input and blocks until it exits
// or the context is done.
type ExecExecutor struct {
	procAPI platform.ProcessAPI
}

// NewExecExecutor creates a new executor using the current platform's
// process attributes
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{
		procAPI: platform.NewProcessAPI(),
	}
}

// Run implements Executor
func (e *ExecExecutor) Run(ctx context.Context, spec CommandSpec) (*CommandOutcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...)
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}
	if e.procAPI != nil {
		cmd.SysProcAttr = e.procAPI.CommandAttributes()
	}

	// Stdin stays nil so the child reads EOF instead of waiting on a
	// terminal that does not exist inside the GUI shell.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	outcome := &CommandOutcome{
		Stdout: decodeLossy(stdout.Bytes()),
		Stderr: decodeLossy(stderr.Bytes()),
	}

	if err != nil {
		// A done context means the child was killed by CommandContext; report
		// the cancellation cause rather than the synthetic exit status.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}

		// Launch failure: the process never started.
		return nil, err
	}

	return outcome, nil
}

// decodeLossy converts captured process output to a string, replacing invalid
// UTF-8 sequences with U+FFFD instead of failing
func decodeLossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
