package bridge

import "context"

// CommandSpec describes one external-process invocation: the program, its full
// argument vector, and optional environment/working-directory overrides.
type CommandSpec struct {
	Program string
	Args    []string
	Env     []string // appended to the parent environment when non-empty
	Dir     string
}

// CommandOutcome captures the terminal state of a process that actually ran.
// Stdout and Stderr hold the full captured streams, decoded permissively so
// invalid byte sequences never cause a failure.
type CommandOutcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs a command to completion. A process that ran and exited
// non-zero is still a successful Run; only a launch failure (missing binary,
// permission denied, canceled context) returns an error.
type Executor interface {
	Run(ctx context.Context, spec CommandSpec) (*CommandOutcome, error)
}
