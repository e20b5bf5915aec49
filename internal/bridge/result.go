package bridge

import (
	"fmt"

	"plexport/internal/types"
)

// ResultKind tags the outcome of one bridge invocation
type ResultKind int

const (
	// ResultSuccess means the tool ran and exited zero
	ResultSuccess ResultKind = iota
	// ResultToolFailure means the tool ran and exited non-zero
	ResultToolFailure
	// ResultLaunchError means the process never started
	ResultLaunchError
)

// Result is the tagged outcome of one invocation. Callers inside the backend
// can branch on Kind; the flattened ExportResponse shape exists only for the
// frontend boundary.
type Result struct {
	Kind     ResultKind
	ExitCode int    // valid for ResultSuccess and ResultToolFailure
	Stdout   string // captured streams, lossily decoded
	Stderr   string
	Err      error // cause, set for ResultLaunchError
}

// Response flattens the tagged result into the uniform response record the
// frontend consumes. diagnostic prefixes the launch-error message, e.g.
// "Failed to run export". FilePath is reserved and never populated.
func (r *Result) Response(diagnostic string) *types.ExportResponse {
	switch r.Kind {
	case ResultSuccess:
		return &types.ExportResponse{
			Success: true,
			Message: r.Stdout,
		}
	case ResultToolFailure:
		return &types.ExportResponse{
			Success: false,
			Message: r.Stderr,
		}
	default:
		return &types.ExportResponse{
			Success: false,
			Message: fmt.Sprintf("%s: %v", diagnostic, r.Err),
		}
	}
}
