package bridge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plexport/internal/config"
	"plexport/internal/infrastructure/errors"
	"plexport/internal/infrastructure/logging"
	"plexport/internal/types"
)

// Operation names used for error context and logging
const (
	OpExport = "export"
	OpList   = "playlists"
	OpStatus = "status"
)

// Bridge translates typed requests into external-process invocations, runs
// them to completion, and normalizes every outcome into a Response. It holds
// no mutable state, so concurrent invocations are fully independent.
type Bridge struct {
	cfg      *config.Config
	executor Executor
	logger   logging.Logger
}

// New creates a command bridge. A nil executor falls back to the production
// ExecExecutor; a nil logger falls back to the default structured logger.
func New(cfg *config.Config, executor Executor, logger logging.Logger) *Bridge {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if executor == nil {
		executor = NewExecExecutor()
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Bridge{
		cfg:      cfg,
		executor: executor,
		logger:   logger,
	}
}

// Export invokes the tool's export (or pptx) subcommand for one playlist
func (b *Bridge) Export(ctx context.Context, playlistUUID, format, host string, port uint16) *types.ExportResponse {
	return b.run(ctx, OpExport, exportArgs(playlistUUID, format), host, port).Response("Failed to run export")
}

// List invokes the tool's playlist listing subcommand with JSON output
func (b *Bridge) List(ctx context.Context, host string, port uint16) *types.ExportResponse {
	return b.run(ctx, OpList, listArgs(), host, port).Response("Failed to get playlists")
}

// Status invokes the tool's status subcommand against the given destination
func (b *Bridge) Status(ctx context.Context, host string, port uint16) *types.ExportResponse {
	return b.run(ctx, OpStatus, statusArgs(), host, port).Response("Connection failed")
}

// run executes one invocation: launcher prefix + operation arguments +
// trailing host/port pair, bounded by the configured command timeout. Every
// failure is converted to a tagged Result; nothing panics and nothing
// retries.
func (b *Bridge) run(ctx context.Context, op string, opArgs []string, host string, port uint16) *Result {
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := b.cfg.CommandTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	args := make([]string, 0, len(b.cfg.ToolArgs)+len(opArgs)+4)
	args = append(args, b.cfg.ToolArgs...)
	args = append(args, opArgs...)
	args = append(args, hostPortArgs(host, port)...)

	spec := CommandSpec{
		Program: b.cfg.ToolCommand,
		Args:    args,
	}

	b.logger.Debug("Launching tool",
		"operation", op,
		"program", spec.Program,
		"args", strings.Join(args, " "))

	start := time.Now()
	outcome, err := b.executor.Run(ctx, spec)
	if err != nil {
		if errors.ClassifyError(err) == errors.ErrCodeTimeout {
			err = fmt.Errorf("command timed out after %s: %w", timeout, err)
		}
		cmdErr := errors.WrapLaunchErrorWithContext(op, err, map[string]string{
			"program": spec.Program,
			"host":    host,
		})
		logging.LogCommandError(b.logger, cmdErr, op, map[string]interface{}{
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return &Result{Kind: ResultLaunchError, Err: err}
	}

	if outcome.ExitCode != 0 {
		cmdErr := errors.HandleToolFailure(op, outcome.ExitCode, outcome.Stderr)
		logging.LogCommandError(b.logger, cmdErr, op, map[string]interface{}{
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return &Result{
			Kind:     ResultToolFailure,
			ExitCode: outcome.ExitCode,
			Stdout:   outcome.Stdout,
			Stderr:   outcome.Stderr,
		}
	}

	logging.LogCommandOperation(b.logger, op, time.Since(start), map[string]interface{}{
		"host": host,
		"port": port,
	})
	return &Result{
		Kind:   ResultSuccess,
		Stdout: outcome.Stdout,
		Stderr: outcome.Stderr,
	}
}
