package errors

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"
)

// ClassifyError classifies process-invocation errors into command error codes
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return ErrCodeUnknown
	}

	// Typed errors from os/exec and the standard library come first for
	// accurate classification.
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return ErrCodeToolFailure
	case errors.Is(err, exec.ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrCodePermission
	case errors.Is(err, context.DeadlineExceeded):
		return ErrCodeTimeout
	case errors.Is(err, context.Canceled):
		return ErrCodeCanceled
	}

	// Fall back to string-based classification for wrapped OS errors that lost
	// their type along the way.
	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "executable file not found"):
		return ErrCodeNotFound
	case strings.Contains(errStr, "no such file or directory"):
		return ErrCodeNotFound
	case strings.Contains(errStr, "permission denied"):
		return ErrCodePermission
	case strings.Contains(errStr, "access is denied"):
		return ErrCodePermission
	case strings.Contains(errStr, "deadline exceeded"):
		return ErrCodeTimeout
	case strings.Contains(errStr, "context canceled"):
		return ErrCodeCanceled
	case strings.Contains(errStr, "exit status"):
		return ErrCodeToolFailure
	default:
		return ErrCodeLaunch
	}
}

// WrapLaunchError wraps an error from starting the child process. Every
// classification here is a launch-stage failure; the code records the more
// specific cause (missing binary, permission) when it is known.
func WrapLaunchError(op string, err error) error {
	if err == nil {
		return nil
	}

	code := ClassifyError(err)
	if code == ErrCodeUnknown || code == ErrCodeToolFailure {
		code = ErrCodeLaunch
	}
	return NewCommandError(op, err, code)
}

// WrapLaunchErrorWithContext wraps a launch error with additional context
func WrapLaunchErrorWithContext(op string, err error, contextMap map[string]string) error {
	if err == nil {
		return nil
	}

	code := ClassifyError(err)
	if code == ErrCodeUnknown || code == ErrCodeToolFailure {
		code = ErrCodeLaunch
	}
	return NewCommandErrorWithContext(op, err, code, contextMap)
}

// HandleToolFailure creates a standardized error for a tool that ran and
// exited non-zero
func HandleToolFailure(op string, exitCode int, stderr string) error {
	contextMap := map[string]string{
		"exit_code": strconv.Itoa(exitCode),
	}
	if s := strings.TrimSpace(stderr); s != "" {
		contextMap["stderr"] = s
	}
	return NewCommandErrorWithContext(op, errors.New("tool reported failure"), ErrCodeToolFailure, contextMap)
}

// HandleTimeoutError creates a standardized timeout error for a command that
// exceeded its bounded wait
func HandleTimeoutError(op string, timeout string) error {
	ctx := map[string]string{
		"timeout": timeout,
	}
	return NewCommandErrorWithContext(op, context.DeadlineExceeded, ErrCodeTimeout, ctx)
}

// HandleValidationError creates a standardized validation error
func HandleValidationError(op string, field string, value string, reason string) error {
	contextMap := map[string]string{
		"field":  field,
		"value":  value,
		"reason": reason,
	}
	return NewCommandErrorWithContext(op, errors.New("validation failed"), ErrCodeValidation, contextMap)
}
