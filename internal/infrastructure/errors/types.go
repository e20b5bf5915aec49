package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode classifies command bridge errors
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeLaunch
	ErrCodeToolFailure
	ErrCodeTimeout
	ErrCodeCanceled
	ErrCodeNotFound
	ErrCodePermission
	ErrCodeValidation
	ErrCodeInternal
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeLaunch:
		return "LAUNCH"
	case ErrCodeToolFailure:
		return "TOOL_FAILURE"
	case ErrCodeTimeout:
		return "TIMEOUT"
	case ErrCodeCanceled:
		return "CANCELED"
	case ErrCodeNotFound:
		return "NOT_FOUND"
	case ErrCodePermission:
		return "PERMISSION"
	case ErrCodeValidation:
		return "VALIDATION"
	case ErrCodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// CommandError represents a command-invocation error with classification and context.
// Launch errors (the child process never started) and tool failures (the process
// ran and exited non-zero) carry distinct codes so callers can branch on them.
type CommandError struct {
	Op        string            // operation name (export, playlists, status)
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *CommandError) Error() string {
	// Guard against nil receiver
	if e == nil {
		return "command error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	// Add context with deterministic order (treat nil Context as empty)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "command error" + contextStr
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *CommandError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*CommandError); ok {
		return e.Code == t.Code
	}
	// Also check if the target matches the underlying/wrapped error
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *CommandError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *CommandError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *CommandError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe after the error has been published to other goroutines; use
// NewCommandErrorWithContext for concurrent usage.
func (e *CommandError) WithContext(key, value string) *CommandError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewCommandError creates a new command error with the given parameters
func NewCommandError(op string, err error, code ErrorCode) *CommandError {
	return &CommandError{
		Op:        op,
		Err:       err,
		Code:      code,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewCommandErrorWithContext creates a new command error with additional context
func NewCommandErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *CommandError {
	cmdErr := NewCommandError(op, err, code)
	if context != nil {
		// Clone the context map to avoid external mutation and data races
		cmdErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			cmdErr.Context[k] = v
		}
	}
	return cmdErr
}

// Error classification functions

// IsLaunch checks if the error is a launch error (process never started)
func IsLaunch(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == ErrCodeLaunch
	}
	return false
}

// IsToolFailure checks if the error is a tool-reported failure (non-zero exit)
func IsToolFailure(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == ErrCodeToolFailure
	}
	return false
}

// IsTimeout checks if the error is a timeout error
func IsTimeout(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == ErrCodeTimeout
	}
	return false
}

// IsCanceled checks if the error is a cancellation error
func IsCanceled(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == ErrCodeCanceled
	}
	return false
}

// IsNotFound checks if the error is a "tool not found" error
func IsNotFound(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == ErrCodeNotFound
	}
	return false
}

// IsPermission checks if the error is a permission error
func IsPermission(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == ErrCodePermission
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == ErrCodeValidation
	}
	return false
}

// IsInternal checks if the error is an internal/API misuse error
func IsInternal(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == ErrCodeInternal
	}
	return false
}
