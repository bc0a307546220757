package split

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a split error by scope.
type ErrorKind string

const (
	// ErrorKindColumnNotFound means the grouping column is absent from the
	// dataset. Fatal: nothing is written.
	ErrorKindColumnNotFound ErrorKind = "column_not_found"
	// ErrorKindInvalidConfig means chunk size, name pattern or concurrency
	// settings are unusable. Fatal, detected before any write attempt.
	ErrorKindInvalidConfig ErrorKind = "invalid_configuration"
	// ErrorKindWrite is a per-chunk I/O failure. Non-fatal: recorded in the
	// report while sibling chunks continue.
	ErrorKindWrite ErrorKind = "write"
	// ErrorKindFatalIO means the output root itself is unusable, so every
	// remaining chunk would fail. Halts the run.
	ErrorKindFatalIO ErrorKind = "fatal_io"
)

// SplitError is the error type surfaced by the split engine.
type SplitError struct {
	Kind    ErrorKind
	Message string
	Path    string
	Cause   error
}

func (e *SplitError) Error() string {
	if e == nil {
		return "unknown split error"
	}
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SplitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Fatal reports whether the error should halt the whole run.
func (e *SplitError) Fatal() bool {
	return e != nil && e.Kind != ErrorKindWrite
}

// NewColumnNotFoundError names the missing column and the columns that do
// exist, so the caller can print an actionable message.
func NewColumnNotFoundError(column string, available []string) *SplitError {
	return &SplitError{
		Kind:    ErrorKindColumnNotFound,
		Message: fmt.Sprintf("column %q not found, available columns: [%s]", column, strings.Join(available, ", ")),
	}
}

// NewInvalidConfigError reports an unusable configuration value.
func NewInvalidConfigError(format string, args ...any) *SplitError {
	return &SplitError{
		Kind:    ErrorKindInvalidConfig,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewWriteError wraps a per-chunk I/O failure with its target path.
func NewWriteError(path string, cause error) *SplitError {
	return &SplitError{
		Kind:    ErrorKindWrite,
		Message: "failed to write chunk file",
		Path:    path,
		Cause:   cause,
	}
}

// NewFatalIOError wraps a systemic output failure.
func NewFatalIOError(path string, cause error) *SplitError {
	return &SplitError{
		Kind:    ErrorKindFatalIO,
		Message: "output location is not usable",
		Path:    path,
		Cause:   cause,
	}
}

// KindOf extracts the ErrorKind from err, or "" when err is not a SplitError.
func KindOf(err error) ErrorKind {
	var se *SplitError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
