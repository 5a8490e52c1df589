// Package errors provides standardized error handling for the cascii player.
// It defines the load-time error taxonomy (format, file, no-frames) plus
// helper functions for consistent error creation, wrapping, and checking.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Format error kinds
	TruncatedInput
	BadMagic
	BadVersion
	BadDimensions
	BadRun
	CellCountMismatch
	// File error kinds
	FileNotFound
	FileUnreadable
	// Load error kinds
	NoFrames
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FormatError represents a malformed, truncated, or inconsistent cframe
// buffer. Offset is the byte position at which decoding failed, when known.
type FormatError struct {
	ApplicationError
	offset int
}

// NewFormatError creates a new format error at the given byte offset.
func NewFormatError(msg string, offset int, kind ErrorKind) *FormatError {
	return &FormatError{
		ApplicationError: ApplicationError{
			msg:  msg,
			kind: kind,
		},
		offset: offset,
	}
}

// Error returns the format error message
func (e *FormatError) Error() string {
	if e.offset >= 0 {
		return fmt.Sprintf("%s (at byte %d)", e.msg, e.offset)
	}
	return e.ApplicationError.Error()
}

// Offset returns the byte offset associated with the error, or -1.
func (e *FormatError) Offset() int {
	return e.offset
}

// FileError represents errors related to reading frame files
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// NoFramesError reports a directory with no usable frame files. It is
// distinct from a format error: the directory was readable, it just holds
// nothing playable.
type NoFramesError struct {
	ApplicationError
	dir string
}

// NewNoFramesError creates a new no-frames error for the given directory.
func NewNoFramesError(dir string) *NoFramesError {
	return &NoFramesError{
		ApplicationError: ApplicationError{
			msg:  "no frame files found (expected .cframe or .txt frames)",
			kind: NoFrames,
		},
		dir: dir,
	}
}

// Error returns the no-frames error message
func (e *NoFramesError) Error() string {
	if e.dir != "" {
		return fmt.Sprintf("%s in %s", e.msg, e.dir)
	}
	return e.ApplicationError.Error()
}

// Dir returns the directory associated with the error
func (e *NoFramesError) Dir() string {
	return e.dir
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsFormatError checks if the error is a cframe format error
func IsFormatError(err error) bool {
	var formatErr *FormatError
	return errors.As(err, &formatErr)
}

// IsFileError checks if the error is a file error
func IsFileError(err error) bool {
	var fileErr *FileError
	return errors.As(err, &fileErr)
}

// IsNoFrames checks if the error reports an empty frame directory
func IsNoFrames(err error) bool {
	var noFramesErr *NoFramesError
	return errors.As(err, &noFramesErr)
}
