// Package errors provides the application error type for the admin tools.
// Every failure is classified as a configuration, storage, or hashing error
// so the command line can print a distinct message and remediation hint for
// each kind instead of a single catch-all.
package errors

import (
	"errors"
	"fmt"
)

// Code represents an application error code.
type Code string

const (
	// CodeConfig covers base-directory resolution, .env parsing, and
	// database URL failures.
	CodeConfig Code = "CONFIG_ERROR"
	// CodeStorage covers directory creation, database open, schema, and
	// query failures.
	CodeStorage Code = "STORAGE_ERROR"
	// CodeHashing covers bcrypt failures.
	CodeHashing Code = "HASHING_ERROR"
	// CodeInternal is the fallback for errors that were never classified.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is the base application error type.
type Error struct {
	// Code is the machine-readable error code.
	Code Code
	// Message is the human-readable error message.
	Message string
	// Op is the operation being performed (e.g. "config.Load").
	Op string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Hint returns the operator remediation hint for this error's code.
func (e *Error) Hint() string {
	return Hint(e.Code)
}

// New creates a new Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ConfigError wraps a configuration failure with operation context.
func ConfigError(op string, err error) *Error {
	return &Error{
		Code:    CodeConfig,
		Message: "configuration failed",
		Op:      op,
		Err:     err,
	}
}

// StorageError wraps a database or filesystem failure with operation context.
func StorageError(op string, err error) *Error {
	return &Error{
		Code:    CodeStorage,
		Message: "storage operation failed",
		Op:      op,
		Err:     err,
	}
}

// HashingError wraps a password hashing failure with operation context.
func HashingError(op string, err error) *Error {
	return &Error{
		Code:    CodeHashing,
		Message: "password hashing failed",
		Op:      op,
		Err:     err,
	}
}

// GetCode extracts the error code from an error, returning CodeInternal for
// errors that are not application errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Hint returns the remediation hint for a code. The command line prints it
// under the error message so the operator knows what to check first.
func Hint(code Code) string {
	switch code {
	case CodeConfig:
		return "Check the .env file syntax and that DATABASE_URL uses the form sqlite:<path>"
	case CodeStorage:
		return "Check that the database path is writable and the file is not locked by another process"
	case CodeHashing:
		return "Check the password; bcrypt accepts at most 72 bytes"
	default:
		return "Re-run with LOG_LEVEL=debug for details"
	}
}
