package errors

import (
	"errors"
	"fmt"
)

// Error codes for the statement pipeline
const (
	// CodeFetchFailed marks provider failures: transport errors, bad
	// status, or an error envelope in the response body.
	CodeFetchFailed = "FETCH_FAILED"
	// CodeWriteFailed marks CSV output failures.
	CodeWriteFailed = "WRITE_FAILED"
	// CodeConfigInvalid marks configuration that failed validation.
	CodeConfigInvalid = "CONFIG_INVALID"
)

// Error represents a structured pipeline error
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the given code and message
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new Error wrapping an underlying cause
func Wrap(code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper constructors for the pipeline's failure domains

// FetchError marks a provider fetch failure for a ticker. Fetch failures
// are fatal for the run and happen before any output file exists.
func FetchError(ticker string, err error) *Error {
	return Wrap(CodeFetchFailed, fmt.Sprintf("failed to fetch statements for %s", ticker), err)
}

// WriteError marks a CSV write failure at a path. Files written earlier
// in the run stay in place.
func WriteError(path string, err error) *Error {
	return Wrap(CodeWriteFailed, fmt.Sprintf("failed to write %s", path), err)
}

// ConfigError marks configuration that failed to load or validate
func ConfigError(err error) *Error {
	return Wrap(CodeConfigInvalid, "invalid configuration", err)
}

// CodeOf returns the code of the first Error in err's chain, or an
// empty string when the chain carries none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsFetchFailure reports whether err is a provider fetch failure
func IsFetchFailure(err error) bool {
	return CodeOf(err) == CodeFetchFailed
}

// IsWriteFailure reports whether err is a CSV write failure
func IsWriteFailure(err error) bool {
	return CodeOf(err) == CodeWriteFailed
}
