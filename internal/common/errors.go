package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrConfiguration marks invalid or missing configuration. Fatal: the run
	// aborts before any output is written.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrResolutionGap marks a transcript whose upstream identifiers could not
	// be resolved. The affected fields stay blank and the run continues.
	ErrResolutionGap = errors.New("identifier resolution gap")
	// ErrNoDomains marks a transcript with zero matching domain records.
	// Reportable, not a failure: the transcript still appears in the output.
	ErrNoDomains = errors.New("no domain records found")
	// ErrFormatMismatch marks a multi-table report sent to a single-table
	// destination. Fatal at the sink boundary, before any file is written.
	ErrFormatMismatch = errors.New("report shape incompatible with destination format")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
