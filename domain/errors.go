package domain

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies domain errors for propagation decisions
type ErrorCategory string

const (
	// ErrConfig covers fatal pre-run problems: invalid weights, bad
	// concurrency values, zero matched files. The run never starts.
	ErrConfig ErrorCategory = "config"

	// ErrParse covers file-scoped parse failures; recovered locally
	ErrParse ErrorCategory = "parse"

	// ErrIO covers unreadable files; treated like parse failures
	ErrIO ErrorCategory = "io"

	// ErrUnsupported covers files with no extractor
	ErrUnsupported ErrorCategory = "unsupported"

	// ErrInternal covers invariant violations that must never occur in
	// correct code; the run aborts rather than report a wrong score.
	ErrInternal ErrorCategory = "internal"
)

// DomainError is the error type carried across layer boundaries
type DomainError struct {
	Category ErrorCategory
	Message  string
	Err      error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a fatal configuration error
func NewConfigError(message string, err error) *DomainError {
	return &DomainError{Category: ErrConfig, Message: message, Err: err}
}

// NewParseError creates a file-scoped parse error
func NewParseError(message string, err error) *DomainError {
	return &DomainError{Category: ErrParse, Message: message, Err: err}
}

// NewIOError creates a file-scoped read error
func NewIOError(message string, err error) *DomainError {
	return &DomainError{Category: ErrIO, Message: message, Err: err}
}

// NewUnsupportedError creates an unsupported-language error
func NewUnsupportedError(message string) *DomainError {
	return &DomainError{Category: ErrUnsupported, Message: message}
}

// NewInternalError creates an invariant-violation error
func NewInternalError(message string, err error) *DomainError {
	return &DomainError{Category: ErrInternal, Message: message, Err: err}
}

// IsCategory reports whether any DomainError in err's chain has the given
// category
func IsCategory(err error, category ErrorCategory) bool {
	for err != nil {
		var de *DomainError
		if !errors.As(err, &de) {
			return false
		}
		if de.Category == category {
			return true
		}
		err = de.Err
	}
	return false
}
