package calc

import (
	"errors"
	"fmt"
)

// DomainError represents a validation failure in the pair calculator.
//
// It is the only error kind the calculator produces. Callers are expected
// to catch it at the call site and turn it into a diagnostic line; it must
// never propagate past the script runner.
type DomainError struct {
	// Code identifies the error category.
	Code DomainErrorCode

	// Message is the human-readable description. For non-positive inputs
	// this is exactly "Both values must be positive" - the diagnostic
	// output format depends on that text.
	Message string

	// X and Y are the rejected inputs, kept for diagnostics.
	X int
	Y int
}

// DomainErrorCode categorizes domain errors.
type DomainErrorCode string

// ErrCodeNonPositive indicates one or both inputs were <= 0.
const ErrCodeNonPositive DomainErrorCode = "NON_POSITIVE_INPUT"

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (x=%d, y=%d)", e.Code, e.Message, e.X, e.Y)
}

// IsDomainError returns true if the error is a calculator domain error.
// Uses errors.As to handle wrapped errors.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// AsDomainError extracts a DomainError from err, unwrapping as needed.
// Returns nil if err is not a domain error.
func AsDomainError(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// newNonPositiveError creates the DomainError for rejected inputs.
func newNonPositiveError(x, y int) *DomainError {
	return &DomainError{
		Code:    ErrCodeNonPositive,
		Message: "Both values must be positive",
		X:       x,
		Y:       y,
	}
}
