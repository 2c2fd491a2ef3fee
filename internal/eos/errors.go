package eos

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNoComponents     = errors.New("no components")
	ErrLengthMismatch   = errors.New("parameter lengths differ")
	ErrMolesMismatch    = errors.New("mole numbers do not match component count")
	ErrNonPositiveState = errors.New("state variables must be positive")
)

// ValidationError describes which parameter or state field failed validation.
type ValidationError struct {
	Field   string // Offending field (e.g., "sigma", "temperature")
	Details string // Additional details
	Err     error  // One of the sentinel errors above
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Err, e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
