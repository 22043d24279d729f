package domain

import (
	"fmt"
	"strings"
)

// ValidationError carries the full list of input violations so the caller
// sees every problem in one round trip.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Details, "; "))
}

// NewValidationError builds a ValidationError from collected details.
func NewValidationError(details []string) *ValidationError {
	return &ValidationError{Details: details}
}
