package sim

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or out-of-range process input.
// Field carries the wire name of the offending input (e.g. "umidadeBagaço").
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// NewMissingFieldError builds the error returned for an absent required input.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "required field not provided"}
}

// InfeasibilityError reports a stage whose mass balance cannot be satisfied.
// The pipeline aborts on it instead of feeding non-physical values downstream.
type InfeasibilityError struct {
	Stage  string
	Reason string
}

func (e *InfeasibilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Reason)
}

// ErrInsufficientData is returned when an upstream stage leaves the evaporator feed undefined.
var ErrInsufficientData = errors.New("invalid values for the evaporator calculation")
