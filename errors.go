package go_bscalc

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned for contracts or solver inputs that would
	// make d1/d2 undefined or the result meaningless.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoSolutionFound is returned when the target price cannot be matched
	// by any volatility inside the search range, typically because it sits
	// below the zero-volatility price.
	ErrNoSolutionFound = errors.New("no implied volatility solution found")
	// ErrOutOfRange is returned when the implied volatility lies above the
	// upper search bound.
	ErrOutOfRange = errors.New("implied volatility out of range")
)

// InputError describes a rejected contract field.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %v %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func mustBePositive(field string, v float64) error {
	if isFinite(v) && v > 0 {
		return nil
	}
	return &InputError{Field: field, Value: v, Reason: "must be positive and finite"}
}

func mustBeFinite(field string, v float64) error {
	if isFinite(v) {
		return nil
	}
	return &InputError{Field: field, Value: v, Reason: "must be finite"}
}
