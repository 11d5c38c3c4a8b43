// Package engine provides the error taxonomy and input validation shared by
// the calculation engines (nec, hydraulic, energy, nutrient).
//
// The low-level formula functions in the engine subpackages are total over
// their documented numeric domains. Validation happens once, at the boundary
// of each composite entry point, and is reported as *InvalidInputError so
// callers can distinguish bad input from everything else.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is the sentinel all input-validation failures unwrap to.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a caller-supplied value that is outside the
// engine's documented domain: non-positive flow or geometry, an unknown
// lookup key, or a NaN/Inf that would otherwise propagate through the
// formula pipeline.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: field %q (value %v): %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInput constructs an *InvalidInputError for the given field.
func NewInvalidInput(field string, value any, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

// validate is a shared, read-only validator instance. validator.Validate is
// safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs struct-tag validation on v and converts the first
// failure into an *InvalidInputError.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewInvalidInput(
			fe.Field(),
			fe.Value(),
			fmt.Sprintf("failed %q constraint", fe.Tag()),
		)
	}
	return fmt.Errorf("validating input: %w", err)
}

// RequireFinite rejects NaN and ±Inf for the named field.
func RequireFinite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewInvalidInput(field, value, "must be a finite number")
	}
	return nil
}

// RequirePositive rejects NaN, ±Inf, zero and negative values.
func RequirePositive(field string, value float64) error {
	if err := RequireFinite(field, value); err != nil {
		return err
	}
	if value <= 0 {
		return NewInvalidInput(field, value, "must be > 0")
	}
	return nil
}
