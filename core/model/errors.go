package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a physical parameter lies outside its
// valid domain. All validation errors wrap it.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError describes which parameter was rejected and why.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s=%v %s", e.Field, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func invalid(field string, value float64, reason string) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

// RequirePositive rejects zero, negative, NaN and infinite values.
func RequirePositive(field string, value float64) error {
	if !(value > 0) {
		return invalid(field, value, "must be positive")
	}
	if math.IsInf(value, 0) {
		return invalid(field, value, "must be finite")
	}
	return nil
}

// RequireNonNegative rejects negative, NaN and infinite values.
func RequireNonNegative(field string, value float64) error {
	if !(value >= 0) {
		return invalid(field, value, "must not be negative")
	}
	if math.IsInf(value, 0) {
		return invalid(field, value, "must be finite")
	}
	return nil
}

// RequireFraction rejects values outside the closed interval [0,1].
func RequireFraction(field string, value float64) error {
	if !(value >= 0 && value <= 1) {
		return invalid(field, value, "must be within [0,1]")
	}
	return nil
}
