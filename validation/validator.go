package validation

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/felsokning/codeninjas/errors"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects rule failures for hand-written Validate methods.
//
//	return validation.New().
//		Required("name", c.Name).
//		OneOf("environment", c.Environment, environments).
//		Err()
type Validator struct {
	fields []FieldError
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Errors returns the failures collected so far.
func (v *Validator) Errors() []FieldError {
	return v.fields
}

// Err returns nil when every rule passed, otherwise one INVALID_INPUT
// AppError listing every failure.
func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return fieldsError(v.fields)
}

// Check records message for field unless ok.
func (v *Validator) Check(ok bool, field, message string) *Validator {
	if !ok {
		v.fields = append(v.fields, FieldError{Field: field, Message: message})
	}
	return v
}

// Required fails on empty or blank values.
func (v *Validator) Required(field, value string) *Validator {
	return v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// Range fails when value is outside [lo, hi].
func (v *Validator) Range(field string, value, lo, hi int) *Validator {
	return v.Check(value >= lo && value <= hi, field, fmt.Sprintf("must be between %d and %d", lo, hi))
}

// NonNegative fails on negative durations. Zero means "use the default".
func (v *Validator) NonNegative(field string, d time.Duration) *Validator {
	return v.Check(d >= 0, field, fmt.Sprintf("must not be negative (got %s)", d))
}

// OneOf fails when a non-empty value is not allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	return v.Check(value == "" || slices.Contains(allowed, value), field,
		fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}

func fieldsError(fields []FieldError) *errors.AppError {
	messages := make([]string, len(fields))
	for i, e := range fields {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return errors.Validation(strings.Join(messages, "; ")).WithDetail("fields", fields)
}
