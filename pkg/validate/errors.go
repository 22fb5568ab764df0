// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrBelowMin indicates a numeric value under the declared minimum.
	ErrBelowMin = errors.New("less than min")

	// ErrAboveMax indicates a numeric value over the declared maximum.
	ErrAboveMax = errors.New("greater than max")

	// ErrPatternMismatch indicates a string that does not match the declared regex.
	ErrPatternMismatch = errors.New("does not match regex")

	// ErrInvalidDefault indicates a declared default that cannot be parsed as
	// the field type, or that violates the field's own constraints.
	ErrInvalidDefault = errors.New("invalid default")

	// ErrNotMapping indicates a document whose root is not a mapping.
	ErrNotMapping = errors.New("document root is not a mapping")
)

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	// Field is the schema field name; empty for document-level failures.
	Field string
	// Value is the offending value or default text, rendered for display.
	Value  string
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Detail)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
