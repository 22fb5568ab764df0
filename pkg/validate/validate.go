// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validate checks a canonical document against a field schema and
// fills in declared defaults.
package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"

	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/dacolabs/typeconf/pkg/value"
)

type options struct {
	logger *slog.Logger
}

// Option configures Validate.
type Option func(*options)

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Validate walks s in declaration order and checks or repairs each field of
// the mapping held by doc:
//
//   - a present, non-null value must satisfy the field's bounds or regex;
//   - an absent or null value receives the parsed default, if one is declared,
//     and is otherwise left untouched.
//
// The first failure aborts validation. Defaults inserted for earlier fields
// stay in doc, so doc must not be trusted after an error. A null root is
// replaced by an empty mapping.
func Validate(doc *value.Value, s *schema.Schema, opts ...Option) error {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	root, err := rootMap(doc)
	if err != nil {
		return err
	}

	for _, f := range s.Fields() {
		pattern := s.Pattern(f.Name)

		// Defaults are parsed whenever the field is visited so a bad default
		// fails the same way whether or not the key is present.
		def, hasDefault, err := ParseDefault(f)
		if err != nil {
			o.logger.Debug("invalid default", "field", f.Name, "error", err)
			return err
		}

		current, present := root.Get(f.Name)
		if present && !current.IsNull() {
			if verr := check(f, current, pattern); verr != nil {
				o.logger.Debug("validation failed", "field", f.Name, "error", verr)
				return verr
			}
			continue
		}

		if !hasDefault {
			continue
		}
		if verr := check(f, def, pattern); verr != nil {
			return &ValidationError{
				Field:  f.Name,
				Value:  *f.Meta.Default,
				Detail: fmt.Sprintf("default %q violates its own constraints: %s", *f.Meta.Default, verr.Detail),
				Err:    fmt.Errorf("%w: %w", ErrInvalidDefault, verr.Err),
			}
		}
		root.Set(f.Name, def)
		o.logger.Debug("applied default", "field", f.Name, "value", def.String())
	}

	return nil
}

func rootMap(doc *value.Value) (*value.Map, error) {
	if doc.IsNull() {
		*doc = value.Object(nil)
	}
	m, ok := doc.AsMap()
	if !ok {
		return nil, &ValidationError{
			Value:  doc.Kind().String(),
			Detail: fmt.Sprintf("document root must be a mapping, got %s", doc.Kind()),
			Err:    ErrNotMapping,
		}
	}
	return m, nil
}

// check applies the constraints relevant to f's type. Constraints that do
// not apply to the type are ignored, as are values whose kind the check
// cannot interpret (materialization reports type mismatches).
func check(f schema.FieldSchema, v value.Value, pattern *regexp.Regexp) *ValidationError {
	switch f.Type {
	case schema.Int, schema.Float:
		n, ok := v.Number()
		if !ok {
			return nil
		}
		if f.Meta.Min != nil && n < *f.Meta.Min {
			return &ValidationError{
				Field:  f.Name,
				Value:  v.String(),
				Detail: fmt.Sprintf("value %s less than min %s", v, formatBound(*f.Meta.Min)),
				Err:    ErrBelowMin,
			}
		}
		if f.Meta.Max != nil && n > *f.Meta.Max {
			return &ValidationError{
				Field:  f.Name,
				Value:  v.String(),
				Detail: fmt.Sprintf("value %s greater than max %s", v, formatBound(*f.Meta.Max)),
				Err:    ErrAboveMax,
			}
		}
	case schema.Str:
		if pattern == nil {
			return nil
		}
		if s, ok := v.AsString(); !ok || !pattern.MatchString(s) {
			return &ValidationError{
				Field:  f.Name,
				Value:  v.String(),
				Detail: fmt.Sprintf("value %s does not match regex %q", v, pattern.String()),
				Err:    ErrPatternMismatch,
			}
		}
	}
	return nil
}

// ParseDefault parses the declared default of f into its concrete type.
// It returns false when no default is declared.
func ParseDefault(f schema.FieldSchema) (value.Value, bool, error) {
	if f.Meta.Default == nil {
		return value.Value{}, false, nil
	}
	text := *f.Meta.Default

	var (
		v   value.Value
		err error
	)
	switch f.Type {
	case schema.Int:
		var i int64
		if i, err = strconv.ParseInt(text, 10, 64); err == nil {
			v = value.Int(i)
		}
	case schema.Float:
		var fl float64
		if fl, err = strconv.ParseFloat(text, 64); err == nil {
			if math.IsNaN(fl) || math.IsInf(fl, 0) {
				err = fmt.Errorf("non-finite float %q", text)
			} else {
				v = value.Float(fl)
			}
		}
	case schema.Bool:
		switch text {
		case "true":
			v = value.Bool(true)
		case "false":
			v = value.Bool(false)
		default:
			err = errors.New(`expected "true" or "false"`)
		}
	case schema.Str:
		v = value.String(text)
	default:
		err = fmt.Errorf("%w: %s", schema.ErrUnknownType, f.Type)
	}

	if err != nil {
		return value.Value{}, true, &ValidationError{
			Field:  f.Name,
			Value:  text,
			Detail: fmt.Sprintf("failed to parse default %q as %s: %v", text, f.Type, err),
			Err:    fmt.Errorf("%w: %w", ErrInvalidDefault, err),
		}
	}
	return v, true, nil
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
