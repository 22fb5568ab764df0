// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package materialize decodes a validated canonical value into a caller's
// struct. This is where required fields are enforced.
package materialize

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/dacolabs/typeconf/pkg/value"
	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag that names the document key for a field.
const TagName = "config"

var (
	// ErrMissingField indicates struct fields with no value in the document.
	ErrMissingField = errors.New("missing required field")

	// ErrDecode indicates a value that cannot be stored in its target field.
	ErrDecode = errors.New("cannot decode configuration")
)

// Error reports a materialization failure.
type Error struct {
	// Missing lists the sorted document keys of required fields that were
	// absent or null.
	Missing []string
	Err     error
}

func (e *Error) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("materialize: %s: %s", ErrMissingField, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("materialize: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type options struct {
	schema  *schema.Schema
	tagName string
}

// Option configures Decode.
type Option func(*options)

// WithSchema lets fields marked optional in s stay unset without error.
func WithSchema(s *schema.Schema) Option {
	return func(o *options) { o.schema = s }
}

// WithTagName overrides the struct tag used to match document keys.
func WithTagName(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.tagName = tag
		}
	}
}

// Decode stores the mapping held by v into out, which must be a non-nil
// pointer. Null entries count as absent. A struct field without a matching
// key is an error unless it is a pointer or is marked optional in the schema.
func Decode(v value.Value, out any, opts ...Option) error {
	o := options{tagName: TagName}
	for _, opt := range opts {
		opt(&o)
	}

	input, err := rootInput(v)
	if err != nil {
		return err
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:            out,
		TagName:           o.tagName,
		Metadata:          &md,
		AllowUnsetPointer: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			integralFloatHook,
		),
	})
	if err != nil {
		return &Error{Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}
	if err := dec.Decode(input); err != nil {
		return &Error{Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}

	if missing := required(md.Unset, o.schema); len(missing) > 0 {
		return &Error{Missing: missing, Err: ErrMissingField}
	}
	return nil
}

func rootInput(v value.Value) (map[string]any, error) {
	if v.IsNull() {
		return map[string]any{}, nil
	}
	m, ok := v.AsMap()
	if !ok {
		return nil, &Error{Err: fmt.Errorf("%w: document root must be a mapping, got %s", ErrDecode, v.Kind())}
	}
	input := make(map[string]any, m.Len())
	m.Range(func(key string, item value.Value) bool {
		if !item.IsNull() {
			input[key] = value.ToAny(item)
		}
		return true
	})
	return input, nil
}

func required(unset []string, s *schema.Schema) []string {
	var missing []string
	for _, name := range unset {
		if s != nil {
			if f, ok := s.Field(name); ok && f.Meta.Optional {
				continue
			}
		}
		missing = append(missing, name)
	}
	slices.Sort(missing)
	return missing
}

// integralFloatHook rejects floats with a fractional part bound for integer
// fields; the decoder would otherwise truncate them.
func integralFloatHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f, _ := data.(float64)
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("cannot store %s in integer field", value.FormatFloat(f))
	}
	return data, nil
}
