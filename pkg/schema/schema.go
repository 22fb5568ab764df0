// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema describes the flat field schemas that drive loading,
// validation, and documentation of a configuration type.
package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// FieldType is the closed set of scalar types a field may declare.
type FieldType uint8

const (
	Int FieldType = iota + 1
	Float
	Str
	Bool
)

var fieldTypeNames = map[FieldType]string{
	Int:   "int",
	Float: "float",
	Str:   "str",
	Bool:  "bool",
}

// String returns the declaration name of the type ("int", "float", "str", "bool").
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// Numeric reports whether min/max bounds apply to the type.
func (t FieldType) Numeric() bool {
	return t == Int || t == Float
}

// ParseFieldType converts a declaration name into a FieldType.
// Matching is case-insensitive and accepts a few common aliases.
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer":
		return Int, nil
	case "float", "number":
		return Float, nil
	case "str", "string":
		return Str, nil
	case "bool", "boolean":
		return Bool, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// FieldMeta holds the optional constraints and annotations of a field.
// Nil pointers mean "not declared".
type FieldMeta struct {
	// Default is the textual default, parsed into the field type only when needed.
	Default *string
	// Min and Max are inclusive bounds; they only apply to Int and Float fields.
	Min *float64
	Max *float64
	// Regex is a search pattern; it only applies to Str fields.
	Regex *string
	// Doc is free-text documentation used by the generators.
	Doc *string
	// Optional fields are not reported missing when absent without a default.
	Optional bool
}

// FieldSchema describes one configuration field.
type FieldSchema struct {
	Name string
	Type FieldType
	Meta FieldMeta
}

var (
	// ErrEmptyName is returned when a field has no name.
	ErrEmptyName = errors.New("field name is empty")

	// ErrUnknownType is returned for a field type outside the supported set.
	ErrUnknownType = errors.New("unknown field type")
)

// DuplicateFieldError reports a field name declared more than once.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field %q", e.Name)
}

// PatternError reports a regex that does not compile. It is a schema
// authoring problem and is raised when the schema is built.
type PatternError struct {
	Field   string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("field %q: invalid regex %q: %v", e.Field, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Schema is an ordered, immutable set of fields. It is safe for concurrent use.
type Schema struct {
	name     string
	fields   []FieldSchema
	index    map[string]int
	patterns map[string]*regexp.Regexp
}

// New builds a Schema from fields in declaration order.
// Names must be unique and non-empty, types must be known, and regexes on
// Str fields must compile. Constraints that do not apply to a field's type
// are kept but never checked.
func New(name string, fields ...FieldSchema) (*Schema, error) {
	s := &Schema{
		name:     name,
		fields:   make([]FieldSchema, 0, len(fields)),
		index:    make(map[string]int, len(fields)),
		patterns: make(map[string]*regexp.Regexp),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := fieldTypeNames[f.Type]; !ok {
			return nil, fmt.Errorf("field %q: %w: %d", f.Name, ErrUnknownType, uint8(f.Type))
		}
		if _, exists := s.index[f.Name]; exists {
			return nil, &DuplicateFieldError{Name: f.Name}
		}

		if f.Type == Str && f.Meta.Regex != nil {
			re, err := regexp.Compile(*f.Meta.Regex)
			if err != nil {
				return nil, &PatternError{Field: f.Name, Pattern: *f.Meta.Regex, Err: err}
			}
			s.patterns[f.Name] = re
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, cloneField(f))
	}

	return s, nil
}

// MustNew is like New but panics on error. Use it for static declarations.
func MustNew(name string, fields ...FieldSchema) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the configuration type name.
func (s *Schema) Name() string {
	return s.name
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Fields returns a copy of the fields in declaration order.
func (s *Schema) Fields() []FieldSchema {
	out := make([]FieldSchema, len(s.fields))
	for i, f := range s.fields {
		out[i] = cloneField(f)
	}
	return out
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (FieldSchema, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSchema{}, false
	}
	return cloneField(s.fields[i]), true
}

// Pattern returns the compiled regex of a Str field, or nil.
func (s *Schema) Pattern(name string) *regexp.Regexp {
	return s.patterns[name]
}

func cloneField(f FieldSchema) FieldSchema {
	f.Meta.Default = cloneString(f.Meta.Default)
	f.Meta.Regex = cloneString(f.Meta.Regex)
	f.Meta.Doc = cloneString(f.Meta.Doc)
	f.Meta.Min = cloneFloat(f.Meta.Min)
	f.Meta.Max = cloneFloat(f.Meta.Max)
	return f
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
