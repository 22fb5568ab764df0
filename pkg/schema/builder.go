// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

// Option sets a constraint or annotation on a field.
type Option func(*FieldMeta)

// Default sets the textual default value.
func Default(text string) Option {
	return func(m *FieldMeta) { m.Default = &text }
}

// Min sets the inclusive lower bound of a numeric field.
func Min(v float64) Option {
	return func(m *FieldMeta) { m.Min = &v }
}

// Max sets the inclusive upper bound of a numeric field.
func Max(v float64) Option {
	return func(m *FieldMeta) { m.Max = &v }
}

// Range sets both bounds.
func Range(lo, hi float64) Option {
	return func(m *FieldMeta) {
		m.Min = &lo
		m.Max = &hi
	}
}

// Regex sets the search pattern of a string field.
func Regex(pattern string) Option {
	return func(m *FieldMeta) { m.Regex = &pattern }
}

// Doc sets the field documentation.
func Doc(text string) Option {
	return func(m *FieldMeta) { m.Doc = &text }
}

// Optional marks the field as not required at materialization.
func Optional() Option {
	return func(m *FieldMeta) { m.Optional = true }
}

// Builder accumulates field declarations for a Schema.
//
//	s, err := schema.NewBuilder("ServerConfig").
//	    Int("threads", schema.Range(4, 10)).
//	    Str("host", schema.Default("localhost")).
//	    Build()
type Builder struct {
	name   string
	fields []FieldSchema
}

// NewBuilder starts a schema for the named configuration type.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Field appends a field of the given type.
func (b *Builder) Field(name string, ty FieldType, opts ...Option) *Builder {
	f := FieldSchema{Name: name, Type: ty}
	for _, opt := range opts {
		opt(&f.Meta)
	}
	b.fields = append(b.fields, f)
	return b
}

// Int appends an integer field.
func (b *Builder) Int(name string, opts ...Option) *Builder {
	return b.Field(name, Int, opts...)
}

// Float appends a floating point field.
func (b *Builder) Float(name string, opts ...Option) *Builder {
	return b.Field(name, Float, opts...)
}

// Str appends a string field.
func (b *Builder) Str(name string, opts ...Option) *Builder {
	return b.Field(name, Str, opts...)
}

// Bool appends a boolean field.
func (b *Builder) Bool(name string, opts ...Option) *Builder {
	return b.Field(name, Bool, opts...)
}

// Build validates the declarations and returns the immutable Schema.
func (b *Builder) Build() (*Schema, error) {
	return New(b.name, b.fields...)
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	return MustNew(b.name, b.fields...)
}
