// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	s, err := NewBuilder("ServerConfig").
		Int("threads", Range(4, 10), Doc("worker threads")).
		Str("host", Default("localhost")).
		Float("ratio", Min(0)).
		Bool("debug", Optional()).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "ServerConfig", s.Name())
	require.Equal(t, 4, s.Len())

	fields := s.Fields()
	assert.Equal(t, "threads", fields[0].Name)
	assert.Equal(t, Int, fields[0].Type)
	require.NotNil(t, fields[0].Meta.Min)
	assert.Equal(t, 4.0, *fields[0].Meta.Min)
	assert.Equal(t, 10.0, *fields[0].Meta.Max)
	assert.Equal(t, "worker threads", *fields[0].Meta.Doc)

	host, ok := s.Field("host")
	require.True(t, ok)
	assert.Equal(t, "localhost", *host.Meta.Default)

	debug, ok := s.Field("debug")
	require.True(t, ok)
	assert.True(t, debug.Meta.Optional)

	_, ok = s.Field("missing")
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldSchema
		check  func(t *testing.T, err error)
	}{
		{
			name:   "duplicate name",
			fields: []FieldSchema{{Name: "a", Type: Int}, {Name: "a", Type: Str}},
			check: func(t *testing.T, err error) {
				var dup *DuplicateFieldError
				require.ErrorAs(t, err, &dup)
				assert.Equal(t, "a", dup.Name)
			},
		},
		{
			name:   "empty name",
			fields: []FieldSchema{{Type: Int}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyName)
			},
		},
		{
			name:   "unknown type",
			fields: []FieldSchema{{Name: "a", Type: FieldType(42)}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnknownType)
			},
		},
		{
			name:   "bad regex on string field",
			fields: []FieldSchema{{Name: "a", Type: Str, Meta: FieldMeta{Regex: ptr("([")}}},
			check: func(t *testing.T, err error) {
				var pe *PatternError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "a", pe.Field)
				assert.Equal(t, "([", pe.Pattern)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("Config", tt.fields...)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestNew_InapplicableConstraintsIgnored(t *testing.T) {
	s, err := New("Config",
		FieldSchema{Name: "port", Type: Int, Meta: FieldMeta{Regex: ptr("([")}},
		FieldSchema{Name: "name", Type: Str, Meta: FieldMeta{Min: fptr(1), Max: fptr(2)}},
		FieldSchema{Name: "on", Type: Bool, Meta: FieldMeta{Regex: ptr("x"), Max: fptr(0)}},
	)
	require.NoError(t, err)
	assert.Nil(t, s.Pattern("port"))
	assert.Nil(t, s.Pattern("on"))
}

func TestSchema_Immutable(t *testing.T) {
	def := "a"
	s, err := New("Config", FieldSchema{Name: "x", Type: Str, Meta: FieldMeta{Default: &def}})
	require.NoError(t, err)

	def = "b"
	fields := s.Fields()
	*fields[0].Meta.Default = "c"
	fields[0].Name = "y"

	f, ok := s.Field("x")
	require.True(t, ok)
	assert.Equal(t, "a", *f.Meta.Default)
}

func TestParseFieldType(t *testing.T) {
	tests := []struct {
		in   string
		want FieldType
	}{
		{"int", Int},
		{"Integer", Int},
		{"float", Float},
		{"number", Float},
		{"STR", Str},
		{"string", Str},
		{"bool", Bool},
		{" boolean ", Bool},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFieldType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.String())
		})
	}

	_, err := ParseFieldType("array")
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew("Config", FieldSchema{Name: "a", Type: Int}, FieldSchema{Name: "a", Type: Int})
	})
	assert.Panics(t, func() {
		NewBuilder("Config").Str("s", Regex("(")).MustBuild()
	})
	assert.NotPanics(t, func() {
		NewBuilder("Config").Str("s").MustBuild()
	})
}

func ptr(s string) *string { return &s }

func fptr(f float64) *float64 { return &f }
