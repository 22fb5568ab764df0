// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/dacolabs/typeconf/pkg/value"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.NewBuilder("ServerConfig").
		Int("threads", schema.Min(4), schema.Max(10)).
		Str("host", schema.Default("localhost")).
		Build()
	require.NoError(t, err)
	return s
}

func doc(pairs ...any) value.Value {
	m := value.NewMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(value.Value))
	}
	return value.Object(m)
}

func TestValidate_Scenario(t *testing.T) {
	s := serverSchema(t)

	t.Run("default inserted", func(t *testing.T) {
		v := doc("threads", value.Int(7))
		require.NoError(t, Validate(&v, s))

		want := doc("threads", value.Int(7), "host", value.String("localhost"))
		assert.Empty(t, cmp.Diff(want, v))
	})

	t.Run("below min", func(t *testing.T) {
		v := doc("threads", value.Int(2))
		err := Validate(&v, s)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "threads", verr.Field)
		assert.Equal(t, "2", verr.Value)
		assert.ErrorIs(t, err, ErrBelowMin)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "threads")
	})

	t.Run("present value kept", func(t *testing.T) {
		v := doc("threads", value.Int(7), "host", value.String("x"))
		require.NoError(t, Validate(&v, s))

		want := doc("threads", value.Int(7), "host", value.String("x"))
		assert.Empty(t, cmp.Diff(want, v))
	})
}

func TestValidate_Bounds(t *testing.T) {
	s, err := schema.NewBuilder("C").
		Int("count", schema.Range(4, 10)).
		Float("ratio", schema.Range(-1.5, 2.5)).
		Build()
	require.NoError(t, err)

	tests := []struct {
		name    string
		field   string
		val     value.Value
		wantErr error
	}{
		{"int at min", "count", value.Int(4), nil},
		{"int at max", "count", value.Int(10), nil},
		{"int inside", "count", value.Int(6), nil},
		{"int below", "count", value.Int(3), ErrBelowMin},
		{"int above", "count", value.Int(11), ErrAboveMax},
		{"float in int field", "count", value.Float(10.5), ErrAboveMax},
		{"float at min", "ratio", value.Float(-1.5), nil},
		{"float at max", "ratio", value.Float(2.5), nil},
		{"float below", "ratio", value.Float(-1.51), ErrBelowMin},
		{"float above", "ratio", value.Float(2.51), ErrAboveMax},
		{"int in float field", "ratio", value.Int(3), ErrAboveMax},
		{"non numeric ignored", "count", value.String("many"), nil},
		{"bool ignored", "ratio", value.Bool(true), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := doc(tt.field, tt.val)
			err := Validate(&v, s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidate_Regex(t *testing.T) {
	s, err := schema.NewBuilder("C").
		Str("partial", schema.Regex("[0-9]+")).
		Str("anchored", schema.Regex(`^v[0-9]+$`)).
		Build()
	require.NoError(t, err)

	tests := []struct {
		name    string
		field   string
		val     value.Value
		wantErr bool
	}{
		{"substring match", "partial", value.String("abc123def"), false},
		{"no digits", "partial", value.String("abc"), true},
		{"anchored match", "anchored", value.String("v12"), false},
		{"anchored partial", "anchored", value.String("xv12"), true},
		{"non string value", "partial", value.Int(123), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := doc(tt.field, tt.val)
			err := Validate(&v, s)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrPatternMismatch)
		})
	}
}

func TestValidate_DefaultTypes(t *testing.T) {
	s, err := schema.NewBuilder("C").
		Int("count", schema.Default("5")).
		Float("ratio", schema.Default("0.5")).
		Float("whole", schema.Default("3")).
		Bool("debug", schema.Default("true")).
		Str("name", schema.Default("5")).
		Build()
	require.NoError(t, err)

	v := doc("ratio", value.Null())
	require.NoError(t, Validate(&v, s))

	want := doc(
		"ratio", value.Float(0.5),
		"count", value.Int(5),
		"whole", value.Float(3),
		"debug", value.Bool(true),
		"name", value.String("5"),
	)
	assert.Empty(t, cmp.Diff(want, v))

	m, _ := v.AsMap()
	count, _ := m.Get("count")
	assert.Equal(t, value.KindInt, count.Kind())
	whole, _ := m.Get("whole")
	assert.Equal(t, value.KindFloat, whole.Kind())
}

func TestValidate_NullWithoutDefault(t *testing.T) {
	s, err := schema.NewBuilder("C").Int("count").Str("name").Build()
	require.NoError(t, err)

	v := doc("count", value.Null())
	require.NoError(t, Validate(&v, s))

	m, _ := v.AsMap()
	count, ok := m.Get("count")
	require.True(t, ok)
	assert.True(t, count.IsNull())
	_, ok = m.Get("name")
	assert.False(t, ok)
}

func TestValidate_BadDefault(t *testing.T) {
	s, err := schema.NewBuilder("C").Int("count", schema.Default("abc")).Build()
	require.NoError(t, err)

	inputs := []value.Value{
		doc(),
		doc("count", value.Null()),
		doc("count", value.Int(3)),
	}
	for _, in := range inputs {
		v := in
		for range 2 {
			err := Validate(&v, s)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "count", verr.Field)
			assert.Equal(t, "abc", verr.Value)
			assert.ErrorIs(t, err, ErrInvalidDefault)
		}
	}
}

func TestValidate_BadDefaultPerType(t *testing.T) {
	tests := []struct {
		name string
		ty   schema.FieldType
		def  string
	}{
		{"int float text", schema.Int, "5.5"},
		{"float text", schema.Float, "fast"},
		{"float inf", schema.Float, "inf"},
		{"bool numeric", schema.Bool, "1"},
		{"bool capitalised", schema.Bool, "True"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.New("C", schema.FieldSchema{
				Name: "f", Type: tt.ty, Meta: schema.FieldMeta{Default: &tt.def},
			})
			require.NoError(t, err)

			v := doc()
			assert.ErrorIs(t, Validate(&v, s), ErrInvalidDefault)
		})
	}
}

func TestValidate_DefaultViolatesConstraints(t *testing.T) {
	s, err := schema.NewBuilder("C").
		Int("count", schema.Default("2"), schema.Min(4)).
		Build()
	require.NoError(t, err)

	v := doc()
	err = Validate(&v, s)
	assert.ErrorIs(t, err, ErrInvalidDefault)
	assert.ErrorIs(t, err, ErrBelowMin)

	// A user-provided value is still checked normally.
	v = doc("count", value.Int(5))
	assert.NoError(t, Validate(&v, s))
}

func TestValidate_Idempotent(t *testing.T) {
	s, err := schema.NewBuilder("C").
		Int("threads", schema.Range(1, 8), schema.Default("4")).
		Str("host", schema.Default("localhost"), schema.Regex("^[a-z]+$")).
		Bool("debug", schema.Default("false")).
		Float("ratio").
		Build()
	require.NoError(t, err)

	v := doc("ratio", value.Float(0.1))
	require.NoError(t, Validate(&v, s))
	first := v.Clone()

	require.NoError(t, Validate(&v, s))
	assert.Empty(t, cmp.Diff(first, v))

	m, _ := v.AsMap()
	assert.Equal(t, []string{"ratio", "threads", "host", "debug"}, m.Keys())
}

func TestValidate_InapplicableConstraintsIgnored(t *testing.T) {
	pattern := "^x$"
	lo, hi := 100.0, 200.0
	s, err := schema.New("C",
		schema.FieldSchema{Name: "name", Type: schema.Str, Meta: schema.FieldMeta{Min: &lo, Max: &hi}},
		schema.FieldSchema{Name: "port", Type: schema.Int, Meta: schema.FieldMeta{Regex: &pattern}},
		schema.FieldSchema{Name: "on", Type: schema.Bool, Meta: schema.FieldMeta{Regex: &pattern, Min: &lo}},
	)
	require.NoError(t, err)

	v := doc("name", value.String("abc"), "port", value.Int(1), "on", value.Bool(false))
	assert.NoError(t, Validate(&v, s))
}

func TestValidate_PartialMutationOnError(t *testing.T) {
	s, err := schema.NewBuilder("C").
		Str("host", schema.Default("localhost")).
		Int("threads", schema.Max(4)).
		Str("mode", schema.Default("fast")).
		Build()
	require.NoError(t, err)

	v := doc("threads", value.Int(9))
	require.Error(t, Validate(&v, s))

	m, _ := v.AsMap()
	_, ok := m.Get("host")
	assert.True(t, ok, "defaults before the failing field are already applied")
	_, ok = m.Get("mode")
	assert.False(t, ok, "fields after the failing field are not visited")
}

func TestValidate_Root(t *testing.T) {
	s := serverSchema(t)

	v := value.Null()
	require.NoError(t, Validate(&v, s))
	m, ok := v.AsMap()
	require.True(t, ok)
	assert.Equal(t, []string{"host"}, m.Keys())

	v = value.Array(value.Int(1))
	err := Validate(&v, s)
	assert.ErrorIs(t, err, ErrNotMapping)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestValidate_UnrelatedKeysUntouched(t *testing.T) {
	s := serverSchema(t)
	extra := value.Array(value.Int(1), value.String("two"))

	v := doc("extra", extra, "threads", value.Int(5))
	require.NoError(t, Validate(&v, s))

	m, _ := v.AsMap()
	got, _ := m.Get("extra")
	assert.Empty(t, cmp.Diff(extra, got))
	assert.Equal(t, []string{"extra", "threads", "host"}, m.Keys())
}

func TestValidate_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := doc("threads", value.Int(5))
	require.NoError(t, Validate(&v, serverSchema(t), WithLogger(logger)))
	assert.Contains(t, buf.String(), "applied default")
	assert.Contains(t, buf.String(), "field=host")
}

func TestParseDefault(t *testing.T) {
	f := schema.FieldSchema{Name: "n", Type: schema.Int}
	_, ok, err := ParseDefault(f)
	require.NoError(t, err)
	assert.False(t, ok)

	def := "-12"
	f.Meta.Default = &def
	v, ok, err := ParseDefault(f)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, value.Equal(value.Int(-12), v))
}
