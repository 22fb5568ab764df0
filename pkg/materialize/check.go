// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package materialize

import (
	"reflect"
	"strconv"

	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/dacolabs/typeconf/pkg/value"
)

// StructOf returns a struct type with one exported field per schema field,
// tagged with the field's document key. Optional fields are pointers.
func StructOf(s *schema.Schema) reflect.Type {
	fields := s.Fields()
	sf := make([]reflect.StructField, 0, len(fields))
	for i, f := range fields {
		t := goType(f.Type)
		if f.Meta.Optional {
			t = reflect.PointerTo(t)
		}
		sf = append(sf, reflect.StructField{
			Name: "F" + strconv.Itoa(i),
			Type: t,
			Tag:  reflect.StructTag(TagName + ":" + strconv.Quote(f.Name)),
		})
	}
	return reflect.StructOf(sf)
}

// Check decodes v into a struct built from s and reports what a typed
// decode would: missing required fields and values of the wrong type.
func Check(v value.Value, s *schema.Schema) error {
	out := reflect.New(StructOf(s)).Interface()
	return Decode(v, out, WithSchema(s))
}

func goType(t schema.FieldType) reflect.Type {
	switch t {
	case schema.Int:
		return reflect.TypeFor[int64]()
	case schema.Float:
		return reflect.TypeFor[float64]()
	case schema.Bool:
		return reflect.TypeFor[bool]()
	default:
		return reflect.TypeFor[string]()
	}
}
