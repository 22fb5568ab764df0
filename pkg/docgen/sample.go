// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docgen

import (
	"math"

	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/dacolabs/typeconf/pkg/validate"
	"github.com/dacolabs/typeconf/pkg/value"
)

// RequiredPlaceholder marks a string field the user must fill in.
const RequiredPlaceholder = "REQUIRED"

// SynthesizeSample builds a sample document for s, one key per field in
// declaration order:
//
//   - the parsed default when one is declared;
//   - numeric fields take min, or zero when unbounded below;
//   - string fields take a placeholder naming the regex, if any;
//   - boolean fields take false.
//
// An integer min that is not whole is rounded up so the sample stays in range.
func SynthesizeSample(s *schema.Schema) (value.Value, error) {
	m := value.NewMap()
	for _, f := range s.Fields() {
		v, err := sampleField(f)
		if err != nil {
			return value.Value{}, err
		}
		m.Set(f.Name, v)
	}
	return value.Object(m), nil
}

func sampleField(f schema.FieldSchema) (value.Value, error) {
	def, ok, err := validate.ParseDefault(f)
	if err != nil {
		return value.Value{}, err
	}
	if ok {
		return def, nil
	}

	switch f.Type {
	case schema.Int:
		if f.Meta.Min != nil {
			return value.Int(int64(math.Ceil(*f.Meta.Min))), nil
		}
		return value.Int(0), nil
	case schema.Float:
		if f.Meta.Min != nil {
			return value.Float(*f.Meta.Min), nil
		}
		return value.Float(0), nil
	case schema.Str:
		if f.Meta.Regex != nil {
			return value.String(RequiredPlaceholder + "; must match " + *f.Meta.Regex), nil
		}
		return value.String(RequiredPlaceholder), nil
	default:
		return value.Bool(false), nil
	}
}
