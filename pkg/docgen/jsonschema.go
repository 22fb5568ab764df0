// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docgen

import (
	"encoding/json"
	"fmt"

	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/dacolabs/typeconf/pkg/validate"
	"github.com/google/jsonschema-go/jsonschema"
)

const draft202012 = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema renders a Draft 2020-12 JSON Schema describing the documents
// the schema accepts. Fields without a default that are not optional are
// listed as required.
type JSONSchema struct{}

// Name returns the renderer identifier.
func (j *JSONSchema) Name() string {
	return "jsonschema"
}

// FileExtension returns the file extension for JSON Schema documents.
func (j *JSONSchema) FileExtension() string {
	return ".schema.json"
}

// Render converts a schema to an indented JSON Schema document.
func (j *JSONSchema) Render(s *schema.Schema) ([]byte, error) {
	js, err := ToJSONSchema(s)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON schema: %w", err)
	}
	return append(out, '\n'), nil
}

// ToJSONSchema builds the JSON Schema for s. Declared defaults are parsed
// into their field type, so a bad default is an error.
func ToJSONSchema(s *schema.Schema) (*jsonschema.Schema, error) {
	root := &jsonschema.Schema{
		Schema:     draft202012,
		Title:      s.Name(),
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, s.Len()),
	}

	for _, f := range s.Fields() {
		prop := &jsonschema.Schema{Type: jsonType(f.Type)}
		if f.Meta.Doc != nil {
			prop.Description = *f.Meta.Doc
		}

		switch {
		case f.Type.Numeric():
			prop.Minimum = f.Meta.Min
			prop.Maximum = f.Meta.Max
		case f.Type == schema.Str && f.Meta.Regex != nil:
			prop.Pattern = *f.Meta.Regex
		}

		def, ok, err := validate.ParseDefault(f)
		if err != nil {
			return nil, err
		}
		if ok {
			raw, err := def.MarshalJSON()
			if err != nil {
				return nil, fmt.Errorf("failed to encode default for %q: %w", f.Name, err)
			}
			prop.Default = raw
		} else if !f.Meta.Optional {
			root.Required = append(root.Required, f.Name)
		}

		root.Properties[f.Name] = prop
	}

	return root, nil
}

func jsonType(t schema.FieldType) string {
	switch t {
	case schema.Int:
		return "integer"
	case schema.Float:
		return "number"
	case schema.Bool:
		return "boolean"
	default:
		return "string"
	}
}
