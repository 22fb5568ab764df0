// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/typeconf/pkg/schema"
)

// DocData is the complete input passed to a renderer template.
type DocData struct {
	Name   string         // formatted configuration type name
	Fields []Field        // fields in declaration order
	Extra  map[string]any // renderer-specific template data
}

// Field represents a single schema field prepared for rendering.
type Field struct {
	Name       string // document key (may be mutated by EnrichField)
	Key        string // original document key
	Type       string // resolved target type string
	Doc        string
	Default    string // default text
	HasDefault bool
	Optional   bool   // true if the field may be left unset
	Tag        string // language-specific annotation, e.g. `config:"host"`

	Constraints Constraints
}

// Constraints holds the constraints that apply to the field's type.
type Constraints struct {
	Min   *float64
	Max   *float64
	Regex string
}

// TypeResolver maps schema types and names to a renderer's vocabulary.
type TypeResolver interface {
	FieldType(t schema.FieldType) string
	FormatName(name string) string
	EnrichField(f *Field)
}

// Prepare converts a schema into DocData ready for template execution.
// Constraints that do not apply to a field's type are dropped.
func Prepare(s *schema.Schema, resolver TypeResolver) *DocData {
	data := &DocData{
		Name:  resolver.FormatName(s.Name()),
		Extra: make(map[string]any),
	}

	for _, fs := range s.Fields() {
		f := Field{
			Name:     fs.Name,
			Key:      fs.Name,
			Type:     resolver.FieldType(fs.Type),
			Optional: fs.Meta.Optional,
		}
		if fs.Meta.Doc != nil {
			f.Doc = strings.TrimSpace(*fs.Meta.Doc)
		}
		if fs.Meta.Default != nil {
			f.Default = *fs.Meta.Default
			f.HasDefault = true
		}
		switch {
		case fs.Type.Numeric():
			f.Constraints.Min = fs.Meta.Min
			f.Constraints.Max = fs.Meta.Max
		case fs.Type == schema.Str && fs.Meta.Regex != nil:
			f.Constraints.Regex = *fs.Meta.Regex
		}
		resolver.EnrichField(&f)
		data.Fields = append(data.Fields, f)
	}

	return data
}

// ToPascalCase converts a snake_case or kebab-case string to PascalCase.
// It handles common Go acronyms (ID, URL, HTTP, API, JSON, XML, SQL, HTML).
func ToPascalCase(s string) string {
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"html": "HTML",
		"ip":   "IP",
		"tcp":  "TCP",
		"udp":  "UDP",
		"tls":  "TLS",
		"ssl":  "SSL",
		"ssh":  "SSH",
		"cpu":  "CPU",
		"uri":  "URI",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}

// FormatConstraints formats the constraints for a field as a human-readable string.
func FormatConstraints(f Field) string {
	var parts []string

	if f.HasDefault {
		parts = append(parts, fmt.Sprintf("default: `%s`", f.Default))
	}

	if c := f.Constraints; c.Min != nil && c.Max != nil {
		parts = append(parts, fmt.Sprintf("range: %s..=%s", formatNumber(*c.Min), formatNumber(*c.Max)))
	} else if c.Min != nil {
		parts = append(parts, "min: "+formatNumber(*c.Min))
	} else if c.Max != nil {
		parts = append(parts, "max: "+formatNumber(*c.Max))
	}

	if f.Constraints.Regex != "" {
		parts = append(parts, fmt.Sprintf("pattern: `%s`", f.Constraints.Regex))
	}

	if f.Optional {
		parts = append(parts, "optional")
	}

	return strings.Join(parts, ", ")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
