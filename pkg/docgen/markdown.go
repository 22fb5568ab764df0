// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docgen

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/typeconf/pkg/schema"
)

//go:embed templates/*.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"formatConstraints": FormatConstraints,
	"comment":           comment,
}

var tmpl = template.Must(template.New("docgen").Funcs(funcMap).ParseFS(tmplFS, "templates/*.tmpl"))

type markdownResolver struct{}

func (r *markdownResolver) FieldType(t schema.FieldType) string {
	return t.String()
}

func (r *markdownResolver) FormatName(name string) string {
	return name
}

func (r *markdownResolver) EnrichField(f *Field) {}

// Markdown renders a Markdown reference of the documented fields.
type Markdown struct{}

// Name returns the renderer identifier.
func (m *Markdown) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (m *Markdown) FileExtension() string {
	return ".md"
}

// Render converts a schema to markdown documentation. Fields without a doc
// annotation are left out.
func (m *Markdown) Render(s *schema.Schema) ([]byte, error) {
	data := Prepare(s, &markdownResolver{})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// Fields returns the fields of s prepared with schema type names, for
// listings outside the templates.
func Fields(s *schema.Schema) []Field {
	return Prepare(s, &markdownResolver{}).Fields
}
