// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"github.com/dacolabs/typeconf/pkg/materialize"
	"github.com/dacolabs/typeconf/pkg/schema"
)

type goResolver struct{}

func (r *goResolver) FieldType(t schema.FieldType) string {
	switch t {
	case schema.Int:
		return "int64"
	case schema.Float:
		return "float64"
	case schema.Str:
		return "string"
	case schema.Bool:
		return "bool"
	default:
		return "any"
	}
}

func (r *goResolver) FormatName(name string) string {
	return goIdent(name)
}

func (r *goResolver) EnrichField(f *Field) {
	if f.Optional && !f.HasDefault {
		f.Type = "*" + f.Type
	}
	f.Tag = "`" + materialize.TagName + ":\"" + f.Key + "\"`"
	f.Name = goIdent(f.Name)
}

// goIdent returns an exported Go identifier for name.
func goIdent(name string) string {
	id := ToPascalCase(name)
	if id == "" || !unicode.IsLetter([]rune(id)[0]) {
		id = "Field" + id
	}
	return id
}

// GoTypes renders a Go struct whose tags match the materializer, so a
// validated document decodes straight into it.
type GoTypes struct {
	// Package is the package clause of the generated file.
	Package string
}

// Name returns the renderer identifier.
func (g *GoTypes) Name() string {
	return "gotypes"
}

// FileExtension returns the file extension for Go source files.
func (g *GoTypes) FileExtension() string {
	return ".go"
}

// Render converts a schema to a formatted Go struct definition.
func (g *GoTypes) Render(s *schema.Schema) ([]byte, error) {
	data := Prepare(s, &goResolver{})

	// Distinct keys such as "my-host" and "my_host" share an identifier.
	seen := make(map[string]int, len(data.Fields))
	for i := range data.Fields {
		name := data.Fields[i].Name
		if n := seen[name]; n > 0 {
			data.Fields[i].Name = fmt.Sprintf("%s%d", name, n+1)
		}
		seen[name]++
	}

	pkg := g.Package
	if pkg == "" {
		pkg = "config"
	}
	data.Extra["Package"] = pkg
	data.Extra["Schema"] = s.Name()

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

// comment renders text as an indented Go line comment.
func comment(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("\t// "+strings.TrimSpace(line), " ")
	}
	return strings.Join(lines, "\n")
}
