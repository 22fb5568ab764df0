// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package docgen renders documentation and sample documents for a schema.
package docgen

import (
	"fmt"
	"slices"

	"github.com/dacolabs/typeconf/pkg/schema"
)

// Renderer defines the interface all schema renderers must implement.
type Renderer interface {
	// Name returns the renderer's identifier (e.g., "markdown", "jsonschema")
	Name() string

	// Render converts a schema to the target format
	Render(s *schema.Schema) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md", ".go")
	FileExtension() string
}

var renderers = make(map[string]Renderer)

func init() {
	Register(&Markdown{})
	Register(&JSONSchema{})
	Register(&GoTypes{Package: "config"})
}

// Register adds a renderer to the registry, replacing any renderer with the
// same name.
func Register(r Renderer) {
	renderers[r.Name()] = r
}

// Get retrieves a renderer by name.
func Get(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer: %s", name)
	}
	return r, nil
}

// Available returns all registered renderer names, sorted.
func Available() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RenderDocs renders the Markdown reference for s: a heading naming the
// configuration type and one section per documented field.
func RenderDocs(s *schema.Schema) (string, error) {
	out, err := (&Markdown{}).Render(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
