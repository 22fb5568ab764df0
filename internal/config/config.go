// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles the typeconf project declaration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dacolabs/typeconf/pkg/schema"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

var (
	// ErrFieldExists indicates a field name that is already declared.
	ErrFieldExists = errors.New("field already exists")

	// ErrFieldNotFound indicates a field name that is not declared.
	ErrFieldNotFound = errors.New("field not found")
)

// Config represents the typeconf.yaml project declaration.
type Config struct {
	Version int     `yaml:"version" json:"version"`
	Name    string  `yaml:"name" json:"name"`
	Fields  []Field `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Field declares one configuration field.
type Field struct {
	Name     string   `yaml:"name" json:"name"`
	Type     string   `yaml:"type" json:"type"`
	Default  *string  `yaml:"default,omitempty" json:"default,omitempty"`
	Min      *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Regex    *string  `yaml:"regex,omitempty" json:"regex,omitempty"`
	Doc      *string  `yaml:"doc,omitempty" json:"doc,omitempty"`
	Optional bool     `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// Load reads a Config from a file path. JSON files are read with the YAML
// decoder, which accepts them as well and lets unquoted defaults such as
// `5` or `true` land in the string default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path, as JSON when the path ends in
// .json and as YAML otherwise.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if strings.EqualFold(filepath.Ext(path), ".json") {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Name == "" {
		return errors.New("name is required")
	}
	_, err := c.ToSchema()
	return err
}

// ToSchema builds the field schema declared by the config.
func (c *Config) ToSchema() (*schema.Schema, error) {
	fields := make([]schema.FieldSchema, 0, len(c.Fields))
	for _, f := range c.Fields {
		fs, err := f.ToFieldSchema()
		if err != nil {
			return nil, err
		}
		fields = append(fields, fs)
	}
	return schema.New(c.Name, fields...)
}

// ToFieldSchema converts the declaration to a schema field.
func (f Field) ToFieldSchema() (schema.FieldSchema, error) {
	ty, err := schema.ParseFieldType(f.Type)
	if err != nil {
		return schema.FieldSchema{}, fmt.Errorf("field %q: %w", f.Name, err)
	}
	return schema.FieldSchema{
		Name: f.Name,
		Type: ty,
		Meta: schema.FieldMeta{
			Default:  f.Default,
			Min:      f.Min,
			Max:      f.Max,
			Regex:    f.Regex,
			Doc:      f.Doc,
			Optional: f.Optional,
		},
	}, nil
}

// Field returns the declaration named name.
func (c *Config) Field(name string) (Field, bool) {
	i := c.index(name)
	if i < 0 {
		return Field{}, false
	}
	return c.Fields[i], true
}

// AddField appends f. The config is left unchanged if f is a duplicate or
// does not form a valid schema with the existing fields.
func (c *Config) AddField(f Field) error {
	if c.index(f.Name) >= 0 {
		return fmt.Errorf("%w: %s", ErrFieldExists, f.Name)
	}
	next := *c
	next.Fields = append(slices.Clone(c.Fields), f)
	if _, err := next.ToSchema(); err != nil {
		return err
	}
	c.Fields = next.Fields
	return nil
}

// RemoveField deletes the declaration named name.
func (c *Config) RemoveField(name string) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	c.Fields = slices.Delete(c.Fields, i, i+1)
	return nil
}

func (c *Config) index(name string) int {
	return slices.IndexFunc(c.Fields, func(f Field) bool { return f.Name == name })
}
