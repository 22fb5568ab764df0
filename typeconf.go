// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typeconf loads configuration documents against a declared field
// schema. A document is parsed from TOML, JSON or YAML into a canonical
// value, validated and defaulted, then decoded into a typed struct.
//
//	s := schema.NewBuilder("ServerConfig").
//		Int("threads", schema.Range(4, 10)).
//		Str("host", schema.Default("localhost")).
//		MustBuild()
//
//	cfg, err := typeconf.Load[ServerConfig]("server.toml", s)
package typeconf

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dacolabs/typeconf/pkg/docgen"
	"github.com/dacolabs/typeconf/pkg/format"
	"github.com/dacolabs/typeconf/pkg/materialize"
	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/dacolabs/typeconf/pkg/validate"
	"github.com/dacolabs/typeconf/pkg/value"
)

// Loader runs the load, validate and decode pipeline for one schema.
// A Loader holds no per-call state and is safe for concurrent use.
type Loader struct {
	schema *schema.Schema
	logger *slog.Logger
	format format.Format
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger for debug events. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithFormat forces a document format instead of inferring it from the
// file extension.
func WithFormat(f format.Format) Option {
	return func(ld *Loader) { ld.format = f }
}

// New returns a Loader for s.
func New(s *schema.Schema, opts ...Option) *Loader {
	l := &Loader{
		schema: s,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Schema returns the schema the loader validates against.
func (l *Loader) Schema() *schema.Schema {
	return l.schema
}

func (l *Loader) formatFor(path string) (format.Format, error) {
	if l.format != "" {
		return l.format, nil
	}
	return format.FromPath(path)
}

// LoadFile reads, validates and defaults the document at path.
func (l *Loader) LoadFile(path string) (value.Value, error) {
	f, err := l.formatFor(path)
	if err != nil {
		return value.Value{}, err
	}
	v, err := format.ReadFileAs(path, f)
	if err != nil {
		return value.Value{}, err
	}
	l.logger.Debug("document loaded", "path", path, "format", f)

	if err := l.Resolve(&v); err != nil {
		return value.Value{}, err
	}
	return v, nil
}

// LoadBytes parses data in format f, then validates and defaults it.
func (l *Loader) LoadBytes(data []byte, f format.Format) (value.Value, error) {
	v, err := format.Load(data, f)
	if err != nil {
		return value.Value{}, err
	}
	if err := l.Resolve(&v); err != nil {
		return value.Value{}, err
	}
	return v, nil
}

// Resolve validates v in place and fills in declared defaults. On error, v
// may already hold defaults for fields declared before the failing one.
func (l *Loader) Resolve(v *value.Value) error {
	return validate.Validate(v, l.schema, validate.WithLogger(l.logger))
}

// Decode stores a resolved document into out, a pointer to a struct tagged
// with `config:"key"`.
func (l *Loader) Decode(v value.Value, out any) error {
	return materialize.Decode(v, out, materialize.WithSchema(l.schema))
}

// DecodeFile loads the document at path and decodes it into out.
func (l *Loader) DecodeFile(path string, out any) error {
	v, err := l.LoadFile(path)
	if err != nil {
		return err
	}
	return l.Decode(v, out)
}

// Sample returns a sample document for the schema encoded in format f.
func (l *Loader) Sample(f format.Format) ([]byte, error) {
	v, err := docgen.SynthesizeSample(l.schema)
	if err != nil {
		return nil, err
	}
	return format.Dump(v, f)
}

// WriteSample writes a sample document to path, in the format implied by
// its extension.
func (l *Loader) WriteSample(path string) error {
	f, err := l.formatFor(path)
	if err != nil {
		return err
	}
	v, err := docgen.SynthesizeSample(l.schema)
	if err != nil {
		return err
	}
	if err := format.WriteFileAs(path, v, f); err != nil {
		return err
	}
	l.logger.Debug("sample written", "path", path, "format", f)
	return nil
}

// WriteDocs writes the Markdown reference for the schema to path.
func (l *Loader) WriteDocs(path string) error {
	doc, err := docgen.RenderDocs(l.schema)
	if err != nil {
		return fmt.Errorf("failed to render docs: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		return &format.IOError{Op: "write", Path: path, Err: err}
	}
	l.logger.Debug("docs written", "path", path)
	return nil
}

// Load reads the document at path, validates it against s and decodes it
// into a T.
func Load[T any](path string, s *schema.Schema, opts ...Option) (T, error) {
	var out T
	if err := New(s, opts...).DecodeFile(path, &out); err != nil {
		return out, err
	}
	return out, nil
}
