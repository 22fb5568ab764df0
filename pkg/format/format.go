// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package format converts documents between their wire formats (TOML, JSON,
// YAML) and the canonical value tree.
package format

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/dacolabs/typeconf/pkg/value"
)

// Format names a supported wire format.
type Format string

const (
	TOML Format = "toml"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Codec decodes and encodes one format.
type Codec struct {
	format    Format
	decode    func([]byte) (value.Value, error)
	encode    func(value.Value) ([]byte, error)
	extension string
}

var (
	// JSONCodec handles JSON documents.
	JSONCodec = Codec{JSON, decodeJSON, encodeJSON, ".json"}
	// YAMLCodec handles YAML documents.
	YAMLCodec = Codec{YAML, decodeYAML, encodeYAML, ".yaml"}
	// TOMLCodec handles TOML documents.
	TOMLCodec = Codec{TOML, decodeTOML, encodeTOML, ".toml"}
)

var codecs = map[Format]Codec{
	JSON: JSONCodec,
	YAML: YAMLCodec,
	TOML: TOMLCodec,
}

var extensions = map[string]Format{
	"toml": TOML,
	"json": JSON,
	"yaml": YAML,
	"yml":  YAML,
}

// Format returns the format handled by c.
func (c Codec) Format() Format { return c.format }

// FileExtension returns the preferred file extension, including the dot.
func (c Codec) FileExtension() string { return c.extension }

// Decode parses data into a canonical value.
func (c Codec) Decode(data []byte) (value.Value, error) {
	v, err := c.decode(data)
	if err != nil {
		return value.Value{}, parseError(c.format, err)
	}
	return v, nil
}

// Encode serializes v.
func (c Codec) Encode(v value.Value) ([]byte, error) {
	data, err := c.encode(v)
	if err != nil {
		return nil, encodeError(c.format, err)
	}
	return data, nil
}

// Lookup returns the codec for f.
func Lookup(f Format) (Codec, error) {
	c, ok := codecs[f]
	if !ok {
		return Codec{}, &InvalidFormatError{Extension: string(f)}
	}
	return c, nil
}

// FromExtension maps a file extension, with or without the leading dot, to a
// Format. Matching is case-insensitive; an empty or unknown extension is an
// InvalidFormatError.
func FromExtension(ext string) (Format, error) {
	key := strings.ToLower(strings.TrimPrefix(ext, "."))
	f, ok := extensions[key]
	if !ok {
		return "", &InvalidFormatError{Extension: key}
	}
	return f, nil
}

// FromPath infers the format from a file path's extension.
func FromPath(path string) (Format, error) {
	return FromExtension(filepath.Ext(path))
}

// Available returns the supported format names, sorted.
func Available() []string {
	names := make([]string, 0, len(codecs))
	for f := range codecs {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Load decodes data in format f.
func Load(data []byte, f Format) (value.Value, error) {
	c, err := Lookup(f)
	if err != nil {
		return value.Value{}, err
	}
	return c.Decode(data)
}

// Dump encodes v in format f.
func Dump(v value.Value, f Format) ([]byte, error) {
	c, err := Lookup(f)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}
