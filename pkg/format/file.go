// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"os"

	"github.com/dacolabs/typeconf/pkg/value"
)

// ReadFile loads the file at path, inferring the format from its extension.
func ReadFile(path string) (value.Value, Format, error) {
	f, err := FromPath(path)
	if err != nil {
		return value.Value{}, "", err
	}
	v, err := ReadFileAs(path, f)
	return v, f, err
}

// ReadFileAs loads the file at path in an explicit format.
func ReadFileAs(path string, f Format) (value.Value, error) {
	c, err := Lookup(f)
	if err != nil {
		return value.Value{}, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return value.Value{}, &IOError{Op: "read", Path: path, Err: err}
	}
	return c.Decode(data)
}

// WriteFile encodes v in the format implied by path and writes it.
func WriteFile(path string, v value.Value) (Format, error) {
	f, err := FromPath(path)
	if err != nil {
		return "", err
	}
	return f, WriteFileAs(path, v, f)
}

// WriteFileAs encodes v in an explicit format and writes it to path.
func WriteFileAs(path string, v value.Value, f Format) error {
	data, err := Dump(v, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
