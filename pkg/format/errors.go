// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"errors"
	"fmt"
)

var (
	// ErrIO matches every IOError.
	ErrIO = errors.New("i/o error")

	// ErrParse matches every ParseError.
	ErrParse = errors.New("malformed document")

	// ErrInvalidFormat matches every InvalidFormatError.
	ErrInvalidFormat = errors.New("invalid format")
)

// IOError wraps a filesystem failure. It is distinct from ParseError so a
// missing file can be told apart from a malformed one.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// ParseError reports a document that could not be decoded from, or encoded
// to, the named format.
type ParseError struct {
	Format Format
	// Op is "parse" or "encode".
	Op     string
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	op := e.Op
	if op == "" {
		op = "parse"
	}
	return fmt.Sprintf("failed to %s %s: %s", op, e.Format, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// InvalidFormatError reports a missing or unrecognised format tag.
type InvalidFormatError struct {
	Extension string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("unsupported or missing file extension: %q", e.Extension)
}

// Is reports whether target is ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool { return target == ErrInvalidFormat }

func parseError(f Format, err error) error {
	return &ParseError{Format: f, Op: "parse", Detail: err.Error(), Err: err}
}

func encodeError(f Format, err error) error {
	return &ParseError{Format: f, Op: "encode", Detail: err.Error(), Err: err}
}
