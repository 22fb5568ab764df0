// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dacolabs/typeconf"
	"github.com/dacolabs/typeconf/internal/prompts"
	"github.com/dacolabs/typeconf/internal/session"
	"github.com/dacolabs/typeconf/pkg/format"
	"github.com/dacolabs/typeconf/pkg/materialize"
	"github.com/dacolabs/typeconf/pkg/value"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	format string
	print  bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a configuration document",
		Long: `Load a TOML, JSON or YAML document, validate it against the declared fields
and fill in defaults. Required fields without a value are reported as missing.
The format is taken from the file extension unless --format is given.`,
		Example: `  # Check a document
  typeconf check server.toml

  # Print the document with defaults applied
  typeconf check server.yaml --print

  # Check a file without a recognized extension
  typeconf check server.conf --format toml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runCheck(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Document format (toml, json, yaml)")
	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "Print the resolved document")

	return cmd
}

func runCheck(cmd *cobra.Command, ctx *session.Context, path string, opts *checkOptions) error {
	f, err := resolveFormat(path, opts.format)
	if err != nil {
		return err
	}

	loader := typeconf.New(ctx.Schema,
		typeconf.WithLogger(session.Logger(cmd.Context())),
		typeconf.WithFormat(f),
	)
	v, err := loader.LoadFile(path)
	if err != nil {
		prompts.PrintFailure(path)
		return err
	}
	if err := materialize.Check(v, ctx.Schema); err != nil {
		prompts.PrintFailure(path)
		return err
	}

	if opts.print {
		return printDocument(cmd.OutOrStdout(), v, f)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "File", Value: path},
		{Label: "Format", Value: string(f)},
		{Label: "Fields", Value: strconv.Itoa(ctx.Schema.Len())},
	}, fmt.Sprintf("Valid %s document", ctx.Schema.Name()))

	return nil
}

// resolveFormat returns the explicit format when given, else the one implied
// by path.
func resolveFormat(path, explicit string) (format.Format, error) {
	if explicit != "" {
		return format.FromExtension(explicit)
	}
	return format.FromPath(path)
}

func printDocument(out io.Writer, v value.Value, f format.Format) error {
	data, err := format.Dump(v, f)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
