// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"

	"github.com/dacolabs/typeconf"
	"github.com/dacolabs/typeconf/internal/prompts"
	"github.com/dacolabs/typeconf/internal/session"
	"github.com/dacolabs/typeconf/pkg/format"
	"github.com/dacolabs/typeconf/pkg/materialize"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	to       string
	validate bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert IN [OUT]",
		Short: "Convert a document between TOML, JSON and YAML",
		Long: `Convert a document between formats. Formats are taken from the file
extensions. Without OUT, the result is printed in the --to format.
With --validate, the document is checked against the project's fields and
defaults are filled in before writing.`,
		Example: `  # Convert TOML to YAML
  typeconf convert server.toml server.yaml

  # Print as JSON
  typeconf convert server.yaml --to json

  # Convert and apply defaults
  typeconf convert server.toml server.json --validate`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out string
			if len(args) > 1 {
				out = args[1]
			}
			return runConvert(cmd, args[0], out, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "Output format when printing (toml, json, yaml)")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Validate against the project fields and apply defaults")

	return cmd
}

func runConvert(cmd *cobra.Command, in, out string, opts *convertOptions) error {
	if out == "" && opts.to == "" {
		return errors.New("either OUT or --to is required")
	}

	v, inFormat, err := format.ReadFile(in)
	if err != nil {
		return err
	}

	if opts.validate {
		if err := session.PreRunLoad(cmd, nil); err != nil {
			return err
		}
		ctx, err := session.RequireFromCommand(cmd)
		if err != nil {
			return err
		}
		loader := typeconf.New(ctx.Schema, typeconf.WithLogger(session.Logger(cmd.Context())))
		if err := loader.Resolve(&v); err != nil {
			return err
		}
		if err := materialize.Check(v, ctx.Schema); err != nil {
			return err
		}
	}

	if out == "" {
		f, err := format.FromExtension(opts.to)
		if err != nil {
			return err
		}
		return printDocument(cmd.OutOrStdout(), v, f)
	}

	var outFormat format.Format
	if opts.to != "" {
		if outFormat, err = format.FromExtension(opts.to); err != nil {
			return err
		}
		err = format.WriteFileAs(out, v, outFormat)
	} else {
		outFormat, err = format.WriteFile(out, v)
	}
	if err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "From", Value: in + " (" + string(inFormat) + ")"},
		{Label: "To", Value: out + " (" + string(outFormat) + ")"},
	}, "Document converted")

	return nil
}
