// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"

	"github.com/dacolabs/typeconf"
	"github.com/dacolabs/typeconf/internal/prompts"
	"github.com/dacolabs/typeconf/internal/session"
	"github.com/spf13/cobra"
)

type sampleOptions struct {
	format string
	force  bool
}

func newSampleCmd() *cobra.Command {
	opts := &sampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample FILE",
		Short: "Write a sample configuration document",
		Long: `Write a sample document with one entry per declared field.
Fields take their default; numeric fields without one take their minimum or 0,
string fields a REQUIRED placeholder and boolean fields false.
The format is taken from the file extension unless --format is given.`,
		Example: `  # Write a TOML sample
  typeconf sample server.toml

  # Overwrite an existing file
  typeconf sample server.yaml --force`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSample(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Document format (toml, json, yaml)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	return cmd
}

func runSample(cmd *cobra.Command, ctx *session.Context, path string, opts *sampleOptions) error {
	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}
	}

	f, err := resolveFormat(path, opts.format)
	if err != nil {
		return err
	}

	loader := typeconf.New(ctx.Schema,
		typeconf.WithLogger(session.Logger(cmd.Context())),
		typeconf.WithFormat(f),
	)
	if err := loader.WriteSample(path); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "File", Value: path},
		{Label: "Format", Value: string(f)},
	}, "Sample written")

	return nil
}
