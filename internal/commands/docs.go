// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/dacolabs/typeconf/internal/prompts"
	"github.com/dacolabs/typeconf/internal/session"
	"github.com/dacolabs/typeconf/pkg/docgen"
	"github.com/spf13/cobra"
)

type docsOptions struct {
	renderer string
	output   string
	pkg      string
}

func newDocsCmd() *cobra.Command {
	opts := &docsOptions{}

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render documentation for the declared fields",
		Long: fmt.Sprintf(`Render the declared fields with one of the available renderers:
%s.

markdown writes the field reference, jsonschema a Draft 2020-12 schema and
gotypes a Go struct that decodes validated documents.`, strings.Join(docgen.Available(), ", ")),
		Example: `  # Print the Markdown reference
  typeconf docs

  # Write a JSON Schema
  typeconf docs --renderer jsonschema -o server.schema.json

  # Generate a Go struct in package settings
  typeconf docs --renderer gotypes --package settings -o settings/config.go`,
		Args:    cobra.NoArgs,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runDocs(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.renderer, "renderer", "r", "markdown", "Renderer name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&opts.pkg, "package", "config", "Package name for the gotypes renderer")

	return cmd
}

func runDocs(cmd *cobra.Command, ctx *session.Context, opts *docsOptions) error {
	r, err := docgen.Get(opts.renderer)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(docgen.Available(), ", "))
	}
	if _, ok := r.(*docgen.GoTypes); ok {
		r = &docgen.GoTypes{Package: opts.pkg}
	}

	out, err := r.Render(ctx.Schema)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", opts.renderer, err)
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	if err := os.WriteFile(opts.output, out, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	session.Logger(cmd.Context()).Debug("docs written", "renderer", r.Name(), "path", opts.output)

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Renderer", Value: r.Name()},
		{Label: "File", Value: opts.output},
	}, "Docs written")

	return nil
}
