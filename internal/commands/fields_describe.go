// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dacolabs/typeconf/internal/prompts"
	"github.com/dacolabs/typeconf/internal/session"
	"github.com/dacolabs/typeconf/pkg/docgen"
	"github.com/spf13/cobra"
)

func newFieldsDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [FIELD_NAME]",
		Short: "Show details of a declared field",
		Long: `Show the type, constraints, default and description of a field.
If no field name is provided, an interactive selection prompt is shown.`,
		Example: `  # Interactive selection
  typeconf fields describe

  # Describe a field
  typeconf fields describe threads`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			var fieldName string
			if len(args) > 0 {
				fieldName = args[0]
			} else if err := prompts.RunFieldSelectForm("Select field to describe", &fieldName, ctx.Config.Fields); err != nil {
				return err
			}
			return runFieldsDescribe(cmd.OutOrStdout(), ctx, fieldName)
		},
	}

	return cmd
}

func runFieldsDescribe(out io.Writer, ctx *session.Context, fieldName string) error {
	var field *docgen.Field
	for _, f := range docgen.Fields(ctx.Schema) {
		if f.Key == fieldName {
			field = &f
			break
		}
	}
	if field == nil {
		return fmt.Errorf("field %q not found", fieldName)
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9ca24"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))

	_, _ = fmt.Fprintln(out, title.Render(field.Name))
	row := func(name, value string) {
		_, _ = fmt.Fprintf(out, "  %s %s\n", label.Render(fmt.Sprintf("%-9s", name+":")), value)
	}

	row("Type", field.Type)
	if field.HasDefault {
		row("Default", field.Default)
	} else {
		row("Default", "-")
	}
	if c := field.Constraints; c.Min != nil || c.Max != nil || c.Regex != "" {
		f := *field
		f.HasDefault, f.Optional = false, false
		row("Limits", docgen.FormatConstraints(f))
	}
	row("Optional", fmt.Sprintf("%t", field.Optional))
	if field.Doc != "" {
		row("Doc", field.Doc)
	}

	return nil
}
