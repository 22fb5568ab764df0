// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"

	"github.com/dacolabs/typeconf/internal/prompts"
	"github.com/dacolabs/typeconf/internal/session"
	"github.com/spf13/cobra"
)

type fieldsRemoveOptions struct {
	force bool
}

func newFieldsRemoveCmd() *cobra.Command {
	opts := &fieldsRemoveOptions{}

	cmd := &cobra.Command{
		Use:   "remove [FIELD_NAME]",
		Short: "Remove a declared field",
		Long: `Remove a field from the project file.
If no field name is provided, an interactive selection prompt is shown.
Requires confirmation unless --force is specified.`,
		Example: `  # Interactive selection
  typeconf fields remove

  # Remove with confirmation prompt
  typeconf fields remove threads

  # Remove without confirmation
  typeconf fields remove threads --force`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runFieldsRemove(cmd.OutOrStdout(), ctx, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runFieldsRemove(out io.Writer, ctx *session.Context, args []string, opts *fieldsRemoveOptions) error {
	var fieldName string
	if len(args) > 0 {
		fieldName = args[0]
	} else if err := prompts.RunFieldSelectForm("Select field to remove", &fieldName, ctx.Config.Fields); err != nil {
		return err
	}

	field, exists := ctx.Config.Field(fieldName)
	if !exists {
		return fmt.Errorf("field %q not found", fieldName)
	}

	// Show field summary
	_, _ = fmt.Fprintf(out, "Field: %s\n", field.Name)
	_, _ = fmt.Fprintf(out, "Type: %s\n", field.Type)
	if field.Doc != nil {
		_, _ = fmt.Fprintf(out, "Description: %s\n", *field.Doc)
	}
	_, _ = fmt.Fprintln(out)

	// Confirmation
	if !opts.force {
		var confirmed bool
		if err := prompts.RunConfirmForm("Are you sure you want to remove this field?", "Yes, remove", &confirmed); err != nil {
			return err
		}

		if !confirmed {
			_, _ = fmt.Fprintln(out, "Removal canceled.")
			return nil
		}
	}

	if err := ctx.Config.RemoveField(fieldName); err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Field", Value: fieldName},
	}, "Field removed")

	return nil
}
