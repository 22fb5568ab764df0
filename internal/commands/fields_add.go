// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"

	"github.com/dacolabs/typeconf/internal/prompts"
	"github.com/dacolabs/typeconf/internal/session"
	"github.com/dacolabs/typeconf/pkg/validate"
	"github.com/dacolabs/typeconf/pkg/value"
	"github.com/spf13/cobra"
)

type fieldsAddOptions struct {
	field          prompts.FieldAddResult
	nonInteractive bool
}

func newFieldsAddCmd() *cobra.Command {
	opts := &fieldsAddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Declare a new configuration field",
		Long: `Declare a new field in the project file.
Bounds apply to int and float fields, regexes to str fields.
The default is checked against the field type and constraints before saving.`,
		Example: `  # Interactive mode
  typeconf fields add

  # Non-interactive
  typeconf fields add --name threads --type int --min 4 --max 10 --non-interactive
  typeconf fields add --name host --type str --default localhost --doc "Host to bind" --non-interactive`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			opts.field.HasDefault = cmd.Flags().Changed("default")
			return runFieldsAdd(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.field.Name, "name", "n", "", "Field name")
	cmd.Flags().StringVarP(&opts.field.Type, "type", "t", "str", "Field type (int, float, str, bool)")
	cmd.Flags().StringVarP(&opts.field.Default, "default", "d", "", "Default value, as text")
	cmd.Flags().StringVar(&opts.field.Min, "min", "", "Inclusive lower bound (int and float)")
	cmd.Flags().StringVar(&opts.field.Max, "max", "", "Inclusive upper bound (int and float)")
	cmd.Flags().StringVar(&opts.field.Regex, "regex", "", "Regex the value must contain a match for (str)")
	cmd.Flags().StringVar(&opts.field.Doc, "doc", "", "Field description")
	cmd.Flags().BoolVar(&opts.field.Optional, "optional", false, "Allow the field to be left unset")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --name)")

	return cmd
}

func runFieldsAdd(ctx *session.Context, opts *fieldsAddOptions) error {
	answers := opts.field
	if opts.nonInteractive {
		if answers.Name == "" {
			return errors.New("--name is required in non-interactive mode")
		}
	} else {
		var err error
		if answers, err = prompts.RunFieldAddForm(ctx.Config.Fields); err != nil {
			return err
		}
	}

	field, err := answers.ToField()
	if err != nil {
		return err
	}
	if err := ctx.Config.AddField(field); err != nil {
		return err
	}

	// Defaults are only resolved at load time; an empty document exercises
	// every one of them now.
	s, err := ctx.Config.ToSchema()
	if err != nil {
		return err
	}
	empty := value.Object(nil)
	if err := validate.Validate(&empty, s); err != nil {
		return err
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	result := []prompts.ResultField{
		{Label: "Field", Value: field.Name},
		{Label: "Type", Value: field.Type},
	}
	if field.Default != nil {
		result = append(result, prompts.ResultField{Label: "Default", Value: *field.Default})
	}
	prompts.PrintResult(result, "Field added")

	return nil
}
