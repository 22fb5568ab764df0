// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/typeconf/internal/config"
	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/dacolabs/typeconf/pkg/validate"
)

// FieldAddResult holds the answers for a new field. Numeric bounds are kept
// as text until ToField parses them.
type FieldAddResult struct {
	Name       string
	Type       string
	Default    string
	HasDefault bool
	Min        string
	Max        string
	Regex      string
	Doc        string
	Optional   bool
}

// ToField converts the answers to a field declaration. Empty answers leave
// the matching attribute unset.
func (r FieldAddResult) ToField() (config.Field, error) {
	ty, err := schema.ParseFieldType(r.Type)
	if err != nil {
		return config.Field{}, err
	}

	f := config.Field{
		Name:     r.Name,
		Type:     ty.String(),
		Optional: r.Optional,
	}
	if r.HasDefault {
		f.Default = &r.Default
	}
	if f.Min, err = parseBound("min", r.Min); err != nil {
		return config.Field{}, err
	}
	if f.Max, err = parseBound("max", r.Max); err != nil {
		return config.Field{}, err
	}
	if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
		return config.Field{}, fmt.Errorf("min %s is greater than max %s", r.Min, r.Max)
	}
	if r.Regex != "" {
		f.Regex = &r.Regex
	}
	if r.Doc != "" {
		f.Doc = &r.Doc
	}
	return f, nil
}

func parseBound(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be a valid number", name, s)
	}
	return &v, nil
}

// defaultValidator checks a default against the type chosen in the form.
func defaultValidator(name, ty *string) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		ft, err := schema.ParseFieldType(*ty)
		if err != nil {
			return err
		}
		_, _, err = validate.ParseDefault(schema.FieldSchema{
			Name: *name,
			Type: ft,
			Meta: schema.FieldMeta{Default: &s},
		})
		return err
	}
}

// RunFieldAddForm runs the interactive form for adding a field.
func RunFieldAddForm(existing []config.Field) (result FieldAddResult, _ error) {
	names := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		names[f.Name] = struct{}{}
	}

	result.Type = schema.Str.String()
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Field name").
				Placeholder("e.g., threads").
				Value(&result.Name).
				Validate(identifierValidator(names)),
			huh.NewSelect[string]().
				Title("Field type").
				Options(
					huh.NewOption("str", schema.Str.String()),
					huh.NewOption("int", schema.Int.String()),
					huh.NewOption("float", schema.Float.String()),
					huh.NewOption("bool", schema.Bool.String()),
				).
				Value(&result.Type),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum value (optional)").
				Placeholder("e.g., 0").
				Value(&result.Min).
				Validate(optionalNumberValidator),
			huh.NewInput().
				Title("Maximum value (optional)").
				Placeholder("e.g., 100").
				Value(&result.Max).
				Validate(optionalNumberValidator),
		).WithHideFunc(func() bool {
			return result.Type != schema.Int.String() && result.Type != schema.Float.String()
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Regex (optional)").
				Placeholder("e.g., ^[a-z0-9.-]+$").
				Value(&result.Regex),
		).WithHideFunc(func() bool { return result.Type != schema.Str.String() }),
		huh.NewGroup(
			huh.NewInput().
				Title("Default (optional)").
				Value(&result.Default).
				Validate(defaultValidator(&result.Name, &result.Type)),
			huh.NewInput().
				Title("Description (optional)").
				Placeholder("e.g., Worker thread count").
				Value(&result.Doc),
			huh.NewConfirm().
				Title("May the field be left unset?").
				Affirmative("Yes").
				Negative("No").
				Value(&result.Optional),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return result, err
	}

	result.HasDefault = result.Default != ""
	return result, nil
}

// RunFieldSelectForm prompts the user to select a declared field.
func RunFieldSelectForm(title string, value *string, fields []config.Field) error {
	if len(fields) == 0 {
		return errors.New("no fields defined")
	}

	options := make([]huh.Option[string], 0, len(fields))
	for _, f := range fields {
		label := fmt.Sprintf("%s (%s)", f.Name, f.Type)
		if f.Doc != nil && *f.Doc != "" {
			doc := *f.Doc
			if utf8.RuneCountInString(doc) > 40 {
				doc = string([]rune(doc)[:37]) + "..."
			}
			label = fmt.Sprintf("%s - %s", label, doc)
		}
		options = append(options, huh.NewOption(label, f.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Filtering(true).
				Value(value).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}

// RunConfirmForm asks a yes/no question.
func RunConfirmForm(title, affirmative string, confirmed *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(affirmative).
				Negative("No, cancel").
				Value(confirmed),
		),
	).WithTheme(Theme()).Run()
}
