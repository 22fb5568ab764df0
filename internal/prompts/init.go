// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(name, format *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Configuration type name").
				Placeholder("e.g., ServerConfig").
				Validate(requiredValidator("name")).
				Value(name),
			huh.NewSelect[string]().
				Title("Project file format").
				Options(
					huh.NewOption("YAML (recommended)", "yaml"),
					huh.NewOption("JSON", "json"),
				).
				Value(format),
		),
	).WithTheme(Theme()).Run()
}
