// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/typeconf/internal/config"
	"github.com/dacolabs/typeconf/internal/prompts"
	"github.com/dacolabs/typeconf/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	name           string
	format         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new typeconf project",
		Long: `Initialize a new typeconf project with a typeconf.yaml declaration file.
Fields are added afterwards with "typeconf fields add".`,
		Example: `  # Interactive mode
  typeconf init

  # Non-interactive
  typeconf init --name ServerConfig --non-interactive
  typeconf init --name ServerConfig --format json --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			return runInit(cwd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Configuration type name")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Project file format (yaml or json)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --name)")

	return cmd
}

func runInit(dir string, opts *initOptions) error {
	// Check that the directory isn't already initialized
	if existing := session.FindConfigFile(dir); existing != "" {
		return fmt.Errorf("%s already exists; project already initialized", filepath.Base(existing))
	}

	if opts.nonInteractive {
		if opts.name == "" {
			return errors.New("non-interactive mode requires --name")
		}
	} else {
		if err := prompts.RunInitForm(&opts.name, &opts.format); err != nil {
			return err
		}
	}

	var fileName string
	switch opts.format {
	case "yaml", "yml":
		fileName = session.ConfigFileName
	case "json":
		fileName = "typeconf.json"
	default:
		return fmt.Errorf("unsupported project file format: %s", opts.format)
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Name:    opts.name,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(filepath.Join(dir, fileName)); err != nil {
		return fmt.Errorf("failed to write %s: %w", fileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Name", Value: opts.name},
		{Label: "File", Value: fileName},
	}, "Initialization completed")

	return nil
}
