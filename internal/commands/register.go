// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"
	"strings"

	"github.com/dacolabs/typeconf/internal/session"
	"github.com/spf13/cobra"
)

// Options carries environment-derived settings into the command tree.
type Options struct {
	// Project is the default for --project (TYPECONF_PROJECT).
	Project string
	// LogLevel enables debug logging when set to "debug" (TYPECONF_LOG).
	LogLevel string
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(opts Options) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "typeconf",
		Short: "Schema-driven configuration loading, validation and docs",
		Long: `typeconf declares configuration fields in a typeconf.yaml project file,
then checks TOML, JSON and YAML documents against them, fills in defaults,
and generates samples and reference docs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose || strings.EqualFold(opts.LogLevel, "debug") {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(session.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP(session.ProjectFlag, "P", opts.Project, "Path to the typeconf project file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newInitCmd())
	registerFieldsCmd(rootCmd)
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func registerFieldsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Manage declared configuration fields",
	}

	cmd.AddCommand(newFieldsListCmd())
	cmd.AddCommand(newFieldsAddCmd())
	cmd.AddCommand(newFieldsRemoveCmd())
	cmd.AddCommand(newFieldsDescribeCmd())

	parent.AddCommand(cmd)
}
