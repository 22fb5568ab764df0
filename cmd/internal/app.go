// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/typeconf/internal/commands"
)

// Environment variables read by the CLI.
const (
	EnvProject  = "TYPECONF_PROJECT"
	EnvLogLevel = "TYPECONF_LOG"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments, env lookup).
func Run(ctx context.Context, args []string, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(commands.Options{
		Project:  getenv(EnvProject),
		LogLevel: getenv(EnvLogLevel),
	})
	rootCmd.SetArgs(args)
	rootCmd.SilenceErrors = true
	return rootCmd.ExecuteContext(ctx)
}
