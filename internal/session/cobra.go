// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// ProjectFlag is the persistent flag that overrides the project file path.
const ProjectFlag = "project"

// FromCommand extracts the project Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the project Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PreRunE function that loads the project declaration named
// by the --project flag, or found in the working directory, and stores it in
// the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	var path string
	if f := cmd.Flags().Lookup(ProjectFlag); f != nil {
		path = f.Value.String()
	}

	ctx, err := Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
