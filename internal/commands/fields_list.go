// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dacolabs/typeconf/internal/session"
	"github.com/dacolabs/typeconf/pkg/docgen"
	"github.com/spf13/cobra"
)

func newFieldsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all declared fields",
		Long: `List all fields declared in the project file.
Displays field names, types, constraints and descriptions in declaration order.`,
		Example: `  # List fields
  typeconf fields list`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runFieldsList(cmd.OutOrStdout(), ctx)
		},
	}

	return cmd
}

func runFieldsList(out io.Writer, ctx *session.Context) error {
	if ctx.Schema.Len() == 0 {
		_, _ = fmt.Fprintln(out, "No fields defined.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTYPE\tCONSTRAINTS\tDESCRIPTION")

	for _, f := range docgen.Fields(ctx.Schema) {
		constraints := docgen.FormatConstraints(f)
		if constraints == "" {
			constraints = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Type, constraints, truncate(f.Doc, 40))
	}

	return w.Flush()
}

// truncate shortens s to at most n runes, or returns "-" when s is empty.
func truncate(s string, n int) string {
	if s == "" {
		return "-"
	}
	if utf8.RuneCountInString(s) > n {
		return string([]rune(s)[:n-3]) + "..."
	}
	return s
}
