// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/typeconf/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestRun_Version(t *testing.T) {
	require.NoError(t, Run(context.Background(), []string{"version", "--short"}, env(nil)))
}

func TestRun_UnknownCommand(t *testing.T) {
	assert.Error(t, Run(context.Background(), []string{"nope"}, env(nil)))
}

func TestRun_ProjectFromEnv(t *testing.T) {
	dir := t.TempDir()
	project := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(project, []byte("version: 1\nname: C\nfields:\n  - name: port\n    type: int\n    default: \"80\"\n"), 0o600))
	doc := filepath.Join(dir, "app.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{}`), 0o600))

	err := Run(context.Background(), []string{"check", doc}, env(map[string]string{EnvProject: project}))
	require.NoError(t, err)

	err = Run(context.Background(), []string{"check", doc}, env(nil))
	assert.ErrorIs(t, err, session.ErrNotInitialized)
}
