// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		dir      string // relative to testdata, empty means use t.TempDir()
		wantErr  error
		wantName string // only checked if wantErr is nil
		wantFile string // only checked if wantErr is nil
	}{
		{
			name:    "not initialized",
			dir:     "", // empty dir with no typeconf.yaml
			wantErr: ErrNotInitialized,
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:     "valid",
			dir:      "testdata/valid",
			wantName: "ServerConfig",
			wantFile: "typeconf.yaml",
		},
		{
			name:     "json project file",
			dir:      "testdata/json",
			wantName: "JSONConfig",
			wantFile: "typeconf.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var testDir string
			if tt.dir == "" {
				testDir = t.TempDir()
			} else {
				var err error
				testDir, err = filepath.Abs(tt.dir)
				require.NoError(t, err)
			}

			origDir, _ := os.Getwd()
			defer func() { _ = os.Chdir(origDir) }()
			require.NoError(t, os.Chdir(testDir))

			ctx, err := Load(context.Background(), "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			pc := From(ctx)
			require.NotNil(t, pc)
			assert.Equal(t, tt.wantName, pc.Config.Name)
			assert.Equal(t, tt.wantName, pc.Schema.Name())
			assert.Equal(t, tt.wantFile, filepath.Base(pc.Path))
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	ctx, err := Load(context.Background(), "testdata/valid/typeconf.yaml")
	require.NoError(t, err)

	pc := From(ctx)
	require.NotNil(t, pc)
	assert.True(t, filepath.IsAbs(pc.Path))
	assert.Equal(t, 2, pc.Schema.Len())

	_, err = Load(context.Background(), "testdata/missing/typeconf.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestContext_Save(t *testing.T) {
	data, err := os.ReadFile("testdata/valid/typeconf.yaml")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "typeconf.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	ctx, err := Load(context.Background(), path)
	require.NoError(t, err)
	pc := From(ctx)
	require.NoError(t, pc.Config.RemoveField("host"))
	require.NoError(t, pc.Save())

	ctx, err = Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, From(ctx).Schema.Len())
}

func TestFromCommand(t *testing.T) {
	testDir, err := filepath.Abs("testdata/valid")
	require.NoError(t, err)

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(testDir))

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	// Before PreRunLoad
	assert.Nil(t, FromCommand(cmd))

	// After PreRunLoad
	require.NoError(t, PreRunLoad(cmd, nil))
	pc := FromCommand(cmd)
	require.NotNil(t, pc)
	assert.Equal(t, "ServerConfig", pc.Config.Name)
}

func TestPreRunLoad_ProjectFlag(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String(ProjectFlag, "", "")
	require.NoError(t, cmd.Flags().Set(ProjectFlag, "testdata/json/typeconf.json"))
	cmd.SetContext(context.Background())

	require.NoError(t, PreRunLoad(cmd, nil))
	pc, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, "JSONConfig", pc.Config.Name)
}

func TestRequireFromCommand_NotLoaded(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	pc, err := RequireFromCommand(cmd)
	assert.Error(t, err)
	assert.Nil(t, pc)
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, Logger(ctx))

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx = WithLogger(ctx, l)
	assert.Same(t, l, Logger(ctx))

	_, err := Load(ctx, "testdata/valid/typeconf.yaml")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "project loaded")
}
