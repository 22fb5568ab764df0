// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/typeconf/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestConfig_LoadAndSave(t *testing.T) {
	for _, name := range []string{"typeconf.yaml", "typeconf.json"} {
		t.Run(name, func(t *testing.T) {
			cfgPath := filepath.Join(t.TempDir(), name)

			cfg := Config{
				Version: 1,
				Name:    "ServerConfig",
				Fields: []Field{
					{Name: "threads", Type: "int", Min: ptr(4.0), Max: ptr(10.0)},
					{Name: "host", Type: "str", Default: ptr("localhost"), Doc: ptr("Host to bind.")},
					{Name: "debug", Type: "bool", Optional: true},
				},
			}

			require.NoError(t, cfg.Save(cfgPath))

			loaded, err := Load(cfgPath)
			require.NoError(t, err)
			assert.Equal(t, &cfg, loaded)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1, Name: "C"},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99, Name: "C"},
			wantErr: "unsupported config version",
		},
		{
			name:    "missing name",
			cfg:     Config{Version: 1},
			wantErr: "name is required",
		},
		{
			name:    "unknown type",
			cfg:     Config{Version: 1, Name: "C", Fields: []Field{{Name: "a", Type: "list"}}},
			wantErr: `field "a"`,
		},
		{
			name:    "duplicate field",
			cfg:     Config{Version: 1, Name: "C", Fields: []Field{{Name: "a", Type: "int"}, {Name: "a", Type: "str"}}},
			wantErr: "duplicate",
		},
		{
			name:    "bad regex",
			cfg:     Config{Version: 1, Name: "C", Fields: []Field{{Name: "a", Type: "str", Regex: ptr("(")}}},
			wantErr: "regex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "typeconf.yaml")

	cfg := Config{
		Version: 1,
		Name:    "ServerConfig",
		Fields:  []Field{{Name: "port", Type: "int", Default: ptr("8080")}},
	}
	require.NoError(t, cfg.Save(cfgPath))

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "name: ServerConfig")
	assert.Contains(t, output, "- name: port")
	assert.Contains(t, output, `default: "8080"`)
	assert.NotContains(t, output, "optional")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "ServerConfig", cfg.Name)
	require.Len(t, cfg.Fields, 4)
	assert.Equal(t, "0.5", *cfg.Fields[2].Default)
	assert.Equal(t, "false", *cfg.Fields[3].Default)
	assert.True(t, cfg.Fields[3].Optional)

	s, err := cfg.ToSchema()
	require.NoError(t, err)
	assert.Equal(t, "ServerConfig", s.Name())
	f, ok := s.Field("threads")
	require.True(t, ok)
	assert.Equal(t, schema.Int, f.Type)
	assert.Equal(t, 4.0, *f.Meta.Min)
	assert.Equal(t, "Worker thread count.", *f.Meta.Doc)
}

func TestConfig_LoadJSON(t *testing.T) {
	cfg, err := Load("testdata/valid.json")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Fields, 2)
	assert.Equal(t, "8080", *cfg.Fields[1].Default)

	s, err := cfg.ToSchema()
	require.NoError(t, err)
	f, _ := s.Field("threads")
	assert.Equal(t, schema.Int, f.Type)
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	emptyFile := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}

func TestConfig_AddRemoveField(t *testing.T) {
	cfg := Config{Version: 1, Name: "C"}

	require.NoError(t, cfg.AddField(Field{Name: "host", Type: "str"}))
	require.NoError(t, cfg.AddField(Field{Name: "port", Type: "int"}))

	err := cfg.AddField(Field{Name: "host", Type: "int"})
	assert.ErrorIs(t, err, ErrFieldExists)

	err = cfg.AddField(Field{Name: "mode", Type: "str", Regex: ptr("[")})
	var perr *schema.PatternError
	assert.ErrorAs(t, err, &perr)
	assert.Len(t, cfg.Fields, 2)

	f, ok := cfg.Field("port")
	require.True(t, ok)
	assert.Equal(t, "int", f.Type)

	require.NoError(t, cfg.RemoveField("host"))
	assert.ErrorIs(t, cfg.RemoveField("host"), ErrFieldNotFound)
	_, ok = cfg.Field("host")
	assert.False(t, ok)
	assert.Len(t, cfg.Fields, 1)
}
