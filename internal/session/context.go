// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dacolabs/typeconf/internal/config"
	"github.com/dacolabs/typeconf/pkg/schema"
)

var (
	// ErrNotInitialized indicates no project file was found in the current directory.
	ErrNotInitialized = errors.New("not in a typeconf project (typeconf.yaml not found)")

	// ErrInvalidConfig indicates the project file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the default name of the project file.
const ConfigFileName = "typeconf.yaml"

// configFileNames are tried in order when no explicit path is given.
var configFileNames = []string{ConfigFileName, "typeconf.yml", "typeconf.json"}

type (
	contextKey struct{}
	loggerKey  struct{}
)

// Context holds the loaded project declaration and the schema built from it.
type Context struct {
	// Path is the absolute path of the project file.
	Path string

	// Config is the parsed project declaration.
	Config *config.Config

	// Schema is built from Config and is immutable.
	Schema *schema.Schema
}

// Save writes the declaration back to Path.
func (c *Context) Save() error {
	return c.Config.Save(c.Path)
}

// Load loads the project declaration at path, or searches the current
// working directory when path is empty, and returns a new context.Context
// with the Context stored in it.
func Load(ctx context.Context, path string) (context.Context, error) {
	configPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	s, err := cfg.ToSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	Logger(ctx).Debug("project loaded", "path", configPath, "fields", s.Len())

	return context.WithValue(ctx, contextKey{}, &Context{
		Path:   configPath,
		Config: cfg,
		Schema: s,
	}), nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		if _, statErr := os.Stat(abs); os.IsNotExist(statErr) {
			return "", fmt.Errorf("%w: %s", ErrNotInitialized, path)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	if found := FindConfigFile(cwd); found != "" {
		return found, nil
	}
	return "", ErrNotInitialized
}

// FindConfigFile looks for a project file in dir and returns its path, or
// an empty string if there is none.
func FindConfigFile(dir string) string {
	for _, name := range configFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// From extracts the project Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if c, ok := ctx.Value(contextKey{}).(*Context); ok {
		return c
	}
	return nil
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger returns the logger stored in ctx, or one that discards output.
func Logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
