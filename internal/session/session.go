// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project configuration loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/jsoncodegen/internal/config"
)

// ErrInvalidConfig indicates the config file or environment is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// DotEnvFileName is loaded from the working directory when present.
const DotEnvFileName = ".env"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the file configuration with environment overrides applied.
	// Command flags are applied on top by each command.
	Config *config.Config

	// Path is the config file that was read, empty when none exists.
	Path string
}

// Load resolves the configuration in dir and returns a new context.Context
// with the session stored in it. A missing jsoncodegen.yaml yields the
// defaults.
func Load(ctx context.Context, dir string, getenv func(string) string) (context.Context, error) {
	if err := config.LoadDotEnv(filepath.Join(dir, DotEnvFileName)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	s := &Context{Config: config.Default()}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		s.Config = cfg
		s.Path = path
	}

	if err := s.Config.ApplyEnv(getenv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return context.WithValue(ctx, contextKey{}, s), nil
}

// From extracts the session from a context.Context.
// Returns nil if no session is stored.
func From(ctx context.Context) *Context {
	if s, ok := ctx.Value(contextKey{}).(*Context); ok {
		return s
	}
	return nil
}
