// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// FromCommand extracts the session from a cobra.Command's context.
// Returns nil if no session is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	s := FromCommand(cmd)
	if s == nil {
		return nil, errors.New("project configuration not loaded")
	}
	return s, nil
}

// LoadCommand loads the session from the working directory and stores it in
// the command's context.
func LoadCommand(cmd *cobra.Command, getenv func(string) string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	ctx, err := Load(cmd.Context(), cwd, getenv)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
