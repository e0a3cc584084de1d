// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"os"

	"github.com/dacolabs/jsoncodegen/internal/backends"
	"github.com/dacolabs/jsoncodegen/internal/commands"
	"github.com/dacolabs/jsoncodegen/internal/prompts"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments, env lookup).
func Run(ctx context.Context, args []string, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(commands.Deps{
		Backends: backends.Builtin(),
		Getenv:   getenv,
		Interactive: func() bool {
			return prompts.Interactive(os.Stdin) && prompts.Interactive(os.Stdout)
		},
	})
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
