// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jsoncodegen/internal/backends"
	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/logging"
	"github.com/dacolabs/jsoncodegen/internal/session"
)

// Deps carries the process dependencies of the command tree.
type Deps struct {
	Backends    codegen.Register
	Getenv      func(string) string
	Interactive func() bool // whether forms may be shown
}

type rootOptions struct {
	logLevel string
	logFile  string
	closeLog func() error
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Getenv == nil {
		deps.Getenv = func(string) string { return "" }
	}
	if deps.Interactive == nil {
		deps.Interactive = func() bool { return false }
	}
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "jsoncodegen",
		Short: "Generate typed models from example JSON",
		Long: `jsoncodegen infers a type schema from example JSON or YAML documents and
renders it as source code for one or more target languages.

Settings are read from jsoncodegen.yaml in the working directory, then
JSONCODEGEN_* environment variables (a .env file is loaded when present),
then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd, deps.Getenv)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if opts.closeLog == nil {
				return nil
			}
			return opts.closeLog()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to a rotated file instead of stderr")

	rootCmd.AddCommand(
		newGenerateCmd(deps),
		newSchemaCmd(),
		newLanguagesCmd(deps),
		newInitCmd(deps),
		newMCPCmd(deps),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the session and configures logging from it and the flags.
func (o *rootOptions) setup(cmd *cobra.Command, getenv func(string) string) error {
	if err := session.LoadCommand(cmd, getenv); err != nil {
		return err
	}
	s := session.FromCommand(cmd)

	logCfg := s.Config.LoggingConfig()
	if o.logLevel != "" {
		logCfg.Level = o.logLevel
	}
	if o.logFile != "" {
		logCfg.FilePath = o.logFile
	}
	closeLog, err := logging.Setup(logCfg)
	if err != nil {
		return err
	}
	o.closeLog = closeLog

	if s.Path != "" {
		slog.Debug("configuration loaded", "path", s.Path)
	}
	return nil
}

// backendsFor returns the built-in backends plus those declared in the
// project configuration and any "exec:" languages.
func backendsFor(deps Deps, s *session.Context, languages []string) (codegen.Register, error) {
	reg, err := backends.WithConfig(deps.Backends, s.Config.Backends)
	if err != nil {
		return nil, err
	}
	backends.Resolve(reg, languages)
	return reg, nil
}

var errNoLanguage = errors.New("no target language given (use --lang or set languages in jsoncodegen.yaml)")
