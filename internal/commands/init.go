// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/config"
	"github.com/dacolabs/jsoncodegen/internal/prompts"
	"github.com/dacolabs/jsoncodegen/internal/session"
)

type initOptions struct {
	languages      []string
	output         string
	pkg            string
	visibility     string
	getters        bool
	setters        bool
	singularize    bool
	nonInteractive bool
	force          bool
}

func newInitCmd(deps Deps) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a jsoncodegen.yaml project configuration",
		Long: `Create a jsoncodegen.yaml in the working directory. Later runs of generate,
schema and mcp read their defaults from it.`,
		Example: `  # Interactive mode
  jsoncodegen init

  # Non-interactive
  jsoncodegen init --lang java,go --package com.example.models --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, deps, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.languages, "lang", "l", nil, "Target language(s), comma-separated")
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "Output directory")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package or namespace of the generated code")
	cmd.Flags().StringVar(&opts.visibility, "visibility", string(codegen.Public), "Field visibility (public or private)")
	cmd.Flags().BoolVar(&opts.getters, "getters", false, "Emit getter methods")
	cmd.Flags().BoolVar(&opts.setters, "setters", false, "Emit setter methods")
	cmd.Flags().BoolVar(&opts.singularize, "singularize", false, "Name array element types in singular form")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --lang)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing jsoncodegen.yaml")

	return cmd
}

func runInit(cmd *cobra.Command, deps Deps, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	path := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(path); err == nil && !opts.force {
		return errors.New(config.FileName + " already exists; use --force to overwrite")
	}

	cfg := config.Default()
	cfg.Languages = config.SplitList(strings.Join(opts.languages, ","))
	cfg.Output = opts.output
	cfg.Package = opts.pkg
	cfg.Visibility = codegen.Visibility(opts.visibility)
	cfg.Getters = opts.getters
	cfg.Setters = opts.setters
	cfg.Singularize = opts.singularize

	if opts.nonInteractive || !deps.Interactive() {
		if len(cfg.Languages) == 0 {
			return errors.New("non-interactive mode requires --lang")
		}
	} else {
		s, err := session.RequireFromCommand(cmd)
		if err != nil {
			return err
		}
		reg, err := backendsFor(deps, s, nil)
		if err != nil {
			return err
		}
		if err := prompts.RunInitForm(cfg, reg.Available()); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: path},
		{Label: "Languages", Value: strings.Join(cfg.Languages, ", ")},
	}, "Initialization completed")
	return nil
}
