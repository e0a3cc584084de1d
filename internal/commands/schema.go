// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jsoncodegen/internal/pipeline"
	"github.com/dacolabs/jsoncodegen/internal/session"
)

type schemaOptions struct {
	selectExpr  string
	format      string
	singularize bool
}

func newSchemaCmd() *cobra.Command {
	opts := &schemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema [files...]",
		Short: "Print the inferred schema and named types",
		Long: `Print the canonical inferred schema followed by the named types a backend
would receive. Optional fields are marked with "?".`,
		Example: `  jsoncodegen schema sample.json
  jsoncodegen schema --select '.items[]' --singularize < response.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, args, opts)
		},
	}
	addInferenceFlags(cmd, &opts.selectExpr, &opts.format, &opts.singularize)

	return cmd
}

func runSchema(cmd *cobra.Command, args []string, opts *schemaOptions) error {
	s, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	cfg := *s.Config
	applyInferenceFlags(cmd, &cfg, opts.selectExpr, opts.format, opts.singularize)

	inputs, err := readInputs(cmd, args, cfg.Format)
	if err != nil {
		return err
	}
	res, err := pipeline.Infer(cmd.Context(), inputs, pipeline.Options{
		Select:      cfg.Select,
		Singularize: cfg.Singularize,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "schema: %s\n", res.Schema)
	_, _ = fmt.Fprint(out, res.Graph.Describe())
	return nil
}
