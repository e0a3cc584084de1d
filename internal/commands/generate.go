// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/config"
	"github.com/dacolabs/jsoncodegen/internal/pipeline"
	"github.com/dacolabs/jsoncodegen/internal/prompts"
	"github.com/dacolabs/jsoncodegen/internal/session"
	"github.com/dacolabs/jsoncodegen/internal/value"
)

type generateOptions struct {
	languages   []string
	output      string
	pkg         string
	visibility  string
	getters     bool
	setters     bool
	selectExpr  string
	format      string
	singularize bool
}

func newGenerateCmd(deps Deps) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Generate source code from example documents",
		Long: fmt.Sprintf(`Generate source code from example JSON or YAML documents.

All documents are merged into one schema. Standard input is read when no
file (or "-") is given. With several languages each gets its own
sub-directory of the output directory; "--output -" writes to stdout.

Built-in languages: %s
A language of the form exec:<program> runs an external backend.`, strings.Join(deps.Backends.Available(), ", ")),
		Example: `  # Java classes from one sample
  jsoncodegen generate sample.json --lang java --output src/main/java/models --package models

  # Several languages, each in its own directory
  jsoncodegen generate a.json b.json --lang go,rust --output generated

  # Model the elements of an embedded array, print to stdout
  curl -s https://api.example.com/users | jsoncodegen generate --select '.data[]' --lang go --output -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, deps, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.languages, "lang", "l", nil, "Target language(s), comma-separated")
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", `Output directory, or "-" for stdout`)
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package or namespace of the generated code")
	cmd.Flags().StringVar(&opts.visibility, "visibility", string(codegen.Public), "Field visibility (public or private)")
	cmd.Flags().BoolVar(&opts.getters, "getters", false, "Emit getter methods")
	cmd.Flags().BoolVar(&opts.setters, "setters", false, "Emit setter methods")
	addInferenceFlags(cmd, &opts.selectExpr, &opts.format, &opts.singularize)

	return cmd
}

func addInferenceFlags(cmd *cobra.Command, selectExpr, format *string, singularize *bool) {
	cmd.Flags().StringVarP(selectExpr, "select", "s", "", "jq expression selecting the sub-documents to model")
	cmd.Flags().StringVarP(format, "format", "f", "", "Input format (json or yaml), detected from the file name by default")
	cmd.Flags().BoolVar(singularize, "singularize", false, "Name array element types in singular form")
}

// applyFlags copies the flags the user set over cfg.
func (o *generateOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Languages = config.SplitList(strings.Join(o.languages, ","))
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("package") {
		cfg.Package = o.pkg
	}
	if flags.Changed("visibility") {
		cfg.Visibility = codegen.Visibility(o.visibility)
	}
	if flags.Changed("getters") {
		cfg.Getters = o.getters
	}
	if flags.Changed("setters") {
		cfg.Setters = o.setters
	}
	applyInferenceFlags(cmd, cfg, o.selectExpr, o.format, o.singularize)
}

func applyInferenceFlags(cmd *cobra.Command, cfg *config.Config, selectExpr, format string, singularize bool) {
	flags := cmd.Flags()
	if flags.Changed("select") {
		cfg.Select = selectExpr
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("singularize") {
		cfg.Singularize = singularize
	}
}

func runGenerate(cmd *cobra.Command, args []string, deps Deps, opts *generateOptions) error {
	s, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	cfg := *s.Config
	opts.applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	reg, err := backendsFor(deps, s, cfg.Languages)
	if err != nil {
		return err
	}

	if len(cfg.Languages) == 0 {
		if !deps.Interactive() || readsStdin(args) {
			return errNoLanguage
		}
		askOutput := !cmd.Flags().Changed("output") && s.Path == ""
		if err := prompts.RunGenerateForm(&cfg.Languages, &cfg.Output, askOutput, reg.Available()); err != nil {
			return err
		}
		if len(cfg.Languages) == 0 {
			return errNoLanguage
		}
	}

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

	results, err := pipeline.Generate(cmd.Context(), res.Graph, reg, cfg.CodegenConfigs())
	if err != nil {
		return err
	}

	written, err := pipeline.Write(cfg.Output, results, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return report(cmd, cfg.Output, res, results, written)
}

// report prints the summary and turns skipped types and failed backends
// into a non-nil error.
func report(cmd *cobra.Command, output string, res *pipeline.Result, results []codegen.Result, written []string) error {
	var (
		warnings []string
		failures []error
	)
	for _, r := range results {
		for _, u := range r.Unsupported() {
			warnings = append(warnings, fmt.Sprintf("%s: skipped %s: %s", r.Language, u.Type, u.Reason))
		}
		if r.Err != nil && !r.Partial() {
			failures = append(failures, fmt.Errorf("%s: %w", r.Language, r.Err))
		}
	}
	prompts.PrintWarnings(cmd.ErrOrStderr(), warnings)

	if output != pipeline.Stdin {
		out := cmd.OutOrStdout()
		for _, path := range written {
			_, _ = fmt.Fprintf(out, "  %s\n", path)
		}
		languages := make([]string, len(results))
		for i, r := range results {
			languages[i] = r.Language
		}
		prompts.PrintResult(out, []prompts.ResultField{
			{Label: "Samples", Value: strconv.Itoa(res.Samples)},
			{Label: "Types", Value: strconv.Itoa(len(res.Graph.Types))},
			{Label: "Languages", Value: strings.Join(languages, ", ")},
		}, fmt.Sprintf("Generated %d file(s)", len(written)))
	}

	if len(failures) > 0 {
		return fmt.Errorf("failed to generate %d language(s): %w", len(failures), errors.Join(failures...))
	}
	if len(warnings) > 0 {
		return fmt.Errorf("%d type(s) could not be generated", len(warnings))
	}
	return nil
}

func readsStdin(args []string) bool {
	if len(args) == 0 {
		return true
	}
	for _, a := range args {
		if a == pipeline.Stdin {
			return true
		}
	}
	return false
}

// readInputs reads the files, forcing format when it is set.
func readInputs(cmd *cobra.Command, args []string, format string) ([]pipeline.Input, error) {
	inputs, err := pipeline.ReadInputs(args, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if format == "" {
		return inputs, nil
	}
	f, err := value.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	for i := range inputs {
		inputs[i].Format = f
	}
	return inputs, nil
}
