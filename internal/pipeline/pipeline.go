// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package pipeline wires parsing, selection, extraction, registration and
// rendering together for the CLI and the MCP server.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/extract"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
	"github.com/dacolabs/jsoncodegen/internal/value"
)

// Stdin is the input name that reads standard input.
const Stdin = "-"

// ErrNoInput is returned when no input was given.
var ErrNoInput = errors.New("no input given")

// Input is one named sample source.
type Input struct {
	Name   string
	Data   []byte
	Format value.Format // empty means detect from Name
}

// Options controls inference.
type Options struct {
	Select      string // jq expression applied to every document
	Singularize bool
	Reserved    []string // nil means registry.DefaultReserved
}

// Result is the outcome of inference.
type Result struct {
	Samples  int
	Schema   *schema.Schema
	Graph    *registry.Graph
	Unknowns int // Unknown leaves left in the schema
}

// ReadInputs reads every path. "-" (or no path at all) reads r.
func ReadInputs(paths []string, r io.Reader) ([]Input, error) {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}

	inputs := make([]Input, 0, len(paths))
	for _, p := range paths {
		var (
			data []byte
			err  error
		)
		if p == Stdin {
			data, err = io.ReadAll(r)
		} else {
			data, err = os.ReadFile(p)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		inputs = append(inputs, Input{Name: p, Data: data})
	}
	return inputs, nil
}

// Infer parses every input, applies the selection and infers one graph
// describing all samples.
func Infer(ctx context.Context, inputs []Input, opts Options) (*Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var docs []*value.Value
	for _, in := range inputs {
		format := in.Format
		if format == "" {
			format = value.DetectFormat(in.Name)
		}
		parsed, err := value.ParseBytes(in.Data, format)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", in.Name, err)
		}
		slog.Debug("parsed input", "name", in.Name, "format", format, "documents", len(parsed))
		docs = append(docs, parsed...)
	}

	if opts.Select != "" {
		selected, err := value.Select(ctx, opts.Select, docs)
		if err != nil {
			return nil, err
		}
		slog.Debug("applied selection", "expr", opts.Select, "samples", len(selected))
		docs = selected
	}

	s := extract.ExtractAll(docs...)
	g, err := registry.Register(s, registry.Options{
		Singularize: opts.Singularize,
		Reserved:    opts.Reserved,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to name types: %w", err)
	}

	res := &Result{
		Samples:  len(docs),
		Schema:   s,
		Graph:    g,
		Unknowns: extract.Unknowns(s),
	}
	if res.Unknowns > 0 {
		slog.Warn("some positions were never observed with a value and fall back to the most general type",
			"count", res.Unknowns)
	}
	slog.Debug("inferred graph", "samples", res.Samples, "types", len(g.Types))
	return res, nil
}

// Generate renders the graph with every config. Results are in cfgs order.
func Generate(ctx context.Context, g *registry.Graph, reg codegen.Register, cfgs []codegen.Config) ([]codegen.Result, error) {
	results, err := codegen.RenderAll(ctx, g, reg, cfgs)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		for _, u := range r.Unsupported() {
			slog.Warn("type skipped", "language", r.Language, "type", u.Type, "reason", u.Reason)
		}
		slog.Debug("rendered", "language", r.Language, "artifacts", len(r.Artifacts))
	}
	return results, nil
}
