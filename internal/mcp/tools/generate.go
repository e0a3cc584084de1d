// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tools

import (
	"context"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dacolabs/jsoncodegen/internal/cache"
	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/pipeline"
	"github.com/dacolabs/jsoncodegen/internal/value"
)

// GenerateTypesInput is the input for generate_types.
type GenerateTypesInput struct {
	JSON        string `json:"json" jsonschema:"Example document. Several whitespace-separated documents (JSON Lines) are merged into one schema."`
	Format      string `json:"format,omitempty" jsonschema:"Input format: json (default) or yaml"`
	Language    string `json:"language" jsonschema:"Target language. Call list_languages for the available names."`
	Package     string `json:"package,omitempty" jsonschema:"Package or namespace for the generated sources"`
	Visibility  string `json:"visibility,omitempty" jsonschema:"Field visibility: public (default) or private"`
	Getters     bool   `json:"getters,omitempty" jsonschema:"Emit getter methods"`
	Setters     bool   `json:"setters,omitempty" jsonschema:"Emit setter methods"`
	Select      string `json:"select,omitempty" jsonschema:"jq expression selecting the sub-documents to model, e.g. .items[]"`
	Singularize bool   `json:"singularize,omitempty" jsonschema:"Name array element types in singular form (books -> Book)"`
}

// GenerateTypesOutput is the output of generate_types.
type GenerateTypesOutput struct {
	Language  string             `json:"language"`
	Artifacts []codegen.Artifact `json:"artifacts,omitzero"`
	Warnings  []string           `json:"warnings,omitzero"`
	Cached    bool               `json:"cached"`
}

// ToolGenerateTypes infers types from the example and renders them with one
// backend. Types the backend cannot express are reported as warnings.
func ToolGenerateTypes(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateTypesInput) (*sdkmcp.CallToolResult, GenerateTypesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateTypesInput) (*sdkmcp.CallToolResult, GenerateTypesOutput, error) {
		if input.JSON == "" {
			return nil, GenerateTypesOutput{}, ErrInvalidInput("json is required")
		}
		if input.Language == "" {
			return nil, GenerateTypesOutput{}, ErrInvalidInput("language is required")
		}
		if _, err := d.Backends.Get(input.Language); err != nil {
			return nil, GenerateTypesOutput{}, ErrInvalidInput(err.Error())
		}

		key, err := cache.Key("generate_types", input)
		if err != nil {
			return nil, GenerateTypesOutput{}, err
		}
		if out, ok := d.Generate.Get(key); ok {
			out.Cached = true
			return nil, out, nil
		}

		format, err := value.ParseFormat(input.Format)
		if err != nil {
			return nil, GenerateTypesOutput{}, ErrInvalidInput(err.Error())
		}

		res, err := pipeline.Infer(ctx, []pipeline.Input{{Name: "json", Data: []byte(input.JSON), Format: format}}, pipeline.Options{
			Select:      input.Select,
			Singularize: input.Singularize,
		})
		if err != nil {
			return nil, GenerateTypesOutput{}, errInference(err)
		}

		cfg := codegen.DefaultConfig(input.Language)
		if input.Visibility != "" {
			cfg.FieldVisibility = codegen.Visibility(input.Visibility)
		}
		cfg.Package = input.Package
		cfg.EmitGetters = input.Getters
		cfg.EmitSetters = input.Setters
		if err := cfg.Validate(); err != nil {
			return nil, GenerateTypesOutput{}, ErrInvalidInput(err.Error())
		}

		results, err := pipeline.Generate(ctx, res.Graph, d.Backends, []codegen.Config{cfg})
		if err != nil {
			return nil, GenerateTypesOutput{}, errGeneration(err)
		}
		r := results[0]
		if r.Err != nil && !r.Partial() {
			return nil, GenerateTypesOutput{}, errGeneration(r.Err)
		}

		out := GenerateTypesOutput{
			Language:  r.Language,
			Artifacts: r.Artifacts,
		}
		if res.Unknowns > 0 {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("%d position(s) were never observed with a value and use the most general type", res.Unknowns))
		}
		for _, u := range r.Unsupported() {
			out.Warnings = append(out.Warnings, u.Error())
		}

		d.Generate.Put(key, out)
		slog.Debug("generated types", "language", out.Language, "artifacts", len(out.Artifacts))
		return nil, out, nil
	}
}
