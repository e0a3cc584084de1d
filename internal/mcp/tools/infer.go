// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dacolabs/jsoncodegen/internal/cache"
	"github.com/dacolabs/jsoncodegen/internal/pipeline"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
	"github.com/dacolabs/jsoncodegen/internal/value"
)

// InferSchemaInput is the input for infer_schema.
type InferSchemaInput struct {
	JSON        string `json:"json" jsonschema:"Example document. Several whitespace-separated documents (JSON Lines) are merged into one schema."`
	Format      string `json:"format,omitempty" jsonschema:"Input format: json (default) or yaml"`
	Select      string `json:"select,omitempty" jsonschema:"jq expression selecting the sub-documents to model, e.g. .items[]"`
	Singularize bool   `json:"singularize,omitempty" jsonschema:"Name array element types in singular form (books -> Book)"`
}

// InferSchemaOutput is the output of infer_schema.
type InferSchemaOutput struct {
	Schema   string     `json:"schema"`
	Root     string     `json:"root"`
	Types    []TypeInfo `json:"types,omitzero"`
	Samples  int        `json:"samples"`
	Unknowns int        `json:"unknowns"`
	Cached   bool       `json:"cached"`
}

// TypeInfo describes one named type.
type TypeInfo struct {
	Name    string      `json:"name"`
	Kind    string      `json:"kind"`
	Fields  []FieldInfo `json:"fields,omitzero"`
	Members []string    `json:"members,omitzero"`
}

// FieldInfo describes one object field.
type FieldInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

// ToolInferSchema returns the canonical inferred schema and the named types
// a backend would receive.
func ToolInferSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, InferSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, InferSchemaOutput, error) {
		if input.JSON == "" {
			return nil, InferSchemaOutput{}, ErrInvalidInput("json is required")
		}

		key, err := cache.Key("infer_schema", input)
		if err != nil {
			return nil, InferSchemaOutput{}, err
		}
		if out, ok := d.Infer.Get(key); ok {
			out.Cached = true
			return nil, out, nil
		}

		format, err := value.ParseFormat(input.Format)
		if err != nil {
			return nil, InferSchemaOutput{}, ErrInvalidInput(err.Error())
		}

		res, err := pipeline.Infer(ctx, []pipeline.Input{{Name: "json", Data: []byte(input.JSON), Format: format}}, pipeline.Options{
			Select:      input.Select,
			Singularize: input.Singularize,
		})
		if err != nil {
			return nil, InferSchemaOutput{}, errInference(err)
		}

		out := InferSchemaOutput{
			Schema:   res.Schema.String(),
			Root:     res.Graph.TypeString(res.Graph.Root),
			Types:    describeTypes(res.Graph),
			Samples:  res.Samples,
			Unknowns: res.Unknowns,
		}
		d.Infer.Put(key, out)
		return nil, out, nil
	}
}

func describeTypes(g *registry.Graph) []TypeInfo {
	out := make([]TypeInfo, 0, len(g.Types))
	for _, t := range g.Types {
		info := TypeInfo{Name: t.Name, Kind: t.Kind.String()}
		switch t.Kind {
		case schema.Object:
			for _, f := range t.Fields {
				info.Fields = append(info.Fields, FieldInfo{
					Name:     f.Name,
					Type:     g.TypeString(f.Type),
					Optional: f.Optional,
				})
			}
		case schema.Union:
			for _, m := range t.Members {
				info.Members = append(info.Members, g.TypeString(m))
			}
		}
		out = append(out, info)
	}
	return out
}
