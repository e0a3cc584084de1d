// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tools

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddTool registers a tool with the server after checking that the output
// type's zero value passes the JSON schema the SDK infers for it.
//
// Panics if the zero value of Out fails schema validation.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	CheckOutputSchema[Out](t.Name)
	sdkmcp.AddTool(srv, t, h)
}

// CheckOutputSchema validates that the zero value of T passes the JSON schema
// the MCP SDK would infer from it. A nil slice without omitzero or omitempty
// marshals as null and fails the inferred "type": "array".
//
// No-ops for the untyped "any" output or if schema inference itself fails
// (the SDK reports those separately).
func CheckOutputSchema[T any](toolName string) {
	rt := reflect.TypeFor[T]()
	if rt == reflect.TypeFor[any]() {
		return
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	schema, err := jsonschema.ForType(rt, &jsonschema.ForOptions{})
	if err != nil {
		return
	}
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return
	}

	data, err := json.Marshal(reflect.Zero(rt).Interface())
	if err != nil {
		return
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		return
	}

	if err := resolved.Validate(&v); err != nil {
		panic(fmt.Sprintf(
			"AddTool %q: zero value of output type %s fails schema validation: %v\n  JSON: %s",
			toolName, rt, err, data,
		))
	}
}
