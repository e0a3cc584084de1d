// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package tools implements the MCP tools.
package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddTool(srv, &sdkmcp.Tool{
		Name:        "generate_types",
		Description: "Infer types from an example JSON or YAML document and render them as source files for one language. Returns artifacts with logical_name and contents, plus warnings for types the language cannot express.",
	}, ToolGenerateTypes(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "infer_schema",
		Description: "Infer the structural schema of an example JSON or YAML document. Returns the canonical schema string and the named types (objects and unions) with their fields.",
	}, ToolInferSchema(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "list_languages",
		Description: "List the target languages accepted by generate_types.",
	}, ToolListLanguages(d))
}
