// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListLanguagesInput is the input for list_languages.
type ListLanguagesInput struct{}

// ListLanguagesOutput is the output of list_languages.
type ListLanguagesOutput struct {
	Languages []string `json:"languages,omitzero"`
}

// ToolListLanguages lists the registered backends.
func ToolListLanguages(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListLanguagesInput) (*sdkmcp.CallToolResult, ListLanguagesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListLanguagesInput) (*sdkmcp.CallToolResult, ListLanguagesOutput, error) {
		return nil, ListLanguagesOutput{Languages: d.Backends.Available()}, nil
	}
}
