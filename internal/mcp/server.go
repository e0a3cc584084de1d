// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package mcp serves the type generation tools over the Model Context
// Protocol.
package mcp

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dacolabs/jsoncodegen/internal/mcp/tools"
	"github.com/dacolabs/jsoncodegen/internal/version"
)

// Server wraps the MCP server with the jsoncodegen tools.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps
}

// NewServer creates a new MCP server with the provided dependencies.
func NewServer(deps *tools.Deps) (*Server, error) {
	if deps == nil {
		return nil, errors.New("deps is required")
	}

	s := &Server{deps: deps}
	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    version.Name,
			Version: version.Short(),
		},
		nil,
	)
	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())
	tools.Register(s.mcpServer, deps)

	return s, nil
}

// Run serves over stdio until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
