// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jsoncodegen/internal/mcp"
	"github.com/dacolabs/jsoncodegen/internal/mcp/tools"
	"github.com/dacolabs/jsoncodegen/internal/session"
)

func newMCPCmd(deps Deps) *cobra.Command {
	var cacheSize int

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the generation tools over MCP (stdio)",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing the
generate_types, infer_schema and list_languages tools. Identical requests
are answered from an in-memory cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			reg, err := backendsFor(deps, s, nil)
			if err != nil {
				return err
			}
			toolDeps, err := tools.NewDeps(reg, cacheSize)
			if err != nil {
				return err
			}
			srv, err := mcp.NewServer(toolDeps)
			if err != nil {
				return err
			}
			slog.Info("serving MCP over stdio", "languages", len(reg))
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&cacheSize, "cache-size", tools.DefaultCacheSize, "Number of results cached per tool")

	return cmd
}
