// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jsoncodegen/internal/codegen/external"
	"github.com/dacolabs/jsoncodegen/internal/session"
)

func newLanguagesCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the available target languages",
		Long: `List the built-in backends and the external backends declared in
jsoncodegen.yaml, with the file extension of their artifacts.`,
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

			out := cmd.OutOrStdout()
			for _, name := range reg.Available() {
				b := reg[name]
				kind := "built-in"
				if _, ok := b.(*external.Backend); ok {
					kind = "external"
				}
				_, _ = fmt.Fprintf(out, "%-12s %-14s %s\n", name, b.FileExtension(), kind)
			}
			return nil
		},
	}
}
