// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/config"
)

// RunInitForm runs the interactive form for the init command and fills cfg.
func RunInitForm(cfg *config.Config, available []string) error {
	visibility := string(cfg.Visibility)
	if visibility == "" {
		visibility = string(codegen.Public)
	}

	err := huh.NewForm(
		huh.NewGroup(
			LanguageSelect(&cfg.Languages, available),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder(".").
				Value(&cfg.Output),
			huh.NewInput().
				Title("Package or namespace (optional)").
				Placeholder("e.g., com.example.models").
				Validate(packageValidator).
				Value(&cfg.Package),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Field visibility").
				Options(
					huh.NewOption("Public fields", string(codegen.Public)),
					huh.NewOption("Private fields", string(codegen.Private)),
				).
				Value(&visibility),
			huh.NewConfirm().
				Title("Emit getters?").
				Value(&cfg.Getters),
			huh.NewConfirm().
				Title("Emit setters?").
				Value(&cfg.Setters),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Name array element types in singular form?").
				Description("books: [...] produces Book instead of Books").
				Value(&cfg.Singularize),
		),
	).WithTheme(Theme()).Run()
	if err != nil {
		return err
	}

	cfg.Visibility = codegen.Visibility(visibility)
	return nil
}
