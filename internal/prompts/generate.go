// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// LanguageSelect returns a multi-select field for choosing target languages.
func LanguageSelect(value *[]string, languages []string) *huh.MultiSelect[string] {
	options := make([]huh.Option[string], len(languages))
	for i, l := range languages {
		options[i] = huh.NewOption(l, l)
	}
	return huh.NewMultiSelect[string]().
		Title("Target languages").
		Options(options...).
		Validate(requiredSelection("language")).
		Value(value)
}

// RunGenerateForm prompts for the languages and, when askOutput is set, the
// output directory.
func RunGenerateForm(languages *[]string, output *string, askOutput bool, available []string) error {
	return huh.NewForm(
		huh.NewGroup(
			LanguageSelect(languages, available),
		).WithHideFunc(func() bool { return len(*languages) > 0 }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("generated, or - for stdout").
				Value(output),
		).WithHideFunc(func() bool { return !askOutput }),
	).WithTheme(Theme()).Run()
}
