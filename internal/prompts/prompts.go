// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrNotInteractive is returned when a value is missing and stdin is not a
// terminal.
var ErrNotInteractive = errors.New("input required but stdin is not a terminal")

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// Interactive reports whether f is a terminal.
func Interactive(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
)

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(w io.Writer, fields []ResultField, successMsg string) {
	check := successStyle.Render("✓")

	_, _ = fmt.Fprintln(w)
	for _, f := range fields {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", check, labelStyle.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		_, _ = fmt.Fprintln(w, successStyle.Render("\n"+successMsg))
	}
}

// PrintWarnings prints one styled line per message.
func PrintWarnings(w io.Writer, messages []string) {
	mark := warnStyle.Render("!")
	for _, m := range messages {
		_, _ = fmt.Fprintf(w, "%s %s\n", mark, m)
	}
}

// packageValidator accepts empty input or a dotted identifier such as
// com.example.models.
func packageValidator(s string) error {
	start := true
	for _, r := range s {
		switch {
		case r == '.':
			if start {
				return errors.New("package segments cannot be empty")
			}
			start = true
		case start && !unicode.IsLetter(r) && r != '_':
			return errors.New("each segment must start with letter or underscore")
		case !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_':
			return errors.New("must contain only letters, numbers, underscores and dots")
		default:
			start = false
		}
	}
	if s != "" && start {
		return errors.New("package cannot end with a dot")
	}
	return nil
}

func requiredSelection(field string) func([]string) error {
	return func(s []string) error {
		if len(s) == 0 {
			return fmt.Errorf("select at least one %s", field)
		}
		return nil
	}
}
