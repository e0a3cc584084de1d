// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import "fmt"

// Visibility controls how generated fields are exposed.
type Visibility string

// Field visibilities.
const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// Config is passed unchanged from the caller to the backend. It changes
// visibility and accessor emission only, never type mapping or naming.
type Config struct {
	Language        string     `json:"language" yaml:"language"`
	FieldVisibility Visibility `json:"field_visibility" yaml:"visibility"`
	EmitGetters     bool       `json:"emit_getters" yaml:"getters"`
	EmitSetters     bool       `json:"emit_setters" yaml:"setters"`
	Package         string     `json:"package,omitempty" yaml:"package,omitempty"`
}

// DefaultConfig returns a config with public fields and no accessors.
func DefaultConfig(language string) Config {
	return Config{
		Language:        language,
		FieldVisibility: Public,
	}
}

// Validate checks the visibility value.
func (c Config) Validate() error {
	switch c.FieldVisibility {
	case Public, Private:
		return nil
	case "":
		return fmt.Errorf("field visibility is required")
	default:
		return fmt.Errorf("invalid field visibility %q (want public or private)", c.FieldVisibility)
	}
}

// IsPrivate reports whether fields should be hidden behind accessors.
func (c Config) IsPrivate() bool {
	return c.FieldVisibility == Private
}

// PackageOr returns the configured package or def when none is set.
func (c Config) PackageOr(def string) string {
	if c.Package == "" {
		return def
	}
	return c.Package
}
