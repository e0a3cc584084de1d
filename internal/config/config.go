// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles jsoncodegen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/logging"
	"github.com/dacolabs/jsoncodegen/internal/value"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the project configuration file looked up in the working
// directory.
const FileName = "jsoncodegen.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "JSONCODEGEN_"

// Config represents the jsoncodegen.yaml project configuration file.
type Config struct {
	Version     int                `yaml:"version"`
	Languages   []string           `yaml:"languages,omitempty"`
	Output      string             `yaml:"output,omitempty"`
	Package     string             `yaml:"package,omitempty"`
	Visibility  codegen.Visibility `yaml:"visibility,omitempty"`
	Getters     bool               `yaml:"getters,omitempty"`
	Setters     bool               `yaml:"setters,omitempty"`
	Singularize bool               `yaml:"singularize,omitempty"`
	Format      string             `yaml:"format,omitempty"`
	Select      string             `yaml:"select,omitempty"`
	Backends    map[string]Backend `yaml:"backends,omitempty"`
	Log         Log                `yaml:"log,omitempty"`
}

// Backend declares an external backend program.
type Backend struct {
	Command   string   `yaml:"command"`
	Args      []string `yaml:"args,omitempty"`
	Extension string   `yaml:"extension,omitempty"`
}

// Log configures diagnostics.
type Log struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:    CurrentConfigVersion,
		Output:     ".",
		Visibility: codegen.Public,
	}
}

// Load reads a Config from a file path. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	cfg.Version = 0
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	switch c.Visibility {
	case "", codegen.Public, codegen.Private:
	default:
		return fmt.Errorf("invalid visibility %q (want public or private)", c.Visibility)
	}
	if _, err := value.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	for name, b := range c.Backends {
		if strings.TrimSpace(name) == "" {
			return errors.New("backend name cannot be empty")
		}
		if b.Command == "" {
			return fmt.Errorf("backend %q: command is required", name)
		}
	}
	return nil
}

// ApplyEnv overrides fields from JSONCODEGEN_* variables looked up with
// getenv. Empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) error {
		v := getenv(EnvPrefix + key)
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
		}
		*dst = b
		return nil
	}

	if v := getenv(EnvPrefix + "LANGUAGES"); v != "" {
		c.Languages = SplitList(v)
	}
	str("OUTPUT", &c.Output)
	str("PACKAGE", &c.Package)
	if v := getenv(EnvPrefix + "VISIBILITY"); v != "" {
		c.Visibility = codegen.Visibility(v)
	}
	str("FORMAT", &c.Format)
	str("SELECT", &c.Select)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FILE", &c.Log.File)

	return errors.Join(
		boolean("GETTERS", &c.Getters),
		boolean("SETTERS", &c.Setters),
		boolean("SINGULARIZE", &c.Singularize),
	)
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// CodegenConfig returns the backend config for one language.
func (c *Config) CodegenConfig(language string) codegen.Config {
	cfg := codegen.DefaultConfig(language)
	if c.Visibility != "" {
		cfg.FieldVisibility = c.Visibility
	}
	cfg.EmitGetters = c.Getters
	cfg.EmitSetters = c.Setters
	cfg.Package = c.Package
	return cfg
}

// CodegenConfigs returns one backend config per configured language.
func (c *Config) CodegenConfigs() []codegen.Config {
	out := make([]codegen.Config, len(c.Languages))
	for i, lang := range c.Languages {
		out[i] = c.CodegenConfig(lang)
	}
	return out
}

// LoggingConfig returns the logging configuration.
func (c *Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if c.Log.Level != "" {
		cfg.Level = c.Log.Level
	}
	cfg.FilePath = c.Log.File
	return cfg
}

// SplitList splits a comma-separated list, dropping blanks and duplicates.
func SplitList(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}
