// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Default()
	cfg.Languages = []string{"rust"}
	cfg.Package = "models"
	cfg.Backends = map[string]Backend{"kotlin": {Command: "kt"}}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "unsupported version",
			mutate:  func(c *Config) { c.Version = 99 },
			wantErr: "unsupported config version",
		},
		{
			name:    "bad visibility",
			mutate:  func(c *Config) { c.Visibility = "protected" },
			wantErr: `invalid visibility "protected"`,
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Format = "xml" },
			wantErr: "unsupported input format: xml",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "chatty" },
			wantErr: "invalid log level",
		},
		{
			name:    "backend without command",
			mutate:  func(c *Config) { c.Backends = map[string]Backend{"kotlin": {}} },
			wantErr: `backend "kotlin": command is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Languages = []string{"java", "go"}

	require.NoError(t, cfg.Save(cfgPath))

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "languages:\n  - java\n  - go")
	assert.Contains(t, output, "visibility: public")
	assert.NotContains(t, output, "backends")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, []string{"java", "go"}, cfg.Languages)
	assert.Equal(t, "generated", cfg.Output)
	assert.Equal(t, codegen.Private, cfg.Visibility)
	assert.True(t, cfg.Getters)
	assert.True(t, cfg.Singularize)
	assert.Equal(t, ".items[]", cfg.Select)
	assert.Equal(t, Backend{Command: "./bin/kotlin-backend", Args: []string{"--data-classes"}, Extension: ".kt"}, cfg.Backends["kotlin"])
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestConfig_Load_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	err := Default().Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	emptyFile := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}

func TestConfig_ApplyEnv(t *testing.T) {
	env := map[string]string{
		"JSONCODEGEN_LANGUAGES":   "go, rust,go",
		"JSONCODEGEN_PACKAGE":     "models",
		"JSONCODEGEN_VISIBILITY":  "private",
		"JSONCODEGEN_GETTERS":     "true",
		"JSONCODEGEN_SINGULARIZE": "1",
		"JSONCODEGEN_LOG_LEVEL":   "debug",
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, []string{"go", "rust"}, cfg.Languages)
	assert.Equal(t, "models", cfg.Package)
	assert.Equal(t, codegen.Private, cfg.Visibility)
	assert.True(t, cfg.Getters)
	assert.False(t, cfg.Setters)
	assert.True(t, cfg.Singularize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Output)
}

func TestConfig_ApplyEnv_InvalidBool(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) string {
		if k == "JSONCODEGEN_SETTERS" {
			return "sometimes"
		}
		return ""
	})
	assert.ErrorContains(t, err, "invalid JSONCODEGEN_SETTERS")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("JSONCODEGEN_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("JSONCODEGEN_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("JSONCODEGEN_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("JSONCODEGEN_TEST_DOTENV"))
}

func TestConfig_CodegenConfigs(t *testing.T) {
	cfg := Default()
	cfg.Languages = []string{"java", "go"}
	cfg.Package = "p"
	cfg.Setters = true

	got := cfg.CodegenConfigs()
	require.Len(t, got, 2)
	assert.Equal(t, codegen.Config{Language: "java", FieldVisibility: codegen.Public, EmitSetters: true, Package: "p"}, got[0])
	assert.Equal(t, "go", got[1].Language)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a,,b , a"))
	assert.Nil(t, SplitList(""))
}
