// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jsoncodegen/internal/config"
)

func noEnv(string) string { return "" }

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		file      string // jsoncodegen.yaml contents, empty means no file
		env       map[string]string
		wantErr   error
		wantLangs []string
		wantPath  bool
	}{
		{
			name: "no config file",
		},
		{
			name:      "config file",
			file:      "version: 1\nlanguages: [java]\n",
			wantLangs: []string{"java"},
			wantPath:  true,
		},
		{
			name:      "environment overrides file",
			file:      "version: 1\nlanguages: [java]\n",
			env:       map[string]string{"JSONCODEGEN_LANGUAGES": "go,rust"},
			wantLangs: []string{"go", "rust"},
			wantPath:  true,
		},
		{
			name:    "unsupported version",
			file:    "version: 2\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "undecodable file",
			file:    "languages: [\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "invalid environment",
			env:     map[string]string{"JSONCODEGEN_GETTERS": "maybe"},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(tt.file), 0o600))
			}

			ctx, err := Load(context.Background(), dir, func(k string) string { return tt.env[k] })
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			s := From(ctx)
			require.NotNil(t, s)
			assert.Equal(t, tt.wantLangs, s.Config.Languages)
			if tt.wantPath {
				assert.Equal(t, filepath.Join(dir, config.FileName), s.Path)
			} else {
				assert.Empty(t, s.Path)
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFileName), []byte("JSONCODEGEN_PACKAGE=from_dotenv\n"), 0o600))
	t.Setenv("JSONCODEGEN_PACKAGE", "")
	require.NoError(t, os.Unsetenv("JSONCODEGEN_PACKAGE"))

	ctx, err := Load(context.Background(), dir, os.Getenv)
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", From(ctx).Config.Package)
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	assert.Nil(t, FromCommand(cmd))
	_, err := RequireFromCommand(cmd)
	assert.Error(t, err)

	ctx, err := Load(context.Background(), t.TempDir(), noEnv)
	require.NoError(t, err)
	cmd.SetContext(ctx)

	s, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s.Config)
}

func TestLoadCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("version: 1\npackage: models\n"), 0o600))
	t.Chdir(dir)

	var captured *Context
	rootCmd := &cobra.Command{
		Use: "test",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return LoadCommand(cmd, noEnv)
		},
	}
	rootCmd.AddCommand(&cobra.Command{
		Use: "sub",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := RequireFromCommand(cmd)
			captured = s
			return err
		},
	})

	rootCmd.SetArgs([]string{"sub"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	require.NotNil(t, captured)
	assert.Equal(t, "models", captured.Config.Package)
}
