// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jsoncodegen/internal/backends"
	"github.com/dacolabs/jsoncodegen/internal/config"
)

type execResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the CLI in a fresh temporary working directory.
func execute(t *testing.T, dir, stdin string, env map[string]string, args ...string) execResult {
	t.Helper()
	t.Chdir(dir)

	cmd := NewRootCmd(Deps{
		Backends: backends.Builtin(),
		Getenv:   func(k string) string { return env[k] },
	})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestGenerate_SingleLanguage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.json", `{"name":"x","age":1}`)

	res := execute(t, dir, "", nil, "generate", "sample.json", "--lang", "java", "--output", "out")
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "Root.java"))
	require.NoError(t, err)
	assert.Equal(t, "// Code generated by jsoncodegen; DO NOT EDIT.\n\npublic class Root {\n    public String name;\n    public Long age;\n}\n", string(data))
	assert.Contains(t, res.stdout, "Generated 1 file(s)")
}

func TestGenerate_SeveralLanguages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.json", `{"items":["one",2,3.0],"point":{"x":1,"y":2.0}}`)

	res := execute(t, dir, "", nil, "generate", "sample.json", "--lang", "go,python", "--output", "gen", "--package", "models")
	require.NoError(t, res.err)

	for _, path := range []string{
		"gen/go/root.go", "gen/go/items.go", "gen/go/point.go",
		"gen/python/root.py", "gen/python/items.py", "gen/python/point.py",
	} {
		assert.FileExists(t, filepath.Join(dir, path))
	}
}

func TestGenerate_Stdin(t *testing.T) {
	dir := t.TempDir()

	res := execute(t, dir, `{"data":[{"id":1},{"id":2,"tag":"x"}]}`, nil,
		"generate", "--lang", "markdown", "--select", ".data[]", "--output", "-")
	require.NoError(t, res.err)

	assert.True(t, strings.HasPrefix(res.stdout, "==> Root.md <==\n"))
	assert.Contains(t, res.stdout, "| `tag` |")
	assert.NotContains(t, res.stdout, "Generated")
}

func TestGenerate_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.yaml", "name: x\n")
	writeFile(t, dir, config.FileName, "version: 1\nlanguages: [java]\noutput: from-config\n")

	res := execute(t, dir, "", map[string]string{"JSONCODEGEN_PACKAGE": "com.example"}, "generate", "sample.yaml")
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(dir, "from-config", "Root.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package com.example;")
}

func TestGenerate_Partial(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.json", `{"v":[1,"a",[2]]}`)

	res := execute(t, dir, "", nil, "generate", "sample.json", "--lang", "protobuf", "--output", "out")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "1 type(s) could not be generated")
	assert.Contains(t, res.stderr, "protobuf: skipped V")
	assert.FileExists(t, filepath.Join(dir, "out", "root.proto"))
	assert.NoFileExists(t, filepath.Join(dir, "out", "v.proto"))
}

func TestGenerate_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.json", `{"a":1}`)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no language", []string{"generate", "sample.json"}, "no target language"},
		{"unknown language", []string{"generate", "sample.json", "--lang", "cobol"}, "unknown language: cobol"},
		{"bad visibility", []string{"generate", "sample.json", "--lang", "java", "--visibility", "secret"}, "invalid visibility"},
		{"missing file", []string{"generate", "missing.json", "--lang", "java"}, "failed to read missing.json"},
		{"bad format", []string{"generate", "sample.json", "--lang", "java", "--format", "xml"}, "unsupported input format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, dir, "", nil, tt.args...)
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tt.wantErr)
		})
	}
}

func TestSchema(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "library.json", `{"library":{"books":[{"title":"1984","author":"G.O."},{"title":"TKAM","author":"H.L.","genres":["Classic"]}]}}`)

	res := execute(t, dir, "", nil, "schema", "library.json", "--singularize")
	require.NoError(t, res.err)

	assert.Equal(t, strings.Join([]string{
		"schema: {library:{books:[{title:string,author:string,genres?:[string]}]}}",
		"root: Root",
		"Root { library: Library }",
		"Library { books: [Book] }",
		"Book { title: string, author: string, genres?: [string] }",
		"",
	}, "\n"), res.stdout)
}

func TestLanguages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.FileName, "version: 1\nbackends:\n  kotlin:\n    command: kt-gen\n    extension: .kt\n")

	res := execute(t, dir, "", nil, "languages")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 9)
	assert.Regexp(t, `^java\s+\.java\s+built-in$`, lines[2])
	assert.Regexp(t, `^kotlin\s+\.kt\s+external$`, lines[4])
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	res := execute(t, dir, "", nil, "init", "--lang", "java,go", "--package", "models", "--non-interactive")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Initialization completed")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, []string{"java", "go"}, cfg.Languages)
	assert.Equal(t, "models", cfg.Package)

	res = execute(t, dir, "", nil, "init", "--lang", "java", "--non-interactive")
	assert.ErrorContains(t, res.err, "already exists")

	res = execute(t, dir, "", nil, "init", "--lang", "rust", "--non-interactive", "--force")
	require.NoError(t, res.err)
}

func TestInit_RequiresLanguage(t *testing.T) {
	res := execute(t, t.TempDir(), "", nil, "init", "--non-interactive")
	assert.ErrorContains(t, res.err, "requires --lang")
}

func TestVersion(t *testing.T) {
	res := execute(t, t.TempDir(), "", nil, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "jsoncodegen version")
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.FileName, "version: 7\n")

	res := execute(t, dir, "", nil, "version")
	assert.ErrorContains(t, res.err, "invalid configuration")
}

func TestInvalidLogLevel(t *testing.T) {
	res := execute(t, t.TempDir(), "", nil, "version", "--log-level", "chatty")
	assert.ErrorContains(t, res.err, "invalid log level")
}
