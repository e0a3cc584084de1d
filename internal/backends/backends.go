// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package backends assembles the backend register used by the CLI and the
// MCP server.
package backends

import (
	"fmt"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/codegen/avro"
	"github.com/dacolabs/jsoncodegen/internal/codegen/external"
	"github.com/dacolabs/jsoncodegen/internal/codegen/golang"
	"github.com/dacolabs/jsoncodegen/internal/codegen/java"
	"github.com/dacolabs/jsoncodegen/internal/codegen/jsonschema"
	"github.com/dacolabs/jsoncodegen/internal/codegen/markdown"
	"github.com/dacolabs/jsoncodegen/internal/codegen/protobuf"
	"github.com/dacolabs/jsoncodegen/internal/codegen/python"
	"github.com/dacolabs/jsoncodegen/internal/codegen/rust"
	"github.com/dacolabs/jsoncodegen/internal/config"
)

// Builtin returns a register holding every in-process backend.
func Builtin() codegen.Register {
	reg := make(codegen.Register)
	reg.Add(&java.Backend{})
	reg.Add(&golang.Backend{})
	reg.Add(&rust.Backend{})
	reg.Add(&python.Backend{})
	reg.Add(&protobuf.Backend{})
	reg.Add(&jsonschema.Backend{})
	reg.Add(&avro.Backend{})
	reg.Add(&markdown.Backend{})
	return reg
}

// WithConfig returns a copy of base extended with the external backends
// declared in the project configuration. A declared backend cannot shadow a
// built-in one.
func WithConfig(base codegen.Register, declared map[string]config.Backend) (codegen.Register, error) {
	reg := make(codegen.Register, len(base)+len(declared))
	for name, b := range base {
		reg[name] = b
	}
	for name, b := range declared {
		if _, exists := base[name]; exists {
			return nil, fmt.Errorf("backend %q is built in and cannot be redefined", name)
		}
		reg[name] = external.New(name, b.Command, b.Args, b.Extension)
	}
	return reg, nil
}

// Resolve adds an external backend to reg for every "exec:<path>" language
// that is not registered yet.
func Resolve(reg codegen.Register, languages []string) {
	for _, lang := range languages {
		if _, ok := reg[lang]; ok {
			continue
		}
		if b, ok := external.FromName(lang); ok {
			reg.Add(b)
		}
	}
}
