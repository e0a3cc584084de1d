// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package protobuf generates Protocol Buffers (proto3) message definitions.
package protobuf

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

//go:embed protobuf.proto.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("protobuf").Funcs(codegen.FuncMap).Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(tmplFS, "protobuf.proto.tmpl"))

// Backend renders one .proto file per named type. Unions become a message
// with a oneof. Nested arrays and arrays inside unions have no proto3
// equivalent and are reported as unsupported.
type Backend struct{}

// Name returns "protobuf".
func (b *Backend) Name() string {
	return "protobuf"
}

// FileExtension returns the file extension for Protocol Buffers files.
func (b *Backend) FileExtension() string {
	return ".proto"
}

type fileData struct {
	Package string
	Imports []string
	Type    codegen.TypeDef
}

// Render converts the graph to proto3 messages. A message that refers to a
// skipped message is skipped too.
func (b *Backend) Render(g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	model := codegen.Prepare(g, cfg, &resolver{})

	skipped := make(map[registry.TypeID]string)
	for _, t := range model.Types {
		if reason := unsupported(t); reason != "" {
			skipped[t.Source.ID] = reason
		}
	}
	codegen.SkipDependents(g, skipped)

	errs := codegen.Skip(b.Name(), g, skipped)
	arts := make([]codegen.Artifact, 0, len(model.Types))
	for _, t := range model.Types {
		if _, ok := skipped[t.Source.ID]; ok {
			continue
		}

		out, err := codegen.Execute(tmpl, "file", fileData{
			Package: cfg.Package,
			Imports: b.imports(t),
			Type:    t,
		})
		if err != nil {
			return arts, fmt.Errorf("failed to render %s: %w", t.Name, err)
		}
		arts = append(arts, codegen.Artifact{LogicalName: b.fileName(t.Name), Contents: out})
	}
	return arts, errors.Join(errs...)
}

func (b *Backend) fileName(typeName string) string {
	return naming.Snake(typeName) + b.FileExtension()
}

func (b *Backend) imports(t codegen.TypeDef) []string {
	out := make([]string, 0, len(t.Imports)+1)
	if codegen.TypeContains(t, codegen.Is(schema.Unknown)) || codegen.HasNullElems(t) {
		out = append(out, "google/protobuf/struct.proto")
	}
	used := make(map[string]bool)
	for _, f := range t.Fields {
		typ := strings.TrimPrefix(f.Type, "optional ")
		used[strings.TrimPrefix(typ, "repeated ")] = true
	}
	for _, s := range t.Slots {
		used[s.Type] = true
	}
	for _, name := range t.Imports {
		// arrays with null elements hold google.protobuf.Value instead
		if used[name] {
			out = append(out, b.fileName(name))
		}
	}
	sort.Strings(out)
	return out
}

// unsupported returns why t cannot be expressed, or "".
func unsupported(t codegen.TypeDef) string {
	for _, s := range t.Slots {
		if s.Kind == schema.Array {
			return "arrays inside unions cannot be oneof members"
		}
	}
	for _, f := range t.Fields {
		if strings.Count(f.Type, "repeated ") > 1 {
			return fmt.Sprintf("field %q is a nested array", f.JSONName)
		}
	}
	return ""
}
