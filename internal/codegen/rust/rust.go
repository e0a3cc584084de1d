// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rust generates Rust structs with serde derives.
package rust

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

//go:embed rust.rs.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("rust").Funcs(codegen.FuncMap).Funcs(template.FuncMap{
	"pattern": pattern,
}).ParseFS(tmplFS, "rust.rs.tmpl"))

// Backend renders one Rust module per named type. Modules refer to each
// other through super::, so the files belong in one parent module.
type Backend struct{}

// Name returns "rust".
func (b *Backend) Name() string {
	return "rust"
}

// FileExtension returns the file extension for Rust source files.
func (b *Backend) FileExtension() string {
	return ".rs"
}

type use struct {
	Module string
	Name   string
}

type fileData struct {
	Type    codegen.TypeDef
	Config  codegen.Config
	Vis     string
	Uses    []use
	Methods []string
}

// Render converts the graph to Rust structs.
func (b *Backend) Render(g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	model := codegen.Prepare(g, cfg, &resolver{})

	vis := "pub "
	if cfg.IsPrivate() {
		vis = ""
	}

	arts := make([]codegen.Artifact, 0, len(model.Types))
	for _, t := range model.Types {
		uses := make([]use, len(t.Imports))
		for i, name := range t.Imports {
			uses[i] = use{Module: module(name), Name: name}
		}

		out, err := codegen.Execute(tmpl, "file", fileData{
			Type:    t,
			Config:  cfg,
			Vis:     vis,
			Uses:    uses,
			Methods: methods(t, cfg),
		})
		if err != nil {
			return arts, fmt.Errorf("failed to render %s: %w", t.Name, err)
		}
		arts = append(arts, codegen.Artifact{LogicalName: module(t.Name) + b.FileExtension(), Contents: out})
	}
	return arts, nil
}

// module returns the module name of a type.
func module(typeName string) string {
	return naming.Snake(typeName)
}

func methods(t codegen.TypeDef, cfg codegen.Config) []string {
	type member struct{ name, typ string }
	var members []member
	for _, f := range t.Fields {
		members = append(members, member{f.Name, f.Type})
	}
	for _, s := range t.Slots {
		members = append(members, member{s.Name, "Option<" + s.Type + ">"})
	}

	var out []string
	for _, m := range members {
		if cfg.EmitGetters {
			out = append(out, fmt.Sprintf("    pub fn %s(&self) -> &%s {\n        &self.%s\n    }", m.name, m.typ, m.name))
		}
		if cfg.EmitSetters {
			out = append(out, fmt.Sprintf("    pub fn set_%s(&mut self, value: %s) {\n        self.%s = value;\n    }",
				strings.TrimPrefix(m.name, "r#"), m.typ, m.name))
		}
	}
	return out
}

// pattern returns the match arm pattern selecting a union slot.
func pattern(s codegen.Slot) string {
	switch s.Kind {
	case schema.Bool:
		return "serde_json::Value::Bool(_)"
	case schema.Int:
		return "serde_json::Value::Number(n) if n.is_i64()"
	case schema.Float:
		return "serde_json::Value::Number(n) if n.is_f64()"
	case schema.String:
		return "serde_json::Value::String(_)"
	case schema.Array:
		return "serde_json::Value::Array(_)"
	default:
		return "serde_json::Value::Object(_)"
	}
}
