// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package python generates pydantic v2 models.
package python

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

//go:embed python.py.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("python").Funcs(codegen.FuncMap).ParseFS(tmplFS, "python.py.tmpl"))

// Backend renders one Python module per named type. Modules import each
// other relatively, so the files belong in one package.
type Backend struct{}

// Name returns "python".
func (b *Backend) Name() string {
	return "python"
}

// FileExtension returns the file extension for Python source files.
func (b *Backend) FileExtension() string {
	return ".py"
}

type use struct {
	Module string
	Name   string
}

type fileData struct {
	Type     codegen.TypeDef
	Config   codegen.Config
	Typing   []string
	Pydantic []string
	Uses     []use
	Methods  []string
}

// Render converts the graph to pydantic models. Private visibility is
// ignored since pydantic fields are always public attributes; accessors
// are still emitted when requested.
func (b *Backend) Render(g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	model := codegen.Prepare(g, cfg, &resolver{})

	arts := make([]codegen.Artifact, 0, len(model.Types))
	for _, t := range model.Types {
		uses := make([]use, len(t.Imports))
		for i, name := range t.Imports {
			uses[i] = use{Module: naming.Snake(name), Name: name}
		}

		typing, pydantic := imports(t)
		out, err := codegen.Execute(tmpl, "file", fileData{
			Type:     t,
			Config:   cfg,
			Typing:   typing,
			Pydantic: pydantic,
			Uses:     uses,
			Methods:  methods(t, cfg),
		})
		if err != nil {
			return arts, fmt.Errorf("failed to render %s: %w", t.Name, err)
		}
		arts = append(arts, codegen.Artifact{LogicalName: naming.Snake(t.Name) + b.FileExtension(), Contents: out})
	}
	return arts, nil
}

// imports returns the names imported from typing and from pydantic.
func imports(t codegen.TypeDef) (typing, pydantic []string) {
	needsAny := t.Union || codegen.TypeContains(t, codegen.Is(schema.Unknown))
	needsList := codegen.TypeContains(t, codegen.Is(schema.Array))
	needsOptional := t.Union || codegen.HasNullElems(t)
	needsField := false
	for _, f := range t.Fields {
		needsOptional = needsOptional || f.Optional
		needsField = needsField || f.Renamed()
	}

	if needsAny {
		typing = append(typing, "Any")
	}
	if needsList {
		typing = append(typing, "List")
	}
	if needsOptional {
		typing = append(typing, "Optional")
	}

	if t.Union {
		pydantic = []string{"BaseModel"}
		if t.HasSlot("array") {
			pydantic = append(pydantic, "TypeAdapter")
		}
		pydantic = append(pydantic, "ValidatorFunctionWrapHandler", "model_serializer", "model_validator")
		return typing, pydantic
	}

	pydantic = []string{"BaseModel", "ConfigDict"}
	if needsField {
		pydantic = append(pydantic, "Field")
	}
	return typing, pydantic
}

func methods(t codegen.TypeDef, cfg codegen.Config) []string {
	type member struct{ name, typ string }
	var members []member
	for _, f := range t.Fields {
		members = append(members, member{f.Name, f.Type})
	}
	for _, s := range t.Slots {
		members = append(members, member{s.Name, "Optional[" + s.Type + "]"})
	}

	var out []string
	for _, m := range members {
		if cfg.EmitGetters {
			out = append(out, fmt.Sprintf("    def get_%s(self) -> %s:\n        return self.%s", m.name, m.typ, m.name))
		}
		if cfg.EmitSetters {
			out = append(out, fmt.Sprintf("    def set_%s(self, value: %s) -> None:\n        self.%s = value", m.name, m.typ, m.name))
		}
	}
	return out
}
