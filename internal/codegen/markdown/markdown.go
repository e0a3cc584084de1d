// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown provides markdown documentation of inferred types.
package markdown

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/registry"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("markdown").Funcs(codegen.FuncMap).ParseFS(tmplFS, "markdown.md.tmpl"))

// Backend renders one markdown page per named type.
type Backend struct{}

// Name returns "markdown".
func (b *Backend) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (b *Backend) FileExtension() string {
	return ".md"
}

type fileData struct {
	Type codegen.TypeDef
	Root bool
}

// Render converts the graph to markdown documentation.
func (b *Backend) Render(g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	model := codegen.Prepare(g, cfg, &resolver{})
	root := g.RootType()

	arts := make([]codegen.Artifact, 0, len(model.Types))
	for _, t := range model.Types {
		out, err := codegen.Execute(tmpl, "file", fileData{Type: t, Root: root != nil && t.Source == root})
		if err != nil {
			return arts, fmt.Errorf("failed to render %s: %w", t.Name, err)
		}
		arts = append(arts, codegen.Artifact{LogicalName: t.Name + b.FileExtension(), Contents: out})
	}
	return arts, nil
}
