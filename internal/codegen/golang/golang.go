// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package golang generates Go struct types with encoding/json tags.
package golang

import (
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/registry"
)

//go:embed golang.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("go").Funcs(codegen.FuncMap).ParseFS(tmplFS, "golang.go.tmpl"))

// DefaultPackage is used when the config names no package.
const DefaultPackage = "models"

// Backend renders one Go source file per named type.
type Backend struct{}

// Name returns "go".
func (b *Backend) Name() string {
	return "go"
}

// FileExtension returns the file extension for Go source files.
func (b *Backend) FileExtension() string {
	return ".go"
}

type member struct {
	Name string
	Type string
}

type fileData struct {
	Package string
	Type    codegen.TypeDef
	Config  codegen.Config
	Recv    string
	Members []member
}

// Render converts the graph to Go type definitions. Private field
// visibility is ignored: encoding/json cannot see unexported fields.
func (b *Backend) Render(g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	model := codegen.Prepare(g, cfg, &resolver{})
	pkg := naming.Snake(cfg.PackageOr(DefaultPackage))

	files := naming.NewScope()
	arts := make([]codegen.Artifact, 0, len(model.Types))
	for _, t := range model.Types {
		out, err := codegen.Execute(tmpl, "file", fileData{
			Package: pkg,
			Type:    t,
			Config:  cfg,
			Recv:    receiver(t.Name),
			Members: members(t),
		})
		if err != nil {
			return arts, fmt.Errorf("failed to render %s: %w", t.Name, err)
		}
		src, err := format.Source([]byte(out))
		if err != nil {
			return arts, fmt.Errorf("failed to format %s: %w", t.Name, err)
		}
		name := files.Claim(naming.Snake(t.Name))
		arts = append(arts, codegen.Artifact{LogicalName: name + b.FileExtension(), Contents: string(src)})
	}
	return arts, nil
}

func members(t codegen.TypeDef) []member {
	var out []member
	for _, f := range t.Fields {
		out = append(out, member{Name: f.Name, Type: f.Type})
	}
	for _, s := range t.Slots {
		out = append(out, member{Name: s.Name, Type: "*" + s.Type})
	}
	return out
}

// receiver returns the receiver name for methods of a type.
func receiver(typeName string) string {
	if typeName == "" || !unicode.IsLetter(rune(typeName[0])) {
		return "t"
	}
	return strings.ToLower(typeName[:1])
}
