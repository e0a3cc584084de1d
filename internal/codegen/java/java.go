// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package java generates Java classes with Jackson bindings. It is the
// reference backend: every other backend follows its union semantics.
package java

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"text/template"
	"unicode"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

//go:embed java.java.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("java").Funcs(codegen.FuncMap).Funcs(template.FuncMap{
	"tokens":  tokens,
	"read":    read,
	"members": members,
	"getter":  func(name string) string { return "get" + capitalize(name) },
	"setter":  func(name string) string { return "set" + capitalize(name) },
}).ParseFS(tmplFS, "java.java.tmpl"))

// Backend renders one Java source file per named type.
type Backend struct{}

// Name returns "java".
func (b *Backend) Name() string {
	return "java"
}

// FileExtension returns the file extension for Java source files.
func (b *Backend) FileExtension() string {
	return ".java"
}

// fileData is the template input for one class.
type fileData struct {
	Package  string
	Imports  []string
	Type     codegen.TypeDef
	Config   codegen.Config
	Modifier string
	Private  bool
}

// Render converts the graph to Java classes.
func (b *Backend) Render(g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	model := codegen.Prepare(g, cfg, &resolver{})

	modifier := "public"
	if cfg.IsPrivate() {
		modifier = "private"
	}

	arts := make([]codegen.Artifact, 0, len(model.Types))
	for _, t := range model.Types {
		out, err := codegen.Execute(tmpl, "file", fileData{
			Package:  cfg.Package,
			Imports:  imports(t, cfg),
			Type:     t,
			Config:   cfg,
			Modifier: modifier,
			Private:  cfg.IsPrivate(),
		})
		if err != nil {
			return arts, fmt.Errorf("failed to render %s: %w", t.Name, err)
		}
		arts = append(arts, codegen.Artifact{LogicalName: t.Name + b.FileExtension(), Contents: out})
	}
	return arts, nil
}

func imports(t codegen.TypeDef, cfg codegen.Config) []string {
	set := make(map[string]bool)
	if codegen.TypeContains(t, codegen.Is(schema.Array)) {
		set["java.util.List"] = true
	}

	if t.Union {
		for _, imp := range []string{
			"com.fasterxml.jackson.core.JsonGenerator",
			"com.fasterxml.jackson.core.JsonParser",
			"com.fasterxml.jackson.databind.DeserializationContext",
			"com.fasterxml.jackson.databind.JsonDeserializer",
			"com.fasterxml.jackson.databind.JsonSerializer",
			"com.fasterxml.jackson.databind.SerializerProvider",
			"com.fasterxml.jackson.databind.annotation.JsonDeserialize",
			"com.fasterxml.jackson.databind.annotation.JsonSerialize",
			"java.io.IOException",
		} {
			set[imp] = true
		}
		if t.HasSlot("array") {
			set["com.fasterxml.jackson.core.type.TypeReference"] = true
		}
	}

	for _, f := range t.Fields {
		if f.Optional {
			set["com.fasterxml.jackson.annotation.JsonInclude"] = true
		}
		if f.Renamed() || cfg.IsPrivate() {
			set["com.fasterxml.jackson.annotation.JsonProperty"] = true
		}
	}

	out := make([]string, 0, len(set))
	for imp := range set {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

// member is a field or union slot, as seen by accessor generation.
type member struct {
	Name string
	Type string
}

func members(t codegen.TypeDef) []member {
	var out []member
	for _, f := range t.Fields {
		out = append(out, member{Name: f.Name, Type: f.Type})
	}
	for _, s := range t.Slots {
		out = append(out, member{Name: s.Name, Type: s.Type})
	}
	return out
}

// tokens lists the Jackson tokens that populate a slot.
func tokens(s codegen.Slot) []string {
	switch s.Kind {
	case schema.Bool:
		return []string{"VALUE_TRUE", "VALUE_FALSE"}
	case schema.Int:
		return []string{"VALUE_NUMBER_INT"}
	case schema.Float:
		return []string{"VALUE_NUMBER_FLOAT"}
	case schema.String:
		return []string{"VALUE_STRING"}
	case schema.Array:
		return []string{"START_ARRAY"}
	default:
		return []string{"START_OBJECT"}
	}
}

// read returns the expression that reads the current token into a slot.
func read(s codegen.Slot) (string, error) {
	switch s.Kind {
	case schema.Bool:
		return "parser.getBooleanValue()", nil
	case schema.Int:
		return "parser.getLongValue()", nil
	case schema.Float:
		return "parser.getDoubleValue()", nil
	case schema.String:
		return "parser.getText()", nil
	case schema.Array:
		return "parser.readValueAs(new TypeReference<" + s.Type + ">() {})", nil
	case schema.Object:
		return "parser.readValueAs(" + s.Type + ".class)", nil
	default:
		return "", errors.New("no reader for " + s.Kind.String())
	}
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
