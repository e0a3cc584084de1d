// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema generates JSON Schema (draft 2020-12) documents, one
// per named type. Documents reference each other by file name.
package jsonschema

import (
	"fmt"

	"github.com/goccy/go-json"
	invopop "github.com/invopop/jsonschema"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// Backend renders JSON Schema documents.
type Backend struct{}

// Name returns "jsonschema".
func (b *Backend) Name() string {
	return "jsonschema"
}

// FileExtension returns the file extension for JSON Schema documents.
func (b *Backend) FileExtension() string {
	return ".schema.json"
}

// Render converts every named type to a standalone schema document. The
// config has no effect: visibility and accessors do not apply to schemas.
func (b *Backend) Render(g *registry.Graph, _ codegen.Config) ([]codegen.Artifact, error) {
	arts := make([]codegen.Artifact, 0, len(g.Types))
	for _, t := range g.Types {
		doc := b.document(g, t)
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return arts, fmt.Errorf("failed to marshal schema for %s: %w", t.Name, err)
		}
		arts = append(arts, codegen.Artifact{
			LogicalName: b.fileName(t.Name),
			Contents:    string(out) + "\n",
		})
	}
	return arts, nil
}

// document returns the schema of one named type.
func (b *Backend) document(g *registry.Graph, t *registry.NamedType) *invopop.Schema {
	var doc *invopop.Schema
	if t.Kind == schema.Union {
		doc = &invopop.Schema{AnyOf: make([]*invopop.Schema, 0, len(t.Members))}
		for _, m := range t.Members {
			doc.AnyOf = append(doc.AnyOf, b.ref(g, m))
		}
	} else {
		doc = &invopop.Schema{Type: "object", Properties: invopop.NewProperties()}
		for _, f := range t.Fields {
			s := b.ref(g, f.Type)
			if f.Optional {
				s = nullable(s)
			} else {
				doc.Required = append(doc.Required, f.Name)
			}
			doc.Properties.Set(f.Name, s)
		}
	}
	doc.Version = invopop.Version
	doc.Title = t.Name
	return doc
}

func (b *Backend) ref(g *registry.Graph, r *registry.TypeRef) *invopop.Schema {
	switch r.Kind {
	case schema.Bool:
		return &invopop.Schema{Type: "boolean"}
	case schema.Int:
		return &invopop.Schema{Type: "integer"}
	case schema.Float:
		return &invopop.Schema{Type: "number"}
	case schema.String:
		return &invopop.Schema{Type: "string"}
	case schema.Array:
		items := b.ref(g, r.Elem)
		if r.NullElem {
			items = nullable(items)
		}
		return &invopop.Schema{Type: "array", Items: items}
	case schema.Object, schema.Union:
		return &invopop.Schema{Ref: b.fileName(g.Type(r.Named).Name)}
	default:
		return invopop.TrueSchema
	}
}

func (b *Backend) fileName(typeName string) string {
	return typeName + b.FileExtension()
}

// nullable also accepts null, since optional fields were either absent or
// null in the samples, and arrays may hold null elements.
func nullable(s *invopop.Schema) *invopop.Schema {
	if s == invopop.TrueSchema {
		return s
	}
	return &invopop.Schema{AnyOf: []*invopop.Schema{s, {Type: "null"}}}
}
