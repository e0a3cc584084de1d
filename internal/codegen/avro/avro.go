// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avro generates Apache Avro schema definitions.
package avro

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// Backend renders one .avsc file per named type. Objects become records
// referenced by name; unions become Avro unions and are inlined wherever
// they are used. Unknown types have no Avro equivalent.
type Backend struct{}

// Name returns "avro".
func (b *Backend) Name() string {
	return "avro"
}

// FileExtension returns the file extension for Avro schema files.
func (b *Backend) FileExtension() string {
	return ".avsc"
}

// avroRecord represents an Avro record schema.
type avroRecord struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Fields    []avroField `json:"fields"`
}

// avroField represents a field within an Avro record. A field with a
// nullable union type carries an explicit null default.
type avroField struct {
	Name    string `json:"name"`
	Type    any    `json:"type"`
	Default *null  `json:"default,omitempty"`
}

// null marshals as the JSON null literal.
type null struct{}

func (null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// avroArray represents an Avro array type.
type avroArray struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

// errUnknown marks a use site whose type was never observed.
var errUnknown = errors.New("type was never observed and has no Avro equivalent")

// Render converts the graph to Avro schemas. A type is skipped when it, or
// a type it refers to, cannot be expressed.
func (b *Backend) Render(g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	docs := make(map[registry.TypeID]any, len(g.Types))
	skipped := make(map[registry.TypeID]string)
	for _, t := range g.Types {
		doc, err := b.document(g, t, cfg.Package)
		if err != nil {
			skipped[t.ID] = err.Error()
			continue
		}
		docs[t.ID] = doc
	}
	codegen.SkipDependents(g, skipped)

	errs := codegen.Skip(b.Name(), g, skipped)
	arts := make([]codegen.Artifact, 0, len(g.Types))
	for _, t := range g.Types {
		if _, ok := skipped[t.ID]; ok {
			continue
		}
		out, err := json.MarshalIndent(docs[t.ID], "", "  ")
		if err != nil {
			return arts, fmt.Errorf("failed to marshal Avro schema for %s: %w", t.Name, err)
		}
		arts = append(arts, codegen.Artifact{LogicalName: t.Name + b.FileExtension(), Contents: string(out) + "\n"})
	}
	return arts, errors.Join(errs...)
}

func (b *Backend) document(g *registry.Graph, t *registry.NamedType, namespace string) (any, error) {
	if t.Kind == schema.Union {
		return b.union(g, t)
	}

	rec := avroRecord{
		Type:      "record",
		Name:      t.Name,
		Namespace: namespace,
		Fields:    make([]avroField, 0, len(t.Fields)),
	}
	for _, f := range t.Fields {
		if !validName(f.Name) {
			return nil, fmt.Errorf("field %q is not a valid Avro name and Avro JSON cannot rename it", f.Name)
		}
		typ, err := b.avroType(g, f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		field := avroField{Name: f.Name, Type: typ}
		if f.Optional {
			field.Type = nullable(typ)
			field.Default = &null{}
		}
		rec.Fields = append(rec.Fields, field)
	}
	return rec, nil
}

func (b *Backend) union(g *registry.Graph, t *registry.NamedType) ([]any, error) {
	out := make([]any, 0, len(t.Members))
	for _, m := range t.Members {
		typ, err := b.avroType(g, m)
		if err != nil {
			return nil, err
		}
		out = append(out, typ)
	}
	return out, nil
}

func (b *Backend) avroType(g *registry.Graph, r *registry.TypeRef) (any, error) {
	switch r.Kind {
	case schema.Bool:
		return "boolean", nil
	case schema.Int:
		return "long", nil
	case schema.Float:
		return "double", nil
	case schema.String:
		return "string", nil
	case schema.Array:
		items, err := b.avroType(g, r.Elem)
		if err != nil {
			return nil, err
		}
		if r.NullElem {
			items = nullable(items)
		}
		return avroArray{Type: "array", Items: items}, nil
	case schema.Object:
		return g.Type(r.Named).Name, nil
	case schema.Union:
		return b.union(g, g.Type(r.Named))
	default:
		return nil, errUnknown
	}
}

// nullable prepends "null" to a type, flattening unions since Avro does
// not allow a union directly inside another.
func nullable(typ any) []any {
	if members, ok := typ.([]any); ok {
		return append([]any{"null"}, members...)
	}
	return []any{"null", typ}
}

// validName reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
