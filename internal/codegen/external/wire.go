// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package external

import (
	"fmt"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// Request is written to the command's stdin.
type Request struct {
	Config codegen.Config `json:"config"`
	Graph  Graph          `json:"graph"`
}

// Response is read from the command's stdout.
type Response struct {
	Artifacts []codegen.Artifact `json:"artifacts"`
	Errors    []ShapeError       `json:"errors,omitempty"`
}

// ShapeError reports a type the command could not render.
type ShapeError struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// Graph is the wire form of a registry.Graph. Named types are referenced
// by name.
type Graph struct {
	Root  *TypeRef    `json:"root"`
	Types []NamedType `json:"types"`
}

// NamedType is the wire form of a registry.NamedType.
type NamedType struct {
	Name    string     `json:"name"`
	Key     string     `json:"key,omitempty"`
	Kind    string     `json:"kind"`
	Fields  []Field    `json:"fields,omitempty"`
	Members []*TypeRef `json:"members,omitempty"`
}

// Field is the wire form of a registry.Field.
type Field struct {
	Name     string   `json:"name"`
	Type     *TypeRef `json:"type"`
	Optional bool     `json:"optional,omitempty"`
}

// TypeRef is the wire form of a registry.TypeRef.
type TypeRef struct {
	Kind     string   `json:"kind"`
	Elem     *TypeRef `json:"elem,omitempty"`
	NullElem bool     `json:"null_elem,omitempty"`
	Ref      string   `json:"ref,omitempty"`
}

// FromGraph converts g to its wire form.
func FromGraph(g *registry.Graph) Graph {
	out := Graph{
		Root:  fromRef(g, g.Root),
		Types: make([]NamedType, 0, len(g.Types)),
	}
	for _, t := range g.Types {
		nt := NamedType{Name: t.Name, Key: t.Key, Kind: t.Kind.String()}
		for _, f := range t.Fields {
			nt.Fields = append(nt.Fields, Field{Name: f.Name, Type: fromRef(g, f.Type), Optional: f.Optional})
		}
		for _, m := range t.Members {
			nt.Members = append(nt.Members, fromRef(g, m))
		}
		out.Types = append(out.Types, nt)
	}
	return out
}

func fromRef(g *registry.Graph, r *registry.TypeRef) *TypeRef {
	switch r.Kind {
	case schema.Array:
		return &TypeRef{Kind: r.Kind.String(), Elem: fromRef(g, r.Elem), NullElem: r.NullElem}
	case schema.Object, schema.Union:
		return &TypeRef{Kind: r.Kind.String(), Ref: g.Type(r.Named).Name}
	default:
		return &TypeRef{Kind: r.Kind.String()}
	}
}

func (e ShapeError) toError(backend string) error {
	if e.Type == "" {
		return fmt.Errorf("%s: %s", backend, e.Reason)
	}
	return &codegen.UnsupportedShapeError{Backend: backend, Type: e.Type, Reason: e.Reason}
}
