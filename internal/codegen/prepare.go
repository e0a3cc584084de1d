// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"sort"
	"strconv"

	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// prepareContext holds state shared while preparing one graph.
type prepareContext struct {
	graph    *registry.Graph
	resolver TypeResolver
}

// Prepare converts a graph into a Model ready for template execution.
// It resolves every use site with the provided TypeResolver and assigns
// member identifiers that are unique within each type.
func Prepare(g *registry.Graph, cfg Config, resolver TypeResolver) *Model {
	ctx := &prepareContext{graph: g, resolver: resolver}

	m := &Model{
		Types:  make([]TypeDef, 0, len(g.Types)),
		Root:   ctx.resolveType(g.Root),
		Config: cfg,
		Extra:  make(map[string]any),
	}

	for _, t := range g.Types {
		def := TypeDef{
			Name:    resolver.FormatTypeName(t.Name),
			Union:   t.Kind == schema.Union,
			Imports: ctx.imports(t),
			Source:  t,
		}
		if def.Union {
			def.Slots = ctx.resolveSlots(t)
		} else {
			def.Fields = ctx.resolveFields(t)
		}
		m.Types = append(m.Types, def)
	}

	return m
}

func (c *prepareContext) newScope() *naming.Scope {
	scope := naming.NewScope(c.resolver.Keywords()...)
	if esc, ok := c.resolver.(KeywordEscaper); ok {
		scope.Escape = esc.EscapeKeyword
	}
	return scope
}

func (c *prepareContext) resolveFields(t *registry.NamedType) []Field {
	scope := c.newScope()
	fields := make([]Field, 0, len(t.Fields))
	for i, f := range t.Fields {
		name := c.resolver.FieldName(f.Name)
		if name == "" {
			name = c.resolver.FieldName("field" + strconv.Itoa(i+1))
		}

		field := Field{
			Name:     scope.Claim(name),
			JSONName: f.Name,
			Type:     c.resolveType(f.Type),
			Optional: f.Optional,
			Ref:      f.Type,
		}
		c.resolver.EnrichField(&field)
		fields = append(fields, field)
	}
	return fields
}

func (c *prepareContext) resolveSlots(t *registry.NamedType) []Slot {
	scope := c.newScope()
	slots := make([]Slot, 0, len(t.Members))
	for _, m := range t.Members {
		slot := Slot{
			Kind: m.Kind,
			Name: scope.Claim(c.resolver.SlotName(m.Kind)),
			Type: c.resolveType(m),
			Ref:  m,
		}
		if m.Kind == schema.Array {
			slot.Elem = c.resolveElem(m)
		}
		slots = append(slots, slot)
	}
	return slots
}

func (c *prepareContext) resolveType(r *registry.TypeRef) string {
	switch r.Kind {
	case schema.Array:
		return c.resolver.ArrayType(c.resolveElem(r))
	case schema.Object, schema.Union:
		return c.resolver.RefType(c.resolver.FormatTypeName(c.graph.Type(r.Named).Name))
	default:
		return c.resolver.PrimitiveType(r.Kind)
	}
}

// resolveElem resolves the element type of an array ref.
func (c *prepareContext) resolveElem(r *registry.TypeRef) string {
	elem := c.resolveType(r.Elem)
	if nr, ok := c.resolver.(NullableElemResolver); ok && r.NullElem {
		return nr.NullableType(elem)
	}
	return elem
}

// imports lists the formatted names of the types t references directly.
func (c *prepareContext) imports(t *registry.NamedType) []string {
	seen := make(map[string]bool)
	var visit func(r *registry.TypeRef)
	visit = func(r *registry.TypeRef) {
		switch r.Kind {
		case schema.Array:
			visit(r.Elem)
		case schema.Object, schema.Union:
			if r.Named != t.ID {
				seen[c.resolver.FormatTypeName(c.graph.Type(r.Named).Name)] = true
			}
		}
	}
	for _, f := range t.Fields {
		visit(f.Type)
	}
	for _, m := range t.Members {
		visit(m)
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether any field or slot of the model satisfies pred.
func (m *Model) Contains(pred func(kind schema.Kind) bool) bool {
	for _, t := range m.Types {
		for _, f := range t.Fields {
			if refContains(f.Ref, pred) {
				return true
			}
		}
		for _, s := range t.Slots {
			if refContains(s.Ref, pred) {
				return true
			}
		}
	}
	return false
}

// TypeContains reports whether any field or slot of t satisfies pred.
func TypeContains(t TypeDef, pred func(kind schema.Kind) bool) bool {
	for _, f := range t.Fields {
		if refContains(f.Ref, pred) {
			return true
		}
	}
	for _, s := range t.Slots {
		if refContains(s.Ref, pred) {
			return true
		}
	}
	return false
}

func refContains(r *registry.TypeRef, pred func(kind schema.Kind) bool) bool {
	if r == nil {
		return false
	}
	if pred(r.Kind) {
		return true
	}
	if r.Kind == schema.Array {
		return refContains(r.Elem, pred)
	}
	return false
}

// HasNullElems reports whether any field or slot of t is an array, at any
// depth, whose elements may be null.
func HasNullElems(t TypeDef) bool {
	for _, f := range t.Fields {
		if refNullElems(f.Ref) {
			return true
		}
	}
	for _, s := range t.Slots {
		if refNullElems(s.Ref) {
			return true
		}
	}
	return false
}

func refNullElems(r *registry.TypeRef) bool {
	for ; r != nil && r.Kind == schema.Array; r = r.Elem {
		if r.NullElem {
			return true
		}
	}
	return false
}

// Is returns a predicate matching kind k, for use with Contains.
func Is(k schema.Kind) func(schema.Kind) bool {
	return func(kind schema.Kind) bool { return kind == k }
}
