// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// Model is the complete input passed to a backend template.
type Model struct {
	Types  []TypeDef      // graph order, Root first
	Root   string         // resolved type of the document root
	Config Config         // generation config, unchanged
	Extra  map[string]any // backend-specific template data
}

// TypeDef represents one named type.
type TypeDef struct {
	Name    string   // formatted name, e.g. "Root" or "Items"
	File    string   // artifact base name without extension, set by the backend
	Union   bool     // true for union wrappers
	Fields  []Field  // Object only, ordered
	Slots   []Slot   // Union only, canonical member order
	Imports []string // names of other types this type references, sorted
	Source  *registry.NamedType
}

// Field represents a single property of an object type.
type Field struct {
	Name     string // target identifier (may be mutated by EnrichField)
	JSONName string // original JSON key
	Type     string // fully resolved target type string
	Optional bool   // absent from at least one sample
	Tag      string // language-specific annotation, e.g. `json:"name,omitempty"`
	Ref      *registry.TypeRef
}

// Renamed reports whether the identifier differs from the JSON key.
func (f Field) Renamed() bool {
	return f.Name != f.JSONName
}

// Slot is one optional member of a union wrapper.
type Slot struct {
	Kind schema.Kind // Bool, Int, Float, String, Array or Object
	Name string      // member identifier
	Type string      // resolved target type string
	Elem string      // resolved element type, Array only
	Ref  *registry.TypeRef
}

// Slot returns the slot of kind k.
func (t TypeDef) Slot(k schema.Kind) (Slot, bool) {
	for _, s := range t.Slots {
		if s.Kind == k {
			return s, true
		}
	}
	return Slot{}, false
}

// HasSlot reports whether the union has a slot of the named kind
// ("bool", "int", "float", "string", "array" or "object"). It is meant for
// templates.
func (t TypeDef) HasSlot(kind string) bool {
	for _, s := range t.Slots {
		if s.Kind.String() == kind {
			return true
		}
	}
	return false
}

// SlotOf returns the slot of the named kind, or nil. It is meant for
// templates.
func (t TypeDef) SlotOf(kind string) *Slot {
	for i := range t.Slots {
		if t.Slots[i].Kind.String() == kind {
			return &t.Slots[i]
		}
	}
	return nil
}
