// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema defines the inferred type lattice and its merge operation.
package schema

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Kind identifies a schema variant.
type Kind int

// Schema kinds. The order of Bool through Object is the canonical order of
// Union members.
const (
	Unknown Kind = iota
	Null
	Bool
	Int
	Float
	String
	Array
	Object
	Union
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	case Union:
		return "union"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsPrimitive reports whether k is a leaf kind other than Unknown or Null.
func (k Kind) IsPrimitive() bool {
	return k == Bool || k == Int || k == Float || k == String
}

// Schema is an inferred type. Schemas are treated as immutable once built;
// Merge never modifies its arguments.
type Schema struct {
	Kind     Kind
	Elem     *Schema   // element schema, Array only
	NullElem bool      // some element was null, Array only
	Fields   []Field   // ordered fields, Object only
	Members  []*Schema // members in canonical order, Union only
}

// Field is a named property of an Object schema.
type Field struct {
	Name     string
	Schema   *Schema
	Optional bool // absent from at least one sample, or observed as null
	Pos      int  // smallest observed position of the key
}

// Leaf returns a schema for a leaf kind.
func Leaf(k Kind) *Schema {
	return &Schema{Kind: k}
}

// ArrayOf returns an Array schema.
func ArrayOf(elem *Schema) *Schema {
	if elem == nil {
		elem = Leaf(Unknown)
	}
	return &Schema{Kind: Array, Elem: elem}
}

// NullableArrayOf returns an Array schema whose elements may be null.
func NullableArrayOf(elem *Schema) *Schema {
	s := ArrayOf(elem)
	s.NullElem = true
	return s
}

// ObjectOf returns an Object schema. Fields are ordered by position and name.
func ObjectOf(fields ...Field) *Schema {
	out := make([]Field, len(fields))
	copy(out, fields)
	sortFields(out)
	return &Schema{Kind: Object, Fields: out}
}

// UnionOf folds members with Merge. The result is a Union only when more
// than one member kind survives.
func UnionOf(members ...*Schema) *Schema {
	out := Leaf(Unknown)
	for _, m := range members {
		out = Merge(out, m)
	}
	return out
}

// Field returns the named field of an Object schema.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Member returns the Union member of kind k.
func (s *Schema) Member(k Kind) (*Schema, bool) {
	for _, m := range s.Members {
		if m.Kind == k {
			return m, true
		}
	}
	return nil, false
}

// Equal reports structural equality. Field positions are ignored; field
// order is compared through the ordering positions produce.
func Equal(a, b *Schema) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Array:
		return a.NullElem == b.NullElem && Equal(a.Elem, b.Elem)
	case Object:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			fa, fb := a.Fields[i], b.Fields[i]
			if fa.Name != fb.Name || fa.Optional != fb.Optional || !Equal(fa.Schema, fb.Schema) {
				return false
			}
		}
		return true
	case Union:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !Equal(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the schema in a compact canonical notation, for example
// {name:string,tags?:[string]} or (int|string). An array with null
// elements is written [int?].
func (s *Schema) String() string {
	var sb strings.Builder
	s.write(&sb)
	return sb.String()
}

func (s *Schema) write(sb *strings.Builder) {
	switch s.Kind {
	case Array:
		sb.WriteByte('[')
		s.Elem.write(sb)
		if s.NullElem {
			sb.WriteByte('?')
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, f := range s.Fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(f.Name)
			if f.Optional {
				sb.WriteByte('?')
			}
			sb.WriteByte(':')
			f.Schema.write(sb)
		}
		sb.WriteByte('}')
	case Union:
		sb.WriteByte('(')
		for i, m := range s.Members {
			if i > 0 {
				sb.WriteByte('|')
			}
			m.write(sb)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString(s.Kind.String())
	}
}

// Walk yields s and every schema nested in it, parents before children.
func Walk(s *Schema) iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		walk(s, yield)
	}
}

func walk(s *Schema, yield func(*Schema) bool) bool {
	if s == nil {
		return true
	}
	if !yield(s) {
		return false
	}
	switch s.Kind {
	case Array:
		return walk(s.Elem, yield)
	case Object:
		for _, f := range s.Fields {
			if !walk(f.Schema, yield) {
				return false
			}
		}
	case Union:
		for _, m := range s.Members {
			if !walk(m, yield) {
				return false
			}
		}
	}
	return true
}

func sortFields(fields []Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].Pos != fields[j].Pos {
			return fields[i].Pos < fields[j].Pos
		}
		return fields[i].Name < fields[j].Name
	})
}
