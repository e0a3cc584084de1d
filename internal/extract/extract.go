// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package extract infers a schema from parsed JSON values.
package extract

import (
	"github.com/dacolabs/jsoncodegen/internal/schema"
	"github.com/dacolabs/jsoncodegen/internal/value"
)

// Extract infers the schema of a single document.
//
// Object members become fields; a member whose value is null yields an
// Optional field. Duplicate keys are merged into the first occurrence.
// Array elements are folded with schema.Merge, so an empty array yields
// Array(Unknown) and element order never affects the result. A null
// element marks the array NullElem.
func Extract(v *value.Value) *schema.Schema {
	return schema.Normalize(infer(v))
}

// ExtractAll infers one schema describing every document, as if each were
// an element of the same array.
func ExtractAll(docs ...*value.Value) *schema.Schema {
	out := schema.Leaf(schema.Unknown)
	for _, doc := range docs {
		out = schema.Merge(out, infer(doc))
	}
	return schema.Normalize(out)
}

func infer(v *value.Value) *schema.Schema {
	switch v.Kind {
	case value.Null:
		return schema.Leaf(schema.Null)
	case value.Bool:
		return schema.Leaf(schema.Bool)
	case value.Int:
		return schema.Leaf(schema.Int)
	case value.Float:
		return schema.Leaf(schema.Float)
	case value.String:
		return schema.Leaf(schema.String)
	case value.Array:
		out := schema.ArrayOf(nil)
		for _, item := range v.Items {
			out.Elem = schema.Merge(out.Elem, infer(item))
			out.NullElem = out.NullElem || item.Kind == value.Null
		}
		return out
	case value.Object:
		return inferObject(v)
	default:
		return schema.Leaf(schema.Unknown)
	}
}

func inferObject(v *value.Value) *schema.Schema {
	fields := make([]schema.Field, 0, len(v.Members))
	index := make(map[string]int, len(v.Members))

	for _, m := range v.Members {
		s := infer(m.Value)
		isNull := m.Value.Kind == value.Null

		if i, ok := index[m.Key]; ok {
			fields[i].Schema = schema.Merge(fields[i].Schema, s)
			fields[i].Optional = fields[i].Optional || isNull
			continue
		}

		index[m.Key] = len(fields)
		fields = append(fields, schema.Field{
			Name:     m.Key,
			Schema:   s,
			Optional: isNull,
			Pos:      len(fields),
		})
	}

	return schema.ObjectOf(fields...)
}

// Unknowns counts the Unknown leaves in s. Each is a position where no type
// evidence was observed, such as an empty array or a field that was only
// ever null.
func Unknowns(s *schema.Schema) int {
	n := 0
	for node := range schema.Walk(s) {
		if node.Kind == schema.Unknown {
			n++
		}
	}
	return n
}
