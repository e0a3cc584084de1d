// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"strings"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

type resolver struct{}

func (r *resolver) PrimitiveType(kind schema.Kind) string {
	switch kind {
	case schema.Bool:
		return "boolean"
	case schema.Int:
		return "integer"
	case schema.Float:
		return "number"
	case schema.String:
		return "string"
	default:
		return "any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "array(" + elemType + ")"
}

func (r *resolver) NullableType(elemType string) string {
	return elemType + " or null"
}

func (r *resolver) RefType(typeName string) string {
	return "[" + typeName + "](" + typeName + ".md)"
}

func (r *resolver) FormatTypeName(name string) string {
	return name
}

// FieldName keeps the JSON key: documentation shows wire names.
func (r *resolver) FieldName(key string) string {
	return key
}

func (r *resolver) SlotName(kind schema.Kind) string {
	return kind.String()
}

func (r *resolver) Keywords() []string {
	return nil
}

func (r *resolver) EnrichField(f *codegen.Field) {
	f.Tag = strings.ReplaceAll(f.JSONName, "|", `\|`)
}
