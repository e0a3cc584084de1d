// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protobuf

import (
	"strconv"
	"strings"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

const valueType = "google.protobuf.Value"

type resolver struct{}

func (r *resolver) PrimitiveType(kind schema.Kind) string {
	switch kind {
	case schema.Bool:
		return "bool"
	case schema.Int:
		return "int64"
	case schema.Float:
		return "double"
	case schema.String:
		return "string"
	default:
		return valueType
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "repeated " + elemType
}

// NullableType falls back to google.protobuf.Value, the only proto3 type
// a repeated field can carry null in.
func (r *resolver) NullableType(string) string {
	return valueType
}

func (r *resolver) RefType(typeName string) string {
	return typeName
}

func (r *resolver) FormatTypeName(name string) string {
	return name
}

// FieldName returns a snake_case field name starting with a letter.
func (r *resolver) FieldName(key string) string {
	name := strings.TrimLeft(naming.Snake(key), "_")
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "f_" + name
	}
	return name
}

func (r *resolver) SlotName(kind schema.Kind) string {
	return kind.String() + "_value"
}

func (r *resolver) Keywords() []string {
	return nil
}

func (r *resolver) EnrichField(f *codegen.Field) {
	if f.Optional && !strings.HasPrefix(f.Type, "repeated ") {
		f.Type = "optional " + f.Type
	}
	f.Tag = " [json_name = " + strconv.Quote(f.JSONName) + "]"
}
