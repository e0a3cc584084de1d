// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package java

import (
	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// keywords are Java keywords and literals (JLS 3.9), plus "_".
var keywords = []string{
	"_", "abstract", "assert", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "default", "do", "double", "else",
	"enum", "extends", "false", "final", "finally", "float", "for", "goto",
	"if", "implements", "import", "instanceof", "int", "interface", "long",
	"native", "new", "null", "package", "private", "protected", "public",
	"return", "short", "static", "strictfp", "super", "switch",
	"synchronized", "this", "throw", "throws", "transient", "true", "try",
	"void", "volatile", "while",
}

type resolver struct{}

func (r *resolver) PrimitiveType(kind schema.Kind) string {
	switch kind {
	case schema.Bool:
		return "Boolean"
	case schema.Int:
		return "Long"
	case schema.Float:
		return "Double"
	case schema.String:
		return "String"
	default:
		return "Object"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "List<" + elemType + ">"
}

func (r *resolver) RefType(typeName string) string {
	return typeName
}

func (r *resolver) FormatTypeName(name string) string {
	return name
}

func (r *resolver) FieldName(key string) string {
	return naming.Camel(key)
}

func (r *resolver) SlotName(kind schema.Kind) string {
	return kind.String() + "Value"
}

func (r *resolver) Keywords() []string {
	return keywords
}

func (r *resolver) EscapeKeyword(name string) string {
	return name + "_"
}

func (r *resolver) EnrichField(_ *codegen.Field) {}
