// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// keywords are Rust strict and reserved keywords.
var keywords = []string{
	"abstract", "as", "async", "await", "become", "box", "break", "const",
	"continue", "crate", "do", "dyn", "else", "enum", "extern", "false",
	"final", "fn", "for", "gen", "if", "impl", "in", "let", "loop", "macro",
	"match", "mod", "move", "mut", "override", "priv", "pub", "ref",
	"return", "self", "static", "struct", "super", "trait", "true", "try",
	"type", "typeof", "unsafe", "unsized", "use", "virtual", "where",
	"while", "yield",
}

// unraw lists keywords that cannot be raw identifiers.
var unraw = map[string]bool{"crate": true, "self": true, "super": true, "Self": true}

type resolver struct{}

func (r *resolver) PrimitiveType(kind schema.Kind) string {
	switch kind {
	case schema.Bool:
		return "bool"
	case schema.Int:
		return "i64"
	case schema.Float:
		return "f64"
	case schema.String:
		return "String"
	default:
		return "serde_json::Value"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "Vec<" + elemType + ">"
}

func (r *resolver) NullableType(elemType string) string {
	return "Option<" + elemType + ">"
}

func (r *resolver) RefType(typeName string) string {
	return typeName
}

func (r *resolver) FormatTypeName(name string) string {
	return name
}

func (r *resolver) FieldName(key string) string {
	return naming.Snake(key)
}

func (r *resolver) SlotName(kind schema.Kind) string {
	return kind.String() + "_value"
}

func (r *resolver) Keywords() []string {
	return keywords
}

func (r *resolver) EscapeKeyword(name string) string {
	if unraw[name] {
		return name + "_"
	}
	return "r#" + name
}

func (r *resolver) EnrichField(f *codegen.Field) {
	if f.Optional {
		f.Type = "Option<" + f.Type + ">"
	}
}
