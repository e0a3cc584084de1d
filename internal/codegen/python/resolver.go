// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"strconv"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// keywords are Python keywords, soft keywords used as builtins, and
// attribute names pydantic.BaseModel already defines.
var keywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
	"construct", "copy", "dict", "json", "model_config", "model_fields",
	"schema", "validate",
}

type resolver struct{}

func (r *resolver) PrimitiveType(kind schema.Kind) string {
	switch kind {
	case schema.Bool:
		return "bool"
	case schema.Int:
		return "int"
	case schema.Float:
		return "float"
	case schema.String:
		return "str"
	default:
		return "Any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "List[" + elemType + "]"
}

func (r *resolver) NullableType(elemType string) string {
	if elemType == "Any" {
		return elemType
	}
	return "Optional[" + elemType + "]"
}

func (r *resolver) RefType(typeName string) string {
	return typeName
}

func (r *resolver) FormatTypeName(name string) string {
	return name
}

func (r *resolver) FieldName(key string) string {
	name := naming.Snake(key)
	// leading underscores make pydantic treat the attribute as private
	for len(name) > 0 && name[0] == '_' {
		name = name[1:]
	}
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "field_" + name
	}
	return name
}

func (r *resolver) SlotName(kind schema.Kind) string {
	return kind.String() + "_value"
}

func (r *resolver) Keywords() []string {
	return keywords
}

func (r *resolver) EscapeKeyword(name string) string {
	return name + "_"
}

func (r *resolver) EnrichField(f *codegen.Field) {
	alias := ""
	if f.Name != f.JSONName {
		alias = "alias=" + strconv.Quote(f.JSONName)
	}

	switch {
	case f.Optional:
		f.Type = "Optional[" + f.Type + "]"
		if alias != "" {
			f.Tag = " = Field(default=None, " + alias + ")"
		} else {
			f.Tag = " = None"
		}
	case alias != "":
		f.Tag = " = Field(" + alias + ")"
	}
}
