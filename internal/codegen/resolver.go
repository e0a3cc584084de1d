// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import "github.com/dacolabs/jsoncodegen/internal/schema"

// TypeResolver converts schema kinds to target-language type strings and naming conventions.
// Each backend implements this interface to control how the graph maps to its output format.
type TypeResolver interface {
	// PrimitiveType maps Bool, Int, Float, String and Unknown to a target type string.
	PrimitiveType(kind schema.Kind) string

	// ArrayType wraps an element type string in a sequence type.
	ArrayType(elemType string) string

	// RefType returns the type string for a reference to a named type.
	RefType(typeName string) string

	// FormatTypeName formats a registry type name for the target language.
	FormatTypeName(name string) string

	// FieldName converts a JSON key to a member identifier. It may return
	// an empty string when the key has no usable characters.
	FieldName(key string) string

	// SlotName returns the member identifier of a union slot.
	SlotName(kind schema.Kind) string

	// Keywords returns identifiers that cannot be used as member names.
	Keywords() []string

	// EnrichField applies language-specific post-processing to a resolved field.
	// It may mutate any combination of the field's properties:
	//   - Type: wrap for optionality (e.g. Optional[T] for Python, *T for Go)
	//   - Tag:  set annotations (e.g. json struct tags for Go)
	// Called once per field after type resolution and member naming.
	EnrichField(f *Field)
}

// KeywordEscaper is implemented by resolvers that escape keywords rather
// than suffixing them with a number (e.g. "class" -> "class_").
type KeywordEscaper interface {
	EscapeKeyword(name string) string
}

// NullableElemResolver is implemented by resolvers whose sequence types
// reject null elements unless the element type is wrapped.
type NullableElemResolver interface {
	// NullableType wraps an element type so that it also admits null.
	NullableType(elemType string) string
}
