// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"strings"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// acronyms are fully uppercased in Go identifiers.
var acronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"http": "HTTP",
	"api":  "API",
	"json": "JSON",
	"xml":  "XML",
	"sql":  "SQL",
	"html": "HTML",
	"ip":   "IP",
	"tcp":  "TCP",
	"udp":  "UDP",
	"tls":  "TLS",
	"ssl":  "SSL",
	"ssh":  "SSH",
	"cpu":  "CPU",
	"uri":  "URI",
	"uuid": "UUID",
}

type resolver struct{}

func (r *resolver) PrimitiveType(kind schema.Kind) string {
	switch kind {
	case schema.Bool:
		return "bool"
	case schema.Int:
		return "int64"
	case schema.Float:
		return "float64"
	case schema.String:
		return "string"
	default:
		return "any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

// NullableType points at elements so that null survives a round trip.
// Slices and interfaces already hold nil.
func (r *resolver) NullableType(elemType string) string {
	if strings.HasPrefix(elemType, "[]") || elemType == "any" {
		return elemType
	}
	return "*" + elemType
}

func (r *resolver) RefType(typeName string) string {
	return typeName
}

func (r *resolver) FormatTypeName(name string) string {
	return name
}

func (r *resolver) FieldName(key string) string {
	return toPascalCase(key)
}

func (r *resolver) SlotName(kind schema.Kind) string {
	return naming.Pascal(kind.String())
}

// Keywords lists identifiers taken by the generated methods.
func (r *resolver) Keywords() []string {
	return []string{"MarshalJSON", "UnmarshalJSON"}
}

func (r *resolver) EnrichField(f *codegen.Field) {
	tag := f.JSONName
	if f.Optional {
		tag += ",omitempty"
		if !strings.HasPrefix(f.Type, "[]") && f.Type != "any" {
			f.Type = "*" + f.Type
		}
	}
	f.Tag = "`json:" + quoteTag(tag) + "`"
}

// quoteTag quotes a struct tag value. Keys containing a backquote or a
// double quote cannot be expressed and are escaped as Go string syntax.
func quoteTag(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "").Replace(s) + `"`
}

// toPascalCase converts a JSON key to an exported Go identifier. It handles
// common Go acronyms (ID, URL, HTTP, API, JSON, XML, SQL, HTML).
func toPascalCase(s string) string {
	var sb strings.Builder
	for _, w := range naming.Words(s) {
		lower := strings.ToLower(w)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
			continue
		}
		sb.WriteString(strings.ToUpper(lower[:1]) + lower[1:])
	}
	out := sb.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		return "X" + out
	}
	return out
}
