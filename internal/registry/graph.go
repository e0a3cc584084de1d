// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// TypeID identifies a NamedType within one Graph. IDs are assigned children
// first, so a type's ID is always greater than the IDs of the types it uses.
type TypeID int

// TypeRef is a use site of a type: a leaf, an array, or a reference to a
// NamedType.
type TypeRef struct {
	Kind     schema.Kind // Unknown, Bool, Int, Float, String, Array, Object or Union
	Elem     *TypeRef    // Array only
	NullElem bool        // elements may be null, Array only
	Named    TypeID      // Object and Union only
}

// IsNamed reports whether the ref points at a NamedType.
func (r *TypeRef) IsNamed() bool {
	return r.Kind == schema.Object || r.Kind == schema.Union
}

// Field is a property of a named Object type.
type Field struct {
	Name     string // JSON key
	Type     *TypeRef
	Optional bool
}

// NamedType is a deduplicated Object or Union.
type NamedType struct {
	ID          TypeID
	Name        string
	Key         string // JSON key that first introduced the type, empty for Root
	Kind        schema.Kind
	Fields      []Field    // Object only
	Members     []*TypeRef // Union only, in canonical member order
	Fingerprint string
}

// Member returns the Union member of kind k.
func (t *NamedType) Member(k schema.Kind) (*TypeRef, bool) {
	for _, m := range t.Members {
		if m.Kind == k {
			return m, true
		}
	}
	return nil, false
}

// Graph is the finalized, named schema. It is immutable once Register
// returns and may be read from several goroutines.
type Graph struct {
	Root  *TypeRef
	Types []*NamedType // naming order: Root first, then depth-first by field

	byID   map[TypeID]*NamedType
	byName map[string]*NamedType
}

// Type returns the NamedType with the given ID.
func (g *Graph) Type(id TypeID) *NamedType {
	return g.byID[id]
}

// Lookup returns the NamedType with the given name.
func (g *Graph) Lookup(name string) (*NamedType, bool) {
	t, ok := g.byName[name]
	return t, ok
}

// Resolve returns the NamedType a ref points at, or nil for leaves and arrays.
func (g *Graph) Resolve(r *TypeRef) *NamedType {
	if r == nil || !r.IsNamed() {
		return nil
	}
	return g.byID[r.Named]
}

// Topological returns the types ordered so that every type follows the
// types it references.
func (g *Graph) Topological() []*NamedType {
	out := make([]*NamedType, len(g.Types))
	copy(out, g.Types)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RootType returns the NamedType the root resolves to, looking through
// arrays. It returns nil when the root is a primitive.
func (g *Graph) RootType() *NamedType {
	r := g.Root
	for r != nil && r.Kind == schema.Array {
		r = r.Elem
	}
	return g.Resolve(r)
}

// TypeString renders a ref in the compact notation used by schema.String,
// with named types shown by name.
func (g *Graph) TypeString(r *TypeRef) string {
	switch r.Kind {
	case schema.Array:
		if r.NullElem {
			return "[" + g.TypeString(r.Elem) + "?]"
		}
		return "[" + g.TypeString(r.Elem) + "]"
	case schema.Object, schema.Union:
		if t := g.Type(r.Named); t != nil {
			return t.Name
		}
		return fmt.Sprintf("#%d", r.Named)
	default:
		return r.Kind.String()
	}
}

// Describe renders every named type, one per line.
func (g *Graph) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "root: %s\n", g.TypeString(g.Root))
	for _, t := range g.Types {
		switch t.Kind {
		case schema.Object:
			parts := make([]string, len(t.Fields))
			for i, f := range t.Fields {
				opt := ""
				if f.Optional {
					opt = "?"
				}
				parts[i] = fmt.Sprintf("%s%s: %s", f.Name, opt, g.TypeString(f.Type))
			}
			fmt.Fprintf(&sb, "%s { %s }\n", t.Name, strings.Join(parts, ", "))
		case schema.Union:
			parts := make([]string, len(t.Members))
			for i, m := range t.Members {
				parts[i] = g.TypeString(m)
			}
			fmt.Fprintf(&sb, "%s = %s\n", t.Name, strings.Join(parts, " | "))
		}
	}
	return sb.String()
}
