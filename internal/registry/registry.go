// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package registry deduplicates Object and Union schemas into named types
// and assigns every type a unique name.
package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dacolabs/jsoncodegen/internal/naming"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// ErrNamingInvariant is returned when name assignment produced duplicate or
// empty names. It indicates a bug and must fail the run.
var ErrNamingInvariant = errors.New("naming invariant violated")

// RootName is the name of the top-level type.
const RootName = "Root"

// DefaultReserved lists type names that clash with built-in or runtime
// types of the supported target languages.
var DefaultReserved = []string{
	"Any", "Bool", "Boolean", "Box", "Byte", "Class", "Dict", "Double",
	"Enum", "Error", "False", "Float", "Int", "Integer", "Interface", "List",
	"Long", "Map", "None", "Number", "Object", "Option", "Optional", "Record",
	"Result", "Self", "Set", "String", "Struct", "True", "Union", "Value",
	"Vec", "Void",
}

// Options controls naming.
type Options struct {
	// Singularize names types reached through an array after the singular
	// form of the array's key ("books" -> Book).
	Singularize bool

	// Reserved names are never assigned. Nil means DefaultReserved.
	Reserved []string
}

type registry struct {
	opts   Options
	types  map[string]*NamedType // by fingerprint
	byID   map[TypeID]*NamedType
	order  []*NamedType
	scope  *naming.Scope
	nextID TypeID
}

// Register deduplicates and names every Object and Union in s.
//
// Structurally equal fragments share one NamedType. Names come from the JSON
// key that introduced a fragment; the top-level fragment is named Root.
// Fragments are named in a depth-first walk from the root following field
// order, and a name already in use receives the smallest free numeric
// suffix starting at 2, so repeated runs name types identically.
func Register(s *schema.Schema, opts Options) (*Graph, error) {
	reserved := opts.Reserved
	if reserved == nil {
		reserved = DefaultReserved
	}

	r := &registry{
		opts:  opts,
		types: make(map[string]*NamedType),
		byID:  make(map[TypeID]*NamedType),
		scope: naming.NewScope(reserved...),
	}

	root, _ := r.intern(s)
	r.name(root, RootName, "")

	g := &Graph{
		Root:   root,
		Types:  r.order,
		byID:   r.byID,
		byName: make(map[string]*NamedType, len(r.order)),
	}

	if err := verify(g); err != nil {
		return nil, err
	}
	for _, t := range g.Types {
		g.byName[t.Name] = t
	}
	return g, nil
}

// intern converts s into a TypeRef, registering Objects and Unions bottom-up
// so that child fingerprints are known before their parents'.
func (r *registry) intern(s *schema.Schema) (*TypeRef, string) {
	switch s.Kind {
	case schema.Array:
		elem, fp := r.intern(s.Elem)
		if s.NullElem {
			fp += "?"
		}
		return &TypeRef{Kind: schema.Array, Elem: elem, NullElem: s.NullElem}, "[" + fp + "]"

	case schema.Object:
		fields := make([]Field, len(s.Fields))
		var sb strings.Builder
		sb.WriteString("{")
		for i, f := range s.Fields {
			ref, fp := r.intern(f.Schema)
			fields[i] = Field{Name: f.Name, Type: ref, Optional: f.Optional}
			sb.WriteString(strconv.Quote(f.Name))
			if f.Optional {
				sb.WriteString("?")
			}
			sb.WriteString(":")
			sb.WriteString(fp)
			sb.WriteString(",")
		}
		sb.WriteString("}")
		return r.register(schema.Object, sb.String(), func(t *NamedType) { t.Fields = fields })

	case schema.Union:
		members := make([]*TypeRef, len(s.Members))
		fps := make([]string, len(s.Members))
		for i, m := range s.Members {
			members[i], fps[i] = r.intern(m)
		}
		sort.Strings(fps)
		canonical := "(" + strings.Join(fps, "|") + ")"
		return r.register(schema.Union, canonical, func(t *NamedType) { t.Members = members })

	case schema.Null:
		// Null never survives extraction; treat a stray one as Unknown.
		return &TypeRef{Kind: schema.Unknown}, schema.Unknown.String()

	default:
		return &TypeRef{Kind: s.Kind}, s.Kind.String()
	}
}

func (r *registry) register(kind schema.Kind, canonical string, fill func(*NamedType)) (*TypeRef, string) {
	sum := sha256.Sum256([]byte(canonical))
	fp := kind.String()[:1] + ":" + hex.EncodeToString(sum[:])

	t, ok := r.types[fp]
	if !ok {
		t = &NamedType{ID: r.nextID, Kind: kind, Fingerprint: fp}
		fill(t)
		r.nextID++
		r.types[fp] = t
		r.byID[t.ID] = t
	}
	return &TypeRef{Kind: kind, Named: t.ID}, fp
}

// name assigns names depth-first from ref. candidate is the preferred name
// for the fragment ref denotes; key is the JSON key it came from.
func (r *registry) name(ref *TypeRef, candidate, key string) {
	switch ref.Kind {
	case schema.Array:
		elem := candidate
		if r.opts.Singularize && candidate != RootName {
			elem = naming.Pascal(naming.Singular(key))
			if elem == "" {
				elem = candidate
			}
		}
		r.name(ref.Elem, elem, key)

	case schema.Object, schema.Union:
		t := r.byID[ref.Named]
		if t.Name != "" {
			return
		}
		if candidate == "" {
			candidate = "Unnamed"
		}
		t.Name = r.scope.Claim(candidate)
		t.Key = key
		r.order = append(r.order, t)

		if t.Kind == schema.Object {
			for _, f := range t.Fields {
				r.name(f.Type, naming.Pascal(f.Name), f.Name)
			}
			return
		}
		for _, m := range t.Members {
			switch m.Kind {
			case schema.Object:
				r.name(m, t.Name+"Object", key)
			case schema.Array:
				r.name(m.Elem, t.Name+"Item", key)
			}
		}
	}
}

// verify checks that every named type has a unique, non-empty name and a
// unique fingerprint.
func verify(g *Graph) error {
	names := make(map[string]TypeID, len(g.Types))
	fps := make(map[string]TypeID, len(g.Types))
	for _, t := range g.Types {
		if t.Name == "" {
			return fmt.Errorf("%w: type %d has no name", ErrNamingInvariant, t.ID)
		}
		lower := strings.ToLower(t.Name)
		if other, ok := names[lower]; ok {
			return fmt.Errorf("%w: %q assigned to types %d and %d", ErrNamingInvariant, t.Name, other, t.ID)
		}
		names[lower] = t.ID
		if other, ok := fps[t.Fingerprint]; ok {
			return fmt.Errorf("%w: types %d and %d share fingerprint %s", ErrNamingInvariant, other, t.ID, t.Fingerprint)
		}
		fps[t.Fingerprint] = t.ID
	}
	if len(g.Types) != len(g.byID) {
		return fmt.Errorf("%w: %d types registered but %d named", ErrNamingInvariant, len(g.byID), len(g.Types))
	}
	return nil
}
