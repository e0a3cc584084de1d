// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"fmt"

	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/schema"
)

// SkipDependents extends skipped, a map from type to the reason it cannot
// be rendered, with every type that refers to a skipped type directly or
// through other types. Rendering only the remaining types leaves no
// reference to a missing artifact.
func SkipDependents(g *registry.Graph, skipped map[registry.TypeID]string) {
	for changed := len(skipped) > 0; changed; {
		changed = false
		for _, t := range g.Types {
			if _, ok := skipped[t.ID]; ok {
				continue
			}
			if dep := skippedDependency(g, t, skipped); dep != "" {
				skipped[t.ID] = fmt.Sprintf("references %s, which cannot be rendered", dep)
				changed = true
			}
		}
	}
}

// Skip returns the UnsupportedShapeError of every skipped type, in graph
// order.
func Skip(backend string, g *registry.Graph, skipped map[registry.TypeID]string) []error {
	var errs []error
	for _, t := range g.Types {
		if reason, ok := skipped[t.ID]; ok {
			errs = append(errs, &UnsupportedShapeError{Backend: backend, Type: t.Name, Reason: reason})
		}
	}
	return errs
}

func skippedDependency(g *registry.Graph, t *registry.NamedType, skipped map[registry.TypeID]string) string {
	refs := make([]*registry.TypeRef, 0, len(t.Fields)+len(t.Members))
	for _, f := range t.Fields {
		refs = append(refs, f.Type)
	}
	refs = append(refs, t.Members...)

	for _, r := range refs {
		for r != nil && r.Kind == schema.Array {
			r = r.Elem
		}
		if r == nil || !r.IsNamed() || r.Named == t.ID {
			continue
		}
		if _, ok := skipped[r.Named]; ok {
			return g.Type(r.Named).Name
		}
	}
	return ""
}
