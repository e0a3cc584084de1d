// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jsoncodegen/internal/extract"
	"github.com/dacolabs/jsoncodegen/internal/schema"
	"github.com/dacolabs/jsoncodegen/internal/value"
)

func build(t *testing.T, input string, opts Options) *Graph {
	t.Helper()
	docs, err := value.ParseJSON(strings.NewReader(input))
	require.NoError(t, err)
	g, err := Register(extract.ExtractAll(docs...), opts)
	require.NoError(t, err)
	return g
}

func names(g *Graph) []string {
	out := make([]string, len(g.Types))
	for i, t := range g.Types {
		out[i] = t.Name
	}
	return out
}

func TestRegister_FlatObject(t *testing.T) {
	g := build(t, `{"name":"x","age":1}`, Options{})

	require.Len(t, g.Types, 1)
	root := g.Types[0]
	assert.Equal(t, "Root", root.Name)
	assert.Equal(t, schema.Object, root.Kind)
	require.Len(t, root.Fields, 2)
	assert.Equal(t, Field{Name: "name", Type: &TypeRef{Kind: schema.String}}, root.Fields[0])
	assert.Equal(t, Field{Name: "age", Type: &TypeRef{Kind: schema.Int}}, root.Fields[1])
}

func TestRegister_UnionWrapper(t *testing.T) {
	g := build(t, `{"items":["one",2,3.0],"point":{"x":1,"y":2.0}}`, Options{})

	assert.Equal(t, []string{"Root", "Items", "Point"}, names(g))
	assert.Equal(t, "root: Root\nRoot { items: [Items], point: Point }\nItems = int | float | string\nPoint { x: int, y: float }\n", g.Describe())

	items, ok := g.Lookup("Items")
	require.True(t, ok)
	assert.Equal(t, schema.Union, items.Kind)
	assert.Equal(t, "items", items.Key)
}

func TestRegister_ArrayOfObjects(t *testing.T) {
	g := build(t, `{"library":{"books":[{"title":"1984","author":"G.O."},{"title":"TKAM","author":"H.L.","genres":["Classic"]}]}}`, Options{})

	assert.Equal(t, []string{"Root", "Library", "Books"}, names(g))
	books, ok := g.Lookup("Books")
	require.True(t, ok)
	assert.Equal(t, []Field{
		{Name: "title", Type: &TypeRef{Kind: schema.String}},
		{Name: "author", Type: &TypeRef{Kind: schema.String}},
		{Name: "genres", Type: &TypeRef{Kind: schema.Array, Elem: &TypeRef{Kind: schema.String}}, Optional: true},
	}, books.Fields)
}

func TestRegister_EmptyArray(t *testing.T) {
	g := build(t, `{"a":[]}`, Options{})
	assert.Equal(t, "root: Root\nRoot { a: [unknown] }\n", g.Describe())
}

func TestRegister_NullElements(t *testing.T) {
	g := build(t, `{"scores":[1,null,2],"tags":[{"k":"a"},null]}`, Options{})
	assert.Equal(t, "root: Root\nRoot { scores: [int?], tags: [Tags?] }\nTags { k: string }\n", g.Describe())

	root := g.RootType()
	require.NotNil(t, root)
	assert.True(t, root.Fields[0].Type.NullElem)
}

func TestRegister_NullElementsDistinguishTypes(t *testing.T) {
	g := build(t, `{"a":{"v":[1]},"b":{"v":[1,null]}}`, Options{})
	assert.Equal(t, []string{"Root", "A", "B"}, names(g))
}

func TestRegister_Singularize(t *testing.T) {
	g := build(t, `{"books":[{"title":"x"}],"categories":[{"id":1}]}`, Options{Singularize: true})
	assert.Equal(t, []string{"Root", "Book", "Category"}, names(g))
}

func TestRegister_Dedup(t *testing.T) {
	g := build(t, `{"home":{"street":"a","zip":1},"work":{"street":"b","zip":2},"other":{"zip":3,"street":"c"}}`, Options{})

	// home and work share a structure; other has a different field order.
	assert.Equal(t, []string{"Root", "Home", "Other"}, names(g))
	root := g.Types[0]
	assert.Equal(t, root.Fields[0].Type.Named, root.Fields[1].Type.Named)
	assert.NotEqual(t, root.Fields[0].Type.Named, root.Fields[2].Type.Named)

	seen := map[string]bool{}
	for _, nt := range g.Types {
		assert.False(t, seen[nt.Fingerprint], "duplicate fingerprint for %s", nt.Name)
		seen[nt.Fingerprint] = true
	}
}

func TestRegister_UnionFingerprintIgnoresOrder(t *testing.T) {
	a, _ := (&registry{types: map[string]*NamedType{}, byID: map[TypeID]*NamedType{}}).intern(schema.UnionOf(schema.Leaf(schema.Int), schema.Leaf(schema.String)))
	b, _ := (&registry{types: map[string]*NamedType{}, byID: map[TypeID]*NamedType{}}).intern(schema.UnionOf(schema.Leaf(schema.String), schema.Leaf(schema.Int)))
	assert.Equal(t, a, b)
}

func TestRegister_CollisionSuffix(t *testing.T) {
	g := build(t, `{"a":{"point":{"x":1}},"b":{"point":{"y":"s"}},"c":{"Point":{"z":true}}}`, Options{})

	assert.Equal(t, []string{"Root", "A", "Point", "B", "Point2", "C", "Point3"}, names(g))
}

func TestRegister_ReservedNames(t *testing.T) {
	g := build(t, `{"string":{"a":1},"object":{"b":1},"root":{"c":1}}`, Options{})
	assert.Equal(t, []string{"Root", "String2", "Object2", "Root2"}, names(g))

	g = build(t, `{"string":{"a":1}}`, Options{Reserved: []string{}})
	assert.Equal(t, []string{"Root", "String"}, names(g))
}

func TestRegister_UnionMembers(t *testing.T) {
	g := build(t, `{"value":[1,{"k":"v"},[{"n":1}]]}`, Options{})
	assert.Equal(t, []string{"Root", "Value2", "Value2Item", "Value2Object"}, names(g))
}

func TestRegister_RootArray(t *testing.T) {
	g := build(t, `[{"id":1},{"id":2,"tags":["x"]}]`, Options{})

	assert.Equal(t, []string{"Root"}, names(g))
	assert.Equal(t, schema.Array, g.Root.Kind)
	assert.Equal(t, "Root", g.RootType().Name)
}

func TestRegister_PrimitiveRoot(t *testing.T) {
	g := build(t, `"hello"`, Options{})
	assert.Empty(t, g.Types)
	assert.Nil(t, g.RootType())
	assert.Equal(t, schema.String, g.Root.Kind)
}

func TestRegister_UnnamedKey(t *testing.T) {
	g := build(t, `{"":{"a":1},"日本":{"b":1}}`, Options{})
	assert.Equal(t, []string{"Root", "Unnamed", "Unnamed2"}, names(g))
}

func TestRegister_Deterministic(t *testing.T) {
	input := `{"a":[{"x":1},{"y":"s"}],"b":{"x":[1,"a",{"q":null}]},"c":{"point":{"x":1}},"d":{"point":{"x":1.5}}}`
	first := build(t, input, Options{})
	second := build(t, input, Options{})

	assert.Equal(t, first.Describe(), second.Describe())
	assert.Equal(t, names(first), names(second))
}

func TestRegister_Topological(t *testing.T) {
	g := build(t, `{"a":{"b":{"c":{"d":1}}}}`, Options{})

	pos := map[string]int{}
	for i, nt := range g.Topological() {
		pos[nt.Name] = i
	}
	assert.Less(t, pos["C"], pos["B"])
	assert.Less(t, pos["B"], pos["A"])
	assert.Less(t, pos["A"], pos["Root"])
}

func TestVerify_DuplicateNames(t *testing.T) {
	g := &Graph{
		Types: []*NamedType{
			{ID: 0, Name: "Point", Fingerprint: "o:1"},
			{ID: 1, Name: "point", Fingerprint: "o:2"},
		},
		byID: map[TypeID]*NamedType{},
	}
	g.byID[0], g.byID[1] = g.Types[0], g.Types[1]

	err := verify(g)
	assert.ErrorIs(t, err, ErrNamingInvariant)
}
