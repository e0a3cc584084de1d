// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codegentest provides helpers for backend tests.
package codegentest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/extract"
	"github.com/dacolabs/jsoncodegen/internal/registry"
	"github.com/dacolabs/jsoncodegen/internal/value"
)

// Sample inputs shared by backend tests.
const (
	Flat    = `{"name":"x","age":1}`
	Mixed   = `{"items":["one",2,3.0],"point":{"x":1,"y":2.0}}`
	Library = `{"library":{"books":[{"title":"1984","author":"G.O."},{"title":"TKAM","author":"H.L.","genres":["Classic"]}]}}`
	Empty   = `{"a":[]}`
)

// Graph infers and registers the JSON documents in input.
func Graph(t testing.TB, input string) *registry.Graph {
	t.Helper()
	docs, err := value.ParseJSON(strings.NewReader(input))
	require.NoError(t, err)
	g, err := registry.Register(extract.ExtractAll(docs...), registry.Options{})
	require.NoError(t, err)
	return g
}

// Artifacts indexes artifacts by logical name.
func Artifacts(arts []codegen.Artifact) map[string]string {
	out := make(map[string]string, len(arts))
	for _, a := range arts {
		out[a.LogicalName] = a.Contents
	}
	return out
}

// Names returns the logical names of arts in order.
func Names(arts []codegen.Artifact) []string {
	out := make([]string, len(arts))
	for i, a := range arts {
		out[i] = a.LogicalName
	}
	return out
}
