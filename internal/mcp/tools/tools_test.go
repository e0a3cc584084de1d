// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/codegen/java"
	"github.com/dacolabs/jsoncodegen/internal/codegen/protobuf"
)

func newDeps(t *testing.T) *Deps {
	t.Helper()
	reg := codegen.Register{}
	reg.Add(&java.Backend{})
	reg.Add(&protobuf.Backend{})
	d, err := NewDeps(reg, 8)
	require.NoError(t, err)
	return d
}

func TestGenerateTypes(t *testing.T) {
	d := newDeps(t)
	handler := ToolGenerateTypes(d)

	in := GenerateTypesInput{JSON: `{"name":"x","age":1}`, Language: "java"}
	_, out, err := handler(context.Background(), nil, in)
	require.NoError(t, err)

	assert.Equal(t, "java", out.Language)
	require.Len(t, out.Artifacts, 1)
	assert.Equal(t, "Root.java", out.Artifacts[0].LogicalName)
	assert.Contains(t, out.Artifacts[0].Contents, "public Long age;")
	assert.Empty(t, out.Warnings)
	assert.False(t, out.Cached)
	assert.Equal(t, 1, d.Generate.Len())

	_, again, err := handler(context.Background(), nil, in)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, out.Artifacts, again.Artifacts)
}

func TestGenerateTypes_Options(t *testing.T) {
	_, out, err := ToolGenerateTypes(newDeps(t))(context.Background(), nil, GenerateTypesInput{
		JSON:       `{"data":[{"id":1}]}`,
		Language:   "java",
		Select:     ".data[]",
		Package:    "com.example",
		Visibility: "private",
		Getters:    true,
	})
	require.NoError(t, err)
	require.Len(t, out.Artifacts, 1)
	contents := out.Artifacts[0].Contents
	assert.Contains(t, contents, "package com.example;")
	assert.Contains(t, contents, "private Long id;")
	assert.Contains(t, contents, "public Long getId()")
}

func TestGenerateTypes_Warnings(t *testing.T) {
	_, out, err := ToolGenerateTypes(newDeps(t))(context.Background(), nil, GenerateTypesInput{
		JSON:     `{"v":[1,"a",[2]],"e":[]}`,
		Language: "protobuf",
	})
	require.NoError(t, err)
	require.Len(t, out.Warnings, 2)
	assert.Contains(t, out.Warnings[0], "never observed")
	assert.Contains(t, out.Warnings[1], "cannot render")
	assert.NotEmpty(t, out.Artifacts)
}

func TestGenerateTypes_InvalidInput(t *testing.T) {
	handler := ToolGenerateTypes(newDeps(t))

	tests := []struct {
		name  string
		input GenerateTypesInput
		code  string
	}{
		{"missing json", GenerateTypesInput{Language: "java"}, ErrCodeInvalidInput},
		{"missing language", GenerateTypesInput{JSON: `{}`}, ErrCodeInvalidInput},
		{"unknown language", GenerateTypesInput{JSON: `{}`, Language: "cobol"}, ErrCodeInvalidInput},
		{"bad format", GenerateTypesInput{JSON: `{}`, Language: "java", Format: "xml"}, ErrCodeInvalidInput},
		{"bad visibility", GenerateTypesInput{JSON: `{}`, Language: "java", Visibility: "hidden"}, ErrCodeInvalidInput},
		{"bad json", GenerateTypesInput{JSON: `{"a":`, Language: "java"}, ErrCodeInferenceFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := handler(context.Background(), nil, tt.input)
			var coded *CodedError
			require.ErrorAs(t, err, &coded)
			assert.Equal(t, tt.code, coded.Code)
		})
	}
}

func TestInferSchema(t *testing.T) {
	d := newDeps(t)
	handler := ToolInferSchema(d)

	in := InferSchemaInput{JSON: `{"items":["one",2,3.0],"point":{"x":1,"y":2.0}}`}
	_, out, err := handler(context.Background(), nil, in)
	require.NoError(t, err)

	assert.Equal(t, "{items:[(int|float|string)],point:{x:int,y:float}}", out.Schema)
	assert.Equal(t, "Root", out.Root)
	assert.Equal(t, 1, out.Samples)
	assert.Zero(t, out.Unknowns)
	require.Len(t, out.Types, 3)
	assert.Equal(t, TypeInfo{
		Name: "Root",
		Kind: "object",
		Fields: []FieldInfo{
			{Name: "items", Type: "[Items]"},
			{Name: "point", Type: "Point"},
		},
	}, out.Types[0])
	assert.Equal(t, "union", out.Types[1].Kind)
	assert.Equal(t, []string{"int", "float", "string"}, out.Types[1].Members)

	_, cached, err := handler(context.Background(), nil, in)
	require.NoError(t, err)
	assert.True(t, cached.Cached)
}

func TestInferSchema_InvalidInput(t *testing.T) {
	_, _, err := ToolInferSchema(newDeps(t))(context.Background(), nil, InferSchemaInput{})
	assert.ErrorContains(t, err, ErrCodeInvalidInput)
}

func TestListLanguages(t *testing.T) {
	_, out, err := ToolListLanguages(newDeps(t))(context.Background(), nil, ListLanguagesInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"java", "protobuf"}, out.Languages)
}

func TestCheckOutputSchema(t *testing.T) {
	type BadOutput struct {
		Items []string `json:"items"`
	}
	assert.Panics(t, func() { CheckOutputSchema[BadOutput]("bad") })

	assert.NotPanics(t, func() { CheckOutputSchema[GenerateTypesOutput]("generate_types") })
	assert.NotPanics(t, func() { CheckOutputSchema[InferSchemaOutput]("infer_schema") })
	assert.NotPanics(t, func() { CheckOutputSchema[ListLanguagesOutput]("list_languages") })
	assert.NotPanics(t, func() { CheckOutputSchema[any]("any") })
}
