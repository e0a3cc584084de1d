// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/codegen/codegentest"
)

func render(t *testing.T, input string, cfg codegen.Config) map[string]string {
	t.Helper()
	arts, err := (&Backend{}).Render(codegentest.Graph(t, input), cfg)
	require.NoError(t, err)
	return codegentest.Artifacts(arts)
}

func TestRender_FlatObject(t *testing.T) {
	files := render(t, codegentest.Flat, codegen.DefaultConfig("go"))

	assert.Equal(t, "// Code generated by jsoncodegen; DO NOT EDIT.\n\npackage models\n\n"+
		"// Root was inferred from JSON samples.\n"+
		"type Root struct {\n"+
		"\tName string `json:\"name\"`\n"+
		"\tAge  int64  `json:\"age\"`\n"+
		"}\n", files["root.go"])
}

func TestRender_UnionWrapper(t *testing.T) {
	arts, err := (&Backend{}).Render(codegentest.Graph(t, codegentest.Mixed), codegen.DefaultConfig("go"))
	require.NoError(t, err)
	assert.Equal(t, []string{"root.go", "items.go", "point.go"}, codegentest.Names(arts))
	files := codegentest.Artifacts(arts)

	assert.Contains(t, files["root.go"], "\tItems []Items `json:\"items\"`\n")
	assert.Contains(t, files["point.go"], "\tX int64   `json:\"x\"`\n\tY float64 `json:\"y\"`\n")

	items := files["items.go"]
	assert.Contains(t, items, "import (\n\t\"bytes\"\n\t\"encoding/json\"\n\t\"fmt\"\n)\n")
	assert.Contains(t, items, "\tInt    *int64\n\tFloat  *float64\n\tString *string\n")
	assert.Contains(t, items, "func (i Items) MarshalJSON() ([]byte, error) {\n\tswitch {\n\tcase i.Int != nil:\n\t\treturn json.Marshal(i.Int)\n\tcase i.Float != nil:")
	assert.Contains(t, items, "\tcase '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':\n\t\tif bytes.ContainsAny(data, \".eE\") {\n\t\t\treturn json.Unmarshal(data, &i.Float)\n\t\t}\n\t\treturn json.Unmarshal(data, &i.Int)\n")
	assert.Contains(t, items, "\tcase '\"':\n\t\treturn json.Unmarshal(data, &i.String)\n")
	assert.NotContains(t, items, "case '['")
	assert.NotContains(t, items, "case 't', 'f'")
}

func TestRender_UnionWithoutFloatSlot(t *testing.T) {
	files := render(t, `{"v":1}{"v":"a"}`, codegen.DefaultConfig("go"))

	assert.Contains(t, files["v.go"], "\t\tif bytes.ContainsAny(data, \".eE\") {\n\t\t\tbreak\n\t\t}\n\t\treturn json.Unmarshal(data, &v.Int)\n")
}

func TestRender_OptionalFields(t *testing.T) {
	files := render(t, `{"user_id":1,"tags":["a"],"meta":{"k":true},"any":null}{"user_id":2}`, codegen.DefaultConfig("go"))

	root := files["root.go"]
	assert.Contains(t, root, "UserID int64")
	assert.Contains(t, root, "`json:\"user_id\"`")
	assert.Contains(t, root, "Tags   []string `json:\"tags,omitempty\"`")
	assert.Contains(t, root, "Meta   *Meta    `json:\"meta,omitempty\"`")
	assert.Contains(t, root, "Any    any      `json:\"any,omitempty\"`")
}

func TestRender_Accessors(t *testing.T) {
	cfg := codegen.DefaultConfig("go")
	cfg.EmitGetters = true
	cfg.EmitSetters = true
	cfg.Package = "api"

	files := render(t, codegentest.Flat, cfg)

	root := files["root.go"]
	assert.Contains(t, root, "package api\n")
	assert.Contains(t, root, "// GetName returns the Name field.\nfunc (r *Root) GetName() string {\n\treturn r.Name\n}\n")
	assert.Contains(t, root, "// SetAge sets the Age field.\nfunc (r *Root) SetAge(value int64) {\n\tr.Age = value\n}\n")
}

func TestRender_EmptyArray(t *testing.T) {
	files := render(t, codegentest.Empty, codegen.DefaultConfig("go"))

	assert.Contains(t, files["root.go"], "\tA []any `json:\"a\"`\n")
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"name", "Name"},
		{"user_id", "UserID"},
		{"apiUrl", "APIURL"},
		{"http-server", "HTTPServer"},
		{"2fa", "X2fa"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toPascalCase(tt.in))
		})
	}
}

func TestRender_NullElements(t *testing.T) {
	files := render(t, `{"scores":[1,null,2],"grid":[[1],null],"any":[null]}`, codegen.DefaultConfig("go"))

	root := files["root.go"]
	assert.Contains(t, root, "[]*int64")
	assert.Contains(t, root, "[][]int64")
	assert.Contains(t, root, "[]any")
}
