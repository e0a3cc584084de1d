// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

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
	files := render(t, codegentest.Flat, codegen.DefaultConfig("python"))

	assert.Equal(t, `# Code generated by jsoncodegen; DO NOT EDIT.

from __future__ import annotations

from pydantic import BaseModel, ConfigDict


class Root(BaseModel):
    model_config = ConfigDict(populate_by_name=True, serialize_by_alias=True)

    name: str
    age: int
`, files["root.py"])
}

func TestRender_UnionWrapper(t *testing.T) {
	files := render(t, codegentest.Mixed, codegen.DefaultConfig("python"))

	root := files["root.py"]
	assert.Contains(t, root, "from typing import List\n")
	assert.Contains(t, root, "from pydantic import BaseModel, ConfigDict\n\nfrom .items import Items\nfrom .point import Point\n\n\nclass Root(BaseModel):")
	assert.Contains(t, root, "    items: List[Items]\n    point: Point\n")

	items := files["items.py"]
	assert.Contains(t, items, "from typing import Any, Optional\n")
	assert.Contains(t, items, "from pydantic import BaseModel, ValidatorFunctionWrapHandler, model_serializer, model_validator\n")
	assert.Contains(t, items, "    int_value: Optional[int] = None\n    float_value: Optional[float] = None\n    string_value: Optional[str] = None\n")
	assert.Contains(t, items, `        if isinstance(data, bool):
            raise ValueError("cannot deserialize Items from bool")
        if isinstance(data, int):
            return cls.model_construct(int_value=data)
        if isinstance(data, float):
            return cls.model_construct(float_value=data)
        if isinstance(data, str):
            return cls.model_construct(string_value=data)
        raise ValueError(f"cannot deserialize Items from {type(data).__name__}")
`)
	assert.Contains(t, items, `    def _serialize(self) -> Any:
        if self.int_value is not None:
            return self.int_value
        if self.float_value is not None:
            return self.float_value
        if self.string_value is not None:
            return self.string_value
        return None
`)
}

func TestRender_UnionArrayAndObjectSlots(t *testing.T) {
	files := render(t, `{"v":true}{"v":[1]}{"v":{"a":1}}`, codegen.DefaultConfig("python"))

	v := files["v.py"]
	assert.Contains(t, v, "from pydantic import BaseModel, TypeAdapter,")
	assert.Contains(t, v, "from .v_object import VObject\n")
	assert.Contains(t, v, "            return cls.model_construct(bool_value=data)\n")
	assert.Contains(t, v, "            return cls.model_construct(array_value=TypeAdapter(List[int]).validate_python(data))\n")
	assert.Contains(t, v, "            return cls.model_construct(object_value=VObject.model_validate(data))\n")
}

func TestRender_AliasesAndOptional(t *testing.T) {
	files := render(t, `{"firstName":"a","class":1,"n":2}{"firstName":"b","n":null}`, codegen.DefaultConfig("python"))

	root := files["root.py"]
	assert.Contains(t, root, "from pydantic import BaseModel, ConfigDict, Field\n")
	assert.Contains(t, root, "    first_name: str = Field(alias=\"firstName\")\n")
	assert.Contains(t, root, "    class_: Optional[int] = Field(default=None, alias=\"class\")\n")
	assert.Contains(t, root, "    n: Optional[int] = None\n")
}

func TestRender_Accessors(t *testing.T) {
	cfg := codegen.DefaultConfig("python")
	cfg.EmitGetters = true
	cfg.EmitSetters = true

	files := render(t, codegentest.Flat, cfg)

	assert.Contains(t, files["root.py"], `    age: int

    def get_name(self) -> str:
        return self.name

    def set_name(self, value: str) -> None:
        self.name = value
`)
}

func TestRender_EmptyArray(t *testing.T) {
	files := render(t, codegentest.Empty, codegen.DefaultConfig("python"))

	root := files["root.py"]
	assert.Contains(t, root, "from typing import Any, List\n")
	assert.Contains(t, root, "    a: List[Any]\n")
}

func TestRender_NullElements(t *testing.T) {
	files := render(t, `{"scores":[1,null,2],"tags":[{"k":"a"},null]}`, codegen.DefaultConfig("python"))

	root := files["root.py"]
	assert.Contains(t, root, "from typing import List, Optional\n")
	assert.Contains(t, root, "    scores: List[Optional[int]]\n")
	assert.Contains(t, root, "    tags: List[Optional[Tags]]\n")
}
