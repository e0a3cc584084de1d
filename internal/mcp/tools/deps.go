// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tools

import (
	"github.com/dacolabs/jsoncodegen/internal/cache"
	"github.com/dacolabs/jsoncodegen/internal/codegen"
)

// DefaultCacheSize is the number of results each tool keeps.
const DefaultCacheSize = 128

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Backends codegen.Register
	Generate *cache.ResultCache[GenerateTypesOutput]
	Infer    *cache.ResultCache[InferSchemaOutput]
}

// NewDeps creates the tool dependencies with caches of the given size.
func NewDeps(backends codegen.Register, cacheSize int) (*Deps, error) {
	gen, err := cache.New[GenerateTypesOutput](cacheSize)
	if err != nil {
		return nil, err
	}
	inf, err := cache.New[InferSchemaOutput](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Deps{Backends: backends, Generate: gen, Infer: inf}, nil
}
