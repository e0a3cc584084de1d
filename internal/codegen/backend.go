// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codegen defines the contract language backends implement to turn a
// named schema graph into source artifacts.
package codegen

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dacolabs/jsoncodegen/internal/registry"
)

// Backend defines the interface all language backends must implement.
type Backend interface {
	// Name returns the backend's identifier (e.g., "java", "go").
	Name() string

	// FileExtension returns the extension of produced artifacts (e.g., ".java").
	FileExtension() string

	// Render produces one artifact group per named type, in graph order.
	// Types the backend cannot express are reported as
	// *UnsupportedShapeError values joined into the returned error; the
	// artifacts for every other type are still returned.
	Render(g *registry.Graph, cfg Config) ([]Artifact, error)
}

// ContextBackend is implemented by backends whose rendering blocks, such as
// backends running in a child process.
type ContextBackend interface {
	Backend
	RenderContext(ctx context.Context, g *registry.Graph, cfg Config) ([]Artifact, error)
}

// Artifact is one generated source file.
type Artifact struct {
	LogicalName string `json:"logical_name"`
	Contents    string `json:"contents"`
}

// ErrUnsupportedShape marks types a backend cannot render.
var ErrUnsupportedShape = errors.New("unsupported schema shape")

// UnsupportedShapeError reports a named type a backend cannot render.
type UnsupportedShapeError struct {
	Backend string
	Type    string
	Reason  string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("%s: cannot render %s: %s", e.Backend, e.Type, e.Reason)
}

func (e *UnsupportedShapeError) Unwrap() error {
	return ErrUnsupportedShape
}

// Register maps backend names to backends.
type Register map[string]Backend

// Add registers b under its own name.
func (r Register) Add(b Backend) {
	r[b.Name()] = b
}

// Get retrieves a backend by name.
func (r Register) Get(name string) (Backend, error) {
	b, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown language: %s", name)
	}
	return b, nil
}

// Available returns all registered backend names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
