// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"

	"github.com/dacolabs/jsoncodegen/internal/registry"
)

// GeneratedHeader is the marker line placed at the top of generated sources,
// prefixed by the target language's comment syntax.
const GeneratedHeader = "Code generated by jsoncodegen; DO NOT EDIT."

// Result holds the outcome of one backend run.
type Result struct {
	Language  string
	Artifacts []Artifact
	Err       error // nil, joined *UnsupportedShapeError values, or a fatal backend error
}

// Unsupported returns the unsupported shape errors contained in Err.
func (r Result) Unsupported() []*UnsupportedShapeError {
	var out []*UnsupportedShapeError
	collectUnsupported(r.Err, &out)
	return out
}

// Partial reports whether the backend produced artifacts but skipped some
// types it cannot express.
func (r Result) Partial() bool {
	return r.Err != nil && len(r.Unsupported()) > 0 && onlyUnsupported(r.Err)
}

func collectUnsupported(err error, out *[]*UnsupportedShapeError) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectUnsupported(e, out)
		}
		return
	}
	var use *UnsupportedShapeError
	if errors.As(err, &use) {
		*out = append(*out, use)
	}
}

func onlyUnsupported(err error) bool {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !onlyUnsupported(e) {
				return false
			}
		}
		return true
	}
	return errors.Is(err, ErrUnsupportedShape)
}

// RenderAll runs one backend per config concurrently. The graph is shared
// read-only. Results are returned in cfgs order; a backend failure is
// recorded in its Result and does not stop the others. The returned error
// is non-nil only for an unknown language or an invalid config.
func RenderAll(ctx context.Context, g *registry.Graph, reg Register, cfgs []Config) ([]Result, error) {
	backends := make([]Backend, len(cfgs))
	for i, cfg := range cfgs {
		b, err := reg.Get(cfg.Language)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config for %s: %w", cfg.Language, err)
		}
		backends[i] = b
	}

	results := make([]Result, len(cfgs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, b := range backends {
		eg.Go(func() error {
			arts, err := Render(egCtx, b, g, cfgs[i])
			results[i] = Result{Language: cfgs[i].Language, Artifacts: arts, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Render runs a single backend, using RenderContext when available.
func Render(ctx context.Context, b Backend, g *registry.Graph, cfg Config) ([]Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cb, ok := b.(ContextBackend); ok {
		return cb.RenderContext(ctx, g, cfg)
	}
	return b.Render(g, cfg)
}

// FuncMap holds helpers shared by backend templates.
var FuncMap = template.FuncMap{
	"quote":  strconv.Quote,
	"join":   strings.Join,
	"lower":  strings.ToLower,
	"upper":  strings.ToUpper,
	"header": func(prefix string) string { return prefix + " " + GeneratedHeader },
}

// Execute runs the named template with data and returns the output.
func Execute(t *template.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
