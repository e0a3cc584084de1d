// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package external runs code generators implemented as separate programs.
// The host writes one Request as JSON to the program's stdin and reads one
// Response from its stdout.
package external

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
	"github.com/dacolabs/jsoncodegen/internal/registry"
)

// Prefix selects an external backend by path, as in "exec:./gen-kotlin".
const Prefix = "exec:"

// ErrBackendFailed is returned when the program exits with an error or
// writes an undecodable response.
var ErrBackendFailed = errors.New("external backend failed")

// Backend runs Command with Args for every render.
type Backend struct {
	name      string
	Command   string
	Args      []string
	Extension string
	Env       []string // extra environment, appended to the host's
}

// New returns a backend registered under name.
func New(name, command string, args []string, extension string) *Backend {
	return &Backend{name: name, Command: command, Args: args, Extension: extension}
}

// FromName parses "exec:<path>" into a backend. It returns false when name
// does not carry the prefix.
func FromName(name string) (*Backend, bool) {
	path, ok := strings.CutPrefix(name, Prefix)
	if !ok || path == "" {
		return nil, false
	}
	return New(name, path, nil, ""), true
}

// Name returns the registered name.
func (b *Backend) Name() string {
	return b.name
}

// FileExtension returns the configured extension. Artifact names come from
// the program, so it is informational.
func (b *Backend) FileExtension() string {
	return b.Extension
}

// Render runs the program without a deadline.
func (b *Backend) Render(g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	return b.RenderContext(context.Background(), g, cfg)
}

// RenderContext runs the program, killing it when ctx is done.
func (b *Backend) RenderContext(ctx context.Context, g *registry.Graph, cfg codegen.Config) ([]codegen.Artifact, error) {
	req, err := json.Marshal(Request{Config: cfg, Graph: FromGraph(g)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	cmd := exec.CommandContext(ctx, b.Command, b.Args...)
	cmd.Stdin = bytes.NewReader(req)
	if len(b.Env) > 0 {
		cmd.Env = append(os.Environ(), b.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrBackendFailed, b.name, err)
		}
		return nil, fmt.Errorf("%w: %s: %w: %s", ErrBackendFailed, b.name, err, msg)
	}

	var resp Response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("%w: %s: invalid response: %w", ErrBackendFailed, b.name, err)
	}

	errs := make([]error, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		errs = append(errs, e.toError(b.name))
	}
	return resp.Artifacts, errors.Join(errs...)
}
