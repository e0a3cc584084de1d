// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/jsoncodegen/internal/codegen"
)

// ErrUnsafeName is returned for an artifact name that would escape the
// output directory.
var ErrUnsafeName = errors.New("unsafe artifact name")

// Write stores every artifact under dir. With more than one result each
// language gets its own sub-directory. When dir is "-" the artifacts are
// concatenated to w instead, each preceded by a "==> name <==" line.
// It returns the written paths (or logical names for "-").
func Write(dir string, results []codegen.Result, w io.Writer) ([]string, error) {
	if dir == Stdin {
		return writeStream(results, w)
	}

	perLanguage := len(results) > 1
	var written []string
	for _, r := range results {
		target := dir
		if perLanguage {
			target = filepath.Join(dir, r.Language)
		}
		if len(r.Artifacts) > 0 {
			if err := os.MkdirAll(target, 0o750); err != nil {
				return written, fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		for _, a := range r.Artifacts {
			path, err := artifactPath(target, a.LogicalName)
			if err != nil {
				return written, err
			}
			if err := os.WriteFile(path, []byte(a.Contents), 0o600); err != nil {
				return written, fmt.Errorf("failed to write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}

func writeStream(results []codegen.Result, w io.Writer) ([]string, error) {
	perLanguage := len(results) > 1
	var written []string
	for _, r := range results {
		for _, a := range r.Artifacts {
			name := a.LogicalName
			if perLanguage {
				name = r.Language + "/" + name
			}
			if len(written) > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return written, err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n%s", name, a.Contents); err != nil {
				return written, err
			}
			written = append(written, name)
		}
	}
	return written, nil
}

// artifactPath joins dir and name, rejecting names that leave dir.
func artifactPath(dir, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return filepath.Join(dir, name), nil
}
