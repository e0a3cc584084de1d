// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package value

import (
	"context"
	"errors"
	"fmt"

	"github.com/itchyny/gojq"
)

// Selector runs a compiled jq expression against documents.
type Selector struct {
	expr string
	code *gojq.Code
}

// NewSelector parses and compiles a jq expression.
func NewSelector(expr string) (*Selector, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	return &Selector{expr: expr, code: code}, nil
}

// Select returns every value the expression emits for every document.
// Each emitted value becomes a separate sample. Object members of selected
// values are ordered by key since jq does not retain document order.
func (s *Selector) Select(ctx context.Context, docs []*Value) ([]*Value, error) {
	var out []*Value
	for i, doc := range docs {
		iter := s.code.RunWithContext(ctx, doc.Interface())
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := v.(error); isErr {
				var haltErr *gojq.HaltError
				if errors.As(err, &haltErr) && haltErr.Value() == nil {
					break
				}
				return nil, fmt.Errorf("document %d: %w", i, err)
			}
			sel, err := FromInterface(v)
			if err != nil {
				return nil, fmt.Errorf("document %d: %w", i, err)
			}
			out = append(out, sel)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("jq expression %q selected nothing", s.expr)
	}
	return out, nil
}

// Select is a convenience wrapper around NewSelector and Selector.Select.
func Select(ctx context.Context, expr string, docs []*Value) ([]*Value, error) {
	s, err := NewSelector(expr)
	if err != nil {
		return nil, err
	}
	return s.Select(ctx, docs)
}
