// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package value

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrEmptyInput is returned when the input contains no document.
var ErrEmptyInput = errors.New("input contains no document")

// Format identifies an input encoding.
type Format string

// Supported input formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json", "jsonl", "ndjson":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported input format: %s", s)
	}
}

// DetectFormat guesses the format from a file name, defaulting to JSON.
func DetectFormat(name string) Format {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Parse reads every document in r. JSON input may hold several
// whitespace-separated documents (JSON Lines); YAML input may hold several
// "---"-separated documents.
func Parse(r io.Reader, format Format) ([]*Value, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(r)
	default:
		return ParseJSON(r)
	}
}

// ParseBytes is Parse over an in-memory buffer.
func ParseBytes(data []byte, format Format) ([]*Value, error) {
	return Parse(bytes.NewReader(data), format)
}

// ParseJSON decodes all JSON documents in r, keeping member order.
func ParseJSON(r io.Reader) ([]*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	d := &jsonDecoder{dec: dec}

	var docs []*Value
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		v, err := d.fromToken(tok)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		docs = append(docs, v)
	}
	if len(docs) == 0 {
		return nil, ErrEmptyInput
	}
	return docs, nil
}

type jsonDecoder struct {
	dec *json.Decoder
}

func (d *jsonDecoder) next() (*Value, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return d.fromToken(tok)
}

func (d *jsonDecoder) fromToken(tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return d.object()
		case '[':
			return d.array()
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(string(t)), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func (d *jsonDecoder) object() (*Value, error) {
	v := NewObject()
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		child, err := d.next()
		if err != nil {
			return nil, err
		}
		v.Members = append(v.Members, M(key, child))
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}

func (d *jsonDecoder) array() (*Value, error) {
	v := NewArray()
	for d.dec.More() {
		child, err := d.next()
		if err != nil {
			return nil, err
		}
		v.Items = append(v.Items, child)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseYAML decodes all YAML documents in r, keeping mapping order.
func ParseYAML(r io.Reader) ([]*Value, error) {
	dec := yaml.NewDecoder(r)

	var docs []*Value
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		v, err := fromNode(&node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		docs = append(docs, v)
	}
	if len(docs) == 0 {
		return nil, ErrEmptyInput
	}
	return docs, nil
}

func fromNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NewNull(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		v := NewArray()
		for _, c := range n.Content {
			item, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			v.Items = append(v.Items, item)
		}
		return v, nil
	case yaml.MappingNode:
		v := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			v.Members = append(v.Members, M(n.Content[i].Value, child))
		}
		return v, nil
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

func fromScalar(n *yaml.Node) (*Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return NewNull(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return NewBool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return &Value{Kind: Int, Number: strconv.FormatInt(i, 10)}, nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return &Value{Kind: Int, Number: strconv.FormatUint(u, 10)}, nil
		}
		return &Value{Kind: Float, Number: n.Value}, nil
	case "!!float":
		return &Value{Kind: Float, Number: n.Value}, nil
	default:
		return NewString(n.Value), nil
	}
}
