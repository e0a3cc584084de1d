// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package value provides the parsed JSON document model used as inference input.
//
// Unlike map[string]any, a Value keeps object members in document order and
// preserves duplicate keys, and numbers keep their literal text so that the
// integer/float distinction survives parsing.
package value

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds.
const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Member is a single key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value *Value
}

// Value is a parsed JSON value.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  string // literal text for Int and Float
	Str     string
	Items   []*Value
	Members []Member
}

// NewNull returns a null value.
func NewNull() *Value { return &Value{Kind: Null} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{Kind: Bool, Bool: b} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{Kind: String, Str: s} }

// NewNumber returns an Int or Float value for a numeric literal.
func NewNumber(literal string) *Value {
	return &Value{Kind: ClassifyNumber(literal), Number: literal}
}

// NewArray returns an array value holding items.
func NewArray(items ...*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{Kind: Array, Items: items}
}

// NewObject returns an object value holding members in the given order.
func NewObject(members ...Member) *Value {
	if members == nil {
		members = []Member{}
	}
	return &Value{Kind: Object, Members: members}
}

// M is shorthand for building a Member.
func M(key string, v *Value) Member {
	return Member{Key: key, Value: v}
}

// ClassifyNumber reports whether a numeric literal is an Int or a Float.
// A literal is an Int when it has no fraction or exponent and fits in a
// signed or unsigned 64-bit integer.
func ClassifyNumber(literal string) Kind {
	if strings.ContainsAny(literal, ".eE") {
		return Float
	}
	if _, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return Int
	}
	if _, err := strconv.ParseUint(literal, 10, 64); err == nil {
		return Int
	}
	return Float
}

// Interface converts the value into the generic form used by encoding
// libraries and jq: nil, bool, int, *big.Int, float64, string, []any and
// map[string]any. Member order and duplicate keys are lost; the last
// duplicate wins.
func (v *Value) Interface() any {
	switch v.Kind {
	case Bool:
		return v.Bool
	case Int:
		if i, err := strconv.ParseInt(v.Number, 10, 64); err == nil {
			if i >= math.MinInt && i <= math.MaxInt {
				return int(i)
			}
		}
		n, ok := new(big.Int).SetString(v.Number, 10)
		if ok {
			return n
		}
		return v.Number
	case Float:
		f, err := strconv.ParseFloat(v.Number, 64)
		if err != nil {
			return v.Number
		}
		return f
	case String:
		return v.Str
	case Array:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = item.Interface()
		}
		return out
	case Object:
		out := make(map[string]any, len(v.Members))
		for _, m := range v.Members {
			out[m.Key] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// FromInterface converts a generic value back into a Value. Map keys are
// sorted so the result is deterministic.
func FromInterface(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case int:
		return &Value{Kind: Int, Number: strconv.Itoa(t)}, nil
	case int64:
		return &Value{Kind: Int, Number: strconv.FormatInt(t, 10)}, nil
	case *big.Int:
		return NewNumber(t.String()), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("unsupported number %v", t)
		}
		return &Value{Kind: Float, Number: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	case string:
		return NewString(t), nil
	case []any:
		items := make([]*Value, 0, len(t))
		for _, item := range t {
			v, err := FromInterface(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return NewArray(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			v, err := FromInterface(t[k])
			if err != nil {
				return nil, err
			}
			members = append(members, M(k, v))
		}
		return NewObject(members...), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", x)
	}
}
