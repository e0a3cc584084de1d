// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

// slotOrder lists the kinds a Union may hold, in canonical member order.
var slotOrder = [...]Kind{Bool, Int, Float, String, Array, Object}

func slotIndex(k Kind) int {
	for i, sk := range slotOrder {
		if sk == k {
			return i
		}
	}
	return -1
}

// Merge joins two schemas into the least schema describing both.
//
// Merge is commutative and associative under Equal. Unknown and Null are
// identities; merging Null with Unknown yields Null. Callers that observe a
// null value mark the enclosing field Optional themselves.
//
// A Union holds at most one member per kind: merging a member into a Union
// that already has a member of the same kind merges the two members.
func Merge(a, b *Schema) *Schema {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Kind == Unknown:
		return a
	case a.Kind == Unknown:
		return b
	case b.Kind == Null:
		return a
	case a.Kind == Null:
		return b
	}

	if a.Kind == b.Kind && a.Kind != Union {
		return mergeSame(a, b)
	}
	return mergeUnion(a, b)
}

// mergeSame merges two schemas of the same non-Union kind.
func mergeSame(a, b *Schema) *Schema {
	switch a.Kind {
	case Array:
		out := ArrayOf(Merge(a.Elem, b.Elem))
		out.NullElem = a.NullElem || b.NullElem
		return out
	case Object:
		return mergeObjects(a, b)
	default:
		return Leaf(a.Kind)
	}
}

func mergeObjects(a, b *Schema) *Schema {
	fields := make([]Field, 0, len(a.Fields)+len(b.Fields))
	index := make(map[string]int, len(a.Fields)+len(b.Fields))

	for _, f := range a.Fields {
		index[f.Name] = len(fields)
		f.Optional = f.Optional || !hasField(b, f.Name)
		fields = append(fields, f)
	}

	for _, f := range b.Fields {
		i, ok := index[f.Name]
		if !ok {
			f.Optional = true
			fields = append(fields, f)
			continue
		}
		existing := fields[i]
		fields[i] = Field{
			Name:     f.Name,
			Schema:   Merge(existing.Schema, f.Schema),
			Optional: existing.Optional || f.Optional,
			Pos:      min(existing.Pos, f.Pos),
		}
	}

	sortFields(fields)
	return &Schema{Kind: Object, Fields: fields}
}

func hasField(s *Schema, name string) bool {
	_, ok := s.Field(name)
	return ok
}

func mergeUnion(a, b *Schema) *Schema {
	var slots [len(slotOrder)]*Schema

	add := func(s *Schema) {
		if s.Kind == Union {
			for _, m := range s.Members {
				i := slotIndex(m.Kind)
				slots[i] = mergeSlot(slots[i], m)
			}
			return
		}
		i := slotIndex(s.Kind)
		slots[i] = mergeSlot(slots[i], s)
	}
	add(a)
	add(b)

	members := make([]*Schema, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			members = append(members, s)
		}
	}
	if len(members) == 1 {
		return members[0]
	}
	return &Schema{Kind: Union, Members: members}
}

func mergeSlot(existing, s *Schema) *Schema {
	if existing == nil {
		return s
	}
	return mergeSame(existing, s)
}

// Normalize replaces every Null in s with Unknown. It is applied once to a
// fully merged schema so that Null never reaches the type registry.
func Normalize(s *Schema) *Schema {
	switch s.Kind {
	case Null:
		return Leaf(Unknown)
	case Array:
		out := ArrayOf(Normalize(s.Elem))
		out.NullElem = s.NullElem
		return out
	case Object:
		fields := make([]Field, len(s.Fields))
		for i, f := range s.Fields {
			f.Schema = Normalize(f.Schema)
			fields[i] = f
		}
		return &Schema{Kind: Object, Fields: fields}
	case Union:
		members := make([]*Schema, len(s.Members))
		for i, m := range s.Members {
			members[i] = Normalize(m)
		}
		return &Schema{Kind: Union, Members: members}
	default:
		return s
	}
}
