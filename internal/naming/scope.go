// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package naming

import (
	"strconv"
	"strings"
)

// Scope hands out identifiers that are unique within one namespace, such as
// the type names of a run or the members of one class.
//
// Names are compared case-insensitively so that generated files never
// collide on case-insensitive file systems. A name that is taken or reserved
// receives the smallest decimal suffix N >= 2 that makes it free.
type Scope struct {
	taken    map[string]bool
	reserved map[string]bool

	// Escape, when set, is tried once for reserved names before numeric
	// suffixes, for example appending "_" to a keyword.
	Escape func(string) string
}

// NewScope returns a Scope that never hands out any of reserved.
func NewScope(reserved ...string) *Scope {
	s := &Scope{
		taken:    make(map[string]bool),
		reserved: make(map[string]bool, len(reserved)),
	}
	for _, r := range reserved {
		s.reserved[strings.ToLower(r)] = true
	}
	return s
}

// Reserve marks names as unavailable.
func (s *Scope) Reserve(names ...string) {
	for _, n := range names {
		s.reserved[strings.ToLower(n)] = true
	}
}

// Available reports whether name can be claimed as is.
func (s *Scope) Available(name string) bool {
	key := strings.ToLower(name)
	return !s.taken[key] && !s.reserved[key]
}

// Claim returns a free identifier derived from name and marks it taken.
func (s *Scope) Claim(name string) string {
	if s.Available(name) {
		s.taken[strings.ToLower(name)] = true
		return name
	}

	base := name
	if s.Escape != nil && s.reserved[strings.ToLower(name)] {
		base = s.Escape(name)
		if s.Available(base) {
			s.taken[strings.ToLower(base)] = true
			return base
		}
	}

	for n := 2; ; n++ {
		candidate := base + strconv.Itoa(n)
		if s.Available(candidate) {
			s.taken[strings.ToLower(candidate)] = true
			return candidate
		}
	}
}
