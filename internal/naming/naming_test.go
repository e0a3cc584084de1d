// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"first_name", []string{"first", "name"}},
		{"firstName", []string{"first", "Name"}},
		{"userID", []string{"user", "ID"}},
		{"HTTPServer", []string{"HTTP", "Server"}},
		{"kebab-case key", []string{"kebab", "case", "key"}},
		{"café", []string{"cafe"}},
		{"$ref", []string{"ref"}},
		{"日本", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input))
		})
	}
}

func TestCasing(t *testing.T) {
	tests := []struct {
		input  string
		pascal string
		camel  string
		snake  string
	}{
		{"first_name", "FirstName", "firstName", "first_name"},
		{"Point", "Point", "point", "point"},
		{"userID", "UserId", "userId", "user_id"},
		{"@type", "Type", "type", "type"},
		{"", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.pascal, Pascal(tt.input))
			assert.Equal(t, tt.camel, Camel(tt.input))
			assert.Equal(t, tt.snake, Snake(tt.input))
		})
	}
}

func TestLeadingDigit(t *testing.T) {
	assert.Equal(t, "_2fa", Snake("2fa"))
	assert.Equal(t, "_2fa", Camel("2fa"))
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "book", Singular("books"))
	assert.Equal(t, "user_address", Singular("user_addresses"))
	assert.Equal(t, "Category", Singular("Categories"))
	assert.Equal(t, "", Singular(""))
}

func TestDecapitalize(t *testing.T) {
	assert.Equal(t, "name", Decapitalize("Name"))
	assert.Equal(t, "URL", Decapitalize("URL"))
	assert.Equal(t, "", Decapitalize(""))
}

func TestScope_Claim(t *testing.T) {
	s := NewScope("String")

	assert.Equal(t, "Point", s.Claim("Point"))
	assert.Equal(t, "Point2", s.Claim("Point"))
	assert.Equal(t, "point3", s.Claim("point"))
	assert.Equal(t, "String2", s.Claim("String"))
	assert.False(t, s.Available("POINT2"))
}

func TestScope_Escape(t *testing.T) {
	s := NewScope("class")
	s.Escape = func(n string) string { return n + "_" }

	assert.Equal(t, "class_", s.Claim("class"))
	assert.Equal(t, "class_2", s.Claim("class"))
}
