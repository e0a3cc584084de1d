// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package naming converts JSON keys into identifiers for generated code.
package naming

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Words splits a JSON key into ASCII words. Accented letters are folded to
// their base letter, separators and other symbols split words, and case
// changes start a new word ("userID" -> user, ID; "HTTPServer" -> HTTP,
// Server).
func Words(s string) []string {
	folded := fold(s)

	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(folded)
	for i, r := range runes {
		if !isASCIIAlnum(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			case unicode.IsDigit(prev) && unicode.IsLetter(r) && unicode.IsUpper(r):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// fold strips diacritics so that "café" becomes "cafe".
func fold(s string) string {
	var sb strings.Builder
	for _, r := range norm.NFKD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isASCIIAlnum(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// Pascal converts s to PascalCase ("first_name" -> FirstName).
func Pascal(s string) string {
	title := cases.Title(language.Und)
	var sb strings.Builder
	for _, w := range Words(s) {
		sb.WriteString(title.String(strings.ToLower(w)))
	}
	return leading(sb.String())
}

// Camel converts s to camelCase ("first_name" -> firstName).
func Camel(s string) string {
	title := cases.Title(language.Und)
	var sb strings.Builder
	for i, w := range Words(s) {
		if i == 0 {
			sb.WriteString(strings.ToLower(w))
			continue
		}
		sb.WriteString(title.String(strings.ToLower(w)))
	}
	return leading(sb.String())
}

// Snake converts s to snake_case ("firstName" -> first_name).
func Snake(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return leading(strings.Join(words, "_"))
}

// leading makes an identifier that starts with a digit legal.
func leading(s string) string {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		return "_" + s
	}
	return s
}

// Singular returns the singular form of an English noun written in any case
// style. Only the last word is inflected ("user_addresses" -> user_address).
func Singular(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return s
	}
	last := words[len(words)-1]
	single := inflect.Singularize(last)
	if single == "" || single == last {
		return s
	}
	i := strings.LastIndex(s, last)
	if i < 0 {
		return s
	}
	return s[:i] + single + s[i+len(last):]
}

// Decapitalize lowercases the first letter unless the first two letters are
// both upper case, matching JavaBeans property naming ("URL" stays "URL").
func Decapitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && unicode.IsUpper(runes[1]) {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
