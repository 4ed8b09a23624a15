// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package names

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Search returns the names in t that contain fragment, ignoring
// case, in the order they were added to t.
//
// Each result is capitalized: its first letter is upper case and
// the rest lower case, whatever its case in the source files. Hence
// "SUSANNA" is returned as "Susanna" and "Mary Ann" as "Mary ann".
func (t *Table) Search(fragment string) []string {
	fragment = strings.ToLower(fragment)
	matches := []string{}
	for _, name := range t.order {
		lower := strings.ToLower(name)
		if strings.Contains(lower, fragment) {
			matches = append(matches, capitalize(lower))
		}
	}
	return matches
}

// Search is shorthand for t.Search(fragment).
func Search(t *Table, fragment string) []string {
	return t.Search(fragment)
}

// capitalize upper-cases the first letter of s, which must already
// be lower case.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
