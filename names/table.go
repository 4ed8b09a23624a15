// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package names aggregates baby name ranking files into a table of
// per-year ranks.
//
// An input file lists a bare year on a line by itself, followed by
// lines of the form
//
//	rank,name,name
//
// giving the rank of a boy's name and a girl's name in that year.
// A file may contain several year sections.
package names

import "sort"

// YearRanks maps a year, exactly as written in the source file, to
// the best rank seen for a name in that year. Rank 1 is the most
// popular name.
type YearRanks map[string]int

// Years returns the years in r in ascending order.
func (r YearRanks) Years() []string {
	years := make([]string, 0, len(r))
	for y := range r {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}

// A Table maps names to their ranks over time.
//
// Names are case-sensitive. The zero Table is not usable; use New.
type Table struct {
	ranks map[string]YearRanks

	// order gives the names of ranks in the order they were
	// first added.
	order []string
}

// New returns an empty Table.
func New() *Table {
	return &Table{ranks: make(map[string]YearRanks)}
}

// Add records that name had the given rank in year. If a rank is
// already recorded for name in year, Add keeps the better (smaller)
// of the two.
func (t *Table) Add(name, year string, rank int) {
	yr, ok := t.ranks[name]
	if !ok {
		t.ranks[name] = YearRanks{year: rank}
		t.order = append(t.order, name)
		return
	}
	if old, ok := yr[year]; ok && old <= rank {
		return
	}
	yr[year] = rank
}

// Rank returns the rank of name in year and whether there is one.
func (t *Table) Rank(name, year string) (int, bool) {
	rank, ok := t.ranks[name][year]
	return rank, ok
}

// Ranks returns all ranks recorded for name. The caller must not
// modify the result.
func (t *Table) Ranks(name string) (YearRanks, bool) {
	yr, ok := t.ranks[name]
	return yr, ok
}

// Has reports whether t has any data for name.
func (t *Table) Has(name string) bool {
	_, ok := t.ranks[name]
	return ok
}

// Len returns the number of distinct names in t.
func (t *Table) Len() int {
	return len(t.order)
}

// Names returns the names in t in the order they were first added.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Sorted returns the names in t in lexical order.
func (t *Table) Sorted() []string {
	names := t.Names()
	sort.Strings(names)
	return names
}
