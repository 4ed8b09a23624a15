// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/ryanlei/babynames/names"
)

// writeReport prints a table with a row for each requested name in
// t (or every name, if requested is empty) and a column for each of
// years. Each row ends with the name's best and mean rank over all
// years in t.
func writeReport(w io.Writer, t *names.Table, years []string, requested []string) {
	if len(requested) == 0 {
		requested = t.Sorted()
	}

	var (
		nameCol []string
		yearCol = make([][]string, len(years))
		bestCol []int
		meanCol []float64
	)
	for _, name := range requested {
		yr, ok := t.Ranks(name)
		if !ok {
			continue
		}
		nameCol = append(nameCol, name)
		for i, year := range years {
			cell := "-"
			if rank, ok := yr[year]; ok {
				cell = strconv.Itoa(rank)
			}
			yearCol[i] = append(yearCol[i], cell)
		}

		var all []float64
		best := 0
		for _, rank := range yr {
			all = append(all, float64(rank))
			if best == 0 || rank < best {
				best = rank
			}
		}
		bestCol = append(bestCol, best)
		meanCol = append(meanCol, stats.Mean(all))
	}
	if len(nameCol) == 0 {
		return
	}

	b := new(table.Builder).Add("name", nameCol)
	formats := []string{"%s"}
	for i, year := range years {
		b.Add(yearColumn(year), yearCol[i])
		formats = append(formats, "%s")
	}
	b.Add("best", bestCol).Add("mean", meanCol)
	formats = append(formats, "%d", "%.1f")

	table.Fprint(w, b.Done(), formats...)
}

// yearColumn returns the report column title for year. Years that
// would replace one of the report's own columns are prefixed.
func yearColumn(year string) string {
	switch year {
	case "name", "best", "mean":
		return "year " + year
	}
	return year
}
