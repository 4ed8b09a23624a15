// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package names

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a ranking file from r and adds its records to t.
//
// Lines that are neither a year header nor a rank record are
// ignored, as are records that appear before the first year header
// or whose rank is not an integer.
func Parse(r io.Reader, t *Table) error {
	year := ""
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		f := strings.Split(scanner.Text(), ",")
		for i := range f {
			f[i] = strings.TrimSpace(f[i])
		}

		switch {
		case len(f) == 1:
			// Year header. Blank lines don't reset the year.
			if f[0] != "" {
				year = f[0]
			}

		case len(f) >= 3:
			if year == "" {
				continue
			}
			rank, err := strconv.Atoi(f[0])
			if err != nil {
				continue
			}
			for _, name := range f[1:3] {
				if name != "" {
					t.Add(name, year, rank)
				}
			}
		}
	}
	return scanner.Err()
}

// ReadFile parses the ranking file at path into t.
func ReadFile(path string, t *Table) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Parse(f, t); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// ReadFiles folds the ranking files at paths, in order, into a new
// Table. If any file cannot be read, ReadFiles returns a nil Table
// and the error.
func ReadFiles(paths []string) (*Table, error) {
	t := New()
	for _, path := range paths {
		if err := ReadFile(path, t); err != nil {
			return nil, err
		}
	}
	return t, nil
}
