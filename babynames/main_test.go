// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	file1900 = `1900
1,John,Mary
2,William,Anna
1910
1,John,Helen
5,James,Mary
`
	file1910 = `1910
3,Robert,Mary
bad line
`
)

// testFiles writes the test ranking files and returns their paths.
func testFiles(t *testing.T) (dir string, paths []string) {
	dir = t.TempDir()
	for name, data := range map[string]string{"a.txt": file1900, "b.txt": file1910} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o666))
		paths = append(paths, path)
	}
	// Keep a.txt first so first-seen order is stable.
	if filepath.Base(paths[0]) != "a.txt" {
		paths[0], paths[1] = paths[1], paths[0]
	}
	return dir, paths
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	log := logrus.New()
	log.SetOutput(io.Discard)
	a := &app{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		log:    log,
	}
	err := a.command().Run(context.Background(), append([]string{"babynames"}, args...))
	return stdout.String(), err
}

func TestPrint(t *testing.T) {
	_, paths := testFiles(t)
	out, err := runCommand(t, "", paths...)
	require.NoError(t, err)
	assert.Equal(t, `Anna [1900:2]
Helen [1910:1]
James [1910:5]
John [1900:1 1910:1]
Mary [1900:1 1910:3]
Robert [1910:3]
William [1900:2]
`, out)
}

func TestPrintNoFiles(t *testing.T) {
	out, err := runCommand(t, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearch(t *testing.T) {
	_, paths := testFiles(t)
	out, err := runCommand(t, "", append([]string{"-search", "A"}, paths...)...)
	require.NoError(t, err)
	assert.Equal(t, "Mary\nWilliam\nAnna\nJames\n", out)

	out, err = runCommand(t, "", append([]string{"-search", "zzz"}, paths...)...)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearchEmpty(t *testing.T) {
	_, paths := testFiles(t)
	all, err := runCommand(t, "", paths...)
	require.NoError(t, err)

	out, err := runCommand(t, "", append([]string{"-search", ""}, paths...)...)
	require.NoError(t, err)
	assert.Equal(t, all, out)
}

func TestMissingFile(t *testing.T) {
	dir, paths := testFiles(t)
	out, err := runCommand(t, "", paths[0], filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, out)
}

func TestConflictingModes(t *testing.T) {
	_, paths := testFiles(t)
	_, err := runCommand(t, "", append([]string{"-search", "a", "-table"}, paths...)...)
	var uerr *usageError
	assert.True(t, errors.As(err, &uerr), "got %v", err)
}

func TestTable(t *testing.T) {
	_, paths := testFiles(t)
	out, err := runCommand(t, "", append([]string{"-table", "-names", "Mary,Nobody,John"}, paths...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "output:\n%s", out)

	dashes := strings.Fields(strings.Repeat("- ", 10))
	header := []string{"name", "1900", "1910", "1920", "1930", "1940", "1950", "1960", "1970", "1980", "1990", "2000", "2010", "best", "mean"}
	assert.Equal(t, header, strings.Fields(lines[0]))
	assert.Equal(t, append(append([]string{"Mary", "1", "3"}, dashes...), "1", "2.0"), strings.Fields(lines[1]))
	assert.Equal(t, append(append([]string{"John", "1", "1"}, dashes...), "1", "1.0"), strings.Fields(lines[2]))
}

func TestTableYearNames(t *testing.T) {
	dir, paths := testFiles(t)
	conf := filepath.Join(dir, "babynames.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("chart:\n  years: [1900, name, mean]\n"), 0o666))

	out, err := runCommand(t, "", append([]string{"-config", conf, "-table", "-names", "Mary"}, paths...)...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, "output:\n%s", out)
	assert.Equal(t, []string{"name", "1900", "year", "name", "year", "mean", "best", "mean"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Mary", "1", "-", "-", "1", "2.0"}, strings.Fields(lines[1]))

	require.NoError(t, os.WriteFile(conf, []byte("chart:\n  years: [1900, 1910, 1900]\n"), 0o666))
	_, err = runCommand(t, "", append([]string{"-config", conf, "-table"}, paths...)...)
	assert.ErrorContains(t, err, "duplicate year column")
}

func TestPlot(t *testing.T) {
	dir, paths := testFiles(t)

	svgPath := filepath.Join(dir, "chart.svg")
	_, err := runCommand(t, "", append([]string{"-plot", "Mary,Nobody", "-o", svgPath}, paths...)...)
	require.NoError(t, err)
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mary 1")
	assert.Contains(t, string(data), "Mary 3")
	assert.Contains(t, string(data), "Mary *")
	assert.NotContains(t, string(data), "Nobody")

	pngPath := filepath.Join(dir, "chart.png")
	_, err = runCommand(t, "", append([]string{"-plot", "Mary", "-o", pngPath}, paths...)...)
	require.NoError(t, err)
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 600, cfg.Height)

	_, err = runCommand(t, "", append([]string{"-plot", "Mary", "-o", filepath.Join(dir, "chart.gif")}, paths...)...)
	assert.Error(t, err)
}

func TestPlotConfiguredFiles(t *testing.T) {
	dir, paths := testFiles(t)
	t.Setenv("BABYNAMES_FILES", paths[1])

	out := filepath.Join(dir, "chart.svg")
	_, err := runCommand(t, "", "-plot", "Robert", "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Robert 3")
}

func TestShell(t *testing.T) {
	dir, paths := testFiles(t)
	out := filepath.Join(dir, "chart.svg")
	input := `search JAM
plot Mary "John"
add Nobody
names
plot "Mary
bogus
help
quit
search never-reached
`
	stdout, err := runCommand(t, input, append([]string{"-shell", "-o", out}, paths...)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "> James\n")
	assert.Contains(t, stdout, "no data for Nobody\n")
	assert.Contains(t, stdout, "Mary\nJohn\nNobody\n")
	assert.Contains(t, stdout, `unknown command "bogus"`)
	assert.Contains(t, stdout, "commands:")
	assert.NotContains(t, stdout, "never-reached")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "John 1")
	assert.Contains(t, string(data), "Mary 3")
}

func TestShellEOF(t *testing.T) {
	dir, paths := testFiles(t)
	out := filepath.Join(dir, "chart.png")
	_, err := runCommand(t, "plot William\n", append([]string{"-shell", "-o", out}, paths...)...)
	require.NoError(t, err)
	_, err = os.Stat(out)
	assert.NoError(t, err)
}
