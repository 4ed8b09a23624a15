// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/ryanlei/babynames/chart"
	"github.com/ryanlei/babynames/internal/canvas"
	"github.com/ryanlei/babynames/names"
	"github.com/sirupsen/logrus"
)

// A drawFunc redraws c with the history of the requested names in t.
type drawFunc func(c chart.Canvas, t *names.Table, requested []string)

// A searchFunc returns the names in t that match fragment.
type searchFunc func(t *names.Table, fragment string) []string

const shellHelp = `commands:
  search <fragment>   list names containing fragment
  plot <name>...      chart exactly these names
  add <name>...       add names to the chart
  clear               remove all names from the chart
  names               list the charted names
  help                print this message
  quit                exit
Quote names that contain spaces, e.g. plot "Mary Ann".
`

// shell is an interactive session that keeps a chart file up to
// date with a list of requested names.
type shell struct {
	in  io.Reader
	out io.Writer
	log *logrus.Logger

	table   *names.Table
	surface canvas.Surface
	path    string

	draw   drawFunc
	search searchFunc

	requested []string
}

func (a *app) newShell(path string, r *chart.Renderer, t *names.Table) (*shell, error) {
	cfg := r.Config()
	s, err := canvas.ForPath(path, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &shell{
		in:      a.stdin,
		out:     a.stdout,
		log:     a.log,
		table:   t,
		surface: s,
		path:    path,
		draw:    r.Draw,
		search:  names.Search,
	}, nil
}

// run reads and executes commands until "quit" or end of input.
func (sh *shell) run() error {
	// Start with an empty chart.
	if err := sh.redraw(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(sh.in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			break
		}
		args, err := shellquote.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(sh.out, "%s\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		quit, err := sh.exec(args[0], args[1:])
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	fmt.Fprintln(sh.out)
	return scanner.Err()
}

// exec runs one command. It returns an error only if the chart
// could not be written.
func (sh *shell) exec(cmd string, args []string) (quit bool, err error) {
	switch cmd {
	case "search":
		for _, name := range sh.search(sh.table, strings.Join(args, " ")) {
			fmt.Fprintln(sh.out, name)
		}

	case "plot":
		sh.requested = append([]string(nil), args...)
		return false, sh.redraw()

	case "add":
		sh.requested = append(sh.requested, args...)
		return false, sh.redraw()

	case "clear":
		sh.requested = nil
		return false, sh.redraw()

	case "names":
		for _, name := range sh.requested {
			fmt.Fprintln(sh.out, name)
		}

	case "help", "?":
		fmt.Fprint(sh.out, shellHelp)

	case "quit", "exit":
		return true, nil

	default:
		fmt.Fprintf(sh.out, "unknown command %q; try help\n", cmd)
	}
	return false, nil
}

// redraw charts the requested names and saves the chart.
func (sh *shell) redraw() error {
	for _, name := range sh.requested {
		if !sh.table.Has(name) {
			fmt.Fprintf(sh.out, "no data for %s\n", name)
		}
	}
	sh.draw(sh.surface, sh.table, sh.requested)
	if err := canvas.WriteFile(sh.path, sh.surface); err != nil {
		return err
	}
	sh.log.Debugf("wrote %s", sh.path)
	return nil
}
