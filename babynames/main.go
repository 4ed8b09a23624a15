// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command babynames reports and plots the popularity of baby names
// over time.
//
// Usage:
//
//	babynames [flags] file...
//
// Each file lists, for one or more years, a bare year line followed
// by lines of the form "rank,boy's name,girl's name". babynames merges
// the files, keeping the best rank of each name in each year.
//
// With no flags, babynames prints every name in alphabetical order,
// followed by its ranks by year:
//
//	Mary [1900:1 1910:5]
//
// With -search fragment, it instead prints the names that contain
// fragment, ignoring case.
//
// With -table, it prints a table of the ranks of each name (or of the
// names given by -names) in each charted year, with the name's best
// and mean rank.
//
// With -plot name,..., it draws a chart of the rank of each name over
// time to the file given by -o, in SVG or PNG format depending on its
// extension.
//
// With -shell, it reads commands from standard input to search for
// names and to choose the names to chart. The chart in -o is redrawn
// after every change. Type "help" for a list of commands.
//
// The chart layout and the default list of files for -plot and -shell
// are read from the YAML file given by -config, and may be overridden
// by BABYNAMES_* environment variables (for example,
// BABYNAMES_CHART_MAX_RANK).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ryanlei/babynames/chart"
	"github.com/ryanlei/babynames/internal/config"
	"github.com/ryanlei/babynames/names"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// app carries the streams and logger of one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	log            *logrus.Logger
}

// usageError is an error in the command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, log: log}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		log.Error(err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "babynames",
		Usage:     "report and plot baby name popularity over time",
		ArgsUsage: "file...",
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Usage: "print the names containing `fragment`"},
			&cli.BoolFlag{Name: "table", Usage: "print a table of ranks by year"},
			&cli.StringSliceFlag{Name: "names", Usage: "restrict -table to `names`"},
			&cli.StringSliceFlag{Name: "plot", Usage: "chart `names` to the -o file"},
			&cli.BoolFlag{Name: "shell", Usage: "chart names interactively"},
			&cli.StringFlag{Name: "o", Value: "babynames.svg", Usage: "write the chart to `file` (.svg or .png)"},
			&cli.StringFlag{Name: "config", Usage: "read settings from YAML `file`"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debugging output"},
		},
		Action: a.run,
	}
}

func (a *app) run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		a.log.SetLevel(logrus.DebugLevel)
	}

	modes := 0
	for _, flag := range []string{"search", "table", "plot", "shell"} {
		if cmd.IsSet(flag) {
			modes++
		}
	}
	if modes > 1 {
		return &usageError{"at most one of -search, -table, -plot, and -shell may be given"}
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	chartCfg, err := cfg.Chart.Chart()
	if err != nil {
		return err
	}

	files := cmd.Args().Slice()
	graphical := cmd.IsSet("plot") || cmd.Bool("shell")
	if len(files) == 0 && graphical {
		files = cfg.Files
		if len(files) == 0 {
			return &usageError{"no input files"}
		}
	}

	tab, err := names.ReadFiles(files)
	if err != nil {
		return err
	}
	a.log.Debugf("read %d names from %d files", tab.Len(), len(files))

	switch {
	case cmd.String("search") != "":
		for _, name := range names.Search(tab, cmd.String("search")) {
			fmt.Fprintln(a.stdout, name)
		}
		return nil

	case cmd.Bool("table"):
		writeReport(a.stdout, tab, chartCfg.Years, cmd.StringSlice("names"))
		return nil

	case cmd.IsSet("plot"):
		return a.plot(cmd.String("o"), chart.New(chartCfg), tab, cmd.StringSlice("plot"))

	case cmd.Bool("shell"):
		sh, err := a.newShell(cmd.String("o"), chart.New(chartCfg), tab)
		if err != nil {
			return err
		}
		return sh.run()
	}

	printTable(a.stdout, tab)
	return nil
}

// printTable prints each name in t in lexical order, followed by its
// ranks in order of year.
func printTable(w io.Writer, t *names.Table) {
	for _, name := range t.Sorted() {
		yr, _ := t.Ranks(name)
		pairs := make([]string, 0, len(yr))
		for _, year := range yr.Years() {
			pairs = append(pairs, fmt.Sprintf("%s:%d", year, yr[year]))
		}
		fmt.Fprintf(w, "%s [%s]\n", name, strings.Join(pairs, " "))
	}
}
