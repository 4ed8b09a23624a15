// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"golang.org/x/image/colornames"
)

// Config is the fixed layout of a chart.
type Config struct {
	// Width and Height are the size of the canvas in pixels.
	Width, Height int

	// Margin is the gap between the edge of the canvas and the
	// chart area, at the top, bottom, left and right.
	Margin int

	// Years are the year columns of the chart, in order. Each is
	// matched exactly against the years of the input files.
	Years []string

	// Palette is the sequence of line colors. Plotted names take
	// colors from Palette in turn, wrapping at the end.
	Palette []color.Color

	// TextDX is the horizontal offset of labels from the point
	// they label.
	TextDX int

	// LineWidth is the width of rules and plotted lines.
	LineWidth int

	// MaxRank is the rank plotted at the bottom of the chart.
	// Years in which a name is unranked are plotted at MaxRank.
	MaxRank int
}

// DefaultConfig returns the standard 1000x600 chart of the decades
// 1900 through 2010.
func DefaultConfig() Config {
	var years []string
	for y := 1900; y <= 2010; y += 10 {
		years = append(years, strconv.Itoa(y))
	}
	return Config{
		Width:  1000,
		Height: 600,
		Margin: 20,
		Years:  years,
		Palette: []color.Color{
			colornames.Red,
			colornames.Purple,
			colornames.Green,
			colornames.Blue,
		},
		TextDX:    2,
		LineWidth: 2,
		MaxRank:   1000,
	}
}

// Validate checks that c describes a drawable chart.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("bad canvas size %dx%d", c.Width, c.Height)
	case c.Margin < 0 || 2*c.Margin >= c.Width || 2*c.Margin >= c.Height:
		return fmt.Errorf("margin %d leaves no room in %dx%d canvas", c.Margin, c.Width, c.Height)
	case len(c.Palette) == 0:
		return errors.New("empty palette")
	case c.MaxRank <= 0:
		return fmt.Errorf("max rank must be positive, got %d", c.MaxRank)
	case c.LineWidth <= 0:
		return fmt.Errorf("line width must be positive, got %d", c.LineWidth)
	}
	seen := make(map[string]bool, len(c.Years))
	for _, year := range c.Years {
		if year == "" {
			return errors.New("empty year column")
		}
		if seen[year] {
			return fmt.Errorf("duplicate year column %q", year)
		}
		seen[year] = true
	}
	return nil
}
