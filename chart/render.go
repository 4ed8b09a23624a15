// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart plots the rank of names over time.
//
// The chart has one vertical rule per configured year. Each
// requested name is drawn as a line through its rank in each year,
// with rank 1 at the top of the chart and Config.MaxRank at the
// bottom. Years in which a name is unranked are plotted at MaxRank
// and labeled "*".
package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ryanlei/babynames/names"
)

// ruleColor is the color of the background grid.
var ruleColor color.Color = color.Black

// A Renderer draws charts with a fixed layout.
type Renderer struct {
	cfg Config
}

// New returns a Renderer for charts laid out by cfg.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns r's layout.
func (r *Renderer) Config() Config {
	return r.cfg
}

// X returns the x coordinate of the rule for year column i.
func (r *Renderer) X(i int) float64 {
	space := float64(r.cfg.Width-2*r.cfg.Margin) / float64(len(r.cfg.Years))
	return float64(r.cfg.Margin) + float64(i)*space
}

// Y returns the y coordinate of rank. Rank 0 would fall on the top
// rule and MaxRank falls on the bottom rule.
func (r *Renderer) Y(rank int) float64 {
	h := float64(r.cfg.Height - 2*r.cfg.Margin)
	return math.Round(float64(rank)*h/float64(r.cfg.MaxRank)) + float64(r.cfg.Margin)
}

// OffChart reports whether rank is plotted on or below the bottom
// rule, and so is labeled without its number.
func (r *Renderer) OffChart(rank int) bool {
	return rank >= r.cfg.MaxRank
}

// DrawGrid clears c and draws the chart background: the top and
// bottom rules and a labeled rule for each year.
func (r *Renderer) DrawGrid(c Canvas) {
	cfg := r.cfg
	w, h, m := float64(cfg.Width), float64(cfg.Height), float64(cfg.Margin)
	lw := float64(cfg.LineWidth)

	c.Clear()
	c.Line(0, m, w, m, lw, ruleColor)
	c.Line(0, h-m, w, h-m, lw, ruleColor)
	for i, year := range cfg.Years {
		x := r.X(i)
		c.Line(x, 0, x, h, lw, ruleColor)
		c.Text(x+float64(cfg.TextDX), h-m, year, ruleColor, SW)
	}
}

// Draw redraws c with the history of each requested name in t.
// Names that are not in t are skipped and don't use up a color.
func (r *Renderer) Draw(c Canvas, t *names.Table, requested []string) {
	r.DrawGrid(c)

	plotted := 0
	for _, name := range requested {
		yr, ok := t.Ranks(name)
		if !ok {
			continue
		}
		col := r.cfg.Palette[plotted%len(r.cfg.Palette)]
		plotted++

		ranks := r.resolve(yr)
		if len(ranks) != len(r.cfg.Years) {
			continue
		}
		for i := 0; i+1 < len(ranks); i++ {
			x0, y0 := r.X(i), r.Y(ranks[i])
			x1, y1 := r.X(i+1), r.Y(ranks[i+1])
			r.label(c, name, x0, y0, ranks[i], col)
			c.Line(x0, y0, x1, y1, float64(r.cfg.LineWidth), col)
			r.label(c, name, x1, y1, ranks[i+1], col)
		}
	}
}

// resolve returns the rank to plot in each year column. Missing
// ranks become MaxRank.
func (r *Renderer) resolve(yr names.YearRanks) []int {
	ranks := make([]int, len(r.cfg.Years))
	for i, year := range r.cfg.Years {
		rank, ok := yr[year]
		if !ok {
			rank = r.cfg.MaxRank
		}
		ranks[i] = rank
	}
	return ranks
}

func (r *Renderer) label(c Canvas, name string, x, y float64, rank int, col color.Color) {
	text := fmt.Sprintf("%s %d", name, rank)
	if r.OffChart(rank) {
		text = name + " *"
	}
	c.Text(x+float64(r.cfg.TextDX), y, text, col, SW)
}
