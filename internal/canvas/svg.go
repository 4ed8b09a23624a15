// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/ajstarks/svgo"
	"github.com/ryanlei/babynames/chart"
)

// fontSize is the label font size in pixels.
const fontSize = 11

// SVG is a Surface that renders to an SVG document.
//
// Drawing operations are buffered until Encode so that Clear can
// discard them.
type SVG struct {
	width, height int
	ops           []func(*svg.SVG)
}

// NewSVG returns an empty w x h SVG surface.
func NewSVG(w, h int) *SVG {
	return &SVG{width: w, height: h}
}

func (s *SVG) Clear() {
	s.ops = nil
}

func (s *SVG) Line(x0, y0, x1, y1, width float64, c color.Color) {
	style := fmt.Sprintf("stroke:%s;stroke-width:%g", cssColor(c), width)
	s.ops = append(s.ops, func(doc *svg.SVG) {
		doc.Line(px(x0), px(y0), px(x1), px(y1), style)
	})
}

func (s *SVG) Text(x, y float64, text string, c color.Color, a chart.Anchor) {
	anchor, baseline := "start", "text-after-edge"
	if !a.Left() {
		anchor = "end"
	}
	if a.Top() {
		baseline = "text-before-edge"
	}
	style := fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:%dpx;text-anchor:%s;dominant-baseline:%s",
		cssColor(c), fontSize, anchor, baseline)
	s.ops = append(s.ops, func(doc *svg.SVG) {
		doc.Text(px(x), px(y), text, style)
	})
}

// Encode writes s as a standalone SVG document.
func (s *SVG) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Start(s.width, s.height)
	doc.Rect(0, 0, s.width, s.height, "fill:white")
	for _, op := range s.ops {
		op(doc)
	}
	doc.End()
	return ew.err
}

func px(v float64) int {
	return int(math.Round(v))
}

func cssColor(c color.Color) string {
	r, g, b := rgb8(c)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// errWriter records the first error from w and drops all writes
// after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
