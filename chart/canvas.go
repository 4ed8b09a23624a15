// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "image/color"

// An Anchor says which corner of a text label sits at the label's
// anchor point.
type Anchor int

const (
	NW Anchor = iota // top left
	NE               // top right
	SW               // bottom left
	SE               // bottom right
)

func (a Anchor) String() string {
	switch a {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	}
	return "Anchor(?)"
}

// Top reports whether a anchors the top edge of a label.
func (a Anchor) Top() bool { return a == NW || a == NE }

// Left reports whether a anchors the left edge of a label.
func (a Anchor) Left() bool { return a == NW || a == SW }

// A Canvas is a surface a Renderer draws on. Coordinates are in
// pixels with the origin at the top left.
type Canvas interface {
	// Clear erases everything drawn on the canvas.
	Clear()

	// Line draws a line segment from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1, width float64, c color.Color)

	// Text draws s so that the corner given by a is at (x, y).
	Text(x, y float64, s string, c color.Color, a Anchor)
}
