// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/ryanlei/babynames/chart"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is a Surface backed by an RGBA image. It encodes as PNG.
type Raster struct {
	img  *image.RGBA
	face font.Face
	z    *vector.Rasterizer
}

// NewRaster returns a blank (white) w x h raster surface.
func NewRaster(w, h int) *Raster {
	r := &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
		z:    vector.NewRasterizer(w, h),
	}
	r.Clear()
	return r
}

// Image returns the image r draws on.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.White, image.Point{}, draw.Src)
}

// Line fills the rectangle of the given width centered on the
// segment from (x0, y0) to (x1, y1).
func (r *Raster) Line(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// Half-width normal to the segment.
	nx, ny := -dy/l*width/2, dx/l*width/2

	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.MoveTo(float32(x0+nx), float32(y0+ny))
	r.z.LineTo(float32(x1+nx), float32(y1+ny))
	r.z.LineTo(float32(x1-nx), float32(y1-ny))
	r.z.LineTo(float32(x0-nx), float32(y0-ny))
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

func (r *Raster) Text(x, y float64, s string, c color.Color, a chart.Anchor) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	if !a.Left() {
		d.Dot.X -= d.MeasureString(s)
	}
	m := r.face.Metrics()
	if a.Top() {
		d.Dot.Y += m.Ascent
	} else {
		d.Dot.Y -= m.Descent
	}
	d.DrawString(s)
}

// Encode writes r as a PNG image.
func (r *Raster) Encode(w io.Writer) error {
	return png.Encode(w, r.img)
}
