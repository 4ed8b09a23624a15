// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryanlei/babynames/chart"
	"github.com/ryanlei/babynames/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{0xff, 0, 0, 0xff}

func TestForPath(t *testing.T) {
	s, err := ForPath("out/chart.svg", 10, 10)
	require.NoError(t, err)
	assert.IsType(t, &SVG{}, s)

	s, err = ForPath("CHART.PNG", 10, 10)
	require.NoError(t, err)
	assert.IsType(t, &Raster{}, s)

	_, err = ForPath("chart.gif", 10, 10)
	assert.Error(t, err)
}

func TestSVG(t *testing.T) {
	s := NewSVG(100, 50)
	s.Line(0, 0, 10, 10, 2, color.Black)
	s.Clear()
	s.Line(1, 2, 3.4, 4.6, 2, red)
	s.Text(5, 6, "Ann <1>", red, chart.SW)
	s.Text(5, 6, "1900", color.Black, chart.NE)

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	out := buf.String()

	assert.Contains(t, out, `width="100" height="50"`)
	assert.Equal(t, 1, strings.Count(out, "<line"), "lines in\n%s", out)
	assert.Contains(t, out, `x1="1" y1="2" x2="3" y2="5"`)
	assert.Contains(t, out, "stroke:rgb(255,0,0);stroke-width:2")
	assert.Contains(t, out, "Ann &lt;1&gt;")
	assert.Contains(t, out, "text-anchor:start;dominant-baseline:text-after-edge")
	assert.Contains(t, out, "text-anchor:end;dominant-baseline:text-before-edge")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSVGWriteError(t *testing.T) {
	s := NewSVG(10, 10)
	assert.EqualError(t, s.Encode(failWriter{}), "disk full")
}

func TestRasterLine(t *testing.T) {
	r := NewRaster(40, 20)
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	assert.Equal(t, white, r.Image().RGBAAt(10, 10))

	r.Line(0, 10, 40, 10, 4, red)
	assert.Equal(t, red, r.Image().RGBAAt(20, 10))
	assert.Equal(t, white, r.Image().RGBAAt(20, 2))

	r.Clear()
	assert.Equal(t, white, r.Image().RGBAAt(20, 10))
}

func TestRasterText(t *testing.T) {
	for _, a := range []chart.Anchor{chart.NW, chart.NE, chart.SW, chart.SE} {
		r := NewRaster(100, 100)
		r.Text(50, 50, "Mary 1", red, a)

		// Find the bounding box of the drawn text.
		box := image.Rectangle{}
		img := r.Image()
		for y := 0; y < 100; y++ {
			for x := 0; x < 100; x++ {
				if img.RGBAAt(x, y) != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
					box = box.Union(image.Rect(x, y, x+1, y+1))
				}
			}
		}
		require.False(t, box.Empty(), "nothing drawn for %v", a)
		if a.Left() {
			assert.GreaterOrEqual(t, box.Min.X, 50, "%v", a)
		} else {
			assert.LessOrEqual(t, box.Max.X, 50, "%v", a)
		}
		if a.Top() {
			assert.GreaterOrEqual(t, box.Min.Y, 50, "%v", a)
		} else {
			assert.LessOrEqual(t, box.Max.Y, 50, "%v", a)
		}
	}
}

func TestWriteChart(t *testing.T) {
	tab := names.New()
	tab.Add("Mary", "1900", 1)
	tab.Add("Mary", "1910", 5)
	cfg := chart.DefaultConfig()
	rend := chart.New(cfg)

	dir := t.TempDir()
	for _, name := range []string{"chart.svg", "chart.png"} {
		path := filepath.Join(dir, name)
		s, err := ForPath(path, cfg.Width, cfg.Height)
		require.NoError(t, err)
		rend.Draw(s, tab, []string{"Mary"})
		require.NoError(t, WriteFile(path, s))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		if filepath.Ext(name) == ".png" {
			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, cfg.Width, cfg.Height), img.Bounds())
		} else {
			assert.Contains(t, string(data), "Mary 5")
		}
	}
}
