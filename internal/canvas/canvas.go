// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas implements chart.Canvas for SVG and PNG output.
package canvas

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryanlei/babynames/chart"
)

// A Surface is a Canvas that can be saved.
type Surface interface {
	chart.Canvas

	// Encode writes the current contents of the surface to w.
	Encode(w io.Writer) error
}

// ForPath returns an empty w x h Surface for the image format
// implied by path's extension.
func ForPath(path string, w, h int) (Surface, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return NewSVG(w, h), nil
	case ".png":
		return NewRaster(w, h), nil
	default:
		return nil, fmt.Errorf("%s: unknown image format %q (want .svg or .png)", path, ext)
	}
}

// WriteFile encodes s to the file at path, replacing it.
func WriteFile(path string, s Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// rgb8 returns the 8-bit red, green and blue components of c.
func rgb8(c color.Color) (r, g, b uint8) {
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}
