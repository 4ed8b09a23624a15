// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ryanlei/babynames/chart"
	"github.com/ryanlei/babynames/internal/canvas"
	"github.com/ryanlei/babynames/names"
)

// plot charts the requested names to the image file at path.
func (a *app) plot(path string, r *chart.Renderer, t *names.Table, requested []string) error {
	cfg := r.Config()
	s, err := canvas.ForPath(path, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	for _, name := range requested {
		if !t.Has(name) {
			a.log.Warnf("no data for %s", name)
		}
	}
	r.Draw(s, t, requested)
	if err := canvas.WriteFile(path, s); err != nil {
		return err
	}
	a.log.Debugf("wrote %s", path)
	return nil
}
