// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads babynames settings from defaults, an
// optional YAML file, and BABYNAMES_* environment variables.
package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ryanlei/babynames/chart"
	"github.com/spf13/viper"
	"golang.org/x/image/colornames"
)

// EnvPrefix is the prefix of environment variables that override
// settings. For example, BABYNAMES_CHART_MAX_RANK sets
// chart.max_rank.
const EnvPrefix = "BABYNAMES"

// Config is the complete babynames configuration.
type Config struct {
	// Files are the ranking files read when none are given on the
	// command line.
	Files []string    `mapstructure:"files"`
	Chart ChartConfig `mapstructure:"chart"`
}

// ChartConfig is the serialized form of chart.Config.
type ChartConfig struct {
	Width     int      `mapstructure:"width"`
	Height    int      `mapstructure:"height"`
	Margin    int      `mapstructure:"margin"`
	Years     []string `mapstructure:"years"`
	Palette   []string `mapstructure:"palette"`
	TextDX    int      `mapstructure:"text_dx"`
	LineWidth int      `mapstructure:"line_width"`
	MaxRank   int      `mapstructure:"max_rank"`
}

// DefaultFiles are the decade files of the standard data set.
var DefaultFiles = func() []string {
	var files []string
	for _, year := range chart.DefaultConfig().Years {
		files = append(files, "data/full/baby-"+year+".txt")
	}
	return files
}()

var defaultPalette = []string{"red", "purple", "green", "blue"}

// Load reads the configuration. If path is empty, only defaults
// and the environment are used.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := chart.DefaultConfig()
	v.SetDefault("files", DefaultFiles)
	v.SetDefault("chart.width", d.Width)
	v.SetDefault("chart.height", d.Height)
	v.SetDefault("chart.margin", d.Margin)
	v.SetDefault("chart.years", d.Years)
	v.SetDefault("chart.palette", defaultPalette)
	v.SetDefault("chart.text_dx", d.TextDX)
	v.SetDefault("chart.line_width", d.LineWidth)
	v.SetDefault("chart.max_rank", d.MaxRank)
}

// Chart converts c to a validated chart.Config.
func (c ChartConfig) Chart() (chart.Config, error) {
	cfg := chart.Config{
		Width:     c.Width,
		Height:    c.Height,
		Margin:    c.Margin,
		Years:     c.Years,
		TextDX:    c.TextDX,
		LineWidth: c.LineWidth,
		MaxRank:   c.MaxRank,
	}
	for _, name := range c.Palette {
		col, err := ParseColor(name)
		if err != nil {
			return chart.Config{}, err
		}
		cfg.Palette = append(cfg.Palette, col)
	}
	if err := cfg.Validate(); err != nil {
		return chart.Config{}, fmt.Errorf("bad chart config: %w", err)
	}
	return cfg, nil
}

// ParseColor parses an SVG color keyword such as "purple" or a hex
// color of the form "#rrggbb".
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	var r, g, b uint8
	if len(s) == 7 {
		if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 {
			return color.RGBA{r, g, b, 0xff}, nil
		}
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
