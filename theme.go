// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Markers are the marker shapes drawn for scatter points and
// legend swatches.
type Markers int32

const (
	// MarkerCircle is a circle marker.
	MarkerCircle Markers = iota

	// MarkerSquare is a square marker.
	MarkerSquare

	// MarkerDiamond is a diamond marker.
	MarkerDiamond

	// MarkerTriangle is an upward triangle marker.
	MarkerTriangle
)

// Theme is a resolved set of visual defaults passed explicitly into
// each layout call. There is no shared mutable theme state: a chart
// holds one Theme value and styles are resolved from it per pass.
type Theme struct {
	// Colors is the series color cycle.
	Colors []color.RGBA

	// Markers is the marker shape cycle for point series.
	Markers []Markers

	// Background is the chart background fill; zero alpha disables it.
	Background color.RGBA

	// Foreground is the color for axis lines, ticks and text.
	Foreground color.RGBA

	// GridColor is the color for grid lines and bands.
	GridColor color.RGBA

	// TextSize is the default font size in pixels.
	TextSize float32

	// HighlightWiden is how many pixels a highlighted item's stroke
	// widens at full emphasis.
	HighlightWiden float32
}

// DefaultTheme returns the default theme.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: []color.RGBA{
			colornames.Steelblue,
			colornames.Darkorange,
			colornames.Mediumseagreen,
			colornames.Firebrick,
			colornames.Mediumorchid,
			colornames.Goldenrod,
			colornames.Lightseagreen,
			colornames.Slategray,
		},
		Markers:        []Markers{MarkerCircle, MarkerSquare, MarkerDiamond, MarkerTriangle},
		Background:     colornames.White,
		Foreground:     colornames.Black,
		GridColor:      color.RGBA{R: 0, G: 0, B: 0, A: 40},
		TextSize:       12,
		HighlightWiden: 2,
	}
}

// Color returns the i-th series color, cycling.
func (th *Theme) Color(i int) color.RGBA {
	if len(th.Colors) == 0 {
		return color.RGBA{A: 255}
	}
	return th.Colors[i%len(th.Colors)]
}

// Marker returns the i-th marker shape, cycling.
func (th *Theme) Marker(i int) Markers {
	if len(th.Markers) == 0 {
		return MarkerCircle
	}
	return th.Markers[i%len(th.Markers)]
}

// SeriesStyle returns the default shape style for the i-th series.
func (th *Theme) SeriesStyle(i int) ShapeStyle {
	c := th.Color(i)
	return ShapeStyle{Fill: c, Stroke: c, StrokeWidth: 1}
}

// TextStyle returns the default text style.
func (th *Theme) TextStyle() TextStyle {
	return TextStyle{Size: th.TextSize, Color: th.Foreground}
}
