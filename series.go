// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"cogentcore.org/chart/math32"
)

// SeriesKinds name the registered series kinds.
type SeriesKinds string

const (
	// Bar draws one rectangle per record, grouped or stacked across
	// value fields, along the category axis.
	Bar SeriesKinds = "bar"

	// Line connects record values with an open polyline.
	Line SeriesKinds = "line"

	// Area fills between the line and the zero baseline, stacking
	// multiple value fields.
	Area SeriesKinds = "area"

	// Scatter draws one marker per record at (x, y).
	Scatter SeriesKinds = "scatter"

	// Pie draws one wedge per record, angles proportional to value.
	Pie SeriesKinds = "pie"

	// GaugeSeries draws a value arc over a 270 degree dial.
	GaugeSeries SeriesKinds = "gauge"

	// Radar draws a closed polygon over evenly spaced spokes.
	Radar SeriesKinds = "radar"
)

// Series is one renderable data series. Implementations are
// registered by kind via Register and constructed by the chart from
// SeriesOptions. Layout produces the hit-testable items; the chart
// owns when layout runs and caches the result.
type Series interface {
	// Name returns the series display name, used in the legend.
	Name() string

	// Kind returns the registered series kind.
	Kind() SeriesKinds

	// Config returns the series options for inspection and
	// adjustment; the chart must be told to relayout after changes.
	Config() *SeriesOptions

	// Fields returns the value fields the series draws, in order.
	// The legend shows one entry per field when there are several.
	Fields() []string

	// Stacks reports whether the series accumulates its value
	// fields, switching the bound value axis to stacked ranges.
	Stacks() bool

	// Layout computes the series items against the chart's current
	// axes and content box. Fields named in hidden are skipped.
	Layout(c *Chart, hidden map[string]bool) []*Item

	// Draw draws the laid-out items into the given group.
	Draw(c *Chart, sf Surface, group string, items []*Item)
}

// HitTester is implemented by series that refine the default
// item-shape hit test, e.g. lines that test distance to segments.
type HitTester interface {
	// HitTest returns the item at the given point, or nil. The
	// tolerance widens each item's shape.
	HitTest(c *Chart, items []*Item, pt math32.Vector2, tolerance float32) *Item
}

// Labeler is implemented by series whose items carry value labels;
// the chart's label placer uses the anchor and outward normal to
// position each label.
type Labeler interface {
	// LabelAnchor returns the label anchor point and the outward
	// unit direction for the given item.
	LabelAnchor(it *Item) (pos, dir math32.Vector2)
}

// Gutterer is implemented by series whose markers extend beyond
// their anchor, needing extra content-box clearance so edge markers
// are not clipped. The chart insets the content box by the maximum
// gutter over all series.
type Gutterer interface {
	// Gutter returns the required clearance in pixels.
	Gutter() float32
}

// SeriesMaker constructs a series from options.
type SeriesMaker func(op SeriesOptions) (Series, error)

var seriesMakers = map[SeriesKinds]SeriesMaker{}

// Register registers a series maker under the given kind,
// replacing any existing registration.
func Register(kind SeriesKinds, mk SeriesMaker) {
	seriesMakers[kind] = mk
}

// NewSeries constructs a series of the kind named in the options.
func NewSeries(op SeriesOptions) (Series, error) {
	mk, ok := seriesMakers[SeriesKinds(op.Kind)]
	if !ok {
		return nil, fmt.Errorf("chart: no series kind %q registered", op.Kind)
	}
	return mk(op)
}
