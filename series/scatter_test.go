// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series_test

import (
	"testing"

	"cogentcore.org/chart"
	"cogentcore.org/chart/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scatterChart(t *testing.T) *chart.Chart {
	return newChart(t, &chart.Options{
		Axes: []chart.AxisOptions{
			{Kind: "numeric", Position: "bottom", Fields: []string{"x"}},
			{Kind: "numeric", Position: "left"},
		},
		Series: []chart.SeriesOptions{
			{Kind: "scatter", Name: "pts", XField: "x",
				YFields: []string{"y"}, Highlight: true, PointRadius: 4},
		},
	},
		chart.Record{"x": 1.0, "y": 10.0},
		chart.Record{"x": 5.0, "y": 2.0},
		chart.Record{"x": 9.0, "y": 7.0},
	)
}

func TestScatterHitAtAnchor(t *testing.T) {
	c := scatterChart(t)
	items := c.Items(c.SeriesNamed("pts"))
	require.Len(t, items, 3)
	// a hit at the exact anchor always returns that item
	for _, it := range items {
		assert.Equal(t, it, c.ItemAt(it.Anchor))
	}
}

func TestScatterMissBeyondTolerance(t *testing.T) {
	c := scatterChart(t)
	items := c.Items(c.SeriesNamed("pts"))
	require.NotEmpty(t, items)
	it := items[0]
	// radius + tolerance + 1 pixels away is a miss
	probe := it.Anchor.Add(math32.Vec2(0, 4+3+1))
	assert.Nil(t, c.ItemAt(probe))
}

func TestScatterGutter(t *testing.T) {
	c := scatterChart(t)
	// the content box is inset by the point radius, so markers at the
	// range extremes stay inside the chart box
	for _, it := range c.Items(c.SeriesNamed("pts")) {
		assert.True(t, c.Box.ContainsBox(it.Shape.BBox()),
			"marker %v clipped by %v", it.Shape.BBox(), c.Box)
		assert.True(t, c.Content.ContainsPoint(it.Anchor))
	}
}
