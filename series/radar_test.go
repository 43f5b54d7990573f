// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series_test

import (
	"testing"

	"cogentcore.org/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func radarChart(t *testing.T) *chart.Chart {
	return newChart(t, &chart.Options{
		Axes: []chart.AxisOptions{
			{Kind: "radial", Position: "radial", Fields: []string{"a", "b"},
				Minimum: float64p(0), Maximum: float64p(10)},
		},
		Series: []chart.SeriesOptions{
			{Kind: "radar", Name: "r", XField: "name",
				YFields: []string{"a", "b"}, Highlight: true},
		},
	},
		chart.Record{"name": "speed", "a": 10.0, "b": 5.0},
		chart.Record{"name": "power", "a": 5.0, "b": 5.0},
		chart.Record{"name": "range", "a": 2.0, "b": 5.0},
		chart.Record{"name": "cost", "a": 8.0, "b": 5.0},
	)
}

func TestRadarLayout(t *testing.T) {
	c := radarChart(t)
	items := c.Items(c.SeriesNamed("r"))
	require.Len(t, items, 8) // 4 spokes x 2 fields

	center := c.Content.Center()
	// the full-range vertex sits on the first spoke, straight up
	v0 := items[0]
	assert.InDelta(t, float64(center.X), float64(v0.Anchor.X), 1e-3)
	assert.Less(t, v0.Anchor.Y, center.Y)

	// equal values are equidistant from the center
	d1 := items[4].Anchor.DistanceTo(center)
	for _, it := range items[5:] {
		assert.InDelta(t, float64(d1), float64(it.Anchor.DistanceTo(center)), 1e-3)
	}
	// larger values reach farther out
	assert.Greater(t, v0.Anchor.DistanceTo(center), items[2].Anchor.DistanceTo(center))
}

func TestRadarHit(t *testing.T) {
	c := radarChart(t)
	items := c.Items(c.SeriesNamed("r"))
	require.NotEmpty(t, items)
	assert.Equal(t, items[0], c.ItemAt(items[0].Anchor))
}
