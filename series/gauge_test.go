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

func gaugeChart(t *testing.T, v float64) *chart.Chart {
	return newChart(t, &chart.Options{
		Axes: []chart.AxisOptions{
			{Kind: "gauge", Position: "gauge", Fields: []string{"v"},
				Minimum: float64p(0), Maximum: float64p(100)},
		},
		Series: []chart.SeriesOptions{
			{Kind: "gauge", Name: "g", YFields: []string{"v"},
				Axes: []string{"gauge"}, Highlight: true},
		},
	}, chart.Record{"v": v})
}

func float64p(v float64) *float64 { return &v }

func TestGaugeArc(t *testing.T) {
	c := gaugeChart(t, 50)
	items := c.Items(c.SeriesNamed("g"))
	require.Len(t, items, 1)
	sh := items[0].Shape.(*chart.WedgeShape)

	// half the range sweeps half of the 270 degree dial
	assert.InDelta(t, 3*math32.Pi/4, sh.Start, 1e-5)
	assert.InDelta(t, 3*math32.Pi/4, sh.End-sh.Start, 1e-5)
	assert.Greater(t, sh.Inner, float32(0)) // dial ring, not a disc
}

func TestGaugeClampsOverRange(t *testing.T) {
	c := gaugeChart(t, 250)
	items := c.Items(c.SeriesNamed("g"))
	require.Len(t, items, 1)
	sh := items[0].Shape.(*chart.WedgeShape)
	assert.InDelta(t, 3*math32.Pi/2, sh.End-sh.Start, 1e-5)
}

func TestGaugeHit(t *testing.T) {
	c := gaugeChart(t, 50)
	items := c.Items(c.SeriesNamed("g"))
	require.Len(t, items, 1)
	sh := items[0].Shape.(*chart.WedgeShape)
	assert.Equal(t, items[0], c.ItemAt(sh.Midpoint()))
	assert.Nil(t, c.ItemAt(sh.Center)) // inside the ring hole
}
