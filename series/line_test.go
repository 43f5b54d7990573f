// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series_test

import (
	"fmt"
	"testing"

	"cogentcore.org/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineLayout(t *testing.T) {
	c := newChart(t, cartesianOptions(chart.SeriesOptions{
		Kind: "line", Name: "l", YFields: []string{"v"}, Highlight: true,
	}),
		chart.Record{"name": "a", "v": 1.0},
		chart.Record{"name": "b", "v": 5.0},
		chart.Record{"name": "c", "v": 3.0},
	)
	items := c.Items(c.SeriesNamed("l"))
	require.Len(t, items, 3)
	// higher values sit higher on screen
	assert.Less(t, items[1].Anchor.Y, items[0].Anchor.Y)
	assert.Less(t, items[1].Anchor.Y, items[2].Anchor.Y)
	// anchors advance along x in record order
	assert.Less(t, items[0].Anchor.X, items[1].Anchor.X)
	assert.Less(t, items[1].Anchor.X, items[2].Anchor.X)
}

func TestLineShrink(t *testing.T) {
	n := 3000 // far more records than horizontal pixels
	recs := make([]chart.Record, n)
	for i := range recs {
		recs[i] = chart.Record{"name": fmt.Sprintf("r%d", i), "v": float64(i % 10)}
	}
	c := newChart(t, cartesianOptions(chart.SeriesOptions{
		Kind: "line", Name: "l", YFields: []string{"v"}, Highlight: true,
	}), recs...)
	items := c.Items(c.SeriesNamed("l"))
	// block averaging yields at most one point per pixel
	assert.NotEmpty(t, items)
	assert.LessOrEqual(t, len(items), 400)
	// block records reference their first source record
	assert.Equal(t, 0, items[0].Record)
}

func TestLineSegmentHit(t *testing.T) {
	c := newChart(t, cartesianOptions(chart.SeriesOptions{
		Kind: "line", Name: "l", YFields: []string{"v"}, Highlight: true,
	}),
		chart.Record{"name": "a", "v": 5.0},
		chart.Record{"name": "b", "v": 5.0},
	)
	items := c.Items(c.SeriesNamed("l"))
	require.Len(t, items, 2)
	// halfway along the flat segment: hits the nearer endpoint
	mid := items[0].Anchor.Add(items[1].Anchor).MulScalar(0.5)
	hit := c.ItemAt(mid)
	require.NotNil(t, hit)
	assert.Contains(t, items, hit)
}
