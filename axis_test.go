// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"

	"cogentcore.org/chart/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64p(v float64) *float64 { return &v }

func TestAxisRoundTrip(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "numeric", Position: "bottom",
		Fields: []string{"v"}, Minimum: float64p(0), Maximum: float64p(100)})
	require.NoError(t, err)
	tb := NewTable(Record{"v": 42.0})
	ax.ComputeRange(tb)
	ax.PlaceTicks()
	sf := NewRecorder()
	ax.Draw(sf, "ax", math32.B2(0, 0, 200, 100), DefaultTheme())

	assert.Equal(t, float32(100), ax.DataToPix(50))
	assert.Equal(t, float32(0), ax.DataToPix(0))
	assert.Equal(t, float32(200), ax.DataToPix(100))
	assert.InDelta(t, 50.0, ax.PixToData(100), 1e-4)
}

func TestAxisVerticalInverts(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "numeric", Position: "left",
		Fields: []string{"v"}, Minimum: float64p(0), Maximum: float64p(100)})
	require.NoError(t, err)
	ax.ComputeRange(NewTable(Record{"v": 1.0}))
	ax.PlaceTicks()
	sf := NewRecorder()
	ax.Draw(sf, "ax", math32.B2(0, 0, 100, 200), DefaultTheme())

	// larger values are higher on screen
	assert.Equal(t, float32(200), ax.DataToPix(0))
	assert.Equal(t, float32(0), ax.DataToPix(100))
	assert.InDelta(t, 50.0, ax.PixToData(100), 1e-4)
}

func TestAxisDeclinesOutOfOrder(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "numeric", Position: "bottom",
		Fields: []string{"v"}})
	require.NoError(t, err)
	sf := NewRecorder()
	// no ComputeRange/PlaceTicks: the axis declines to draw
	ax.Draw(sf, "ax", math32.B2(0, 0, 200, 100), DefaultTheme())
	assert.Equal(t, 0, sf.Count("ax"))
}

func TestAxisLabelCollision(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "category", Position: "bottom",
		Fields: []string{"name"}})
	require.NoError(t, err)
	tb := NewTable(
		Record{"name": "AAAAAAAA"},
		Record{"name": "BBBBBBBB"},
	)
	ax.ComputeRange(tb)
	ax.PlaceTicks()
	sf := NewRecorder()
	// 80px across two 58px labels: the boxes must overlap
	ax.Draw(sf, "ax", math32.B2(0, 0, 80, 40), DefaultTheme())

	first := sf.Prim("ax", "label0")
	second := sf.Prim("ax", "label1")
	// exactly one of the colliding pair is hidden, never both
	assert.NotNil(t, first)
	assert.Nil(t, second)
}

func TestAxisLabelsNoCollision(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "category", Position: "bottom",
		Fields: []string{"name"}})
	require.NoError(t, err)
	tb := NewTable(Record{"name": "a"}, Record{"name": "b"})
	ax.ComputeRange(tb)
	ax.PlaceTicks()
	sf := NewRecorder()
	ax.Draw(sf, "ax", math32.B2(0, 0, 300, 40), DefaultTheme())

	assert.NotNil(t, sf.Prim("ax", "label0"))
	assert.NotNil(t, sf.Prim("ax", "label1"))
}

func TestAxisCategoryTicks(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "category", Position: "bottom",
		Fields: []string{"name"}})
	require.NoError(t, err)
	tb := NewTable(Record{"name": "x"}, Record{"name": "y"}, Record{"name": "z"})
	ax.ComputeRange(tb)
	ax.PlaceTicks()

	require.True(t, ax.Plan.IsValid())
	assert.Equal(t, 0.5, ax.Plan.From) // band centers
	assert.Equal(t, 2, ax.Plan.Steps)
	assert.Equal(t, "y", ax.TickLabel(1))
}

func TestAxisPrettification(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "numeric", Position: "left",
		Fields: []string{"v"}})
	require.NoError(t, err)
	tb := NewTable(Record{"v": 3.0}, Record{"v": 97.0})
	ax.ComputeRange(tb)
	ax.PlaceTicks()

	// the range widens to the snapped plan bounds
	assert.LessOrEqual(t, ax.Range.Min, 3.0)
	assert.GreaterOrEqual(t, ax.Range.Max, 97.0)
	assert.Equal(t, ax.Plan.From, ax.Range.Min)
	assert.Equal(t, ax.Plan.To, ax.Range.Max)
}

func TestAxisEmptyRangeFallback(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "numeric", Position: "left",
		Fields: []string{"v"}})
	require.NoError(t, err)

	// first draw with no data defaults to [0,1]
	ax.ComputeRange(NewTable())
	assert.Equal(t, 0.0, ax.Range.Min)
	assert.Equal(t, 1.0, ax.Range.Max)

	// a populated pass establishes a range
	ax.Reset()
	ax.ComputeRange(NewTable(Record{"v": 10.0}, Record{"v": 90.0}))
	ranged := ax.Range

	// an all-missing pass keeps the previous range
	ax.Reset()
	ax.ComputeRange(NewTable())
	assert.Equal(t, ranged, ax.Range)
}

func TestAxisGridLines(t *testing.T) {
	ax, err := NewAxis(AxisOptions{Kind: "numeric", Position: "bottom",
		Fields: []string{"v"}, Grid: "lines",
		Minimum: float64p(0), Maximum: float64p(100)})
	require.NoError(t, err)
	ax.ComputeRange(NewTable(Record{"v": 1.0}))
	ax.PlaceTicks()
	sf := NewRecorder()
	ax.Draw(sf, "ax", math32.B2(0, 0, 200, 100), DefaultTheme())

	assert.NotNil(t, sf.Prim("ax", "grid0"))
	g := sf.Prim("ax", "grid5")
	require.NotNil(t, g)
	assert.Equal(t, float32(100), g.Points[0].X)
}
