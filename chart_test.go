// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart_test

import (
	"fmt"
	"testing"
	"time"

	"cogentcore.org/chart"
	"cogentcore.org/chart/math32"
	_ "cogentcore.org/chart/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualSched collects scheduled callbacks so tests drive the
// refresh and animation timers explicitly.
type manualSched struct {
	fns []func()
}

func (ms *manualSched) schedule(d time.Duration, fn func()) func() {
	i := len(ms.fns)
	ms.fns = append(ms.fns, fn)
	return func() { ms.fns[i] = nil }
}

// run fires everything currently scheduled, once.
func (ms *manualSched) run() {
	fns := ms.fns
	ms.fns = nil
	for _, fn := range fns {
		if fn != nil {
			fn()
		}
	}
}

func (ms *manualSched) pending() int {
	n := 0
	for _, fn := range ms.fns {
		if fn != nil {
			n++
		}
	}
	return n
}

func barOptions() *chart.Options {
	return &chart.Options{
		Axes: []chart.AxisOptions{
			{Kind: "category", Position: "bottom", Fields: []string{"name"}},
			{Kind: "numeric", Position: "left"},
		},
		Series: []chart.SeriesOptions{
			{Kind: "bar", Name: "sales", YFields: []string{"a", "b"}, Highlight: true},
		},
	}
}

func testChart(t *testing.T, op *chart.Options, recs ...chart.Record) (*chart.Chart, *chart.Recorder, *manualSched, *chart.Table) {
	t.Helper()
	tb := chart.NewTable(recs...)
	sf := chart.NewRecorder()
	c, err := chart.New(op, tb, sf, math32.B2(0, 0, 400, 300))
	require.NoError(t, err)
	ms := &manualSched{}
	c.Scheduler = ms.schedule
	return c, sf, ms, tb
}

func barRecords() []chart.Record {
	return []chart.Record{
		{"name": "q1", "a": 10.0, "b": 12.0},
		{"name": "q2", "a": 7.0, "b": 8.0},
		{"name": "q3", "a": 5.0, "b": 2.0},
	}
}

func TestChartRefreshCoalesces(t *testing.T) {
	c, _, ms, _ := testChart(t, barOptions(), barRecords()...)
	layouts := 0
	c.OnRefresh = func() { layouts++ }

	c.Refresh()
	c.Refresh()
	c.Refresh()
	assert.Equal(t, chart.ChartLayoutPending, c.State())
	assert.Equal(t, 1, ms.pending())

	ms.run()
	assert.Equal(t, 1, layouts)
	assert.Equal(t, chart.ChartIdle, c.State())
}

func TestChartRefreshDuringLayoutQueuesOne(t *testing.T) {
	c, _, ms, _ := testChart(t, barOptions(), barRecords()...)
	layouts := 0
	c.OnRefresh = func() { layouts++ }
	c.OnBeforeRefresh = func() {
		if layouts == 0 {
			c.Refresh() // arrives mid-pass
			c.Refresh()
		}
	}

	c.Refresh()
	ms.run()
	assert.Equal(t, 1, layouts)
	assert.Equal(t, 1, ms.pending()) // exactly one follow-up pass

	ms.run()
	assert.Equal(t, 2, layouts)
	assert.Equal(t, 0, ms.pending())
}

func TestChartStoreChangeQueuesRefresh(t *testing.T) {
	c, _, ms, tb := testChart(t, barOptions(), barRecords()...)
	c.RefreshNow()
	sr := c.SeriesNamed("sales")
	require.NotNil(t, sr)
	assert.Len(t, c.Items(sr), 6) // 3 records x 2 fields

	tb.Add(chart.Record{"name": "q4", "a": 2.0, "b": 14.0})
	assert.Equal(t, chart.ChartLayoutPending, c.State())
	ms.run()
	assert.Len(t, c.Items(sr), 8)
}

func TestChartEmptyStore(t *testing.T) {
	c, _, _, _ := testChart(t, barOptions())
	c.RefreshNow()
	sr := c.SeriesNamed("sales")
	assert.Empty(t, c.Items(sr))
	assert.Equal(t, chart.ChartIdle, c.State())
}

func TestChartLegendToggleIdempotent(t *testing.T) {
	op := barOptions()
	op.Legend = &chart.LegendOptions{Position: "right"}
	c, _, ms, _ := testChart(t, op, barRecords()...)
	c.RefreshNow()
	sr := c.SeriesNamed("sales")
	content := c.Content
	require.Len(t, c.Items(sr), 6)
	require.Len(t, c.Legend.Entries, 2)

	e := c.Legend.Entries[1]
	c.PointerDown(e.Box.Center())
	ms.run()
	assert.Len(t, c.Items(sr), 3) // field b hidden

	c.PointerDown(c.Legend.Entries[1].Box.Center())
	ms.run()
	// toggling twice restores the item set and content box exactly
	assert.Len(t, c.Items(sr), 6)
	assert.Equal(t, content, c.Content)
}

func TestChartMisconfiguredSeriesIsSkipped(t *testing.T) {
	op := barOptions()
	op.Series = append(op.Series, chart.SeriesOptions{Kind: "nope", YFields: []string{"a"}})
	tb := chart.NewTable(barRecords()...)
	c, err := chart.New(op, tb, chart.NewRecorder(), math32.B2(0, 0, 400, 300))
	assert.Error(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Series, 1) // the valid series still renders
	c.Scheduler = (&manualSched{}).schedule
	c.RefreshNow()
	assert.Equal(t, chart.ChartIdle, c.State())
}

func TestChartStackedAxisRange(t *testing.T) {
	op := barOptions()
	op.Series[0].Stacked = true
	c, _, _, _ := testChart(t, op,
		chart.Record{"name": "r1", "a": 10.0, "b": 12.0},
		chart.Record{"name": "r2", "a": 7.0, "b": 8.0},
		chart.Record{"name": "r3", "a": 5.0, "b": 2.0},
		chart.Record{"name": "r4", "a": 2.0, "b": 14.0},
		chart.Record{"name": "r5", "a": 27.0, "b": 38.0},
	)
	c.RefreshNow()
	vx := c.AxisAt(chart.Left)
	require.NotNil(t, vx)
	// stacked max 27+38=65, min 0, then widened to snapped bounds
	assert.GreaterOrEqual(t, vx.Range.Max, 65.0)
	assert.LessOrEqual(t, vx.Range.Min, 0.0)

	sr := c.SeriesNamed("sales")
	items := c.Items(sr)
	require.Len(t, items, 10)
	// the two bars of one record tile from the shared baseline
	a0 := items[0].Shape.(*chart.RectShape).Box
	b0 := items[1].Shape.(*chart.RectShape).Box
	assert.InDelta(t, float64(a0.Min.Y), float64(b0.Max.Y), 1e-3)
}

func TestChartHighlightImmediate(t *testing.T) {
	c, _, _, _ := testChart(t, barOptions(), barRecords()...)
	c.RefreshNow()
	sr := c.SeriesNamed("sales")
	items := c.Items(sr)
	require.NotEmpty(t, items)
	var got *chart.Item
	c.OnHighlight = func(it *chart.Item) { got = it }

	target := items[0]
	c.PointerMove(target.Shape.BBox().Center())
	assert.Equal(t, target, c.Highlight.Current())
	assert.Equal(t, target, got)
	assert.Equal(t, float32(1), target.Emphasis)

	c.PointerLeave()
	assert.Nil(t, c.Highlight.Current())
	assert.Nil(t, got)
	assert.Equal(t, float32(0), target.Emphasis)
}

func TestChartHighlightAnimated(t *testing.T) {
	op := barOptions()
	op.Animate = chart.AnimateOptions{On: true, Duration: chart.Duration(100 * time.Millisecond), Easing: "linear"}
	c, _, ms, _ := testChart(t, op, barRecords()...)
	t0 := time.Now()
	now := t0
	c.Now = func() time.Time { return now }
	c.RefreshNow()
	items := c.Items(c.SeriesNamed("sales"))
	require.NotEmpty(t, items)

	target := items[0]
	c.PointerMove(target.Shape.BBox().Center())
	assert.Equal(t, 1, ms.pending()) // animation frame scheduled

	now = t0.Add(50 * time.Millisecond)
	ms.run()
	assert.InDelta(t, 0.5, target.Emphasis, 1e-6)
	assert.Equal(t, 1, ms.pending()) // still in flight

	now = t0.Add(200 * time.Millisecond)
	ms.run()
	assert.Equal(t, float32(1), target.Emphasis)
	assert.Equal(t, 0, ms.pending())
}

func TestChartSelect(t *testing.T) {
	c, _, _, _ := testChart(t, barOptions(), barRecords()...)
	c.RefreshNow()
	items := c.Items(c.SeriesNamed("sales"))
	require.NotEmpty(t, items)
	var got *chart.Item
	c.OnSelect = func(it *chart.Item) { got = it }
	c.PointerDown(items[2].Shape.BBox().Center())
	assert.Equal(t, items[2], got)
}

func TestChartReleaseAndDoubleClick(t *testing.T) {
	c, _, _, _ := testChart(t, barOptions(), barRecords()...)
	t0 := time.Now()
	now := t0
	c.Now = func() time.Time { return now }
	c.RefreshNow()
	items := c.Items(c.SeriesNamed("sales"))
	require.NotEmpty(t, items)
	var released, doubled *chart.Item
	c.OnRelease = func(it *chart.Item) { released = it }
	c.OnDoubleClick = func(it *chart.Item) { doubled = it }

	pt := items[1].Shape.BBox().Center()
	c.PointerDown(pt)
	c.PointerUp(pt)
	assert.Equal(t, items[1], released)
	assert.Nil(t, doubled)

	now = t0.Add(200 * time.Millisecond)
	c.PointerDown(pt)
	c.PointerUp(pt)
	assert.Equal(t, items[1], doubled)

	// the pair is consumed: a third quick click starts over
	doubled = nil
	now = t0.Add(400 * time.Millisecond)
	c.PointerDown(pt)
	c.PointerUp(pt)
	assert.Nil(t, doubled)
}

func TestChartDrag(t *testing.T) {
	c, _, _, _ := testChart(t, barOptions(), barRecords()...)
	c.RefreshNow()
	items := c.Items(c.SeriesNamed("sales"))
	require.NotEmpty(t, items)
	starts, moves, ends := 0, 0, 0
	var dragged *chart.Item
	var endPt math32.Vector2
	c.OnDragStart = func(it *chart.Item, pt math32.Vector2) { starts++; dragged = it }
	c.OnDrag = func(it *chart.Item, pt math32.Vector2) { moves++ }
	c.OnDragEnd = func(it *chart.Item, pt math32.Vector2) { ends++; endPt = pt }
	var released *chart.Item
	c.OnRelease = func(it *chart.Item) { released = it }

	pt := items[0].Shape.BBox().Center()
	c.PointerDown(pt)
	c.PointerMove(pt.Add(math32.Vec2(1, 0))) // under the threshold
	assert.Equal(t, 0, starts)

	c.PointerMove(pt.Add(math32.Vec2(10, 0)))
	c.PointerMove(pt.Add(math32.Vec2(20, 0)))
	assert.Equal(t, 1, starts)
	assert.Equal(t, 2, moves)
	assert.Equal(t, items[0], dragged)

	c.PointerUp(pt.Add(math32.Vec2(30, 0)))
	assert.Equal(t, 1, ends)
	assert.Equal(t, pt.Add(math32.Vec2(30, 0)), endPt)
	assert.Nil(t, released) // a drag release is not a click
}

func TestChartItemLabelsStayInContent(t *testing.T) {
	op := barOptions()
	op.Series[0].Label = chart.LabelOptions{Display: true}
	c, sf, _, _ := testChart(t, op, barRecords()...)
	c.RefreshNow()
	items := c.Items(c.SeriesNamed("sales"))
	require.NotEmpty(t, items)
	drawn := 0
	for i := range items {
		p := sf.Prim("series.sales", fmt.Sprintf("itemlabel%d", i))
		if p == nil {
			continue // lost its collision
		}
		drawn++
		assert.True(t, c.Content.ContainsBox(p.Box),
			"label %d at %v escapes the content box %v", i, p.Box, c.Content)
	}
	assert.Greater(t, drawn, 0)
}
