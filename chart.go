// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"strings"
	"time"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/math32"
)

// ChartStates is the orchestrator state machine. Refresh requests
// move Idle to LayoutPending; the scheduled layout runs through
// LayingOut and Drawing back to Idle. Requests arriving while a
// layout is pending coalesce; requests arriving while one is running
// queue exactly one follow-up layout.
type ChartStates int32

const (
	// ChartIdle: the drawn output matches the current data and options.
	ChartIdle ChartStates = iota

	// ChartLayoutPending: a refresh is scheduled but not started.
	ChartLayoutPending

	// ChartLayingOut: axis ranges, ticks and series items are being
	// computed.
	ChartLayingOut

	// ChartDrawing: the computed layout is being drawn.
	ChartDrawing
)

// refreshDelay is how long queued refreshes wait to coalesce before
// the layout runs.
const refreshDelay = time.Millisecond

// frameDelay is the animation frame interval.
const frameDelay = 16 * time.Millisecond

// Chart owns the store, axes, series, legend and highlighter and
// orchestrates layout and drawing onto its surface. All methods must
// be called from one goroutine; the scheduler must deliver its
// callbacks on that same goroutine.
type Chart struct {
	// Options are the chart configuration.
	Options *Options

	// Store is the bound record store. The chart listens for store
	// events and queues a refresh on every change.
	Store Store

	// Surface receives all drawing.
	Surface Surface

	// Theme supplies colors, markers and text styling.
	Theme *Theme

	// Axes are the configured axes in configuration order.
	Axes []*Axis

	// Series are the configured series in configuration order, which
	// is draw order; hit tests walk the same order and the first
	// match wins.
	Series []Series

	// Legend is the legend, nil when disabled.
	Legend *Legend

	// Highlight drives hover emphasis.
	Highlight *Highlighter

	// Box is the full chart pixel box.
	Box math32.Box2

	// Content is the content pixel box after insets, legend and
	// axis space are reserved. Valid after a layout.
	Content math32.Box2

	// OnBeforeRefresh, if set, is called when a layout pass starts.
	OnBeforeRefresh func()

	// OnRefresh, if set, is called when a layout pass completes.
	OnRefresh func()

	// OnHighlight, if set, is called when the highlighted item
	// changes; the argument is nil when the highlight clears.
	OnHighlight func(it *Item)

	// OnSelect, if set, is called when an item is pressed.
	OnSelect func(it *Item)

	// OnRelease, if set, is called when the pointer is released over
	// an item without having dragged.
	OnRelease func(it *Item)

	// OnDoubleClick, if set, is called when the same item is released
	// twice in quick succession.
	OnDoubleClick func(it *Item)

	// OnDragStart, OnDrag and OnDragEnd, if set, are called as a
	// pressed item is moved past the drag threshold and released.
	OnDragStart func(it *Item, pt math32.Vector2)
	OnDrag      func(it *Item, pt math32.Vector2)
	OnDragEnd   func(it *Item, pt math32.Vector2)

	// Scheduler schedules fn after d on the chart's goroutine and
	// returns a cancel function. Defaults to time.AfterFunc. Tests
	// inject a manual scheduler to drive coalescing and animation
	// deterministically.
	Scheduler func(d time.Duration, fn func()) (cancel func())

	// Now returns the current time for transitions. Defaults to
	// time.Now.
	Now func() time.Time

	items       map[Series][]*Item
	state       ChartStates
	pending     bool
	cancelTimer func()
	frameTimer  func()
	unlisten    func()
	pressItem   *Item
	pressPt     math32.Vector2
	dragging    bool
	lastClick   *Item
	lastClickAt time.Time
}

// New builds a chart over the given store and surface from options.
// A misconfigured axis or series is logged and skipped; the rest of
// the chart still renders, and the per-component errors are joined
// into the returned error alongside the usable chart. The chart
// starts Idle with nothing drawn; call Refresh (or resize via
// SetBox) to produce output.
func New(op *Options, st Store, sf Surface, box math32.Box2) (*Chart, error) {
	op.Defaults()
	c := &Chart{
		Options: op,
		Store:   st,
		Surface: sf,
		Theme:   DefaultTheme(),
		Box:     box,
		items:   map[Series][]*Item{},
		Now:     time.Now,
	}
	c.Scheduler = func(d time.Duration, fn func()) func() {
		t := time.AfterFunc(d, fn)
		return func() { t.Stop() }
	}
	var errs []error
	for _, aop := range op.Axes {
		ax, err := NewAxis(aop)
		if errors.Log(err) != nil {
			errs = append(errs, err)
			continue
		}
		c.Axes = append(c.Axes, ax)
	}
	for i, sop := range op.Series {
		if sop.Name == "" {
			sop.Name = fmt.Sprintf("%s%d", sop.Kind, i)
		}
		sr, err := NewSeries(sop)
		if errors.Log(err) != nil {
			errs = append(errs, err)
			continue
		}
		c.Series = append(c.Series, sr)
	}
	if op.Legend != nil {
		lg, err := NewLegend(*op.Legend)
		if errors.Log(err) != nil {
			errs = append(errs, err)
		} else {
			c.Legend = lg
		}
	}
	c.Highlight = NewHighlighter(op.Animate)
	c.unlisten = st.Listen(func(StoreEvents) { c.Refresh() })
	return c, errors.Join(errs...)
}

// Close detaches the chart from its store and cancels any pending
// work.
func (c *Chart) Close() {
	if c.unlisten != nil {
		c.unlisten()
		c.unlisten = nil
	}
	if c.cancelTimer != nil {
		c.cancelTimer()
		c.cancelTimer = nil
	}
	c.stopFrames()
}

// State returns the current orchestrator state.
func (c *Chart) State() ChartStates { return c.state }

// SetBox resizes the chart and queues a refresh.
func (c *Chart) SetBox(box math32.Box2) {
	c.Box = box
	c.Refresh()
}

// Refresh queues a full relayout and redraw. Calls coalesce: any
// number of refreshes before the layout runs produce one layout, and
// refreshes during a running layout queue exactly one more.
func (c *Chart) Refresh() {
	switch c.state {
	case ChartLayoutPending:
		return
	case ChartLayingOut, ChartDrawing:
		c.pending = true
		return
	}
	c.state = ChartLayoutPending
	c.cancelTimer = c.Scheduler(refreshDelay, c.runLayout)
}

// RefreshNow runs any pending or implied layout synchronously.
func (c *Chart) RefreshNow() {
	if c.state == ChartLayoutPending && c.cancelTimer != nil {
		c.cancelTimer()
		c.cancelTimer = nil
	}
	if c.state == ChartIdle || c.state == ChartLayoutPending {
		c.state = ChartLayoutPending
		c.runLayout()
	}
}

// runLayout is the single layout-and-draw pass.
func (c *Chart) runLayout() {
	if c.state != ChartLayoutPending {
		return
	}
	c.cancelTimer = nil
	c.state = ChartLayingOut
	if c.OnBeforeRefresh != nil {
		c.OnBeforeRefresh()
	}
	// in-flight animations snap to their end state, never overlapping
	// the rebuilt items
	c.Highlight.Finish()
	c.Highlight.Reset()
	c.stopFrames()
	// items are rebuilt wholesale, so pointers from the prior pass
	// must not survive into click or drag tracking
	c.pressItem = nil
	c.dragging = false
	c.lastClick = nil

	c.Surface.Clear("background")
	if c.Theme.Background.A > 0 {
		c.Surface.Rect("background", "fill", c.Box,
			ShapeStyle{Fill: c.Theme.Background, Opacity: 1})
	}
	for _, ax := range c.Axes {
		ax.Reset()
	}
	if c.Legend != nil {
		c.Legend.Rebuild(c.Series, c.Theme)
	}
	content := c.Box
	content.Min = content.Min.AddScalar(c.Options.InsetPadding)
	content.Max = content.Max.SubScalar(c.Options.InsetPadding)
	content = c.reserveLegend(content)

	c.bindAxes()
	for _, ax := range c.Axes {
		ax.ComputeRange(c.Store)
		ax.PlaceTicks()
	}
	// first axis pass: measure and reserve edge space
	ts := c.Theme.TextStyle()
	for _, ax := range c.Axes {
		m := ax.Measure(c.Surface, ts)
		switch ax.Position {
		case Bottom:
			content.Max.Y -= m
		case Top:
			content.Min.Y += m
		case Left:
			content.Min.X += m
		case Right:
			content.Max.X -= m
		}
	}
	// series needing marker clearance inset the content box further
	gutter := float32(0)
	for _, sr := range c.Series {
		if g, ok := sr.(Gutterer); ok {
			gutter = math32.Max(gutter, g.Gutter())
		}
	}
	content.ExpandByScalar(-gutter)
	c.Content = content

	c.state = ChartDrawing
	// second axis pass: draw into the final content box
	for _, ax := range c.Axes {
		g := "axis." + ax.Position.String()
		c.Surface.Clear(g)
		ax.Draw(c.Surface, g, content, c.Theme)
	}
	c.drawSeries(true)
	c.drawLegend()

	c.state = ChartIdle
	if c.OnRefresh != nil {
		c.OnRefresh()
	}
	if c.pending {
		c.pending = false
		c.Refresh()
	}
}

// bindAxes wires each axis to its series: effective range fields
// minus legend-hidden fields, and stacked mode from bound series.
func (c *Chart) bindAxes() {
	for _, ax := range c.Axes {
		ax.Stacked = false
		fields := ax.Options.Fields
		derived := len(fields) == 0
		if derived {
			fields = nil
		}
		for _, sr := range c.Series {
			vx := c.ValueAxis(sr)
			bx := c.BaseAxis(sr)
			op := sr.Config()
			if ax == vx {
				if sr.Stacks() {
					ax.Stacked = true
				}
				if derived {
					fields = append(fields, sr.Fields()...)
				}
			}
			if ax == bx && derived && op.XField != "" {
				fields = append(fields, op.XField)
			}
		}
		if c.Legend != nil {
			kept := fields[:0:0]
			for _, f := range fields {
				if !c.fieldHidden(f) {
					kept = append(kept, f)
				}
			}
			fields = kept
		}
		ax.Fields = fields
	}
}

func (c *Chart) fieldHidden(field string) bool {
	if c.Legend == nil {
		return false
	}
	for _, e := range c.Legend.Entries {
		if e.Field == field && e.Hidden {
			return true
		}
	}
	return false
}

// reserveLegend measures the legend and shrinks the content box by
// the space its position reserves. Floating legends reserve nothing.
func (c *Chart) reserveLegend(content math32.Box2) math32.Box2 {
	if c.Legend == nil || len(c.Legend.Entries) == 0 {
		return content
	}
	sz := c.Legend.Measure(c.Surface, c.Theme.TextStyle())
	switch c.Legend.Position {
	case LegendRight:
		content.Max.X -= sz.X
	case LegendLeft:
		content.Min.X += sz.X
	case LegendTop:
		content.Min.Y += sz.Y
	case LegendBottom:
		content.Max.Y -= sz.Y
	}
	return content
}

func (c *Chart) drawLegend() {
	if c.Legend == nil || len(c.Legend.Entries) == 0 {
		return
	}
	c.Surface.Clear("legend")
	sz := c.Legend.Measure(c.Surface, c.Theme.TextStyle())
	var pos math32.Vector2
	switch c.Legend.Position {
	case LegendRight:
		pos = math32.Vec2(c.Box.Max.X-sz.X, c.Content.Center().Y-sz.Y/2)
	case LegendLeft:
		pos = math32.Vec2(c.Box.Min.X, c.Content.Center().Y-sz.Y/2)
	case LegendTop:
		pos = math32.Vec2(c.Content.Center().X-sz.X/2, c.Box.Min.Y)
	case LegendBottom:
		pos = math32.Vec2(c.Content.Center().X-sz.X/2, c.Box.Max.Y-sz.Y)
	case LegendFloat:
		pos = c.Content.Min.Add(math32.Vec2(c.Legend.Options.FloatPos[0], c.Legend.Options.FloatPos[1]))
	}
	c.Legend.Draw(c.Surface, "legend", pos, c.Theme)
}

// drawSeries lays out (when relayout is set) and draws every series
// and its labels. A highlight-only redraw passes relayout false and
// reuses the cached items, so emphasis frames never recompute
// geometry.
func (c *Chart) drawSeries(relayout bool) {
	pl := NewPlacer(c.Content)
	for _, sr := range c.Series {
		items := c.items[sr]
		if relayout {
			var hidden map[string]bool
			if c.Legend != nil {
				hidden = c.Legend.HiddenFields(sr)
			}
			items = sr.Layout(c, hidden)
			c.items[sr] = items
		}
		g := "series." + sr.Name()
		c.Surface.Clear(g)
		sr.Draw(c, c.Surface, g, items)
		c.drawLabels(pl, sr, items)
	}
}

func (c *Chart) drawLabels(pl *Placer, sr Series, items []*Item) {
	op := sr.Config()
	if !op.Label.Display {
		return
	}
	lab, ok := sr.(Labeler)
	if !ok {
		return
	}
	ts := c.Theme.TextStyle()
	g := "series." + sr.Name()
	for i, it := range items {
		text := labelText(op.Label, c.Store, it.Record, it.Value)
		pos, dir := lab.LabelAnchor(it)
		nm := fmt.Sprintf("itemlabel%d", i)
		if it.Callout {
			st := ShapeStyle{Stroke: c.Theme.Foreground, StrokeWidth: 1, Opacity: 1}
			pl.Callout(c.Surface, g, nm, text, pos, dir, ts, st)
		} else {
			pl.Place(c.Surface, g, nm, text, pos, dir, ts)
		}
	}
}

// AxisAt returns the axis at the given position, or nil.
func (c *Chart) AxisAt(pos AxisPositions) *Axis {
	for _, ax := range c.Axes {
		if ax.Position == pos {
			return ax
		}
	}
	return nil
}

// axisNamed resolves a configured axis reference by position name.
func (c *Chart) axisNamed(name string) *Axis {
	pos, err := ParseAxisPosition(name)
	if errors.Log(err) != nil {
		return nil
	}
	return c.AxisAt(pos)
}

// BaseAxis returns the series' base (category, x or angle) axis:
// the first configured axis reference, else the bottom axis, else
// the radial axis.
func (c *Chart) BaseAxis(sr Series) *Axis {
	op := sr.Config()
	if len(op.Axes) > 0 {
		return c.axisNamed(op.Axes[0])
	}
	if ax := c.AxisAt(Bottom); ax != nil {
		return ax
	}
	return c.AxisAt(Radial)
}

// ValueAxis returns the series' value axis: the second configured
// axis reference, else the left axis, else the gauge or radial axis.
func (c *Chart) ValueAxis(sr Series) *Axis {
	op := sr.Config()
	if len(op.Axes) > 1 {
		return c.axisNamed(op.Axes[1])
	}
	if ax := c.AxisAt(Left); ax != nil {
		return ax
	}
	if ax := c.AxisAt(Gauge); ax != nil {
		return ax
	}
	return c.AxisAt(Radial)
}

// StyleIndex returns the theme cycle index for the given value field
// of the series: fields are numbered across all series in order, so
// series colors and legend swatches agree.
func (c *Chart) StyleIndex(sr Series, fieldIndex int) int {
	ci := 0
	for _, s := range c.Series {
		if s == sr {
			return ci + fieldIndex
		}
		ci += len(s.Fields())
	}
	return fieldIndex
}

// ItemStyle resolves the final draw style for an item: the theme
// default for its field, through the series renderer callback if
// set, then widened by the item's highlight emphasis.
func (c *Chart) ItemStyle(sr Series, fieldIndex int, it *Item) ShapeStyle {
	st := c.Theme.SeriesStyle(c.StyleIndex(sr, fieldIndex))
	if rf := sr.Config().Renderer; rf != nil {
		st = rf(st, c.Store, it.Record)
	}
	return Emphasize(st, it.Emphasis, c.Theme.HighlightWiden)
}

// Items returns the laid-out items for the given series, for
// inspection and tests.
func (c *Chart) Items(sr Series) []*Item { return c.items[sr] }

// SeriesNamed returns the series with the given name, or nil.
func (c *Chart) SeriesNamed(name string) Series {
	for _, sr := range c.Series {
		if strings.EqualFold(sr.Name(), name) {
			return sr
		}
	}
	return nil
}

// startFrames begins animation frames if transitions are active.
func (c *Chart) startFrames() {
	if c.frameTimer != nil || !c.Highlight.Animate {
		return
	}
	c.frameTimer = c.Scheduler(frameDelay, c.frame)
}

func (c *Chart) stopFrames() {
	if c.frameTimer != nil {
		c.frameTimer()
		c.frameTimer = nil
	}
}

// frame advances highlight transitions and redraws the series
// without relayout, rescheduling itself while transitions run.
func (c *Chart) frame() {
	c.frameTimer = nil
	if c.state != ChartIdle {
		return
	}
	active := c.Highlight.Advance(c.Now())
	c.state = ChartDrawing
	c.drawSeries(false)
	c.state = ChartIdle
	if active {
		c.startFrames()
	}
}
