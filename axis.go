// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/chart/math32"
	"cogentcore.org/chart/math32/minmax"
)

// AxisKinds are the supported axis kinds.
type AxisKinds int32

const (
	// CategoryAxis spaces discrete record bands evenly along the axis.
	CategoryAxis AxisKinds = iota

	// NumericAxis is a continuous linear value axis.
	NumericAxis

	// TimeAxis is a continuous axis over time values, with ticks
	// snapped to calendar units.
	TimeAxis

	// GaugeAxis maps values onto a 270 degree arc.
	GaugeAxis

	// RadialAxis maps values onto spoke lengths of a radar chart.
	RadialAxis
)

var axisKindNames = map[string]AxisKinds{
	"category": CategoryAxis, "numeric": NumericAxis, "time": TimeAxis,
	"gauge": GaugeAxis, "radial": RadialAxis,
}

// ParseAxisKind returns the axis kind with the given name.
func ParseAxisKind(s string) (AxisKinds, error) {
	ak, ok := axisKindNames[strings.ToLower(s)]
	if !ok {
		return NumericAxis, fmt.Errorf("chart: unknown axis kind %q", s)
	}
	return ak, nil
}

// axisStates is the axis layout state machine. States only advance
// forward within one layout; Reset returns to axisInvalid.
type axisStates int32

const (
	// axisInvalid: no range has been computed against current data.
	axisInvalid axisStates = iota

	// axisRanged: the data range is known, ticks are not placed.
	axisRanged

	// axisPlanned: the tick plan is computed.
	axisPlanned

	// axisDrawn: the axis has been drawn to the surface.
	axisDrawn
)

// Axis computes a data range and tick plan over its bound fields and
// draws itself along its position. All layout methods must be driven
// in order: ComputeRange, PlaceTicks, Measure, Draw; each checks the
// state machine and is a no-op when called out of order.
type Axis struct {
	// Options are the axis configuration.
	Options AxisOptions

	// Fields are the effective range fields: the configured fields,
	// or fields derived from the bound series, minus any fields
	// hidden through the legend. The chart sets these each layout.
	Fields []string

	// Kind is the parsed axis kind.
	Kind AxisKinds

	// Position is the parsed axis position.
	Position AxisPositions

	// Range is the computed data range, after fixed bounds and
	// prettification are applied.
	Range minmax.F64

	// Plan is the computed tick plan.
	Plan TickPlan

	// Categories are the band labels for a category axis, one per
	// record, in record order.
	Categories []string

	// Unit is the selected calendar unit for a time axis.
	Unit TimeUnit

	// Stacked is set by the chart when a bound series stacks the
	// axis fields, switching range computation to stacked sums.
	Stacked bool

	// Grid is the parsed grid mode.
	Grid GridModes

	// pixMin and pixMax are the pixel extent along the axis
	// direction, set during Draw from the content box.
	pixMin, pixMax float32

	state axisStates
}

// NewAxis returns an axis configured by the given options.
func NewAxis(op AxisOptions) (*Axis, error) {
	ax := &Axis{Options: op}
	kd, err := ParseAxisKind(op.Kind)
	if err != nil {
		return nil, err
	}
	ax.Kind = kd
	pos, err := ParseAxisPosition(op.Position)
	if err != nil {
		return nil, err
	}
	ax.Position = pos
	ax.Fields = op.Fields
	switch strings.ToLower(op.Grid) {
	case "lines":
		ax.Grid = GridLines
	case "bands":
		ax.Grid = GridBands
	}
	return ax, nil
}

// Reset invalidates all computed layout, returning the axis to the
// initial state. Called by the chart when data or options change.
func (ax *Axis) Reset() {
	ax.state = axisInvalid
}

// Horizontal reports whether the axis runs horizontally.
func (ax *Axis) Horizontal() bool {
	return ax.Position == Top || ax.Position == Bottom
}

// ComputeRange computes the axis data range from the store. Fixed
// Minimum/Maximum bounds are applied verbatim, without
// prettification; otherwise the range is the union over the bound
// fields, stacked when a bound series stacks them.
func (ax *Axis) ComputeRange(st Store) {
	if ax.state >= axisRanged {
		return
	}
	switch ax.Kind {
	case CategoryAxis:
		ax.computeCategories(st)
		ax.Range.Set(0, float64(max(st.Len(), 1)))
	default:
		mode := NoStack
		if ax.Stacked {
			mode = Stacked
		}
		fb := minmax.F64{Min: 0, Max: 1}
		if ax.Range.IsValid() && ax.Range.Range() > 0 {
			fb = ax.Range // keep the last good range across data reloads
		}
		r := RangeOf(st, ax.Fields, mode)
		r = r.Sanitize(fb)
		if ax.Options.Minimum != nil {
			r.Min = *ax.Options.Minimum
		}
		if ax.Options.Maximum != nil {
			r.Max = *ax.Options.Maximum
		}
		ax.Range = r
	}
	ax.state = axisRanged
}

func (ax *Axis) computeCategories(st Store) {
	n := st.Len()
	ax.Categories = make([]string, n)
	for i := 0; i < n; i++ {
		s := ""
		if ax.Options.Label.Field != "" {
			s = st.Str(ax.Options.Label.Field, i)
		} else if len(ax.Fields) > 0 {
			s = st.Str(ax.Fields[0], i)
		}
		if s == "" {
			s = strconv.Itoa(i)
		}
		ax.Categories[i] = s
	}
}

// PlaceTicks computes the tick plan for the computed range. Fixed
// bounds with a TickStep use the exact step; time axes snap to
// calendar units; everything else snaps to 1-2-5 steps.
func (ax *Axis) PlaceTicks() {
	if ax.state != axisRanged {
		return
	}
	want := ax.Options.MajorTickSteps
	if want <= 0 {
		want = 10
	}
	switch {
	case ax.Kind == CategoryAxis:
		ax.Plan = TickPlan{From: 0.5, To: ax.Range.Max - 0.5, Step: 1,
			Steps: max(len(ax.Categories)-1, 0)}
	case ax.Kind == TimeAxis:
		units := ax.Options.TimeUnits
		if len(units) == 0 {
			units = DefaultTimeUnits
		}
		ax.Plan, ax.Unit = SnapTime(ax.Range.Min, ax.Range.Max, want, units)
	case ax.Options.TickStep > 0 && ax.Options.Minimum != nil && ax.Options.Maximum != nil:
		ax.Plan = SnapExact(ax.Range.Min, ax.Range.Max, ax.Options.TickStep, want)
	default:
		pretty := ax.Options.Minimum == nil && ax.Options.Maximum == nil
		ax.Plan = Snap(ax.Range.Min, ax.Range.Max, want, pretty)
		if pretty {
			ax.Range.Set(ax.Plan.From, ax.Plan.To)
		}
	}
	if ax.Plan.IsValid() {
		ax.state = axisPlanned
	}
}

// DataToPix projects a data value to a pixel coordinate along the
// axis. Vertical axes invert: larger values are higher on screen.
func (ax *Axis) DataToPix(v float64) float32 {
	t := float32(ax.Range.NormValue(v))
	if !ax.Horizontal() && ax.Position != Radial && ax.Position != Gauge {
		t = 1 - t
	}
	return ax.pixMin + t*(ax.pixMax-ax.pixMin)
}

// PixToData is the inverse of DataToPix.
func (ax *Axis) PixToData(p float32) float64 {
	d := ax.pixMax - ax.pixMin
	if d == 0 {
		return ax.Range.Min
	}
	t := (p - ax.pixMin) / d
	if !ax.Horizontal() && ax.Position != Radial && ax.Position != Gauge {
		t = 1 - t
	}
	return ax.Range.Min + float64(t)*ax.Range.Range()
}

// setPixRange binds the axis to the content box edge it runs along.
func (ax *Axis) setPixRange(content math32.Box2) {
	if ax.Horizontal() {
		ax.pixMin, ax.pixMax = content.Min.X, content.Max.X
	} else {
		ax.pixMin, ax.pixMax = content.Min.Y, content.Max.Y
	}
}

// TickLabel formats the label for the i'th major tick.
func (ax *Axis) TickLabel(i int) string {
	v := ax.Plan.Tick(i)
	switch ax.Kind {
	case CategoryAxis:
		ci := int(v)
		if ci >= 0 && ci < len(ax.Categories) {
			return ax.Categories[ci]
		}
		return ""
	case TimeAxis:
		return formatTime(v, ax.Unit)
	default:
		if ax.Options.Label.Renderer != nil {
			// renderer gets the tick index as the record index
			return ax.Options.Label.Renderer(nil, i)
		}
		return FormatValue(v)
	}
}

// FormatValue formats a data value for tick and item labels, using
// compact notation for long values.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) > 10 {
		s = strconv.FormatFloat(v, 'g', 4, 64)
	}
	return s
}

func formatTime(v float64, un TimeUnit) string {
	t := time.Unix(int64(v), 0).UTC()
	switch {
	case un.Seconds >= 360*24*60*60:
		return t.Format("2006")
	case un.Seconds >= 28*24*60*60:
		return t.Format("Jan 2006")
	case un.Seconds >= 24*60*60:
		return t.Format("Jan 2")
	case un.Seconds >= 60*60:
		return t.Format("15:04")
	default:
		return t.Format("15:04:05")
	}
}

// Measure returns the perpendicular thickness the axis needs for its
// tick marks, labels and title, using the surface's text metrics.
// This is the first pass of the two-pass draw: the chart shrinks the
// content box by the measured thickness before Draw.
func (ax *Axis) Measure(sf Surface, ts TextStyle) float32 {
	if ax.state < axisPlanned || !ax.Plan.IsValid() {
		return 0
	}
	if ax.Position == Radial || ax.Position == Gauge {
		return 0 // polar axes draw inside the content box
	}
	const tickLen = 5
	const pad = 3
	th := float32(tickLen + pad)
	if ax.Options.Label.Display || ax.Kind == CategoryAxis {
		lm := float32(0)
		for i := 0; i <= ax.Plan.Steps; i++ {
			sz := sf.TextSize(ax.TickLabel(i), ts)
			d := sz.Y
			if !ax.Horizontal() {
				d = sz.X
			}
			lm = math32.Max(lm, d)
		}
		th += lm + pad
	}
	if ax.Options.Title != "" {
		th += sf.TextSize(ax.Options.Title, ts).Y + pad
	}
	return th
}

// Draw draws the axis line, grid, tick marks and labels into the
// given group. Labels that would collide with the previously drawn
// label, or with the first label, are skipped; the first label is
// always drawn. An axis with an invalid tick plan declines to draw.
func (ax *Axis) Draw(sf Surface, group string, content math32.Box2, th *Theme) {
	if ax.state != axisPlanned || !ax.Plan.IsValid() {
		return
	}
	if ax.Position == Radial || ax.Position == Gauge {
		ax.setPixRange(content)
		ax.state = axisDrawn
		return // drawn by the polar series that own them
	}
	ax.setPixRange(content)
	ts := th.TextStyle()
	line := ShapeStyle{Stroke: th.Foreground, StrokeWidth: 1, Opacity: 1}
	grid := ShapeStyle{Stroke: th.GridColor, StrokeWidth: 1, Opacity: 1}
	band := ShapeStyle{Fill: th.GridColor, Opacity: 0.35}
	const tickLen = 5
	const pad = 3

	base, dir := ax.baseline(content)
	sf.Path(group, "line", ax.lineEnds(content, base), false, line)

	var first, prev math32.Box2
	first.SetEmpty()
	prev.SetEmpty()
	for i := 0; i <= ax.Plan.Steps; i++ {
		v := ax.Plan.Tick(i)
		p := ax.DataToPix(v)
		nm := "tick" + strconv.Itoa(i)
		ax.drawGrid(sf, group, i, p, content, grid, band)
		sf.Path(group, nm, ax.tickEnds(p, base, dir, tickLen), false, line)
		if mn := ax.Options.MinorTickSteps; mn > 1 && i < ax.Plan.Steps {
			for k := 1; k < mn; k++ {
				mv := v + ax.Plan.Step*float64(k)/float64(mn)
				mp := ax.DataToPix(mv)
				sf.Path(group, nm+"."+strconv.Itoa(k),
					ax.tickEnds(mp, base, dir, tickLen/2), false, line)
			}
		}
		if !ax.Options.Label.Display && ax.Kind != CategoryAxis {
			continue
		}
		lb := ax.TickLabel(i)
		if lb == "" {
			continue
		}
		lpos := ax.labelPos(sf, lb, ts, p, base, dir, tickLen+pad)
		sz := sf.TextSize(lb, ts)
		box := math32.B2(lpos.X, lpos.Y, lpos.X+sz.X, lpos.Y+sz.Y)
		if i > 0 && (box.IntersectsBox(prev) || box.IntersectsBox(first)) {
			continue
		}
		sf.Text(group, "label"+strconv.Itoa(i), lpos, lb, ts)
		if first.IsEmpty() {
			first = box
		}
		prev = box
	}
	ax.drawTitle(sf, group, content, base, dir, ts)
	ax.state = axisDrawn
}

// baseline returns the perpendicular pixel coordinate of the axis
// line and the outward direction sign for ticks and labels.
func (ax *Axis) baseline(content math32.Box2) (base, dir float32) {
	switch ax.Position {
	case Bottom:
		return content.Max.Y, 1
	case Top:
		return content.Min.Y, -1
	case Left:
		return content.Min.X, -1
	default:
		return content.Max.X, 1
	}
}

func (ax *Axis) lineEnds(content math32.Box2, base float32) []math32.Vector2 {
	if ax.Horizontal() {
		return []math32.Vector2{{X: content.Min.X, Y: base}, {X: content.Max.X, Y: base}}
	}
	return []math32.Vector2{{X: base, Y: content.Min.Y}, {X: base, Y: content.Max.Y}}
}

func (ax *Axis) tickEnds(p, base, dir, ln float32) []math32.Vector2 {
	if ax.Horizontal() {
		return []math32.Vector2{{X: p, Y: base}, {X: p, Y: base + dir*ln}}
	}
	return []math32.Vector2{{X: base, Y: p}, {X: base + dir*ln, Y: p}}
}

func (ax *Axis) drawGrid(sf Surface, group string, i int, p float32, content math32.Box2, grid, band ShapeStyle) {
	switch ax.Grid {
	case GridLines:
		nm := "grid" + strconv.Itoa(i)
		if ax.Horizontal() {
			sf.Path(group, nm, []math32.Vector2{{X: p, Y: content.Min.Y}, {X: p, Y: content.Max.Y}}, false, grid)
		} else {
			sf.Path(group, nm, []math32.Vector2{{X: content.Min.X, Y: p}, {X: content.Max.X, Y: p}}, false, grid)
		}
	case GridBands:
		if i%2 == 1 || i >= ax.Plan.Steps {
			return
		}
		q := ax.DataToPix(ax.Plan.Tick(i + 1))
		nm := "band" + strconv.Itoa(i)
		if ax.Horizontal() {
			sf.Rect(group, nm, math32.B2(math32.Min(p, q), content.Min.Y, math32.Max(p, q), content.Max.Y), band)
		} else {
			sf.Rect(group, nm, math32.B2(content.Min.X, math32.Min(p, q), content.Max.X, math32.Max(p, q)), band)
		}
	}
}

func (ax *Axis) labelPos(sf Surface, lb string, ts TextStyle, p, base, dir, off float32) math32.Vector2 {
	sz := sf.TextSize(lb, ts)
	if ax.Horizontal() {
		y := base + dir*off
		if dir < 0 {
			y -= sz.Y
		}
		return math32.Vec2(p-sz.X/2, y)
	}
	x := base + dir*off
	if dir < 0 {
		x -= sz.X
	}
	return math32.Vec2(x, p-sz.Y/2)
}

func (ax *Axis) drawTitle(sf Surface, group string, content math32.Box2, base, dir float32, ts TextStyle) {
	if ax.Options.Title == "" {
		return
	}
	sz := sf.TextSize(ax.Options.Title, ts)
	const off = 24
	var pos math32.Vector2
	if ax.Horizontal() {
		pos = math32.Vec2(content.Center().X-sz.X/2, base+dir*off)
		if dir < 0 {
			pos.Y -= sz.Y
		}
	} else {
		pos = math32.Vec2(base+dir*off, content.Center().Y-sz.Y/2)
		if dir < 0 {
			pos.X -= sz.X
		}
	}
	sf.Text(group, "title", pos, ax.Options.Title, ts)
}
