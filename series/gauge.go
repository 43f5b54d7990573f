// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"strconv"

	"cogentcore.org/chart"
	"cogentcore.org/chart/math32"
)

func init() {
	chart.Register(chart.GaugeSeries, NewGauge)
}

// gaugeStart and gaugeSweep define the dial arc: 270 degrees from
// the lower left, through the top, to the lower right. Angles are in
// screen coordinates (y down, clockwise positive).
const (
	gaugeStart = 3 * math32.Pi / 4
	gaugeSweep = 3 * math32.Pi / 2
)

// GaugeSer draws the first record's value as a filled arc over a
// 270 degree dial, with the bound gauge axis supplying the range and
// tick plan. The axis ticks are drawn by the series along the arc,
// with label anchors placed radially outward of each tick angle.
type GaugeSer struct {
	base
}

// NewGauge returns a gauge series for options.
func NewGauge(op chart.SeriesOptions) (chart.Series, error) {
	if op.DonutRatio <= 0 {
		op.DonutRatio = 0.7
	}
	return &GaugeSer{base{op: op}}, nil
}

func (sr *GaugeSer) Kind() chart.SeriesKinds { return chart.GaugeSeries }

// gaugeAngle maps a normalized value in [0, 1] to a dial angle.
func gaugeAngle(t float64) float32 {
	return gaugeStart + math32.Clamp(float32(t), 0, 1)*gaugeSweep
}

func (sr *GaugeSer) Layout(c *chart.Chart, hidden map[string]bool) []*chart.Item {
	vx := c.ValueAxis(sr)
	fields := sr.visibleFields(hidden)
	if vx == nil || c.Store.Len() == 0 || len(fields) == 0 {
		return nil
	}
	fld := fields[0]
	v := c.Store.Float(fld, 0)
	if !finite(v) {
		v = 0
	}
	center := c.Content.Center()
	sz := c.Content.Size()
	outer := 0.9 * math32.Min(sz.X, sz.Y) / 2
	if outer <= 0 {
		return nil
	}
	sh := &chart.WedgeShape{Center: center,
		Inner: sr.op.DonutRatio * outer, Outer: outer,
		Start: gaugeStart, End: gaugeAngle(vx.Range.NormValue(v))}
	return []*chart.Item{{
		Shape:  sh,
		Anchor: sh.Midpoint(),
		Record: 0, Field: fld, Value: v, Series: sr,
	}}
}

func (sr *GaugeSer) Draw(c *chart.Chart, sf chart.Surface, group string, items []*chart.Item) {
	if len(items) == 0 {
		return
	}
	it := items[0]
	val := it.Shape.(*chart.WedgeShape)
	// background track behind the value arc
	track := &chart.WedgeShape{Center: val.Center, Inner: val.Inner,
		Outer: val.Outer, Start: gaugeStart, End: gaugeStart + gaugeSweep}
	track.Draw(sf, group, "track", chart.ShapeStyle{Fill: c.Theme.GridColor, Opacity: 1})
	st := c.ItemStyle(sr, 0, it)
	val.Draw(sf, group, "value", st)
	sr.drawTicks(c, sf, group, val)

	ts := c.Theme.TextStyle()
	ts.Size *= 1.5
	text := chart.FormatValue(it.Value)
	tsz := sf.TextSize(text, ts)
	sf.Text(group, "reading", val.Center.Sub(tsz.MulScalar(0.5)), text, ts)
}

// drawTicks draws the bound axis's major ticks along the dial arc,
// with labels anchored outward of each tick angle.
func (sr *GaugeSer) drawTicks(c *chart.Chart, sf chart.Surface, group string, val *chart.WedgeShape) {
	vx := c.ValueAxis(sr)
	if vx == nil || !vx.Plan.IsValid() {
		return
	}
	ts := c.Theme.TextStyle()
	line := chart.ShapeStyle{Stroke: c.Theme.Foreground, StrokeWidth: 1, Opacity: 1}
	for i := 0; i <= vx.Plan.Steps; i++ {
		v := vx.Plan.Tick(i)
		ang := gaugeAngle(vx.Range.NormValue(v))
		dir := math32.Vec2(math32.Cos(ang), math32.Sin(ang))
		nm := strconv.Itoa(i)
		sf.Path(group, "tick"+nm, []math32.Vector2{
			val.Center.Add(dir.MulScalar(val.Outer)),
			val.Center.Add(dir.MulScalar(val.Outer + 4)),
		}, false, line)
		lb := chart.FormatValue(v)
		tsz := sf.TextSize(lb, ts)
		p := val.Center.Add(dir.MulScalar(val.Outer + 7)).Sub(tsz.MulScalar(0.5)).
			Add(dir.Mul(tsz.MulScalar(0.5)))
		sf.Text(group, "ticklabel"+nm, p, lb, ts)
	}
}
