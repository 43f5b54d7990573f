// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"strconv"

	"cogentcore.org/chart"
	"cogentcore.org/chart/math32"
)

func init() {
	chart.Register(chart.Radar, NewRadar)
}

// RadarSeries draws one closed polygon per visible value field over
// evenly spaced spokes, one spoke per record starting at twelve
// o'clock. Vertex radii are the record values normalized against the
// bound radial axis's range. The spoke web and ring grid are drawn
// by the series from the radial axis's tick plan.
type RadarSeries struct {
	base
}

// NewRadar returns a radar series for options.
func NewRadar(op chart.SeriesOptions) (chart.Series, error) {
	return &RadarSeries{base{op: op}}, nil
}

func (sr *RadarSeries) Kind() chart.SeriesKinds { return chart.Radar }

// spokeDir returns the unit direction of spoke i of n, starting at
// twelve o'clock and advancing clockwise.
func spokeDir(i, n int) math32.Vector2 {
	ang := -math32.Pi/2 + 2*math32.Pi*float32(i)/float32(n)
	return math32.Vec2(math32.Cos(ang), math32.Sin(ang))
}

func (sr *RadarSeries) radius(c *chart.Chart) (math32.Vector2, float32) {
	center := c.Content.Center()
	sz := c.Content.Size()
	return center, 0.8 * math32.Min(sz.X, sz.Y) / 2
}

func (sr *RadarSeries) Layout(c *chart.Chart, hidden map[string]bool) []*chart.Item {
	vx := c.ValueAxis(sr)
	n := c.Store.Len()
	if vx == nil || n == 0 {
		return nil
	}
	center, outer := sr.radius(c)
	if outer <= 0 {
		return nil
	}
	var items []*chart.Item
	for _, fld := range sr.visibleFields(hidden) {
		for i := 0; i < n; i++ {
			v := c.Store.Float(fld, i)
			if !finite(v) {
				v = 0
			}
			rho := math32.Clamp(float32(vx.Range.NormValue(v)), 0, 1) * outer
			p := center.Add(spokeDir(i, n).MulScalar(rho))
			items = append(items, &chart.Item{
				Shape:  &chart.CircleShape{Center: p, Radius: 3},
				Anchor: p,
				Record: i, Field: fld, Value: v, Series: sr,
			})
		}
	}
	return items
}

func (sr *RadarSeries) Draw(c *chart.Chart, sf chart.Surface, group string, items []*chart.Item) {
	sr.drawWeb(c, sf, group)
	byField := map[string][]*chart.Item{}
	for _, it := range items {
		byField[it.Field] = append(byField[it.Field], it)
	}
	for _, fld := range sr.op.YFields {
		fits := byField[fld]
		if len(fits) == 0 {
			continue
		}
		fi := sr.fieldIndex(fld)
		pts := make([]math32.Vector2, len(fits))
		for i, it := range fits {
			pts[i] = it.Anchor
		}
		st := c.Theme.SeriesStyle(c.StyleIndex(sr, fi))
		st.Opacity = 0.4
		sf.Path(group, "poly."+fld, pts, true, st)
		for i, it := range fits {
			sf.Circle(group, fmt.Sprintf("pt.%s.%d", fld, i), it.Anchor, 3,
				c.ItemStyle(sr, fi, it))
		}
	}
}

// drawWeb draws the spoke lines, concentric ring grid at each radial
// tick, and the per-spoke labels from the series' x field.
func (sr *RadarSeries) drawWeb(c *chart.Chart, sf chart.Surface, group string) {
	vx := c.ValueAxis(sr)
	n := c.Store.Len()
	if vx == nil || n == 0 {
		return
	}
	center, outer := sr.radius(c)
	grid := chart.ShapeStyle{Stroke: c.Theme.GridColor, StrokeWidth: 1, Opacity: 1}
	ts := c.Theme.TextStyle()
	for i := 0; i < n; i++ {
		dir := spokeDir(i, n)
		end := center.Add(dir.MulScalar(outer))
		sf.Path(group, "spoke"+strconv.Itoa(i), []math32.Vector2{center, end}, false, grid)
		if sr.op.XField != "" {
			lb := c.Store.Str(sr.op.XField, i)
			tsz := sf.TextSize(lb, ts)
			p := center.Add(dir.MulScalar(outer + 6)).Sub(tsz.MulScalar(0.5)).
				Add(dir.Mul(tsz.MulScalar(0.5)))
			sf.Text(group, "spokelabel"+strconv.Itoa(i), p, lb, ts)
		}
	}
	if !vx.Plan.IsValid() {
		return
	}
	for ti := 1; ti <= vx.Plan.Steps; ti++ {
		rho := math32.Clamp(float32(vx.Range.NormValue(vx.Plan.Tick(ti))), 0, 1) * outer
		ring := make([]math32.Vector2, n)
		for i := 0; i < n; i++ {
			ring[i] = center.Add(spokeDir(i, n).MulScalar(rho))
		}
		sf.Path(group, "ring"+strconv.Itoa(ti), ring, true, grid)
	}
}

// LabelAnchor places vertex labels above their point.
func (sr *RadarSeries) LabelAnchor(it *chart.Item) (pos, dir math32.Vector2) {
	return it.Anchor, math32.Vec2(0, -1)
}
