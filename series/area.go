// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"cogentcore.org/chart"
	"cogentcore.org/chart/math32"
)

func init() {
	chart.Register(chart.Area, NewArea)
}

// AreaSeries fills between each field's line and the zero baseline.
// With Stacked set, each field's region closes against the layer
// below it instead, so the layers tile without overlap. Record
// shrink follows the line series: blocks average to one point per
// pixel.
type AreaSeries struct {
	base
}

// NewArea returns an area series for options.
func NewArea(op chart.SeriesOptions) (chart.Series, error) {
	return &AreaSeries{base{op: op}}, nil
}

func (sr *AreaSeries) Kind() chart.SeriesKinds { return chart.Area }

func (sr *AreaSeries) Layout(c *chart.Chart, hidden map[string]bool) []*chart.Item {
	bx, vx := c.BaseAxis(sr), c.ValueAxis(sr)
	if bx == nil || vx == nil || c.Store.Len() == 0 {
		return nil
	}
	fields := sr.visibleFields(hidden)
	if len(fields) == 0 {
		return nil
	}
	// lower is the running stacked baseline, in data units per point
	var lower []float64
	var items []*chart.Item
	for _, fld := range fields {
		pts, records, vals := linePoints(c, sr, bx, vx, fld)
		if lower == nil {
			lower = make([]float64, len(pts))
		}
		poly := make([]math32.Vector2, 0, 2*len(pts))
		for pi, p := range pts {
			if sr.op.Stacked {
				vals[pi] += lower[pi]
				p.Y = vx.DataToPix(vals[pi])
				pts[pi] = p
			}
			poly = append(poly, p)
		}
		for pi := len(pts) - 1; pi >= 0; pi-- {
			poly = append(poly, math32.Vec2(pts[pi].X, vx.DataToPix(lower[pi])))
		}
		mid := len(pts) / 2
		items = append(items, &chart.Item{
			Shape:  &chart.PathShape{Points: poly, Closed: true},
			Anchor: pts[mid],
			Record: records[mid], Field: fld, Value: vals[mid], Series: sr,
		})
		if sr.op.Stacked {
			copy(lower, vals)
		}
	}
	return items
}

func (sr *AreaSeries) Draw(c *chart.Chart, sf chart.Surface, group string, items []*chart.Item) {
	for _, it := range items {
		st := c.ItemStyle(sr, sr.fieldIndex(it.Field), it)
		st.Opacity = 0.55 + 0.2*it.Emphasis
		it.Shape.Draw(sf, group, "area."+it.Field, st)
	}
}
