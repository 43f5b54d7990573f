// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"

	"cogentcore.org/chart"
	"cogentcore.org/chart/math32"
)

func init() {
	chart.Register(chart.Scatter, NewScatter)
}

// ScatterSeries draws one marker per record per visible value field
// at the record's (x, y) projection. There is no record shrink: every
// record gets a marker. Hit testing is a circular tolerance around
// each point regardless of the marker shape.
type ScatterSeries struct {
	base
}

// NewScatter returns a scatter series for options.
func NewScatter(op chart.SeriesOptions) (chart.Series, error) {
	if op.PointRadius <= 0 {
		op.PointRadius = 4
	}
	return &ScatterSeries{base{op: op}}, nil
}

func (sr *ScatterSeries) Kind() chart.SeriesKinds { return chart.Scatter }

// Gutter reserves clearance so edge markers are not clipped.
func (sr *ScatterSeries) Gutter() float32 { return sr.op.PointRadius }

func (sr *ScatterSeries) Layout(c *chart.Chart, hidden map[string]bool) []*chart.Item {
	bx, vx := c.BaseAxis(sr), c.ValueAxis(sr)
	if bx == nil || vx == nil {
		return nil
	}
	n := c.Store.Len()
	var items []*chart.Item
	for _, fld := range sr.visibleFields(hidden) {
		for i := 0; i < n; i++ {
			v := c.Store.Float(fld, i)
			if !finite(v) {
				v = 0
			}
			p := math32.Vec2(recordX(c, sr, bx, i), vx.DataToPix(v))
			items = append(items, &chart.Item{
				Shape:  &chart.CircleShape{Center: p, Radius: sr.op.PointRadius},
				Anchor: p,
				Record: i, Field: fld, Value: v, Series: sr,
			})
		}
	}
	return items
}

func (sr *ScatterSeries) Draw(c *chart.Chart, sf chart.Surface, group string, items []*chart.Item) {
	for i, it := range items {
		fi := sr.fieldIndex(it.Field)
		mk := c.Theme.Marker(c.StyleIndex(sr, fi))
		st := c.ItemStyle(sr, fi, it)
		drawMarker(sf, group, fmt.Sprintf("pt%d", i), mk, it.Anchor, sr.op.PointRadius, st)
	}
}

// LabelAnchor places point labels above their marker.
func (sr *ScatterSeries) LabelAnchor(it *chart.Item) (pos, dir math32.Vector2) {
	return it.Anchor, math32.Vec2(0, -1)
}
