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
	chart.Register(chart.Bar, NewBar)
}

// BarSeries draws one rectangle per record per visible value field.
// Multiple fields are grouped side by side within each category
// band, or stacked from a shared zero baseline with Stacked set.
// Bars run vertically when the category axis is horizontal, and
// horizontally otherwise.
type BarSeries struct {
	base
}

// NewBar returns a bar series for options.
func NewBar(op chart.SeriesOptions) (chart.Series, error) {
	if op.GutterRatio <= 0 {
		op.GutterRatio = 0.2
	}
	return &BarSeries{base{op: op}}, nil
}

func (sr *BarSeries) Kind() chart.SeriesKinds { return chart.Bar }

// barWidth returns the per-record band width over the full axis
// span: each of the n records gets one band plus a gutter-ratio gap,
// minus the one gap that has no following band.
func barWidth(span float32, n int, gutter float32) float32 {
	if n <= 0 {
		return 0
	}
	return span / (float32(n)*(1+gutter) - gutter)
}

func (sr *BarSeries) Layout(c *chart.Chart, hidden map[string]bool) []*chart.Item {
	bx, vx := c.BaseAxis(sr), c.ValueAxis(sr)
	if bx == nil || vx == nil {
		return nil
	}
	fields := sr.visibleFields(hidden)
	n := c.Store.Len()
	if n == 0 || len(fields) == 0 {
		return nil
	}
	horiz := !bx.Horizontal() // horizontal bars on a vertical category axis
	span := math32.Abs(bx.DataToPix(1) - bx.DataToPix(0))
	g := sr.op.GutterRatio
	band := barWidth(span*float32(n), n, g)
	bw := band
	if !sr.op.Stacked {
		// grouped fields subdivide the record band
		bw = band / float32(len(fields))
	}
	zero := vx.DataToPix(0)
	items := make([]*chart.Item, 0, n*len(fields))
	for i := 0; i < n; i++ {
		center := recordX(c, sr, bx, i)
		posSum, negSum := 0.0, 0.0
		for fi, fld := range fields {
			v := c.Store.Float(fld, i)
			if !finite(v) {
				// missing values lay out as zero but never affect ranges
				v = 0
			}
			var lo, hi, from, to float32
			if sr.op.Stacked {
				lo = center - bw/2
				if v >= 0 {
					from, to = vx.DataToPix(posSum), vx.DataToPix(posSum+v)
					posSum += v
				} else {
					from, to = vx.DataToPix(negSum), vx.DataToPix(negSum+v)
					negSum += v
				}
			} else {
				lo = center - band/2 + float32(fi)*bw
				from, to = zero, vx.DataToPix(v)
			}
			hi = lo + bw
			var box math32.Box2
			if horiz {
				box = math32.B2(math32.Min(from, to), lo, math32.Max(from, to), hi)
			} else {
				box = math32.B2(lo, math32.Min(from, to), hi, math32.Max(from, to))
			}
			anchor := math32.Vec2(box.Center().X, box.Min.Y)
			if horiz {
				anchor = math32.Vec2(box.Max.X, box.Center().Y)
			} else if v < 0 {
				anchor = math32.Vec2(box.Center().X, box.Max.Y)
			}
			items = append(items, &chart.Item{
				Shape:  &chart.RectShape{Box: box},
				Anchor: anchor,
				Record: i, Field: fld, Value: v, Series: sr,
			})
		}
	}
	return items
}

func (sr *BarSeries) Draw(c *chart.Chart, sf chart.Surface, group string, items []*chart.Item) {
	for i, it := range items {
		st := c.ItemStyle(sr, sr.fieldIndex(it.Field), it)
		it.Shape.Draw(sf, group, "bar"+strconv.Itoa(i), st)
	}
}

// LabelAnchor places bar labels just beyond the bar end.
func (sr *BarSeries) LabelAnchor(it *chart.Item) (pos, dir math32.Vector2) {
	sh := it.Shape.(*chart.RectShape)
	dir = math32.Vec2(0, -1)
	if it.Anchor.Y >= sh.Box.Max.Y { // negative vertical bar
		dir = math32.Vec2(0, 1)
	}
	if it.Anchor.X >= sh.Box.Max.X { // horizontal bar
		dir = math32.Vec2(1, 0)
	}
	return it.Anchor, dir
}
