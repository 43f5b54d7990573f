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
	chart.Register(chart.Pie, NewPie)
}

// PieSeries draws one wedge per record, its angular span
// proportional to the record's value over the total. All angles are
// rotated back by half of the first slice's span, so the first slice
// straddles the twelve o'clock start rather than beginning at it.
// DonutRatio carves an inner hole as a fraction of the outer radius.
type PieSeries struct {
	base
}

// NewPie returns a pie series for options.
func NewPie(op chart.SeriesOptions) (chart.Series, error) {
	return &PieSeries{base{op: op}}, nil
}

func (sr *PieSeries) Kind() chart.SeriesKinds { return chart.Pie }

// pieStart is the angle wedges are laid out from: twelve o'clock.
const pieStart = -math32.Pi / 2

// SliceAngles returns each record's angular span in radians for the
// given values. Negative and non-finite values contribute zero span.
func SliceAngles(vals []float64) []float32 {
	total := 0.0
	for _, v := range vals {
		if finite(v) && v > 0 {
			total += v
		}
	}
	spans := make([]float32, len(vals))
	if total == 0 {
		return spans
	}
	for i, v := range vals {
		if finite(v) && v > 0 {
			spans[i] = float32(v/total) * 2 * math32.Pi
		}
	}
	return spans
}

func (sr *PieSeries) Layout(c *chart.Chart, hidden map[string]bool) []*chart.Item {
	fields := sr.visibleFields(hidden)
	n := c.Store.Len()
	if n == 0 || len(fields) == 0 {
		return nil
	}
	fld := fields[0]
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = c.Store.Float(fld, i)
	}
	spans := SliceAngles(vals)
	center := c.Content.Center()
	sz := c.Content.Size()
	outer := 0.85 * math32.Min(sz.X, sz.Y) / 2
	if outer <= 0 {
		return nil
	}
	inner := sr.op.DonutRatio * outer
	// rotate everything back by half the first slice's span
	ang := pieStart - spans[0]/2
	items := make([]*chart.Item, 0, n)
	for i, span := range spans {
		sh := &chart.WedgeShape{Center: center, Inner: inner, Outer: outer,
			Start: ang, End: ang + span}
		ang += span
		items = append(items, &chart.Item{
			Shape:  sh,
			Anchor: sh.Midpoint(),
			Record: i, Field: fld, Value: vals[i], Series: sr,
			Callout: true,
		})
	}
	return items
}

func (sr *PieSeries) Draw(c *chart.Chart, sf chart.Surface, group string, items []*chart.Item) {
	for i, it := range items {
		st := c.Theme.SeriesStyle(it.Record) // one color per slice
		if rf := sr.op.Renderer; rf != nil {
			st = rf(st, c.Store, it.Record)
		}
		st = chart.Emphasize(st, it.Emphasis, c.Theme.HighlightWiden)
		it.Shape.Draw(sf, group, "slice"+strconv.Itoa(i), st)
	}
}

// LabelAnchor routes pie labels outward from the wedge rim along the
// wedge normal, for callout placement.
func (sr *PieSeries) LabelAnchor(it *chart.Item) (pos, dir math32.Vector2) {
	sh := it.Shape.(*chart.WedgeShape)
	dir = sh.Normal()
	return sh.Center.Add(dir.MulScalar(sh.Outer)), dir
}
