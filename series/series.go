// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series provides the standard series kinds: bar, line,
// area, scatter, pie, gauge and radar. Importing the package
// registers them all with [chart.Register].
package series

import (
	"math"

	"cogentcore.org/chart"
	"cogentcore.org/chart/math32"
)

// base carries the options and implements the parts of
// [chart.Series] shared by every kind.
type base struct {
	op chart.SeriesOptions
}

func (b *base) Name() string                 { return b.op.Name }
func (b *base) Config() *chart.SeriesOptions { return &b.op }
func (b *base) Fields() []string             { return b.op.YFields }
func (b *base) Stacks() bool                 { return b.op.Stacked }

// visibleFields returns the value fields minus the hidden set,
// keeping field order.
func (b *base) visibleFields(hidden map[string]bool) []string {
	if len(hidden) == 0 {
		return b.op.YFields
	}
	vis := make([]string, 0, len(b.op.YFields))
	for _, f := range b.op.YFields {
		if !hidden[f] {
			vis = append(vis, f)
		}
	}
	return vis
}

// fieldIndex returns the position of field in the full field list.
func (b *base) fieldIndex(field string) int {
	for i, f := range b.op.YFields {
		if f == field {
			return i
		}
	}
	return 0
}

// recordX returns the base-axis pixel coordinate for record i:
// the category band center, or the projected XField value.
func recordX(c *chart.Chart, sr chart.Series, ax *chart.Axis, i int) float32 {
	if ax == nil {
		return 0
	}
	if ax.Kind == chart.CategoryAxis {
		return ax.DataToPix(float64(i) + 0.5)
	}
	xf := sr.Config().XField
	if xf == "" {
		return ax.DataToPix(float64(i))
	}
	return ax.DataToPix(c.Store.Float(xf, i))
}

// finite reports whether v is a usable data value.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// markerPoints returns the closed outline of a non-circle marker
// centered at p with the given radius.
func markerPoints(mk chart.Markers, p math32.Vector2, r float32) []math32.Vector2 {
	switch mk {
	case chart.MarkerSquare:
		return []math32.Vector2{
			{X: p.X - r, Y: p.Y - r}, {X: p.X + r, Y: p.Y - r},
			{X: p.X + r, Y: p.Y + r}, {X: p.X - r, Y: p.Y + r}}
	case chart.MarkerDiamond:
		return []math32.Vector2{
			{X: p.X, Y: p.Y - r}, {X: p.X + r, Y: p.Y},
			{X: p.X, Y: p.Y + r}, {X: p.X - r, Y: p.Y}}
	case chart.MarkerTriangle:
		return []math32.Vector2{
			{X: p.X, Y: p.Y - r}, {X: p.X + r, Y: p.Y + r},
			{X: p.X - r, Y: p.Y + r}}
	}
	return nil
}

// drawMarker draws the given marker shape at p.
func drawMarker(sf chart.Surface, group, name string, mk chart.Markers, p math32.Vector2, r float32, st chart.ShapeStyle) {
	if pts := markerPoints(mk, p, r); pts != nil {
		sf.Path(group, name, pts, true, st)
		return
	}
	sf.Circle(group, name, p, r, st)
}
