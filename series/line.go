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
	chart.Register(chart.Line, NewLine)
}

// LineSeries connects record values with one open polyline per
// visible value field. When there are more records than horizontal
// pixels, adjacent records are block-averaged to one point per pixel
// before path construction, so paths never carry sub-pixel segments.
// Items are the per-point markers; hit testing also accepts points
// within tolerance of a segment, resolving to the nearer endpoint.
type LineSeries struct {
	base
}

// NewLine returns a line series for options.
func NewLine(op chart.SeriesOptions) (chart.Series, error) {
	return &LineSeries{base{op: op}}, nil
}

func (sr *LineSeries) Kind() chart.SeriesKinds { return chart.Line }

// Gutter reserves clearance for point markers.
func (sr *LineSeries) Gutter() float32 { return sr.op.PointRadius }

// linePoints maps the records of one field to screen points,
// block-averaging when they outnumber the pixels. The returned
// records slice has the source record index of each point's block
// start.
func linePoints(c *chart.Chart, sr chart.Series, bx, vx *chart.Axis, field string) (pts []math32.Vector2, records []int, vals []float64) {
	n := c.Store.Len()
	span := int(math32.Abs(bx.DataToPix(float64(n)) - bx.DataToPix(0)))
	if bx.Kind != chart.CategoryAxis {
		span = int(math32.Abs(bx.DataToPix(bx.Range.Max) - bx.DataToPix(bx.Range.Min)))
	}
	block := 1
	if span > 0 && n > span {
		block = (n + span - 1) / span
	}
	for i := 0; i < n; i += block {
		hi := min(i+block, n)
		var sx float32
		var sv float64
		for j := i; j < hi; j++ {
			sx += recordX(c, sr, bx, j)
			v := c.Store.Float(field, j)
			if !finite(v) {
				v = 0
			}
			sv += v
		}
		m := float64(hi - i)
		v := sv / m
		pts = append(pts, math32.Vec2(sx/float32(hi-i), vx.DataToPix(v)))
		records = append(records, i)
		vals = append(vals, v)
	}
	return pts, records, vals
}

func (sr *LineSeries) Layout(c *chart.Chart, hidden map[string]bool) []*chart.Item {
	bx, vx := c.BaseAxis(sr), c.ValueAxis(sr)
	if bx == nil || vx == nil || c.Store.Len() == 0 {
		return nil
	}
	r := sr.op.PointRadius
	if r <= 0 {
		r = 2
	}
	var items []*chart.Item
	for _, fld := range sr.visibleFields(hidden) {
		pts, records, vals := linePoints(c, sr, bx, vx, fld)
		for pi, p := range pts {
			items = append(items, &chart.Item{
				Shape:  &chart.CircleShape{Center: p, Radius: r},
				Anchor: p,
				Record: records[pi], Field: fld, Value: vals[pi], Series: sr,
			})
		}
	}
	return items
}

func (sr *LineSeries) Draw(c *chart.Chart, sf chart.Surface, group string, items []*chart.Item) {
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
		st := c.Theme.SeriesStyle(c.StyleIndex(sr, fi))
		st.Fill.A = 0 // stroke only
		pts := make([]math32.Vector2, len(fits))
		for i, it := range fits {
			pts[i] = it.Anchor
		}
		sf.Path(group, "line."+fld, pts, false, st)
		if sr.op.PointRadius > 0 {
			mk := c.Theme.Marker(c.StyleIndex(sr, fi))
			for i, it := range fits {
				mst := c.ItemStyle(sr, fi, it)
				drawMarker(sf, group, fmt.Sprintf("pt.%s.%d", fld, i), mk, it.Anchor, sr.op.PointRadius, mst)
			}
		}
	}
}

// HitTest accepts hits on the point markers first, then on the
// segments between them, returning the nearer endpoint's item.
func (sr *LineSeries) HitTest(c *chart.Chart, items []*chart.Item, pt math32.Vector2, tolerance float32) *chart.Item {
	for _, it := range items {
		if it.Shape.Contains(pt, tolerance) {
			return it
		}
	}
	var prev *chart.Item
	for _, it := range items {
		if prev != nil && prev.Field == it.Field {
			if segDistance(prev.Anchor, it.Anchor, pt) <= tolerance {
				if pt.DistanceTo(prev.Anchor) <= pt.DistanceTo(it.Anchor) {
					return prev
				}
				return it
			}
		}
		prev = it
	}
	return nil
}

// LabelAnchor places point labels above their marker.
func (sr *LineSeries) LabelAnchor(it *chart.Item) (pos, dir math32.Vector2) {
	return it.Anchor, math32.Vec2(0, -1)
}

// segDistance returns the distance from p to the segment ab.
func segDistance(a, b, p math32.Vector2) float32 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.DistanceTo(a)
	}
	t := math32.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return p.DistanceTo(a.Add(ab.MulScalar(t)))
}
