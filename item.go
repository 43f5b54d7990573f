// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chart/math32"
)

// item defines the atomic visual unit produced by series layout:
// a shape descriptor in screen space, with an anchor point for
// labels and hit testing, and a back-reference to the source record.

// Shape is a screen-space shape descriptor. All coordinates are in
// chart pixels.
type Shape interface {
	// Contains returns whether the given point is inside the shape,
	// within the given tolerance in pixels.
	Contains(pt math32.Vector2, tolerance float32) bool

	// BBox returns the shape's bounding box.
	BBox() math32.Box2

	// Draw renders the shape into the given surface group and name.
	Draw(sf Surface, group, name string, st ShapeStyle)
}

// RectShape is an axis-aligned rectangle shape.
type RectShape struct {
	Box math32.Box2
}

func (sh *RectShape) Contains(pt math32.Vector2, tolerance float32) bool {
	bb := sh.Box
	bb.ExpandByScalar(tolerance)
	return bb.ContainsPoint(pt)
}

func (sh *RectShape) BBox() math32.Box2 {
	return sh.Box
}

func (sh *RectShape) Draw(sf Surface, group, name string, st ShapeStyle) {
	sf.Rect(group, name, sh.Box, st)
}

// CircleShape is a circle shape.
type CircleShape struct {
	Center math32.Vector2
	Radius float32
}

func (sh *CircleShape) Contains(pt math32.Vector2, tolerance float32) bool {
	return pt.DistanceTo(sh.Center) <= sh.Radius+tolerance
}

func (sh *CircleShape) BBox() math32.Box2 {
	bb := math32.Box2{}
	bb.SetFromCenterAndSize(sh.Center, math32.Vector2Scalar(2*sh.Radius))
	return bb
}

func (sh *CircleShape) Draw(sf Surface, group, name string, st ShapeStyle) {
	sf.Circle(group, name, sh.Center, sh.Radius, st)
}

// PathShape is a polyline or closed polygon shape.
type PathShape struct {
	Points []math32.Vector2
	Closed bool
}

// Contains tests distance to the nearest segment for open paths, and
// bounding containment plus even-odd crossing for closed ones.
func (sh *PathShape) Contains(pt math32.Vector2, tolerance float32) bool {
	if sh.Closed {
		return sh.containsPoly(pt)
	}
	for i := 1; i < len(sh.Points); i++ {
		if segmentDistance(sh.Points[i-1], sh.Points[i], pt) <= tolerance {
			return true
		}
	}
	return false
}

func (sh *PathShape) containsPoly(pt math32.Vector2) bool {
	n := len(sh.Points)
	if n < 3 {
		return false
	}
	in := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := sh.Points[i], sh.Points[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

func (sh *PathShape) BBox() math32.Box2 {
	bb := math32.B2Empty()
	for _, p := range sh.Points {
		bb.ExpandByPoint(p)
	}
	return bb
}

func (sh *PathShape) Draw(sf Surface, group, name string, st ShapeStyle) {
	sf.Path(group, name, sh.Points, sh.Closed, st)
}

// segmentDistance returns the distance from point p to segment a-b.
func segmentDistance(a, b, p math32.Vector2) float32 {
	ab := b.Sub(a)
	ln := ab.Dot(ab)
	if ln == 0 {
		return p.DistanceTo(a)
	}
	t := math32.Clamp(p.Sub(a).Dot(ab)/ln, 0, 1)
	return p.DistanceTo(a.Add(ab.MulScalar(t)))
}

// WedgeShape is an annular wedge (pie or gauge slice): the region
// between two radii and two angles around a center. Angles are in
// radians; End >= Start.
type WedgeShape struct {
	Center math32.Vector2
	Inner  float32
	Outer  float32
	Start  float32
	End    float32
}

// Contains performs the polar containment test: the point's angle via
// Atan2 is normalized into the slice's [Start, End) span and its
// radius checked against [Inner, Outer].
func (sh *WedgeShape) Contains(pt math32.Vector2, tolerance float32) bool {
	d := pt.Sub(sh.Center)
	rho := d.Length()
	if rho < sh.Inner-tolerance || rho > sh.Outer+tolerance {
		return false
	}
	ang := math32.Mod(d.Angle()-sh.Start, 2*math32.Pi)
	if ang < 0 {
		ang += 2 * math32.Pi
	}
	return ang < sh.End-sh.Start
}

func (sh *WedgeShape) BBox() math32.Box2 {
	bb := math32.B2Empty()
	for _, p := range sh.outline() {
		bb.ExpandByPoint(p)
	}
	return bb
}

// Midpoint returns the point at the angular and radial middle of the
// wedge, used as the label/callout anchor.
func (sh *WedgeShape) Midpoint() math32.Vector2 {
	ang := 0.5 * (sh.Start + sh.End)
	rho := 0.5 * (sh.Inner + sh.Outer)
	return sh.Center.Add(math32.Vec2(math32.Cos(ang), math32.Sin(ang)).MulScalar(rho))
}

// Normal returns the unit vector pointing outward through the wedge's
// angular midpoint.
func (sh *WedgeShape) Normal() math32.Vector2 {
	ang := 0.5 * (sh.Start + sh.End)
	return math32.Vec2(math32.Cos(ang), math32.Sin(ang))
}

// outline samples the wedge into a closed polygon.
func (sh *WedgeShape) outline() []math32.Vector2 {
	span := sh.End - sh.Start
	n := int(math32.Ceil(span/(math32.Pi/24))) + 1
	if n < 2 {
		n = 2
	}
	pts := make([]math32.Vector2, 0, 2*n+1)
	for i := 0; i < n; i++ {
		a := sh.Start + span*float32(i)/float32(n-1)
		pts = append(pts, sh.Center.Add(math32.Vec2(math32.Cos(a), math32.Sin(a)).MulScalar(sh.Outer)))
	}
	if sh.Inner > 0 {
		for i := n - 1; i >= 0; i-- {
			a := sh.Start + span*float32(i)/float32(n-1)
			pts = append(pts, sh.Center.Add(math32.Vec2(math32.Cos(a), math32.Sin(a)).MulScalar(sh.Inner)))
		}
	} else {
		pts = append(pts, sh.Center)
	}
	return pts
}

func (sh *WedgeShape) Draw(sf Surface, group, name string, st ShapeStyle) {
	sf.Path(group, name, sh.outline(), true, st)
}

//////// Item

// Item is the atomic visual unit of a series: one shape per source
// record. Items are discarded and rebuilt wholesale on every draw
// pass; the only persistent identity is the record index.
type Item struct {
	// Shape is the screen-space shape descriptor.
	Shape Shape

	// Anchor is the screen point used for label placement and as the
	// representative position of the item.
	Anchor math32.Vector2

	// Record is the index of the source record in the store.
	Record int

	// Field is the value field the item was built from.
	Field string

	// Value is the source data value.
	Value float64

	// Series is the owning series.
	Series Series

	// Callout requests leader-line label placement instead of a
	// plain offset label.
	Callout bool

	// Label is the resolved label text, if any.
	Label string

	// Highlighted is the target highlight state.
	Highlighted bool

	// Emphasis is the current interpolated highlight emphasis (0-1).
	Emphasis float32
}
