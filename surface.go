// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"cogentcore.org/chart/math32"
)

// surface defines the drawing-surface abstraction that the chart
// renders into, plus an in-memory Recorder implementation used in
// tests and for headless layout.

// ShapeStyle has the draw attributes for a graphical primitive.
type ShapeStyle struct {
	// Fill is the interior color; a zero alpha disables filling.
	Fill color.RGBA

	// Stroke is the outline color; a zero alpha disables stroking.
	Stroke color.RGBA

	// StrokeWidth is the outline width in pixels.
	StrokeWidth float32

	// Opacity multiplies the alpha of both fill and stroke (0-1; 0 means 1).
	Opacity float32
}

// TextStyle has the draw attributes for a text run.
type TextStyle struct {
	// Size is the font size in pixels.
	Size float32

	// Color is the text color.
	Color color.RGBA

	// Rotation is the text rotation in radians.
	Rotation float32
}

// Defaults sets default text styling values.
func (ts *TextStyle) Defaults() {
	if ts.Size == 0 {
		ts.Size = 12
	}
	if ts.Color == (color.RGBA{}) {
		ts.Color = color.RGBA{A: 255}
	}
}

// Surface is the drawing surface the chart renders into. Primitives
// are named within named groups so that repeated passes update rather
// than accumulate; each call returns the primitive's bounding box.
type Surface interface {
	// Clear removes all primitives in the given group.
	Clear(group string)

	// Path creates or updates a polyline or polygon primitive.
	Path(group, name string, points []math32.Vector2, closed bool, st ShapeStyle) math32.Box2

	// Rect creates or updates a rectangle primitive.
	Rect(group, name string, box math32.Box2, st ShapeStyle) math32.Box2

	// Circle creates or updates a circle primitive.
	Circle(group, name string, center math32.Vector2, radius float32, st ShapeStyle) math32.Box2

	// Text creates or updates a text run anchored at the given
	// top-left position.
	Text(group, name string, pos math32.Vector2, text string, st TextStyle) math32.Box2

	// TextSize returns the untransformed size of the given text.
	TextSize(text string, st TextStyle) math32.Vector2
}

//////// Recorder

// RecPrim is one recorded primitive in a [Recorder] surface.
type RecPrim struct {
	Kind   string // path, rect, circle, text
	Points []math32.Vector2
	Box    math32.Box2
	Text   string
	Style  ShapeStyle
}

// Recorder is an in-memory [Surface] that records primitives and
// computes bounding boxes geometrically, with a simple proportional
// text metric. It is used by the tests and for headless layout.
type Recorder struct {
	// Groups has the recorded primitives, keyed by group then name.
	Groups map[string]map[string]*RecPrim
}

// NewRecorder returns a new empty [Recorder] surface.
func NewRecorder() *Recorder {
	return &Recorder{Groups: make(map[string]map[string]*RecPrim)}
}

func (rc *Recorder) group(group string) map[string]*RecPrim {
	g, ok := rc.Groups[group]
	if !ok {
		g = make(map[string]*RecPrim)
		rc.Groups[group] = g
	}
	return g
}

func (rc *Recorder) Clear(group string) {
	delete(rc.Groups, group)
}

func (rc *Recorder) Path(group, name string, points []math32.Vector2, closed bool, st ShapeStyle) math32.Box2 {
	bb := math32.B2Empty()
	for _, p := range points {
		bb.ExpandByPoint(p)
	}
	rc.group(group)[name] = &RecPrim{Kind: "path", Points: points, Box: bb, Style: st}
	return bb
}

func (rc *Recorder) Rect(group, name string, box math32.Box2, st ShapeStyle) math32.Box2 {
	rc.group(group)[name] = &RecPrim{Kind: "rect", Box: box, Style: st}
	return box
}

func (rc *Recorder) Circle(group, name string, center math32.Vector2, radius float32, st ShapeStyle) math32.Box2 {
	bb := math32.Box2{}
	bb.SetFromCenterAndSize(center, math32.Vector2Scalar(2*radius))
	rc.group(group)[name] = &RecPrim{Kind: "circle", Box: bb, Style: st}
	return bb
}

func (rc *Recorder) Text(group, name string, pos math32.Vector2, text string, st TextStyle) math32.Box2 {
	sz := rc.TextSize(text, st)
	bb := math32.Box2{Min: pos, Max: pos.Add(sz)}
	rc.group(group)[name] = &RecPrim{Kind: "text", Box: bb, Text: text}
	return bb
}

// TextSize estimates text extents proportionally to the font size,
// good enough for layout without a font engine.
func (rc *Recorder) TextSize(text string, st TextStyle) math32.Vector2 {
	st.Defaults()
	n := float32(len([]rune(text)))
	sz := math32.Vec2(0.6*st.Size*n, 1.4*st.Size)
	if st.Rotation != 0 {
		bb := math32.B2Empty()
		for _, c := range []math32.Vector2{{}, {X: sz.X}, {Y: sz.Y}, sz} {
			bb.ExpandByPoint(c.Rotate(st.Rotation))
		}
		return bb.Size()
	}
	return sz
}

// Prim returns the recorded primitive with the given group and name,
// or nil if not present.
func (rc *Recorder) Prim(group, name string) *RecPrim {
	g, ok := rc.Groups[group]
	if !ok {
		return nil
	}
	return g[name]
}

// Count returns the number of primitives recorded in the given group.
func (rc *Recorder) Count(group string) int {
	return len(rc.Groups[group])
}
