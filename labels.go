// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chart/math32"
)

// Placer positions item labels and callouts without overlap. Labels
// are placed in item order; each label is clamped into Bounds and
// tested against everything already placed. A label that cannot be
// placed on either side of its anchor is dropped rather than drawn
// overlapping.
type Placer struct {
	// Bounds is the box labels are clamped into, normally the
	// chart's content box.
	Bounds math32.Box2

	placed []math32.Box2
}

// NewPlacer returns a placer clamping into the given bounds.
func NewPlacer(bounds math32.Box2) *Placer {
	return &Placer{Bounds: bounds}
}

// labelOffset is the gap between an anchor and its label box.
const labelOffset = 4

// boxAt returns the label box offset from anchor along dir, with the
// box aligned so it extends away from the anchor.
func labelBoxAt(anchor, dir, sz math32.Vector2) math32.Box2 {
	p := anchor.Add(dir.MulScalar(labelOffset))
	min := p.Sub(sz.MulScalar(0.5))
	// shift by half size along each dominant direction component
	min.X += dir.X * sz.X / 2
	min.Y += dir.Y * sz.Y / 2
	return math32.Box2{Min: min, Max: min.Add(sz)}
}

func (pl *Placer) collides(box math32.Box2) bool {
	for _, b := range pl.placed {
		if box.IntersectsBox(b) {
			return true
		}
	}
	return false
}

func (pl *Placer) clamp(box math32.Box2) math32.Box2 {
	sz := box.Size()
	min := box.Min
	min.X = math32.Clamp(min.X, pl.Bounds.Min.X, pl.Bounds.Max.X-sz.X)
	min.Y = math32.Clamp(min.Y, pl.Bounds.Min.Y, pl.Bounds.Max.Y-sz.Y)
	return math32.Box2{Min: min, Max: min.Add(sz)}
}

// Place draws the label text offset from anchor along dir, clamped
// into the bounds. A label whose box overlaps an already placed
// label loses and is hidden. It reports whether the label was drawn.
func (pl *Placer) Place(sf Surface, group, name, text string, anchor, dir math32.Vector2, ts TextStyle) bool {
	if text == "" {
		return false
	}
	sz := sf.TextSize(text, ts)
	box := pl.clamp(labelBoxAt(anchor, dir, sz))
	if pl.collides(box) {
		return false
	}
	sf.Text(group, name, box.Min, text, ts)
	pl.placed = append(pl.placed, box)
	return true
}

// calloutLeader is the radial length of a callout leader line, and
// calloutElbow the horizontal elbow length.
const (
	calloutLeader = 12
	calloutElbow  = 8
)

// calloutBox returns the leader bend and end points and the text box
// for a callout routed along dir.
func calloutBox(anchor, dir, sz math32.Vector2) (bend, end math32.Vector2, box math32.Box2) {
	bend = anchor.Add(dir.MulScalar(calloutLeader))
	ex := float32(calloutElbow)
	if dir.X < 0 {
		ex = -ex
	}
	end = bend.Add(math32.Vec2(ex, 0))
	tp := math32.Vec2(end.X+2, end.Y-sz.Y/2)
	if ex < 0 {
		tp.X = end.X - 2 - sz.X
	}
	return bend, end, math32.Box2{Min: tp, Max: tp.Add(sz)}
}

// Callout draws the label beyond a two-segment leader line routed
// from anchor outward along dir, with a horizontal elbow. If the
// text box would exit the bounds, the route is recomputed once with
// the normal flipped; the flipped position is used as-is, so
// degenerate layouts may still slightly overlap. It reports whether
// the callout was drawn.
func (pl *Placer) Callout(sf Surface, group, name, text string, anchor, dir math32.Vector2, ts TextStyle, st ShapeStyle) bool {
	if text == "" {
		return false
	}
	sz := sf.TextSize(text, ts)
	bend, end, box := calloutBox(anchor, dir, sz)
	if !pl.Bounds.ContainsBox(box) {
		bend, end, box = calloutBox(anchor, dir.Negate(), sz)
		box = pl.clamp(box)
	}
	sf.Path(group, name+".leader", []math32.Vector2{anchor, bend, end}, false, st)
	sf.Text(group, name, box.Min, text, ts)
	pl.placed = append(pl.placed, box)
	return true
}

// labelText returns the label text for a record, preferring the
// renderer, then the label field, then the formatted value.
func labelText(op LabelOptions, st Store, record int, value float64) string {
	if op.Renderer != nil {
		return op.Renderer(st, record)
	}
	if op.Field != "" {
		return st.Str(op.Field, record)
	}
	return FormatValue(value)
}
