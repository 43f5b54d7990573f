// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"time"

	"cogentcore.org/chart/math32"
)

// EasingFunc maps normalized transition time in [0, 1] to a
// normalized progress value.
type EasingFunc func(t float32) float32

// Linear is constant-rate easing.
func Linear(t float32) float32 { return t }

// EaseInOut accelerates in and decelerates out (smoothstep).
func EaseInOut(t float32) float32 { return t * t * (3 - 2*t) }

// ParseEasing returns the easing function with the given name,
// defaulting to EaseInOut.
func ParseEasing(s string) EasingFunc {
	if s == "linear" {
		return Linear
	}
	return EaseInOut
}

// Transition interpolates a value from Start to End over Duration.
// It is a value object driven by an explicit clock: callers pass now
// to Value, so tests can step time deterministically.
type Transition struct {
	// Start and End are the interpolation endpoints.
	Start, End float32

	// At is when the transition began.
	At time.Time

	// Duration is the transition length; zero jumps to End.
	Duration time.Duration

	// Easing is the easing function; nil means EaseInOut.
	Easing EasingFunc
}

// Value returns the interpolated value at the given time, clamped to
// the endpoints.
func (tr Transition) Value(now time.Time) float32 {
	if tr.Duration <= 0 {
		return tr.End
	}
	t := math32.Clamp(float32(now.Sub(tr.At))/float32(tr.Duration), 0, 1)
	ease := tr.Easing
	if ease == nil {
		ease = EaseInOut
	}
	return tr.Start + ease(t)*(tr.End-tr.Start)
}

// Done reports whether the transition has reached End.
func (tr Transition) Done(now time.Time) bool {
	return tr.Duration <= 0 || !now.Before(tr.At.Add(tr.Duration))
}

// Retarget returns a transition toward the new end value, starting
// from the current interpolated value rather than snapping, so a
// cancelled transition reverses smoothly from wherever it was.
func (tr Transition) Retarget(now time.Time, end float32) Transition {
	return Transition{Start: tr.Value(now), End: end, At: now,
		Duration: tr.Duration, Easing: tr.Easing}
}

// Highlighter tracks the hovered item and drives each item's
// Emphasis between 0 and 1 through transitions. Moving off an item
// mid-transition retargets from the current emphasis, never
// snapping. With animation off, emphasis jumps immediately.
type Highlighter struct {
	// Duration is the emphasis transition length.
	Duration time.Duration

	// Easing is the transition easing.
	Easing EasingFunc

	// Animate enables transitions; off, emphasis changes jump.
	Animate bool

	current *Item
	active  map[*Item]Transition
}

// NewHighlighter returns a highlighter with the given animation
// options applied.
func NewHighlighter(op AnimateOptions) *Highlighter {
	return &Highlighter{
		Duration: time.Duration(op.Duration),
		Easing:   ParseEasing(op.Easing),
		Animate:  op.On,
		active:   map[*Item]Transition{},
	}
}

// Current returns the currently highlighted item, or nil.
func (h *Highlighter) Current() *Item { return h.current }

// Set makes it the highlighted item (nil clears), starting emphasis
// transitions for the items entering and leaving. It reports whether
// the highlighted item changed.
func (h *Highlighter) Set(it *Item, now time.Time) bool {
	if it == h.current {
		return false
	}
	if h.current != nil {
		h.retarget(h.current, 0, now)
	}
	if it != nil {
		h.retarget(it, 1, now)
	}
	h.current = it
	return true
}

func (h *Highlighter) retarget(it *Item, end float32, now time.Time) {
	if !h.Animate {
		it.Emphasis = end
		it.Highlighted = end > 0
		delete(h.active, it)
		return
	}
	tr, ok := h.active[it]
	if !ok {
		tr = Transition{Start: it.Emphasis, End: it.Emphasis,
			Duration: h.Duration, Easing: h.Easing}
	}
	h.active[it] = tr.Retarget(now, end)
	it.Highlighted = end > 0
}

// Advance steps all active transitions to the given time, updating
// each item's Emphasis, and reports whether any transition is still
// running.
func (h *Highlighter) Advance(now time.Time) bool {
	for it, tr := range h.active {
		it.Emphasis = tr.Value(now)
		if tr.Done(now) {
			delete(h.active, it)
		}
	}
	return len(h.active) > 0
}

// Finish snaps every in-flight transition to its end value
// immediately. A new layout pass finishes animations rather than
// letting them overlap the rebuilt items.
func (h *Highlighter) Finish() {
	for it, tr := range h.active {
		it.Emphasis = tr.End
		delete(h.active, it)
	}
}

// Reset drops all items and transitions, for use when a relayout
// replaces the item set.
func (h *Highlighter) Reset() {
	h.current = nil
	h.active = map[*Item]Transition{}
}

// Emphasize returns the style widened and brightened by the item's
// emphasis, scaled by widen pixels at full emphasis.
func Emphasize(st ShapeStyle, emphasis, widen float32) ShapeStyle {
	if emphasis <= 0 {
		return st
	}
	st.StrokeWidth += emphasis * widen
	st.Opacity = math32.Min(1, st.Opacity+0.2*emphasis)
	return st
}
