// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransitionValue(t *testing.T) {
	t0 := time.Now()
	tr := Transition{Start: 0, End: 1, At: t0,
		Duration: 100 * time.Millisecond, Easing: Linear}

	assert.Equal(t, float32(0), tr.Value(t0))
	assert.InDelta(t, 0.5, tr.Value(t0.Add(50*time.Millisecond)), 1e-6)
	assert.Equal(t, float32(1), tr.Value(t0.Add(200*time.Millisecond)))
	assert.False(t, tr.Done(t0.Add(50*time.Millisecond)))
	assert.True(t, tr.Done(t0.Add(100*time.Millisecond)))
}

func TestTransitionRetarget(t *testing.T) {
	t0 := time.Now()
	tr := Transition{Start: 0, End: 1, At: t0,
		Duration: 100 * time.Millisecond, Easing: Linear}

	// cancel halfway: the reversal starts from the interpolated
	// value, never snapping
	mid := t0.Add(50 * time.Millisecond)
	rev := tr.Retarget(mid, 0)
	assert.InDelta(t, 0.5, rev.Start, 1e-6)
	assert.InDelta(t, 0.5, rev.Value(mid), 1e-6)
	assert.InDelta(t, 0.25, rev.Value(mid.Add(50*time.Millisecond)), 1e-6)
	assert.Equal(t, float32(0), rev.Value(mid.Add(100*time.Millisecond)))
}

func TestTransitionInstant(t *testing.T) {
	tr := Transition{Start: 0, End: 1}
	assert.Equal(t, float32(1), tr.Value(time.Now()))
	assert.True(t, tr.Done(time.Now()))
}

func TestHighlighterAnimated(t *testing.T) {
	h := NewHighlighter(AnimateOptions{On: true,
		Duration: Duration(100 * time.Millisecond), Easing: "linear"})
	a := &Item{}
	b := &Item{}
	t0 := time.Now()

	assert.True(t, h.Set(a, t0))
	assert.False(t, h.Set(a, t0)) // unchanged
	assert.True(t, a.Highlighted)

	assert.True(t, h.Advance(t0.Add(50*time.Millisecond)))
	assert.InDelta(t, 0.5, a.Emphasis, 1e-6)

	// moving to b mid-flight reverses a from its current emphasis
	h.Set(b, t0.Add(50*time.Millisecond))
	h.Advance(t0.Add(100 * time.Millisecond))
	assert.InDelta(t, 0.25, a.Emphasis, 1e-6)
	assert.InDelta(t, 0.5, b.Emphasis, 1e-6)
	assert.False(t, a.Highlighted)
	assert.True(t, b.Highlighted)

	assert.False(t, h.Advance(t0.Add(time.Second)))
	assert.Equal(t, float32(0), a.Emphasis)
	assert.Equal(t, float32(1), b.Emphasis)
}

func TestHighlighterImmediate(t *testing.T) {
	h := NewHighlighter(AnimateOptions{On: false})
	it := &Item{}
	now := time.Now()

	h.Set(it, now)
	assert.Equal(t, float32(1), it.Emphasis)
	h.Set(nil, now)
	assert.Equal(t, float32(0), it.Emphasis)
	assert.False(t, h.Advance(now))
}

func TestHighlighterFinish(t *testing.T) {
	h := NewHighlighter(AnimateOptions{On: true,
		Duration: Duration(100 * time.Millisecond), Easing: "linear"})
	it := &Item{}
	t0 := time.Now()
	h.Set(it, t0)
	h.Advance(t0.Add(10 * time.Millisecond))
	assert.Less(t, it.Emphasis, float32(1))

	h.Finish()
	assert.Equal(t, float32(1), it.Emphasis)
	assert.False(t, h.Advance(t0.Add(20*time.Millisecond)))
}
