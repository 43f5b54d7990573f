// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"time"

	"cogentcore.org/chart/math32"
)

// hitTolerance widens item shapes during hit testing, in pixels.
const hitTolerance = 3

// dragThreshold is how far a pressed pointer travels before the press
// becomes a drag, in pixels.
const dragThreshold = 4

// doubleClickDelay is the longest gap between two releases of the
// same item that still counts as a double click.
const doubleClickDelay = 400 * time.Millisecond

// ItemAt returns the first hit item at the given point, or nil.
// Series are tested in draw order and the first match wins, so draw
// order breaks ties. Shapes are widened by the standard tolerance.
func (c *Chart) ItemAt(pt math32.Vector2) *Item {
	for _, sr := range c.Series {
		if !sr.Config().Highlight {
			continue
		}
		items := c.items[sr]
		if ht, ok := sr.(HitTester); ok {
			if it := ht.HitTest(c, items, pt, hitTolerance); it != nil {
				return it
			}
			continue
		}
		for _, it := range items {
			if it.Shape != nil && it.Shape.Contains(pt, hitTolerance) {
				return it
			}
		}
	}
	return nil
}

// PointerMove updates the highlight from a pointer position. When
// the hit item changes, emphasis transitions start for the items
// entering and leaving, and animation frames run until they settle.
func (c *Chart) PointerMove(pt math32.Vector2) {
	if c.state != ChartIdle {
		return
	}
	if c.pressItem != nil {
		c.dragMove(pt)
		return
	}
	it := c.ItemAt(pt)
	if !c.Highlight.Set(it, c.Now()) {
		return
	}
	if c.OnHighlight != nil {
		c.OnHighlight(it)
	}
	if c.Highlight.Animate {
		c.startFrames()
		return
	}
	c.Highlight.Advance(c.Now())
	c.state = ChartDrawing
	c.drawSeries(false)
	c.state = ChartIdle
}

// dragMove routes motion while an item is pressed: past the threshold
// the press becomes a drag, and every further move is a drag step.
func (c *Chart) dragMove(pt math32.Vector2) {
	if !c.dragging {
		if pt.DistanceTo(c.pressPt) < dragThreshold {
			return
		}
		c.dragging = true
		if c.OnDragStart != nil {
			c.OnDragStart(c.pressItem, c.pressPt)
		}
	}
	if c.OnDrag != nil {
		c.OnDrag(c.pressItem, pt)
	}
}

// PointerLeave clears the highlight. A press or drag in flight is
// left alone; PointerUp completes it.
func (c *Chart) PointerLeave() {
	if c.pressItem != nil {
		return
	}
	c.PointerMove(math32.Vec2(-1e9, -1e9))
}

// PointerDown handles a press: a legend entry toggles its field and
// queues a relayout; otherwise a hit item is reported to OnSelect and
// tracked so PointerMove and PointerUp can complete a drag or click.
func (c *Chart) PointerDown(pt math32.Vector2) {
	if c.Legend != nil {
		if e := c.Legend.EntryAt(pt); e != nil {
			c.Legend.Toggle(e)
			c.Refresh()
			return
		}
	}
	c.dragging = false
	c.pressPt = pt
	c.pressItem = c.ItemAt(pt)
	if c.pressItem != nil && c.OnSelect != nil {
		c.OnSelect(c.pressItem)
	}
}

// PointerUp completes a press. A drag in flight ends with OnDragEnd;
// otherwise the released item is reported through OnRelease, and a
// quick second release of the same item through OnDoubleClick.
func (c *Chart) PointerUp(pt math32.Vector2) {
	press := c.pressItem
	c.pressItem = nil
	if c.dragging {
		c.dragging = false
		if c.OnDragEnd != nil {
			c.OnDragEnd(press, pt)
		}
		return
	}
	it := c.ItemAt(pt)
	if it == nil {
		c.lastClick = nil
		return
	}
	if c.OnRelease != nil {
		c.OnRelease(it)
	}
	now := c.Now()
	if it == c.lastClick && now.Sub(c.lastClickAt) <= doubleClickDelay {
		c.lastClick = nil
		if c.OnDoubleClick != nil {
			c.OnDoubleClick(it)
		}
		return
	}
	c.lastClick = it
	c.lastClickAt = now
}
