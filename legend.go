// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"strconv"

	"cogentcore.org/chart/math32"
)

// LegendEntry is one clickable legend row, identifying one value
// field of one series. A series with multiple value fields
// contributes one entry per field.
type LegendEntry struct {
	// Series is the owning series.
	Series Series

	// Field is the value field this entry toggles.
	Field string

	// Label is the entry display text.
	Label string

	// Color is the swatch color.
	Color color.RGBA

	// Box is the entry's drawn extent, for hit testing. Valid after
	// the legend is drawn.
	Box math32.Box2

	// Hidden excludes the field from series layout.
	Hidden bool
}

// Legend lays out one entry per (series, field) pair and toggles
// field visibility. Toggling is idempotent per state: the entry is
// either hidden or shown, and toggling twice restores the original
// layout exactly.
type Legend struct {
	// Options are the legend configuration.
	Options LegendOptions

	// Position is the parsed placement.
	Position LegendPositions

	// Entries are the legend rows in series order, then field order.
	Entries []*LegendEntry

	hidden map[string]bool
}

// NewLegend returns a legend configured by the given options.
func NewLegend(op LegendOptions) (*Legend, error) {
	op.Defaults()
	pos, err := ParseLegendPosition(op.Position)
	if err != nil {
		return nil, err
	}
	return &Legend{Options: op, Position: pos, hidden: map[string]bool{}}, nil
}

func legendKey(sname, field string) string {
	return sname + "\x00" + field
}

// Rebuild rebuilds the entries from the given series, preserving
// hidden state across data and option changes.
func (lg *Legend) Rebuild(series []Series, th *Theme) {
	lg.Entries = lg.Entries[:0]
	ci := 0
	for _, sr := range series {
		op := sr.Config()
		if op.ShowInLegend != nil && !*op.ShowInLegend {
			ci += len(sr.Fields())
			continue
		}
		for _, fld := range sr.Fields() {
			lb := fld
			if len(sr.Fields()) == 1 {
				lb = sr.Name()
			}
			lg.Entries = append(lg.Entries, &LegendEntry{
				Series: sr, Field: fld, Label: lb, Color: th.Color(ci),
				Hidden: lg.hidden[legendKey(sr.Name(), fld)],
			})
			ci++
		}
	}
}

// Toggle flips the entry's hidden state. The caller must queue a
// full relayout; hiding a field changes axis ranges and stacking.
func (lg *Legend) Toggle(e *LegendEntry) {
	e.Hidden = !e.Hidden
	lg.hidden[legendKey(e.Series.Name(), e.Field)] = e.Hidden
}

// HiddenFields returns the hidden field set for the given series,
// or nil when nothing is hidden.
func (lg *Legend) HiddenFields(sr Series) map[string]bool {
	var m map[string]bool
	for _, fld := range sr.Fields() {
		if lg.hidden[legendKey(sr.Name(), fld)] {
			if m == nil {
				m = map[string]bool{}
			}
			m[fld] = true
		}
	}
	return m
}

// EntryAt returns the drawn entry containing the given point, or nil.
func (lg *Legend) EntryAt(pt math32.Vector2) *LegendEntry {
	for _, e := range lg.Entries {
		if e.Box.ContainsPoint(pt) {
			return e
		}
	}
	return nil
}

// vertical reports whether entries stack vertically.
func (lg *Legend) vertical() bool {
	switch lg.Position {
	case LegendLeft, LegendRight, LegendFloat:
		return true
	}
	return false
}

const legendSwatch = 12

// Measure returns the legend block size for the current entries.
func (lg *Legend) Measure(sf Surface, ts TextStyle) math32.Vector2 {
	if len(lg.Entries) == 0 {
		return math32.Vector2{}
	}
	pad := lg.Options.Padding
	sp := lg.Options.ItemSpacing
	var sz math32.Vector2
	for i, e := range lg.Entries {
		tsz := sf.TextSize(e.Label, ts)
		ew := legendSwatch + 4 + tsz.X
		eh := math32.Max(legendSwatch, tsz.Y)
		if lg.vertical() {
			sz.X = math32.Max(sz.X, ew)
			sz.Y += eh
			if i > 0 {
				sz.Y += sp
			}
		} else {
			sz.Y = math32.Max(sz.Y, eh)
			sz.X += ew
			if i > 0 {
				sz.X += sp
			}
		}
	}
	return sz.AddScalar(2 * pad)
}

// Draw draws the legend block with its origin at pos, recording each
// entry's box for hit testing. Hidden entries draw at reduced
// opacity.
func (lg *Legend) Draw(sf Surface, group string, pos math32.Vector2, th *Theme) {
	ts := th.TextStyle()
	pad := lg.Options.Padding
	sp := lg.Options.ItemSpacing
	cur := pos.AddScalar(pad)
	for i, e := range lg.Entries {
		tsz := sf.TextSize(e.Label, ts)
		eh := math32.Max(legendSwatch, tsz.Y)
		ew := legendSwatch + 4 + tsz.X
		st := ShapeStyle{Fill: e.Color, Opacity: 1}
		ets := ts
		if e.Hidden {
			st.Opacity = 0.3
			ets.Color = th.GridColor
		}
		nm := strconv.Itoa(i)
		sw := math32.B2(cur.X, cur.Y+(eh-legendSwatch)/2,
			cur.X+legendSwatch, cur.Y+(eh+legendSwatch)/2)
		sf.Rect(group, "swatch"+nm, sw, st)
		sf.Text(group, "label"+nm, math32.Vec2(cur.X+legendSwatch+4, cur.Y+(eh-tsz.Y)/2), e.Label, ets)
		e.Box = math32.B2(cur.X, cur.Y, cur.X+ew, cur.Y+eh)
		if lg.vertical() {
			cur.Y += eh + sp
		} else {
			cur.X += ew + sp
		}
	}
}
