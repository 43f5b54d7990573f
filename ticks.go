// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"cogentcore.org/chart/math32/minmax"
)

// ticks implements the range and tick planner: pure numeric routines
// that compute data extents over bound fields and snap them to
// human-friendly tick steps.

// StackModes selects how multiple bound fields aggregate when
// computing an axis range.
type StackModes int32

const (
	// NoStack takes the true extrema over all fields and records.
	NoStack StackModes = iota

	// Stacked tracks per-record positive and negative field sums
	// separately, so that a stacked chart baseline is always in range.
	Stacked
)

// TickPlan is a snapped, renderable axis extent. Plans are rebuilt
// each layout pass and never mutated in place.
type TickPlan struct {
	// From is the first tick value; always <= the data minimum when pretty.
	From float64

	// To is the last tick value; always >= the data maximum when pretty.
	To float64

	// Step is the value distance between adjacent ticks.
	Step float64

	// Steps is the number of steps between From and To.
	Steps int
}

// Tick returns the value of the i-th tick.
func (tp TickPlan) Tick(i int) float64 {
	return tp.From + float64(i)*tp.Step
}

// IsValid returns false if the plan cannot be rendered:
// non-finite or non-positive step, or inverted bounds.
func (tp TickPlan) IsValid() bool {
	if math.IsNaN(tp.Step) || math.IsInf(tp.Step, 0) || tp.Step <= 0 {
		return false
	}
	return tp.From <= tp.To
}

// RangeOf computes the [min, max] extent of the given fields over all
// records in the store. Non-finite values are ignored. With [Stacked],
// the per-record positive-value sum and negative-value sum across the
// fields each yield one candidate extremum, guaranteeing the zero
// baseline is included. The returned range is invalid (Min > Max) if
// no finite values were found.
func RangeOf(st Store, fields []string, stacked StackModes) minmax.F64 {
	var r minmax.F64
	r.SetInfinity()
	n := st.Len()
	if stacked == Stacked {
		maxPos := math.Inf(-1)
		minNeg := math.Inf(1)
		for i := 0; i < n; i++ {
			pos, neg := 0.0, 0.0
			any := false
			for _, f := range fields {
				v := st.Float(f, i)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				any = true
				if v >= 0 {
					pos += v
				} else {
					neg += v
				}
			}
			if !any {
				continue
			}
			maxPos = math.Max(maxPos, pos)
			minNeg = math.Min(minNeg, neg)
		}
		if !math.IsInf(maxPos, 0) {
			r.Set(math.Min(0, minNeg), maxPos)
		}
		return r
	}
	for _, f := range fields {
		for i := 0; i < n; i++ {
			v := st.Float(f, i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			r.FitValInRange(v)
		}
	}
	return r
}

// snapSteps are the candidate tick step mantissas, multiplied by
// powers of ten to cover any magnitude.
var snapSteps = []float64{1, 2, 5}

// Snap snaps the given data range to a renderable tick plan with
// approximately want ticks. With pretty true, the step is chosen from
// the {1,2,5}x10^n candidate set minimizing the distance between the
// requested and actual step count, while keeping From <= min and
// To >= max. With pretty false the exact bounds are used.
// A degenerate range (min == max) is widened by one unit first.
func Snap(min, max float64, want int, pretty bool) TickPlan {
	if want <= 0 {
		want = 10
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		min, max = 0, 1
	}
	if max < min {
		min, max = max, min
	}
	if min == max {
		max = min + 1
	}
	if !pretty {
		return TickPlan{From: min, To: max, Step: (max - min) / float64(want), Steps: want}
	}
	span := max - min
	mag := math.Floor(math.Log10(span / float64(want)))
	best := TickPlan{}
	bestScore := math.MaxInt32
	for _, m := range []float64{mag - 1, mag, mag + 1} {
		p10 := math.Pow(10, m)
		for _, q := range snapSteps {
			step := q * p10
			if step <= 0 || math.IsInf(step, 0) {
				continue
			}
			from := math.Floor(min/step) * step
			to := math.Ceil(max/step) * step
			if to == from {
				to = from + step
			}
			steps := int(math.Round((to - from) / step))
			if steps < 1 {
				continue
			}
			score := steps - want
			if score < 0 {
				score = -score
			}
			if score < bestScore {
				bestScore = score
				best = TickPlan{From: from, To: to, Step: step, Steps: steps}
			}
		}
	}
	if bestScore == math.MaxInt32 {
		return TickPlan{From: min, To: max, Step: (max - min) / float64(want), Steps: want}
	}
	return best
}

// SnapExact returns a tick plan for explicitly configured bounds,
// skipping prettification. With step > 0 the tick count is
// ceil((to-from)/step); otherwise the span is divided into want steps.
// A degenerate span is widened by one unit before computing the step,
// so the step is never a division by zero.
func SnapExact(min, max float64, step float64, want int) TickPlan {
	if want <= 0 {
		want = 10
	}
	if max < min {
		min, max = max, min
	}
	if min == max {
		max = min + 1
	}
	if step > 0 && !math.IsInf(step, 0) {
		steps := int(math.Ceil((max - min) / step))
		if steps < 1 {
			steps = 1
		}
		return TickPlan{From: min, To: max, Step: step, Steps: steps}
	}
	return TickPlan{From: min, To: max, Step: (max - min) / float64(want), Steps: want}
}

//////// Time

// TimeUnit is one calendar unit in the time snapping table.
// The table is a configuration input, not part of the core algorithm.
type TimeUnit struct {
	// Name identifies the unit (e.g., "day").
	Name string

	// Seconds is the unit span in seconds.
	Seconds float64
}

// DefaultTimeUnits is the default calendar unit table for time axes.
var DefaultTimeUnits = []TimeUnit{
	{"second", 1},
	{"minute", 60},
	{"hour", 3600},
	{"day", 86400},
	{"week", 7 * 86400},
	{"month", 30 * 86400},
	{"year", 365 * 86400},
}

// SnapTime snaps a time range (in unix seconds) to the calendar unit
// from the given table whose tick count is closest to want, with
// ties going to the coarser unit, reusing the same containment
// guarantees as [Snap]. It returns the plan and the selected unit,
// which drives tick label formatting.
func SnapTime(min, max float64, want int, units []TimeUnit) (TickPlan, TimeUnit) {
	if len(units) == 0 {
		units = DefaultTimeUnits
	}
	if want <= 0 {
		want = 10
	}
	if max < min {
		min, max = max, min
	}
	if min == max {
		max = min + units[0].Seconds
	}
	span := max - min
	best := units[0]
	bestScore := math.Inf(1)
	for _, u := range units {
		score := math.Abs(span/u.Seconds - float64(want))
		if score <= bestScore {
			bestScore = score
			best = u
		}
	}
	step := best.Seconds
	from := math.Floor(min/step) * step
	to := math.Ceil(max/step) * step
	if to == from {
		to = from + step
	}
	return TickPlan{From: from, To: to, Step: step, Steps: int(math.Round((to - from) / step))}, best
}
