// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series_test

import (
	"testing"
	"time"

	"cogentcore.org/chart"
	"cogentcore.org/chart/math32"
	_ "cogentcore.org/chart/series"
	"github.com/stretchr/testify/require"
)

// newChart builds a laid-out chart over the given options and
// records, with timers disabled so nothing runs asynchronously.
func newChart(t *testing.T, op *chart.Options, recs ...chart.Record) *chart.Chart {
	t.Helper()
	c, err := chart.New(op, chart.NewTable(recs...), chart.NewRecorder(),
		math32.B2(0, 0, 400, 400))
	require.NoError(t, err)
	c.Scheduler = func(d time.Duration, fn func()) func() { return func() {} }
	c.RefreshNow()
	return c
}

func cartesianOptions(sop chart.SeriesOptions) *chart.Options {
	return &chart.Options{
		Axes: []chart.AxisOptions{
			{Kind: "category", Position: "bottom", Fields: []string{"name"}},
			{Kind: "numeric", Position: "left"},
		},
		Series: []chart.SeriesOptions{sop},
	}
}
