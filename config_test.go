// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptionsYAML(t *testing.T) {
	src := `
animate:
  on: true
  duration: 150ms
legend:
  position: bottom
axes:
  - kind: category
    position: bottom
    fields: [name]
  - kind: numeric
    position: left
    majorTickSteps: 5
series:
  - kind: bar
    yFields: [a, b]
    stacked: true
`
	op, err := ReadOptions(strings.NewReader(src), ".yaml")
	require.NoError(t, err)
	assert.True(t, op.Animate.On)
	assert.Equal(t, Duration(150*time.Millisecond), op.Animate.Duration)
	require.NotNil(t, op.Legend)
	assert.Equal(t, "bottom", op.Legend.Position)
	assert.Equal(t, float32(5), op.Legend.Padding) // defaults applied
	require.Len(t, op.Axes, 2)
	assert.Equal(t, []string{"name"}, op.Axes[0].Fields)
	assert.Equal(t, 5, op.Axes[1].MajorTickSteps)
	require.Len(t, op.Series, 1)
	assert.True(t, op.Series[0].Stacked)
	assert.Equal(t, float32(10), op.InsetPadding)
}

func TestReadOptionsTOML(t *testing.T) {
	src := `
insetPadding = 16.0

[[series]]
kind = "line"
yFields = ["v"]
`
	op, err := ReadOptions(strings.NewReader(src), ".toml")
	require.NoError(t, err)
	assert.Equal(t, float32(16), op.InsetPadding)
	require.Len(t, op.Series, 1)
	assert.Equal(t, "line", op.Series[0].Kind)
}

func TestReadOptionsUnknownFormat(t *testing.T) {
	_, err := ReadOptions(strings.NewReader("{}"), ".json")
	assert.Error(t, err)
}

func TestParsePositions(t *testing.T) {
	for nm, want := range map[string]AxisPositions{
		"left": Left, "Right": Right, "TOP": Top, "bottom": Bottom,
		"radial": Radial, "gauge": Gauge,
	} {
		got, err := ParseAxisPosition(nm)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseAxisPosition("middle")
	assert.Error(t, err)

	_, err = ParseAxisKind("fancy")
	assert.Error(t, err)
	_, err = ParseLegendPosition("corner")
	assert.Error(t, err)
}
