// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// config defines the chart configuration surface, loadable from
// YAML or TOML files by extension.

// AxisPositions key the chart's axes by edge, or by the radial and
// gauge positions for polar chart kinds.
type AxisPositions int32

const (
	// Left is the left edge.
	Left AxisPositions = iota

	// Right is the right edge.
	Right

	// Top is the top edge.
	Top

	// Bottom is the bottom edge.
	Bottom

	// Radial is the radial axis of a radar chart.
	Radial

	// Gauge is the arc axis of a gauge chart.
	Gauge
)

var axisPositionNames = map[string]AxisPositions{
	"left": Left, "right": Right, "top": Top, "bottom": Bottom,
	"radial": Radial, "gauge": Gauge,
}

// String returns the lower-case name of the position.
func (ap AxisPositions) String() string {
	for nm, v := range axisPositionNames {
		if v == ap {
			return nm
		}
	}
	return "left"
}

// ParseAxisPosition returns the position with the given name.
func ParseAxisPosition(s string) (AxisPositions, error) {
	ap, ok := axisPositionNames[strings.ToLower(s)]
	if !ok {
		return Left, fmt.Errorf("chart: unknown axis position %q", s)
	}
	return ap, nil
}

// StyleRenderer is a per-item renderer callback: a pure function from
// the default attributes, store and record index to the final
// attributes, invoked once per item per pass.
type StyleRenderer func(def ShapeStyle, st Store, record int) ShapeStyle

// LabelRenderer produces the label text for a record.
type LabelRenderer func(st Store, record int) string

// LabelOptions configure per-item or axis label rendering.
type LabelOptions struct {
	// Display turns label rendering on.
	Display bool `yaml:"display" toml:"display"`

	// Field is the store field supplying the label text.
	Field string `yaml:"field,omitempty" toml:"field,omitempty"`

	// Renderer optionally overrides the label text per record.
	// Only settable in code, not from config files.
	Renderer LabelRenderer `yaml:"-" toml:"-"`
}

// Duration is a [time.Duration] that unmarshals from strings like
// "250ms" in YAML and TOML files.
type Duration time.Duration

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(b []byte) error {
	td, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(td)
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.UnmarshalText([]byte(n.Value))
}

// AnimateOptions configure the highlight and redraw transitions.
type AnimateOptions struct {
	// On enables animated transitions.
	On bool `yaml:"on" toml:"on"`

	// Duration is the transition duration; defaults to 250ms.
	Duration Duration `yaml:"duration,omitempty" toml:"duration,omitempty"`

	// Easing names the easing function: linear or easeinout.
	Easing string `yaml:"easing,omitempty" toml:"easing,omitempty"`
}

// LegendPositions place the legend block relative to the content box.
type LegendPositions int32

const (
	// LegendRight stacks entries vertically at the right edge.
	LegendRight LegendPositions = iota

	// LegendLeft stacks entries vertically at the left edge.
	LegendLeft

	// LegendTop stacks entries horizontally above the chart.
	LegendTop

	// LegendBottom stacks entries horizontally below the chart.
	LegendBottom

	// LegendFloat places the legend inside the content box at its
	// configured float position, reserving no edge space.
	LegendFloat
)

var legendPositionNames = map[string]LegendPositions{
	"right": LegendRight, "left": LegendLeft, "top": LegendTop,
	"bottom": LegendBottom, "float": LegendFloat,
}

// ParseLegendPosition returns the legend position with the given name.
func ParseLegendPosition(s string) (LegendPositions, error) {
	lp, ok := legendPositionNames[strings.ToLower(s)]
	if !ok {
		return LegendRight, fmt.Errorf("chart: unknown legend position %q", s)
	}
	return lp, nil
}

// LegendOptions configure the legend block.
type LegendOptions struct {
	// Position places the legend relative to the content box.
	Position string `yaml:"position,omitempty" toml:"position,omitempty"`

	// Padding is the inner padding of the legend block in pixels.
	Padding float32 `yaml:"padding,omitempty" toml:"padding,omitempty"`

	// ItemSpacing is the gap between entries in pixels.
	ItemSpacing float32 `yaml:"itemSpacing,omitempty" toml:"itemSpacing,omitempty"`

	// FloatPos is the legend origin for the float position.
	FloatPos [2]float32 `yaml:"floatPos,omitempty" toml:"floatPos,omitempty"`
}

// Defaults sets default legend option values.
func (lo *LegendOptions) Defaults() {
	if lo.Padding == 0 {
		lo.Padding = 5
	}
	if lo.ItemSpacing == 0 {
		lo.ItemSpacing = 10
	}
	if lo.Position == "" {
		lo.Position = "right"
	}
}

// GridModes select the grid rendering for an axis.
type GridModes int32

const (
	// GridOff draws no grid.
	GridOff GridModes = iota

	// GridLines draws a line across the content box at each tick.
	GridLines

	// GridBands fills alternating bands between ticks.
	GridBands
)

// AxisOptions configure one axis.
type AxisOptions struct {
	// Kind names the axis kind: category, numeric, time, gauge, radial.
	Kind string `yaml:"kind" toml:"kind"`

	// Position names the edge: left, right, top, bottom, radial, gauge.
	Position string `yaml:"position" toml:"position"`

	// Fields are the bound record fields.
	Fields []string `yaml:"fields" toml:"fields"`

	// Minimum fixes the lower bound, skipping prettification.
	Minimum *float64 `yaml:"minimum,omitempty" toml:"minimum,omitempty"`

	// Maximum fixes the upper bound, skipping prettification.
	Maximum *float64 `yaml:"maximum,omitempty" toml:"maximum,omitempty"`

	// MajorTickSteps is the desired major tick count (0 = default 10).
	MajorTickSteps int `yaml:"majorTickSteps,omitempty" toml:"majorTickSteps,omitempty"`

	// MinorTickSteps is the number of minor subdivisions per major step.
	MinorTickSteps int `yaml:"minorTickSteps,omitempty" toml:"minorTickSteps,omitempty"`

	// TickStep fixes the tick step when Minimum/Maximum are set.
	TickStep float64 `yaml:"tickStep,omitempty" toml:"tickStep,omitempty"`

	// Title is the axis title text.
	Title string `yaml:"title,omitempty" toml:"title,omitempty"`

	// Grid names the grid mode: off, lines, bands.
	Grid string `yaml:"grid,omitempty" toml:"grid,omitempty"`

	// Label configures tick label rendering.
	Label LabelOptions `yaml:"label,omitempty" toml:"label,omitempty"`

	// TimeUnits overrides the calendar unit table for time axes.
	TimeUnits []TimeUnit `yaml:"timeUnits,omitempty" toml:"timeUnits,omitempty"`
}

// SeriesOptions configure one series.
type SeriesOptions struct {
	// Kind names the series kind: bar, line, area, scatter, pie,
	// gauge, radar.
	Kind string `yaml:"kind" toml:"kind"`

	// Name identifies the series; defaults to kind plus index.
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`

	// XField is the record field bound to the x (or angle) dimension.
	XField string `yaml:"xField,omitempty" toml:"xField,omitempty"`

	// YFields are the record fields bound to the y (or length)
	// dimension; multiple fields make a grouped or stacked series.
	YFields []string `yaml:"yFields" toml:"yFields"`

	// Axes name the bound axis positions (one or two).
	Axes []string `yaml:"axes,omitempty" toml:"axes,omitempty"`

	// Stacked accumulates multiple YFields from a shared baseline.
	Stacked bool `yaml:"stacked,omitempty" toml:"stacked,omitempty"`

	// ShowInLegend opts the series into the legend; defaults to true.
	ShowInLegend *bool `yaml:"showInLegend,omitempty" toml:"showInLegend,omitempty"`

	// Highlight enables hover highlighting for this series' items.
	Highlight bool `yaml:"highlight,omitempty" toml:"highlight,omitempty"`

	// DonutRatio is the inner radius as a fraction of the outer
	// radius for pie and gauge series.
	DonutRatio float32 `yaml:"donutRatio,omitempty" toml:"donutRatio,omitempty"`

	// GutterRatio is the bar gap as a fraction of the bar width.
	GutterRatio float32 `yaml:"gutterRatio,omitempty" toml:"gutterRatio,omitempty"`

	// PointRadius is the marker radius for scatter series in pixels.
	PointRadius float32 `yaml:"pointRadius,omitempty" toml:"pointRadius,omitempty"`

	// Label configures per-item labels.
	Label LabelOptions `yaml:"label,omitempty" toml:"label,omitempty"`

	// Renderer optionally adjusts each item's final draw attributes.
	// Only settable in code, not from config files.
	Renderer StyleRenderer `yaml:"-" toml:"-"`
}

// Options is the full chart configuration.
type Options struct {
	// Animate configures all transitions.
	Animate AnimateOptions `yaml:"animate,omitempty" toml:"animate,omitempty"`

	// Legend configures the legend; nil disables it.
	Legend *LegendOptions `yaml:"legend,omitempty" toml:"legend,omitempty"`

	// InsetPadding is the chart-to-content margin in pixels.
	InsetPadding float32 `yaml:"insetPadding,omitempty" toml:"insetPadding,omitempty"`

	// Axes configure the chart axes.
	Axes []AxisOptions `yaml:"axes,omitempty" toml:"axes,omitempty"`

	// Series configure the chart series.
	Series []SeriesOptions `yaml:"series" toml:"series"`
}

// Defaults sets default option values.
func (op *Options) Defaults() {
	if op.InsetPadding == 0 {
		op.InsetPadding = 10
	}
	if op.Animate.Duration == 0 {
		op.Animate.Duration = Duration(250 * time.Millisecond)
	}
	if op.Legend != nil {
		op.Legend.Defaults()
	}
}

// OpenOptions reads options from the given YAML or TOML file,
// selected by extension.
func OpenOptions(filename string) (*Options, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadOptions(f, filepath.Ext(filename))
}

// ReadOptions reads options from the given reader in the format
// named by ext (".yaml", ".yml" or ".toml").
func ReadOptions(r io.Reader, ext string) (*Options, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	op := &Options{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, op)
	case ".toml":
		err = toml.Unmarshal(b, op)
	default:
		return nil, fmt.Errorf("chart: unknown options format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	op.Defaults()
	return op, nil
}
