// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package line

import (
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart/internal/geom"
)

const (
	// DefaultAxisOffset is the width reserved left of the Y axis for labels.
	DefaultAxisOffset = 50.0

	// RangePadding widens the value range by this fraction of max-min on
	// each side.
	RangePadding = 0.2
)

// Range is the padded value range shown on the Y axis.
type Range struct {
	Bottom, Top float64
}

// Span returns Top-Bottom.
func (r Range) Span() float64 {
	return r.Top - r.Bottom
}

// ComputeRange pads [min, max] of values by RangePadding. The bottom never
// goes below zero. It reports false for no values.
func ComputeRange(values []float64) (Range, bool) {
	if len(values) == 0 {
		return Range{}, false
	}
	hi := slices.Max(values)
	lo := slices.Min(values)
	pad := (hi - lo) * RangePadding
	return Range{
		Bottom: max(0, lo-pad),
		Top:    hi + pad,
	}, true
}

// Layout is the measured drawing area of a line chart.
type Layout struct {
	Width, Height float64
	AxisOffset    float64
}

// PlotWidth returns the width right of the Y axis.
func (l Layout) PlotWidth() float64 {
	return l.Width - l.AxisOffset
}

// PlotHeight returns the height of the plot area.
func (l Layout) PlotHeight() float64 {
	return l.Height
}

// Valid reports whether the plot area is non-empty.
func (l Layout) Valid() bool {
	return l.PlotWidth() > 0 && l.PlotHeight() > 0
}

// StepX returns the horizontal distance between consecutive items.
func (l Layout) StepX(n int) float64 {
	if n <= 0 {
		return 0
	}
	return l.PlotWidth() / float64(n)
}

// Points maps values to screen points. Item i sits at
// AxisOffset + StepX*(i+1); Y grows downward from the plot top.
// It returns nil for no values or an empty plot area.
func Points(values []float64, r Range, l Layout) []gg.Point {
	if len(values) == 0 || !l.Valid() {
		return nil
	}
	step := l.StepX(len(values))
	h := l.PlotHeight()
	pts := make([]gg.Point, len(values))
	for i, v := range values {
		pts[i] = gg.Pt(
			l.AxisOffset+step*float64(i+1),
			h-geom.MapValue(v, r.Bottom, r.Top, h),
		)
	}
	return pts
}
