// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package line

import (
	"strconv"

	"github.com/gogpu/gg"
)

// Grid and axis constants.
const (
	// GridRows is the number of horizontal grid bands and Y labels.
	GridRows = 6

	// PointsPerGridColumn is how many items one vertical grid column spans.
	PointsPerGridColumn = 4

	// GridLeadIn extends horizontal grid lines left of the Y axis.
	GridLeadIn = 20.0

	// LabelX is the left edge of the Y labels.
	LabelX = 4.0

	// LabelGap separates a label baseline from its grid row.
	LabelGap = 2.0
)

// CubicSegment is one cubic Bézier from the previous point to To.
type CubicSegment struct {
	C1, C2, To gg.Point
}

// Curve is a smooth path through the data points.
type Curve struct {
	Start    gg.Point
	Segments []CubicSegment
}

// BuildCurve joins consecutive points with cubic segments whose control
// points share the horizontal midpoint and keep the end heights, giving
// flat tangents at every data point. It returns an empty curve for no
// points.
func BuildCurve(points []gg.Point) Curve {
	if len(points) == 0 {
		return Curve{}
	}
	c := Curve{Start: points[0]}
	if len(points) > 1 {
		c.Segments = make([]CubicSegment, 0, len(points)-1)
	}
	for i := 0; i+1 < len(points); i++ {
		p, q := points[i], points[i+1]
		mx := (p.X + q.X) / 2
		c.Segments = append(c.Segments, CubicSegment{
			C1: gg.Pt(mx, p.Y),
			C2: gg.Pt(mx, q.Y),
			To: q,
		})
	}
	return c
}

// Empty reports whether the curve has no drawable segment.
func (c Curve) Empty() bool {
	return len(c.Segments) == 0
}

// pathBuilder is the part of a canvas a curve is appended to.
type pathBuilder interface {
	MoveTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
}

// AppendTo adds the curve to the current path of p.
func (c Curve) AppendTo(p pathBuilder) {
	p.MoveTo(c.Start.X, c.Start.Y)
	for _, s := range c.Segments {
		p.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
	}
}

// Segment is a straight line from A to B.
type Segment struct {
	A, B gg.Point
}

// Grid holds the dashed guide lines of a line chart.
type Grid struct {
	Horizontal []Segment
	Vertical   []Segment
}

// ComputeGrid lays out the guide lines for n items. Horizontal lines sit
// every int(Height/GridRows) from the top and start GridLeadIn left of the
// Y axis. Vertical lines start at the Y axis and repeat every
// PointsPerGridColumn items.
func ComputeGrid(l Layout, n int) Grid {
	var g Grid
	if !l.Valid() || n <= 0 {
		return g
	}
	if rowStep := gridRowStep(l); rowStep > 0 {
		for y := 0.0; y < l.Height; y += rowStep {
			g.Horizontal = append(g.Horizontal, Segment{
				A: gg.Pt(l.AxisOffset-GridLeadIn, y),
				B: gg.Pt(l.Width, y),
			})
		}
	}
	colStep := l.StepX(n) * PointsPerGridColumn
	for x := l.AxisOffset; x < l.Width; x += colStep {
		g.Vertical = append(g.Vertical, Segment{
			A: gg.Pt(x, 0),
			B: gg.Pt(x, l.Height),
		})
	}
	return g
}

// gridRowStep is the whole-unit distance between grid rows.
func gridRowStep(l Layout) float64 {
	return float64(int(l.Height / GridRows))
}

// Axes returns the baseline and the Y axis for an axis stroke of width w.
// The baseline is inset by half the stroke so it stays fully visible.
func Axes(l Layout, w float64) (baseline, yAxis Segment) {
	baseline = Segment{A: gg.Pt(0, l.Height-w/2), B: gg.Pt(l.Width, l.Height-w/2)}
	yAxis = Segment{A: gg.Pt(l.AxisOffset, 0), B: gg.Pt(l.AxisOffset, l.Height)}
	return baseline, yAxis
}

// AxisLabel is one Y axis value label. Y is the text baseline.
type AxisLabel struct {
	Text  string
	Value float64
	X, Y  float64
}

// ComputeLabels lays out GridRows labels from the bottom grid row up, one
// per row. The value step is a quarter of Top+Bottom; values are truncated
// to integers.
func ComputeLabels(r Range, l Layout, textSize float64) []AxisLabel {
	if !l.Valid() {
		return nil
	}
	rowStep := gridRowStep(l)
	valueStep := (r.Top + r.Bottom) / 4
	labels := make([]AxisLabel, 0, GridRows)
	v := r.Bottom + valueStep
	y := l.Height - rowStep
	for range GridRows {
		labels = append(labels, AxisLabel{
			Text:  strconv.Itoa(int(v)),
			Value: v,
			X:     LabelX,
			Y:     y + textSize + LabelGap,
		})
		v += valueStep
		y -= rowStep
	}
	return labels
}
