// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package line

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggchart"
)

// Paint constants.
const (
	DefaultLabelSize = 14.0

	GridWidth    = 1.0
	AxisWidth    = 4.0
	CurveWidth   = 3.0
	MarkerRadius = 5.0
)

// GridDash is the on/off pattern of grid lines.
var GridDash = []float64{30, 10}

// Colors.
var (
	GridColor  = gg.Hex("#888888").Color()
	AxisColor  = gg.Hex("#000000").Color()
	CurveColor = gg.Hex("#0000FF").Color()
)

// Chart is a display-only line chart: dashed grid, two axes, Y labels and a
// smooth curve with a marker at every item.
//
// Chart is NOT safe for concurrent use.
type Chart struct {
	style      ggchart.Style
	axisOffset float64

	data          Dataset
	width, height int

	// Derived from data and size.
	valueRange Range
	points     []gg.Point

	labelFace text.Face
}

var _ ggchart.Component = (*Chart)(nil)

// New creates a line chart. Labels default to DefaultLabelSize; options
// override it.
func New(opts ...ggchart.Option) *Chart {
	opts = append([]ggchart.Option{ggchart.WithTextSize(DefaultLabelSize)}, opts...)
	return &Chart{
		style:      ggchart.NewStyle(opts...),
		axisOffset: DefaultAxisOffset,
	}
}

// Style returns the style the chart was created with.
func (c *Chart) Style() ggchart.Style {
	return c.style
}

// SetData replaces the series and recomputes the points.
func (c *Chart) SetData(ds Dataset) {
	ds.Items = slices.Clone(ds.Items)
	c.data = ds
	c.recompute()
	ggchart.Logger().Debug("line: dataset replaced",
		"items", len(ds.Items), "bottom", c.valueRange.Bottom, "top", c.valueRange.Top)
}

// Data returns the current series.
func (c *Chart) Data() Dataset {
	return c.data
}

// Measure resolves the chart size for the given constraints.
func (c *Chart) Measure(width, height ggchart.MeasureSpec) (int, int) {
	return ggchart.Measure(width, height)
}

// SetSize commits a measured size and recomputes the points.
func (c *Chart) SetSize(width, height int) {
	c.width, c.height = width, height
	c.recompute()
	ggchart.Logger().Debug("line: size changed", "width", width, "height", height)
}

// Size returns the committed size.
func (c *Chart) Size() (int, int) {
	return c.width, c.height
}

// Layout returns the drawing area for the committed size.
func (c *Chart) Layout() Layout {
	return Layout{
		Width:      float64(c.width),
		Height:     float64(c.height),
		AxisOffset: c.axisOffset,
	}
}

// Range returns the padded value range of the current series.
func (c *Chart) Range() Range {
	return c.valueRange
}

// Points returns the screen points of the current series.
func (c *Chart) Points() []gg.Point {
	return slices.Clone(c.points)
}

func (c *Chart) recompute() {
	values := c.data.Values()
	c.valueRange, _ = ComputeRange(values)
	c.points = Points(values, c.valueRange, c.Layout())
}

// Draw renders grid, axes, Y labels and the curve, in that order.
// An empty series or an empty plot area draws nothing.
func (c *Chart) Draw(cv ggchart.Canvas) error {
	if cv == nil {
		return ggchart.ErrNilCanvas
	}
	l := c.Layout()
	if len(c.points) == 0 {
		ggchart.Logger().Debug("line: draw skipped",
			"items", len(c.data.Items), "width", c.width, "height", c.height)
		return nil
	}
	if err := c.loadFace(); err != nil {
		return err
	}

	if err := drawGrid(cv, ComputeGrid(l, len(c.points))); err != nil {
		return err
	}
	if err := drawAxes(cv, l); err != nil {
		return err
	}

	cv.SetFont(c.labelFace)
	cv.SetColor(c.style.TextColor)
	for _, lb := range ComputeLabels(c.valueRange, l, c.style.TextSize) {
		cv.DrawString(lb.Text, lb.X, lb.Y)
	}

	return drawCurve(cv, c.points)
}

func drawGrid(cv ggchart.Canvas, g Grid) error {
	cv.SetColor(GridColor)
	cv.SetStroke(gg.DashedStroke(GridDash...).WithWidth(GridWidth))
	for _, lines := range [][]Segment{g.Horizontal, g.Vertical} {
		for _, s := range lines {
			if err := strokeSegment(cv, s); err != nil {
				return fmt.Errorf("line: stroke grid: %w", err)
			}
		}
	}
	return nil
}

func drawAxes(cv ggchart.Canvas, l Layout) error {
	cv.SetColor(AxisColor)
	cv.SetStroke(gg.DefaultStroke().WithWidth(AxisWidth))
	baseline, yAxis := Axes(l, AxisWidth)
	for _, s := range []Segment{baseline, yAxis} {
		if err := strokeSegment(cv, s); err != nil {
			return fmt.Errorf("line: stroke axis: %w", err)
		}
	}
	return nil
}

func drawCurve(cv ggchart.Canvas, points []gg.Point) error {
	cv.SetColor(CurveColor)
	for _, p := range points {
		cv.ClearPath()
		cv.DrawCircle(p.X, p.Y, MarkerRadius)
		if err := cv.Fill(); err != nil {
			return fmt.Errorf("line: fill marker: %w", err)
		}
	}

	curve := BuildCurve(points)
	if curve.Empty() {
		return nil
	}
	cv.ClearPath()
	cv.SetStroke(gg.DefaultStroke().WithWidth(CurveWidth))
	curve.AppendTo(cv)
	if err := cv.Stroke(); err != nil {
		return fmt.Errorf("line: stroke curve: %w", err)
	}
	return nil
}

func strokeSegment(cv ggchart.Canvas, s Segment) error {
	cv.ClearPath()
	cv.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
	return cv.Stroke()
}

func (c *Chart) loadFace() error {
	if c.labelFace != nil {
		return nil
	}
	face, err := ggchart.Face(ggchart.Regular, c.style.TextSize)
	if err != nil {
		return fmt.Errorf("line: label font: %w", err)
	}
	c.labelFace = face
	return nil
}
