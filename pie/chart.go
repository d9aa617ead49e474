// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pie

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/geom"
	"github.com/gogpu/gpucontext"
)

// titleSizeBoost is added to the label text size for the title.
const titleSizeBoost = 4

// SegmentClickListener receives selections: the dataset ID, the segment
// index and the segment itself.
type SegmentClickListener func(chartID string, index int, segment Segment)

// Chart is an interactive donut chart.
//
// Chart is NOT safe for concurrent use. Drive it from the goroutine that owns
// the drawing surface and delivers pointer events.
type Chart struct {
	style ggchart.Style

	data          Dataset
	width, height int
	geometry      Geometry

	// cursor persists across draws; see ColorCursor.
	cursor ColorCursor

	listener SegmentClickListener
	taps     TapDetector

	labelFace text.Face
	titleFace text.Face
}

var _ ggchart.Component = (*Chart)(nil)

// New creates a donut chart with the given style options.
func New(opts ...ggchart.Option) *Chart {
	return &Chart{style: ggchart.NewStyle(opts...)}
}

// Style returns the style the chart was created with.
func (c *Chart) Style() ggchart.Style {
	return c.style
}

// SetData replaces the displayed dataset. The chart keeps its own copy of
// the segment list.
func (c *Chart) SetData(ds Dataset) {
	ds.Segments = slices.Clone(ds.Segments)
	c.data = ds
	ggchart.Logger().Debug("pie: dataset replaced",
		"id", ds.ID, "segments", len(ds.Segments), "total", ds.Total())
}

// Data returns the current dataset.
func (c *Chart) Data() Dataset {
	return c.data
}

// SetSegmentClickListener registers fn as the one selection listener,
// replacing any previous one. A nil fn removes it.
func (c *Chart) SetSegmentClickListener(fn SegmentClickListener) {
	c.listener = fn
}

// Measure resolves the chart size for the given constraints.
func (c *Chart) Measure(width, height ggchart.MeasureSpec) (int, int) {
	return ggchart.Measure(width, height)
}

// SetSize commits a measured size and refits the ring.
func (c *Chart) SetSize(width, height int) {
	c.width, c.height = width, height
	g, _ := ComputeGeometry(width, height, c.style.StrokeWidth)
	c.geometry = g
	ggchart.Logger().Debug("pie: size changed",
		"width", width, "height", height, "radius", g.Radius, "stroke", g.StrokeWidth)
}

// Size returns the committed size.
func (c *Chart) Size() (int, int) {
	return c.width, c.height
}

// Geometry returns the ring fitted to the committed size.
func (c *Chart) Geometry() Geometry {
	return c.geometry
}

// HitTest returns the index of the segment under (x, y).
func (c *Chart) HitTest(x, y float64) (int, bool) {
	return HitTest(c.data.Segments, c.geometry, x, y)
}

// Draw renders the ring, one arc and label per segment, and the title.
// Each drawn segment advances the chart's color cursor.
func (c *Chart) Draw(cv ggchart.Canvas) error {
	if cv == nil {
		return ggchart.ErrNilCanvas
	}
	g := c.geometry
	if !g.Valid() {
		ggchart.Logger().Debug("pie: draw skipped, no size", "width", c.width, "height", c.height)
		return nil
	}

	spans := Spans(c.data.Segments, StartingAngle)
	if len(spans) > 0 {
		if err := c.loadFaces(); err != nil {
			return err
		}
	}
	c.cursor.Assign(spans)

	cv.SetStroke(gg.DefaultStroke().WithWidth(g.StrokeWidth))
	for i, span := range spans {
		start := geom.Radians(span.StartAngle)
		end := geom.Radians(span.StartAngle + span.SweepAngle)

		cv.ClearPath()
		cv.SetColor(Palette[span.ColorIndex].Color())
		cv.DrawArc(g.CenterX, g.CenterY, g.Radius, start, end)
		if err := cv.Stroke(); err != nil {
			return fmt.Errorf("pie: stroke segment %d: %w", i, err)
		}

		x, y := g.LabelPoint(span, c.style.TextPosition)
		cv.SetFont(c.labelFace)
		cv.SetColor(c.style.TextColor)
		cv.DrawStringAnchored(c.data.Segments[i].Label, x, y, 0.5, 0.5)
	}

	if c.data.Title != "" {
		if err := c.loadFaces(); err != nil {
			return err
		}
		cv.SetFont(c.titleFace)
		cv.SetColor(c.style.TextColor)
		cv.DrawStringAnchored(c.data.Title, g.CenterX, g.CenterY, 0.5, 0.5)
	}
	return nil
}

// HandlePointer feeds a pointer event to the chart.
//
// A press is always accepted as a tap candidate. A completed tap that lands
// on a segment notifies the listener once and is reported as handled. A tap
// that misses returns false so the host can pass the event on.
func (c *Chart) HandlePointer(ev gpucontext.PointerEvent) bool {
	state, tap := c.taps.Process(ev)
	switch state {
	case TapPending:
		return true
	case TapCompleted:
		return c.selectAt(tap.X, tap.Y)
	default:
		return false
	}
}

// Attach subscribes the chart to pointer events from src.
func (c *Chart) Attach(src gpucontext.PointerEventSource) {
	src.OnPointer(func(ev gpucontext.PointerEvent) {
		c.HandlePointer(ev)
	})
}

func (c *Chart) selectAt(x, y float64) bool {
	index, ok := c.HitTest(x, y)
	if !ok {
		ggchart.Logger().Debug("pie: tap missed", "x", x, "y", y)
		return false
	}
	segment := c.data.Segments[index]
	ggchart.Logger().Info("pie: segment selected",
		"id", c.data.ID, "index", index, "label", segment.Label)
	if c.listener != nil {
		c.listener(c.data.ID, index, segment)
	}
	return true
}

func (c *Chart) loadFaces() error {
	if c.labelFace != nil && c.titleFace != nil {
		return nil
	}
	label, err := ggchart.Face(ggchart.Regular, c.style.TextSize)
	if err != nil {
		return fmt.Errorf("pie: label font: %w", err)
	}
	title, err := ggchart.Face(ggchart.Bold, c.style.TextSize+titleSizeBoost)
	if err != nil {
		return fmt.Errorf("pie: title font: %w", err)
	}
	c.labelFace, c.titleFace = label, title
	return nil
}
