package ggchart

import (
	"errors"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// ErrNilCanvas is returned by Draw when no canvas is supplied.
var ErrNilCanvas = errors.New("ggchart: nil canvas")

// Canvas is the drawing surface a chart renders into.
//
// *gg.Context satisfies Canvas; tests substitute a recorder.
type Canvas interface {
	SetColor(c color.Color)
	// SetStroke replaces the whole stroke style, dash pattern included.
	SetStroke(stroke gg.Stroke)
	SetFont(face text.Face)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	DrawArc(x, y, r, angle1, angle2 float64)
	DrawCircle(x, y, r float64)
	DrawLine(x1, y1, x2, y2 float64)
	ClearPath()

	Stroke() error
	Fill() error

	DrawString(s string, x, y float64)
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

var _ Canvas = (*gg.Context)(nil)

// Component is the capability surface shared by all charts: size
// negotiation, size commitment and drawing. Dataset replacement is typed
// per chart (pie.Chart.SetData, line.Chart.SetData).
type Component interface {
	// Measure resolves the chart size for the given constraints.
	Measure(width, height MeasureSpec) (int, int)

	// SetSize commits the measured size and recomputes derived geometry.
	SetSize(width, height int)

	// Size returns the committed size.
	Size() (int, int)

	// Draw renders the chart with the current dataset and size.
	Draw(c Canvas) error
}
