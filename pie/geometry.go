// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pie

import "github.com/gogpu/ggchart/internal/geom"

// Geometry is the donut ring fitted into a measured size.
// The zero Geometry is invalid and draws and hits nothing.
type Geometry struct {
	CenterX, CenterY float64

	// Radius is the radius of the ring's center line.
	Radius float64

	// StrokeWidth is the ring width after clamping to the available space.
	StrokeWidth float64
}

// ComputeGeometry fits a ring of the requested stroke width into a
// width×height area. The stroke is clamped down to the half-extent when it
// would not fit. It reports false for a non-positive size or stroke.
func ComputeGeometry(width, height int, stroke float64) (Geometry, bool) {
	if width <= 0 || height <= 0 || stroke <= 0 {
		return Geometry{}, false
	}
	cx := float64(width) / 2
	cy := float64(height) / 2
	half := min(cx, cy)
	stroke = min(stroke, half)
	return Geometry{
		CenterX:     cx,
		CenterY:     cy,
		Radius:      half - stroke/2,
		StrokeWidth: stroke,
	}, true
}

// Valid reports whether g describes a drawable ring.
func (g Geometry) Valid() bool {
	return g.StrokeWidth > 0
}

// Inner returns the inner radius of the ring band.
func (g Geometry) Inner() float64 {
	return g.Radius - g.StrokeWidth/2
}

// Outer returns the outer radius of the ring band.
func (g Geometry) Outer() float64 {
	return g.Radius + g.StrokeWidth/2
}

// InRing reports whether (x, y) lies in the ring band: inside the outer
// circle and strictly outside the inner one.
func (g Geometry) InRing(x, y float64) bool {
	return geom.PointInCircle(x, y, g.CenterX, g.CenterY, g.Outer()) &&
		!geom.PointInCircle(x, y, g.CenterX, g.CenterY, g.Inner())
}

// LabelPoint returns where the label of span is centered, at position times
// the outer radius along the span's middle angle.
func (g Geometry) LabelPoint(span SweepSpan, position float64) (x, y float64) {
	return geom.PolarToCartesian(g.CenterX, g.CenterY, g.Outer()*position, span.MidAngle())
}

// TapAngle converts a point to the angle frame of SweepSpan.StartAngle.
func (g Geometry) TapAngle(x, y float64) float64 {
	return geom.NormalizeDegrees(geom.AngleOfPoint(x, y, g.CenterX, g.CenterY) + StartingAngle)
}
