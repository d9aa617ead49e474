// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvastest provides a ggchart.Canvas that records drawing calls
// instead of rasterizing them, for asserting on chart output in tests.
package canvastest

import (
	"image/color"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Verb identifies a path element.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	CubicTo
	Arc
	Circle
)

// PathElement is one recorded path call with its raw arguments.
type PathElement struct {
	Verb Verb
	Args []float64
}

// Paint identifies how a path was painted.
type Paint uint8

const (
	Stroke Paint = iota
	Fill
)

// Draw is a painted path together with the paint state at paint time.
// LineWidth and Dash are taken from the stroke set last.
type Draw struct {
	Paint     Paint
	Path      []PathElement
	Color     color.Color
	LineWidth float64
	Dash      []float64
}

// Count returns the number of path elements with the given verb.
func (d Draw) Count(v Verb) int {
	n := 0
	for _, e := range d.Path {
		if e.Verb == v {
			n++
		}
	}
	return n
}

// Text is a recorded string draw.
type Text struct {
	S      string
	X, Y   float64
	AX, AY float64
	Color  color.Color
	Face   text.Face
}

// Recorder records everything a chart draws.
// The zero value is ready to use.
type Recorder struct {
	Draws []Draw
	Texts []Text

	// Err, when set, is returned by Stroke and Fill.
	Err error

	color  color.Color
	stroke gg.Stroke
	face   text.Face
	path   []PathElement
}

func (r *Recorder) SetColor(c color.Color) { r.color = c }
func (r *Recorder) SetStroke(s gg.Stroke)  { r.stroke = s.Clone() }
func (r *Recorder) SetFont(face text.Face) { r.face = face }
func (r *Recorder) ClearPath()             { r.path = nil }

func (r *Recorder) MoveTo(x, y float64) { r.add(MoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add(LineTo, x, y) }

func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.add(CubicTo, c1x, c1y, c2x, c2y, x, y)
}

func (r *Recorder) DrawArc(x, y, radius, angle1, angle2 float64) {
	r.add(Arc, x, y, radius, angle1, angle2)
}

func (r *Recorder) DrawCircle(x, y, radius float64) { r.add(Circle, x, y, radius) }

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.MoveTo(x1, y1)
	r.LineTo(x2, y2)
}

func (r *Recorder) Stroke() error { return r.paint(Stroke) }
func (r *Recorder) Fill() error   { return r.paint(Fill) }

func (r *Recorder) DrawString(s string, x, y float64) {
	r.Texts = append(r.Texts, Text{S: s, X: x, Y: y, Color: r.color, Face: r.face})
}

func (r *Recorder) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.Texts = append(r.Texts, Text{S: s, X: x, Y: y, AX: ax, AY: ay, Color: r.color, Face: r.face})
}

// Strokes returns the stroked draws in order.
func (r *Recorder) Strokes() []Draw { return r.filter(Stroke) }

// Fills returns the filled draws in order.
func (r *Recorder) Fills() []Draw { return r.filter(Fill) }

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{Err: r.Err}
}

func (r *Recorder) add(v Verb, args ...float64) {
	r.path = append(r.path, PathElement{Verb: v, Args: args})
}

func (r *Recorder) paint(p Paint) error {
	if r.Err != nil {
		r.path = nil
		return r.Err
	}
	var dash []float64
	if r.stroke.IsDashed() {
		dash = slices.Clone(r.stroke.Dash.Array)
	}
	r.Draws = append(r.Draws, Draw{
		Paint:     p,
		Path:      r.path,
		Color:     r.color,
		LineWidth: r.stroke.Width,
		Dash:      dash,
	})
	r.path = nil
	return nil
}

func (r *Recorder) filter(p Paint) []Draw {
	var out []Draw
	for _, d := range r.Draws {
		if d.Paint == p {
			out = append(out, d)
		}
	}
	return out
}
