// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pie

import "github.com/gogpu/ggchart/internal/geom"

// StartingAngle is where the first segment begins: 12 o'clock in screen
// coordinates, where angles grow clockwise from 3 o'clock.
const StartingAngle = 270.0

// SweepSpan is the angular extent of one segment.
type SweepSpan struct {
	// StartAngle is in [0, 360).
	StartAngle float64

	// SweepAngle is the angular width in degrees.
	SweepAngle float64

	// ColorIndex indexes Palette. It is -1 until a ColorCursor assigns it.
	ColorIndex int
}

// MidAngle returns the angle halfway through the span. It may exceed 360.
func (s SweepSpan) MidAngle() float64 {
	return s.StartAngle + s.SweepAngle/2
}

// Contains reports whether angle falls in [StartAngle, StartAngle+SweepAngle)
// modulo 360.
func (s SweepSpan) Contains(angle float64) bool {
	return geom.AngleInSweep(angle, s.StartAngle, s.SweepAngle)
}

// Spans lays segments out contiguously around the circle beginning at start.
//
// Each segment sweeps 360*value/total degrees. A non-positive total or an
// empty list yields no spans. Spans are returned without colors.
func Spans(segments []Segment, start float64) []SweepSpan {
	sum := total(segments)
	if len(segments) == 0 || sum <= 0 {
		return nil
	}

	spans := make([]SweepSpan, len(segments))
	angle := start
	for i, s := range segments {
		sweep := geom.FullTurn * (s.Value / sum)
		spans[i] = SweepSpan{
			StartAngle: geom.NormalizeDegrees(angle),
			SweepAngle: sweep,
			ColorIndex: -1,
		}
		angle += sweep
	}
	return spans
}
