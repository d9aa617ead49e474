// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom holds the angle and distance math shared by chart layout,
// rendering and hit testing.
//
// Angles are in degrees on a screen coordinate system: 0° points right,
// angles grow clockwise because Y increases downward.
package geom

import "math"

// FullTurn is one full revolution in degrees.
const FullTurn = 360.0

// PointInCircle reports whether (x, y) lies inside or on the circle
// centered at (cx, cy) with radius r.
func PointInCircle(x, y, cx, cy, r float64) bool {
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= r*r
}

// NormalizeDegrees maps a into [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	// math.Mod of a tiny negative value can round up to exactly 360.
	if a >= FullTurn {
		a = 0
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleOfPoint returns the angle of (x, y) around (cx, cy), rotated by +90°
// so that 0° is 12 o'clock, in [0, 360).
func AngleOfPoint(x, y, cx, cy float64) float64 {
	return NormalizeDegrees(Degrees(math.Atan2(y-cy, x-cx)) + 90)
}

// AngleInSweep reports whether angle lies in the half-open band
// [start, start+sweep), measured modulo 360.
// A sweep of 360° or more contains every angle; a non-positive sweep none.
func AngleInSweep(angle, start, sweep float64) bool {
	if sweep <= 0 {
		return false
	}
	if sweep >= FullTurn {
		return true
	}
	return NormalizeDegrees(angle-start) < sweep
}

// PolarToCartesian returns the point at distance r from (cx, cy) along deg.
func PolarToCartesian(cx, cy, r, deg float64) (x, y float64) {
	rad := Radians(deg)
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

// MapValue maps v from the value range [lo, hi] onto a pixel distance in
// [0, pixels]. An empty range maps one value unit to one pixel.
func MapValue(v, lo, hi, pixels float64) float64 {
	span := hi - lo
	if span == 0 {
		return v - lo
	}
	return (v - lo) * pixels / span
}
