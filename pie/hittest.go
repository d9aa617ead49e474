// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pie

// HitTest returns the index of the segment of segments drawn in g that
// contains (x, y).
//
// Points outside the ring band, and points in a gap no span covers, miss.
// Spans are laid out afresh with Spans, exactly as Chart.Draw does, so the
// hit regions always match the drawn wedges.
func HitTest(segments []Segment, g Geometry, x, y float64) (int, bool) {
	if !g.Valid() || !g.InRing(x, y) {
		return -1, false
	}
	angle := g.TapAngle(x, y)
	for i, span := range Spans(segments, StartingAngle) {
		if span.Contains(angle) {
			return i, true
		}
	}
	return -1, false
}
