// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pie

import (
	"time"

	"github.com/gogpu/gpucontext"
)

const (
	// DefaultTouchSlop is how far a pointer may travel between down and up
	// and still count as a tap, in logical units.
	DefaultTouchSlop = 8.0

	// DefaultLongPressTimeout is the longest press that still counts as a tap.
	DefaultLongPressTimeout = 500 * time.Millisecond
)

// TapState is the outcome of feeding one pointer event to a TapDetector.
type TapState uint8

const (
	// TapNone means the event is not part of a tap.
	TapNone TapState = iota

	// TapPending means a press is being tracked as a tap candidate.
	TapPending

	// TapCompleted means the event finished a single tap.
	TapCompleted
)

// String returns the state name.
func (s TapState) String() string {
	switch s {
	case TapNone:
		return "None"
	case TapPending:
		return "Pending"
	case TapCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Tap is a completed single tap at the release position.
type Tap struct {
	X, Y float64
}

// TapDetector turns a pointer event stream into single taps.
//
// Every press is accepted as a candidate. The candidate is dropped when the
// pointer moves further than TouchSlop, is held longer than
// LongPressTimeout, is canceled or leaves the surface. A release of a live
// candidate completes a tap only if the press came from the primary pointer
// with no button other than the left one. A secondary press while a
// candidate is tracked is accepted without replacing it.
//
// The zero value uses DefaultTouchSlop and DefaultLongPressTimeout.
type TapDetector struct {
	TouchSlop        float64
	LongPressTimeout time.Duration

	active    bool
	eligible  bool
	pointerID int
	downX     float64
	downY     float64
	downAt    time.Duration
}

// Process feeds ev to the detector.
func (d *TapDetector) Process(ev gpucontext.PointerEvent) (TapState, Tap) {
	switch ev.Type {
	case gpucontext.PointerDown:
		if d.active && !ev.IsPrimary && ev.PointerID != d.pointerID {
			return TapPending, Tap{}
		}
		d.active = true
		d.eligible = ev.IsPrimary && ev.Button <= gpucontext.ButtonLeft
		d.pointerID = ev.PointerID
		d.downX, d.downY = ev.X, ev.Y
		d.downAt = ev.Timestamp
		return TapPending, Tap{}

	case gpucontext.PointerMove:
		if !d.tracking(ev) {
			return TapNone, Tap{}
		}
		if d.beyondSlop(ev.X, ev.Y) {
			d.active = false
			return TapNone, Tap{}
		}
		return TapPending, Tap{}

	case gpucontext.PointerUp:
		if !d.tracking(ev) {
			return TapNone, Tap{}
		}
		d.active = false
		if !d.eligible || d.beyondSlop(ev.X, ev.Y) || ev.Timestamp-d.downAt > d.longPressTimeout() {
			return TapNone, Tap{}
		}
		return TapCompleted, Tap{X: ev.X, Y: ev.Y}

	case gpucontext.PointerCancel, gpucontext.PointerLeave:
		if d.tracking(ev) {
			d.active = false
		}
		return TapNone, Tap{}
	}
	return TapNone, Tap{}
}

// Reset drops any tap candidate.
func (d *TapDetector) Reset() {
	d.active = false
}

func (d *TapDetector) tracking(ev gpucontext.PointerEvent) bool {
	return d.active && ev.PointerID == d.pointerID
}

func (d *TapDetector) beyondSlop(x, y float64) bool {
	slop := d.TouchSlop
	if slop <= 0 {
		slop = DefaultTouchSlop
	}
	dx := x - d.downX
	dy := y - d.downY
	return dx*dx+dy*dy > slop*slop
}

func (d *TapDetector) longPressTimeout() time.Duration {
	if d.LongPressTimeout <= 0 {
		return DefaultLongPressTimeout
	}
	return d.LongPressTimeout
}
