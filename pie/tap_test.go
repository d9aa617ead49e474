// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pie

import (
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
)

func pointer(typ gpucontext.PointerEventType, x, y float64, at time.Duration) gpucontext.PointerEvent {
	return gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   1,
		X:           x,
		Y:           y,
		PointerType: gpucontext.PointerTypeTouch,
		IsPrimary:   true,
		Button:      gpucontext.ButtonLeft,
		Timestamp:   at,
	}
}

func TestTapDetector(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name   string
		events []gpucontext.PointerEvent
		want   []TapState
	}{
		{
			name: "down then up is a tap",
			events: []gpucontext.PointerEvent{
				pointer(gpucontext.PointerDown, 10, 10, 0),
				pointer(gpucontext.PointerUp, 11, 10, 80*ms),
			},
			want: []TapState{TapPending, TapCompleted},
		},
		{
			name: "small move keeps the candidate",
			events: []gpucontext.PointerEvent{
				pointer(gpucontext.PointerDown, 10, 10, 0),
				pointer(gpucontext.PointerMove, 14, 13, 20*ms),
				pointer(gpucontext.PointerUp, 14, 13, 40*ms),
			},
			want: []TapState{TapPending, TapPending, TapCompleted},
		},
		{
			name: "drag beyond slop cancels",
			events: []gpucontext.PointerEvent{
				pointer(gpucontext.PointerDown, 10, 10, 0),
				pointer(gpucontext.PointerMove, 40, 10, 20*ms),
				pointer(gpucontext.PointerUp, 10, 10, 40*ms),
			},
			want: []TapState{TapPending, TapNone, TapNone},
		},
		{
			name: "long press is not a tap",
			events: []gpucontext.PointerEvent{
				pointer(gpucontext.PointerDown, 10, 10, 0),
				pointer(gpucontext.PointerUp, 10, 10, 900*ms),
			},
			want: []TapState{TapPending, TapNone},
		},
		{
			name: "cancel drops the candidate",
			events: []gpucontext.PointerEvent{
				pointer(gpucontext.PointerDown, 10, 10, 0),
				pointer(gpucontext.PointerCancel, 10, 10, 10*ms),
				pointer(gpucontext.PointerUp, 10, 10, 20*ms),
			},
			want: []TapState{TapPending, TapNone, TapNone},
		},
		{
			name: "up without down",
			events: []gpucontext.PointerEvent{
				pointer(gpucontext.PointerUp, 10, 10, 0),
			},
			want: []TapState{TapNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d TapDetector
			for i, ev := range tt.events {
				got, _ := d.Process(ev)
				if got != tt.want[i] {
					t.Errorf("event %d (%v) state = %v, want %v", i, ev.Type, got, tt.want[i])
				}
			}
		})
	}
}

func TestTapDetectorReportsReleasePosition(t *testing.T) {
	var d TapDetector
	d.Process(pointer(gpucontext.PointerDown, 100, 100, 0))
	state, tap := d.Process(pointer(gpucontext.PointerUp, 103, 98, time.Millisecond))
	if state != TapCompleted || tap.X != 103 || tap.Y != 98 {
		t.Errorf("Process(up) = %v, %+v; want completed at (103, 98)", state, tap)
	}
}

func TestTapDetectorIgnoresOtherPointers(t *testing.T) {
	var d TapDetector
	d.Process(pointer(gpucontext.PointerDown, 10, 10, 0))

	other := pointer(gpucontext.PointerUp, 10, 10, 0)
	other.PointerID = 2
	if state, _ := d.Process(other); state != TapNone {
		t.Errorf("foreign pointer up = %v, want None", state)
	}
	if state, _ := d.Process(pointer(gpucontext.PointerUp, 10, 10, 0)); state != TapCompleted {
		t.Errorf("own pointer up = %v, want Completed", state)
	}
}

func TestTapDetectorRejectsSecondaryButtonsOnRelease(t *testing.T) {
	var d TapDetector
	down := pointer(gpucontext.PointerDown, 10, 10, 0)
	down.Button = gpucontext.ButtonRight
	if state, _ := d.Process(down); state != TapPending {
		t.Errorf("right button down = %v, want Pending", state)
	}
	up := pointer(gpucontext.PointerUp, 10, 10, time.Millisecond)
	up.Button = gpucontext.ButtonRight
	if state, _ := d.Process(up); state != TapNone {
		t.Errorf("right button up = %v, want None", state)
	}
}

func TestTapDetectorNonPrimaryPress(t *testing.T) {
	var d TapDetector
	second := pointer(gpucontext.PointerDown, 10, 10, 0)
	second.PointerID = 2
	second.IsPrimary = false
	if state, _ := d.Process(second); state != TapPending {
		t.Errorf("non-primary down = %v, want Pending", state)
	}
	up := pointer(gpucontext.PointerUp, 10, 10, time.Millisecond)
	up.PointerID = 2
	if state, _ := d.Process(up); state != TapNone {
		t.Errorf("non-primary up = %v, want None", state)
	}
}

func TestTapDetectorKeepsPrimaryCandidate(t *testing.T) {
	var d TapDetector
	d.Process(pointer(gpucontext.PointerDown, 10, 10, 0))

	second := pointer(gpucontext.PointerDown, 80, 80, time.Millisecond)
	second.PointerID = 2
	second.IsPrimary = false
	if state, _ := d.Process(second); state != TapPending {
		t.Errorf("second finger down = %v, want Pending", state)
	}
	if state, tap := d.Process(pointer(gpucontext.PointerUp, 10, 10, 2*time.Millisecond)); state != TapCompleted || tap.X != 10 {
		t.Errorf("primary up = %v, %+v; want Completed at (10, 10)", state, tap)
	}
}

func TestTapDetectorCustomThresholds(t *testing.T) {
	d := TapDetector{TouchSlop: 50, LongPressTimeout: 2 * time.Second}
	d.Process(pointer(gpucontext.PointerDown, 10, 10, 0))
	if state, _ := d.Process(pointer(gpucontext.PointerUp, 40, 10, time.Second)); state != TapCompleted {
		t.Errorf("Process(up) = %v, want Completed", state)
	}
}

func TestTapStateString(t *testing.T) {
	for state, want := range map[TapState]string{
		TapNone:      "None",
		TapPending:   "Pending",
		TapCompleted: "Completed",
		TapState(9):  "Unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("TapState(%d).String() = %q, want %q", state, got, want)
		}
	}
}
