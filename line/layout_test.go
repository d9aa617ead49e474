// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package line

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestComputeRange(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Range
		ok     bool
	}{
		{"padded", []float64{10, 20, 30}, Range{Bottom: 6, Top: 34}, true},
		{"bottom clamped at zero", []float64{1, 100}, Range{Bottom: 0, Top: 119.8}, true},
		{"equal values", []float64{5, 5, 5}, Range{Bottom: 5, Top: 5}, true},
		{"single", []float64{7}, Range{Bottom: 7, Top: 7}, true},
		{"empty", nil, Range{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeRange(tt.values)
			if ok != tt.ok || !near(got.Bottom, tt.want.Bottom) || !near(got.Top, tt.want.Top) {
				t.Errorf("ComputeRange(%v) = %+v, %v; want %+v, %v", tt.values, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	l := Layout{Width: 350, Height: 280, AxisOffset: 50}
	values := []float64{10, 20, 30}
	r, _ := ComputeRange(values)
	pts := Points(values, r, l)
	if len(pts) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(pts))
	}

	wantX := []float64{150, 250, 350}
	// 280 px over a span of 28: 10 px per unit.
	wantY := []float64{240, 140, 40}
	for i, p := range pts {
		if !near(p.X, wantX[i]) || !near(p.Y, wantY[i]) {
			t.Errorf("point %d = %v, want (%v, %v)", i, p, wantX[i], wantY[i])
		}
	}
}

func TestPointsExtremesStayInside(t *testing.T) {
	l := Layout{Width: 1080, Height: 1080, AxisOffset: 50}
	values := []float64{3, 18, 7, 42, 11}
	r, _ := ComputeRange(values)
	for _, p := range Points(values, r, l) {
		if p.Y <= 0 || p.Y >= l.Height {
			t.Errorf("point %v outside (0, %v)", p, l.Height)
		}
		if p.X <= l.AxisOffset || p.X > l.Width {
			t.Errorf("point %v outside (%v, %v]", p, l.AxisOffset, l.Width)
		}
	}
}

func TestPointsEqualValues(t *testing.T) {
	l := Layout{Width: 450, Height: 200, AxisOffset: 50}
	values := []float64{4, 4, 4, 4}
	r, _ := ComputeRange(values)
	pts := Points(values, r, l)
	for i, p := range pts {
		if !near(p.Y, 200) || math.IsNaN(p.Y) {
			t.Errorf("point %d y = %v, want 200", i, p.Y)
		}
	}
}

func TestPointsDegenerate(t *testing.T) {
	r := Range{Bottom: 0, Top: 10}
	tests := []struct {
		name   string
		values []float64
		l      Layout
	}{
		{"no values", nil, Layout{Width: 100, Height: 100, AxisOffset: 50}},
		{"no plot width", []float64{1}, Layout{Width: 50, Height: 100, AxisOffset: 50}},
		{"no height", []float64{1}, Layout{Width: 100, Height: 0, AxisOffset: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pts := Points(tt.values, r, tt.l); pts != nil {
				t.Errorf("Points() = %v, want nil", pts)
			}
		})
	}
}

func TestDatasetValues(t *testing.T) {
	ds := FromValues(1, 2.5, 4)
	got := ds.Values()
	want := []float64{1, 2.5, 4}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
