// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pie

import "github.com/google/uuid"

// Segment is one weighted slice of a donut chart.
type Segment struct {
	// Value is the slice weight. Values are expected to be positive.
	Value float64

	// Label is drawn on the slice as is; the chart never reformats it.
	Label string
}

// Dataset is everything a donut chart displays.
type Dataset struct {
	// ID is opaque routing data returned with every selection so a caller
	// can tell several charts apart.
	ID string

	// Title is drawn in the donut hole. Empty means no title.
	Title string

	Segments []Segment
}

// NewDataset returns a Dataset with a random ID.
func NewDataset(title string, segments ...Segment) Dataset {
	return Dataset{
		ID:       uuid.NewString(),
		Title:    title,
		Segments: segments,
	}
}

// Total returns the sum of all segment values.
func (d Dataset) Total() float64 {
	return total(d.Segments)
}

func total(segments []Segment) float64 {
	var sum float64
	for _, s := range segments {
		sum += s.Value
	}
	return sum
}
