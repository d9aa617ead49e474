// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package line

// Item is one sample of the series.
type Item struct {
	Value float64
}

// Dataset is an ordered series; order is the time axis.
type Dataset struct {
	Items []Item
}

// FromValues builds a Dataset from raw values in order.
func FromValues(values ...float64) Dataset {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Value: v}
	}
	return Dataset{Items: items}
}

// Values returns the item values in order.
func (d Dataset) Values() []float64 {
	out := make([]float64, len(d.Items))
	for i, it := range d.Items {
		out[i] = it.Value
	}
	return out
}
