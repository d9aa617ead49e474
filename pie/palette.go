// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pie

import "github.com/gogpu/gg"

// Palette is the fixed segment color cycle.
var Palette = []gg.RGBA{
	gg.Hex("#FF0000"),
	gg.Hex("#FF9800"),
	gg.Hex("#FFFF00"),
	gg.Hex("#009688"),
	gg.Hex("#00FF00"),
	gg.Hex("#0000FF"),
	gg.Hex("#FF00FF"),
	gg.Hex("#9C27B0"),
	gg.Hex("#795548"),
	gg.Hex("#E91E63"),
}

// ColorCursor hands out Palette indices in rotation.
//
// A chart keeps one cursor for its whole lifetime and never rewinds it, so
// the same dataset drawn twice starts the second pass where the first one
// stopped. Unless len(Palette) divides the segment count, segment colors
// shift from frame to frame. Charts rely on this behavior; do not reset the
// cursor per frame.
type ColorCursor struct {
	next int
}

// Next returns the current index and advances the cursor.
func (c *ColorCursor) Next() int {
	if c.next >= len(Palette) {
		c.next = 0
	}
	i := c.next
	c.next++
	return i
}

// Assign stamps successive indices onto spans in order.
func (c *ColorCursor) Assign(spans []SweepSpan) {
	for i := range spans {
		spans[i].ColorIndex = c.Next()
	}
}
