// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pie implements an interactive donut chart.
//
// # Layout
//
// Segments are laid out clockwise from 12 o'clock (StartingAngle). Each
// segment sweeps 360*value/total degrees; a dataset whose total is not
// positive draws nothing and never hits.
//
// # Colors
//
// Segment colors come from Palette through a ColorCursor owned by the chart.
// The cursor keeps rotating across frames, so colors drift between redraws
// of the same data whenever len(Palette) does not divide the segment count.
//
// # Interaction
//
// Chart.HandlePointer consumes gpucontext pointer events. A single tap on
// the ring resolves to a segment through the same layout the renderer uses
// and is reported to the SegmentClickListener:
//
//	c := pie.New(ggchart.WithStrokeWidth(80))
//	c.SetData(pie.NewDataset("Expenses", segments...))
//	c.SetSize(c.Measure(ggchart.ExactSize(600), ggchart.AtMostSize(800)))
//	c.SetSegmentClickListener(func(id string, i int, s pie.Segment) {
//	    fmt.Println(id, i, s.Label)
//	})
//	c.Attach(app.EventSource())
//
//	dc := gg.NewContext(c.Size())
//	if err := c.Draw(dc); err != nil {
//	    return err
//	}
package pie
