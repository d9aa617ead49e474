// Package ggchart provides chart components drawn with the gg 2D graphics
// library.
//
// # Overview
//
// ggchart holds what the chart packages share: the Canvas drawing surface,
// the Component lifecycle, size negotiation, styling options, fonts and
// logging. The charts themselves live in subpackages:
//
//   - pie: an interactive donut chart with tap-to-select segments
//   - line: a display-only line chart with a smooth cubic curve
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/ggchart"
//	    "github.com/gogpu/ggchart/pie"
//	)
//
//	c := pie.New(ggchart.WithStrokeWidth(80))
//	c.SetData(pie.NewDataset("Expenses",
//	    pie.Segment{Value: 60, Label: "Food"},
//	    pie.Segment{Value: 40, Label: "Rent"},
//	))
//	c.SetSize(c.Measure(ggchart.ExactSize(600), ggchart.UnspecifiedSize()))
//
//	dc := gg.NewContext(c.Size())
//	if err := c.Draw(dc); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("pie.png")
//
// # Lifecycle
//
// A host measures a chart with Measure, commits the result with SetSize and
// calls Draw whenever the surface needs repainting. Replacing the dataset or
// the size recomputes the derived geometry; Draw only paints it.
//
// # Sizing
//
// Measure follows the parent constraints: an exact or bounded width is taken
// as is, otherwise DefaultSize is used. The height defaults to the measured
// width, so an unconstrained chart is square.
//
// # Logging
//
// Charts log through a silent slog.Logger by default. SetLogger installs a
// real one for ggchart and for the gg rendering backend at once:
//
//	ggchart.SetLogger(slog.Default())
//
// # Coordinates
//
// Canvas coordinates have their origin at the top-left corner with Y
// growing downward. Angles run clockwise from 3 o'clock.
package ggchart
