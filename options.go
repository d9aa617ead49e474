package ggchart

import "image/color"

// Style holds the visual parameters a chart is constructed with.
// A Style is fixed for the lifetime of the chart that receives it.
type Style struct {
	// StrokeWidth is the width of the donut ring. The effective width is
	// clamped to the available radius at layout time.
	StrokeWidth float64

	// TextPosition places pie labels at this fraction of the outer radius.
	TextPosition float64

	// TextColor is used for labels and titles.
	TextColor color.Color

	// TextSize is the label font size in logical units.
	TextSize float64
}

// Option configures a Style during chart creation.
//
// Example:
//
//	c := pie.New(ggchart.WithStrokeWidth(60), ggchart.WithTextPosition(0.9))
type Option func(*Style)

// DefaultStyle returns the style used when no options are given.
func DefaultStyle() Style {
	return Style{
		StrokeWidth:  100,
		TextPosition: 0.85,
		TextColor:    color.Black,
		TextSize:     12,
	}
}

// NewStyle applies opts on top of DefaultStyle.
func NewStyle(opts ...Option) Style {
	s := DefaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithStrokeWidth sets the donut ring width. Non-positive values are ignored.
func WithStrokeWidth(w float64) Option {
	return func(s *Style) {
		if w > 0 {
			s.StrokeWidth = w
		}
	}
}

// WithTextPosition sets the relative radius at which pie labels are drawn.
func WithTextPosition(p float64) Option {
	return func(s *Style) {
		s.TextPosition = p
	}
}

// WithTextColor sets the label and title color.
func WithTextColor(c color.Color) Option {
	return func(s *Style) {
		if c != nil {
			s.TextColor = c
		}
	}
}

// WithTextSize sets the label font size. Non-positive values are ignored.
func WithTextSize(size float64) Option {
	return func(s *Style) {
		if size > 0 {
			s.TextSize = size
		}
	}
}
