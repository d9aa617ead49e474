package ggchart

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

func TestNewStyleDefaults(t *testing.T) {
	s := NewStyle()
	if s.StrokeWidth != 100 {
		t.Errorf("StrokeWidth = %v, want 100", s.StrokeWidth)
	}
	if s.TextPosition != 0.85 {
		t.Errorf("TextPosition = %v, want 0.85", s.TextPosition)
	}
	if s.TextSize != 12 {
		t.Errorf("TextSize = %v, want 12", s.TextSize)
	}
	if s.TextColor != color.Black {
		t.Errorf("TextColor = %v, want black", s.TextColor)
	}
}

func TestNewStyleOptions(t *testing.T) {
	red := gg.Hex("#FF0000").Color()
	s := NewStyle(
		WithStrokeWidth(40),
		WithTextPosition(0.5),
		WithTextColor(red),
		WithTextSize(18),
	)
	if s.StrokeWidth != 40 || s.TextPosition != 0.5 || s.TextSize != 18 {
		t.Errorf("NewStyle() = %+v", s)
	}
	if s.TextColor != red {
		t.Errorf("TextColor = %v, want %v", s.TextColor, red)
	}
}

func TestNewStyleIgnoresInvalid(t *testing.T) {
	s := NewStyle(WithStrokeWidth(-1), WithTextSize(0), WithTextColor(nil))
	def := DefaultStyle()
	if s.StrokeWidth != def.StrokeWidth {
		t.Errorf("StrokeWidth = %v, want default %v", s.StrokeWidth, def.StrokeWidth)
	}
	if s.TextSize != def.TextSize {
		t.Errorf("TextSize = %v, want default %v", s.TextSize, def.TextSize)
	}
	if s.TextColor != def.TextColor {
		t.Errorf("TextColor = %v, want default %v", s.TextColor, def.TextColor)
	}
}
