package ggchart

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontWeight selects one of the embedded chart fonts.
type FontWeight uint8

const (
	// Regular is used for segment and axis labels.
	Regular FontWeight = iota

	// Bold is used for chart titles.
	Bold
)

// fontSources lazily parses the embedded Go fonts once per process.
var fontSources = sync.OnceValues(func() (map[FontWeight]*text.FontSource, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggchart: load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggchart: load bold font: %w", err)
	}
	return map[FontWeight]*text.FontSource{Regular: regular, Bold: bold}, nil
})

// Face returns an embedded font face of the given weight and size.
func Face(weight FontWeight, size float64) (text.Face, error) {
	sources, err := fontSources()
	if err != nil {
		return nil, err
	}
	src, ok := sources[weight]
	if !ok {
		return nil, fmt.Errorf("ggchart: unknown font weight %d", weight)
	}
	return src.Face(size), nil
}
