package ggchart

// MeasureMode says how a parent constrains one dimension of a chart.
type MeasureMode uint8

const (
	// Unspecified means the parent imposes no constraint.
	Unspecified MeasureMode = iota

	// Exactly means the chart must take the given size.
	Exactly

	// AtMost means the chart may be any size up to the given one.
	AtMost
)

// String returns the mode name.
func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case Exactly:
		return "Exactly"
	case AtMost:
		return "AtMost"
	default:
		return "Unknown"
	}
}

// DefaultSize is the side length used when the parent leaves width open.
const DefaultSize = 1080

// MeasureSpec is a size constraint for one dimension.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// ExactSize returns an Exactly spec.
func ExactSize(size int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: size} }

// AtMostSize returns an AtMost spec.
func AtMostSize(size int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: size} }

// UnspecifiedSize returns an Unspecified spec.
func UnspecifiedSize() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// Measure resolves a chart size from width and height constraints.
//
// Width takes the offered size unless it is Unspecified, in which case it
// falls back to DefaultSize. Height takes an Exactly size as is, shrinks an
// AtMost size so it never exceeds the measured width, and copies the measured
// width when Unspecified so the chart stays square.
func Measure(width, height MeasureSpec) (w, h int) {
	switch width.Mode {
	case Exactly, AtMost:
		w = width.Size
	default:
		w = DefaultSize
	}

	switch height.Mode {
	case Exactly:
		h = height.Size
	case AtMost:
		h = min(height.Size, w)
	default:
		h = w
	}
	return w, h
}
