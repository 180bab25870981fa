package layout

import "math"

// Inf is the unbounded extent used for an open constraint axis.
var Inf = math.Inf(1)

// NoMin is the sentinel minimum meaning "no lower bound".
var NoMin = math.Inf(-1)

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// IsFinite returns true if neither dimension is infinite or NaN.
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height)
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Inset returns the size shrunk by the edges, never below zero.
// Infinite dimensions stay infinite.
func (s Size) Inset(e Edges) Size {
	return Size{
		Width:  max(0, s.Width-e.Horizontal()),
		Height: max(0, s.Height-e.Vertical()),
	}
}

// Outset returns the size grown by the edges.
func (s Size) Outset(e Edges) Size {
	return Size{
		Width:  s.Width + e.Horizontal(),
		Height: s.Height + e.Vertical(),
	}
}

// Max returns the componentwise maximum.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Min returns the componentwise minimum.
func (s Size) Min(other Size) Size {
	return Size{Width: min(s.Width, other.Width), Height: min(s.Height, other.Height)}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// IsFinite reports whether v is a usable finite coordinate.
func IsFinite(v float64) bool {
	return isFinite(v)
}
