package layout

// Axis selects the main axis of a linear layout.
type Axis uint8

const (
	Horizontal Axis = iota // Main axis runs left-to-right
	Vertical               // Main axis runs top-to-bottom
)

// Main returns the main-axis component of s.
func (a Axis) Main(s Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the cross-axis component of s.
func (a Axis) Cross(s Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// Size builds a Size from main and cross components.
func (a Axis) Size(main, cross float64) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// Point builds a Point from main and cross components.
func (a Axis) Point(main, cross float64) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// MainOf returns the main-axis coordinate of p.
func (a Axis) MainOf(p Point) float64 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// CrossOf returns the cross-axis coordinate of p.
func (a Axis) CrossOf(p Point) float64 {
	if a == Horizontal {
		return p.Y
	}
	return p.X
}

// Leading returns the leading main-axis edge of r.
func (a Axis) Leading(r Rect) float64 {
	if a == Horizontal {
		return r.X
	}
	return r.Y
}

// Trailing returns the trailing main-axis edge of r (exclusive).
func (a Axis) Trailing(r Rect) float64 {
	if a == Horizontal {
		return r.Right()
	}
	return r.Bottom()
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
