// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package compose

import "github.com/grindlemire/go-compose/internal/layout"

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Constraint bounds the size a component may report.
type Constraint = layout.Constraint

// Axis selects the main axis of a linear layout.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Inf is the unbounded extent of an open constraint axis.
var Inf = layout.Inf

// NoMin is the sentinel minimum meaning "no lower bound".
var NoMin = layout.NoMin

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return layout.NewSize(width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges in CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Unbounded returns a constraint with no minimum and no maximum.
func Unbounded() Constraint {
	return layout.Unbounded()
}

// Loose returns a constraint with no minimum and the given maximum.
func Loose(maxSize Size) Constraint {
	return layout.Loose(maxSize)
}

// Tight returns a constraint fixed to size.
func Tight(size Size) Constraint {
	return layout.Tight(size)
}

// NewConstraint builds a constraint, lowering Min where it exceeds Max.
func NewConstraint(minSize, maxSize Size) Constraint {
	return layout.NewConstraint(minSize, maxSize)
}
