package layout

import "fmt"

// Constraint bounds the size a component may report from a layout call.
// Max may be Inf on either axis; Min may be NoMin on either axis.
//
// Constraints are values. Every transformation returns a new Constraint with
// Min <= Max preserved componentwise.
type Constraint struct {
	Min Size
	Max Size
}

// Unbounded returns a constraint with no minimum and no maximum.
func Unbounded() Constraint {
	return Constraint{Min: Size{NoMin, NoMin}, Max: Size{Inf, Inf}}
}

// Loose returns a constraint with no minimum and the given maximum.
func Loose(maxSize Size) Constraint {
	return Constraint{Min: Size{NoMin, NoMin}, Max: maxSize}
}

// Tight returns a constraint whose minimum and maximum are both size.
func Tight(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

// NewConstraint builds a constraint, lowering Min where it exceeds Max.
func NewConstraint(minSize, maxSize Size) Constraint {
	return Constraint{Min: minSize, Max: maxSize}.normalized()
}

func (c Constraint) normalized() Constraint {
	c.Min.Width = min(c.Min.Width, c.Max.Width)
	c.Min.Height = min(c.Min.Height, c.Max.Height)
	return c
}

// IsTight returns true if min and max are equal on both axes.
func (c Constraint) IsTight() bool {
	return c.Min == c.Max
}

// IsValid returns true if Min <= Max on both axes and no bound is NaN.
func (c Constraint) IsValid() bool {
	return c.Min.Width <= c.Max.Width && c.Min.Height <= c.Max.Height
}

// Clamp restricts size into [Min, Max].
func (c Constraint) Clamp(size Size) Size {
	return Size{
		Width:  clamp(size.Width, c.Min.Width, c.Max.Width),
		Height: clamp(size.Height, c.Min.Height, c.Max.Height),
	}
}

// Inset shrinks both bounds by the edges. Minimums never drop below zero
// unless they were NoMin, maximums never drop below zero, and Min stays
// below Max.
func (c Constraint) Inset(e Edges) Constraint {
	out := Constraint{Max: c.Max.Inset(e)}
	out.Min.Width = insetMin(c.Min.Width, e.Horizontal())
	out.Min.Height = insetMin(c.Min.Height, e.Vertical())
	return out.normalized()
}

func insetMin(v, by float64) float64 {
	if v == NoMin {
		return NoMin
	}
	return max(0, v-by)
}

// WithMain returns the constraint with the main axis of a replaced by
// [lo, hi], clamped inside the current bounds.
func (c Constraint) WithMain(a Axis, lo, hi float64) Constraint {
	curMin, curMax := a.Main(c.Min), a.Main(c.Max)
	hi = clamp(hi, curMin, curMax)
	lo = clamp(lo, curMin, hi)
	return Constraint{
		Min: a.Size(lo, a.Cross(c.Min)),
		Max: a.Size(hi, a.Cross(c.Max)),
	}
}

// String formats the constraint for logs.
func (c Constraint) String() string {
	return fmt.Sprintf("[%s ... %s]", formatSize(c.Min), formatSize(c.Max))
}

func formatSize(s Size) string {
	return fmt.Sprintf("(%g, %g)", s.Width, s.Height)
}
