package compose

import (
	"math"

	"github.com/grindlemire/go-compose/internal/debug"
	"github.com/grindlemire/go-compose/internal/layout"
)

// Component is a declarative description of part of the UI.
// Layout must be deterministic for a given constraint and must report a size
// inside [c.Min, c.Max]. Components are rebuilt on every data change and
// discarded once layout has run.
type Component interface {
	Layout(c Constraint) RenderNode
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(c Constraint) RenderNode

// Layout calls f(c).
func (f ComponentFunc) Layout(c Constraint) RenderNode {
	return f(c)
}

// sizeTolerance absorbs float noise when checking a reported size against
// its constraint.
const sizeTolerance = 1e-6

// layoutChild lays out child against c and checks the sizing contract. A
// violation panics in strict mode; otherwise the reported size is clamped
// into the constraint and made finite.
func layoutChild(child Component, c Constraint) RenderNode {
	if child == nil {
		return NewNode(c.Clamp(Size{}), nil, nil)
	}
	node := child.Layout(c)
	if node == nil {
		debug.Assertf(false, "%T returned a nil render node", child)
		return NewNode(c.Clamp(Size{}), nil, nil)
	}

	size := node.Size()
	fixed := size
	if !debug.Assertf(size.IsFinite(), "%T reported non-finite size (%g, %g) for %s", child, size.Width, size.Height, c) {
		fixed = Size{Width: finiteOr(size.Width, c.Max.Width), Height: finiteOr(size.Height, c.Max.Height)}
	}
	if !withinConstraint(fixed, c) {
		debug.Assertf(false, "%T reported size (%g, %g) outside %s", child, size.Width, size.Height, c)
		fixed = c.Clamp(fixed)
		fixed = Size{Width: finiteOr(fixed.Width, 0), Height: finiteOr(fixed.Height, 0)}
	}
	if fixed != size {
		return resized(node, fixed)
	}
	return node
}

func withinConstraint(s Size, c Constraint) bool {
	return s.Width >= c.Min.Width-sizeTolerance && s.Width <= c.Max.Width+sizeTolerance &&
		s.Height >= c.Min.Height-sizeTolerance && s.Height <= c.Max.Height+sizeTolerance
}

// finiteOr returns v if finite, else fallback if finite, else zero.
func finiteOr(v, fallback float64) float64 {
	if layout.IsFinite(v) {
		return v
	}
	if layout.IsFinite(fallback) {
		return fallback
	}
	return 0
}

// requireFinite asserts that an axis bound a strategy depends on is finite.
// It returns the bound, or zero when the assertion degrades.
func requireFinite(v float64, what string) float64 {
	if !debug.Assertf(!math.IsInf(v, 0) && !math.IsNaN(v), "%s requires a finite bound, got %g", what, v) {
		return 0
	}
	return v
}
