package compose

import "fmt"

// ScrollAxis selects which axes of the content may exceed the viewport.
// It decides the constraint the root component is laid out against.
type ScrollAxis uint8

const (
	ScrollVertical   ScrollAxis = iota // Width bounded by the viewport, height unbounded
	ScrollNone                         // Both axes bounded by the viewport
	ScrollHorizontal                   // Height bounded by the viewport, width unbounded
	ScrollBoth                         // Both axes unbounded
)

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine) error

// WithAnimator sets the animator used for views without an override.
// Default is DefaultAnimator.
func WithAnimator(a Animator) EngineOption {
	return func(e *Engine) error {
		if a == nil {
			return fmt.Errorf("animator must not be nil")
		}
		e.animator = a
		return nil
	}
}

// WithScrollAxis sets which content axes are unbounded during layout.
// Default is ScrollVertical.
func WithScrollAxis(axis ScrollAxis) EngineOption {
	return func(e *Engine) error {
		if axis > ScrollBoth {
			return fmt.Errorf("unknown scroll axis %d", axis)
		}
		e.scrollAxis = axis
		return nil
	}
}

// WithConstraint replaces the scroll-axis rule with a function computing
// the root constraint from the viewport size.
func WithConstraint(fn func(viewport Size) Constraint) EngineOption {
	return func(e *Engine) error {
		if fn == nil {
			return fmt.Errorf("constraint function must not be nil")
		}
		e.constraintFn = fn
		return nil
	}
}

// WithVisibleFrameInsets grows or shrinks the window queried on each
// render. Negative insets render views slightly outside the viewport.
func WithVisibleFrameInsets(insets Edges) EngineOption {
	return func(e *Engine) error {
		e.visibleFrameInsets = insets
		return nil
	}
}

// WithReusePoolLimit sets how many idle views are kept per reuse key.
// Default is 32. Zero disables pooling.
func WithReusePoolLimit(limit int) EngineOption {
	return func(e *Engine) error {
		if limit < 0 {
			return fmt.Errorf("reuse pool limit must not be negative")
		}
		e.pool = newReusePool(limit)
		return nil
	}
}

// WithViewport sets the initial viewport size.
func WithViewport(size Size) EngineOption {
	return func(e *Engine) error {
		if !size.IsFinite() || size.Width < 0 || size.Height < 0 {
			return fmt.Errorf("viewport must be finite and non-negative, got %v", size)
		}
		e.viewport = size
		return nil
	}
}

// WithComponent sets the initial root component.
func WithComponent(c Component) EngineOption {
	return func(e *Engine) error {
		e.component = c
		e.needsReload = true
		return nil
	}
}

// WithOnReload registers fn to run after every reload pass.
func WithOnReload(fn func(e *Engine)) EngineOption {
	return func(e *Engine) error {
		e.onReload = fn
		return nil
	}
}
