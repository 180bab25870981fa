package compose

import "github.com/grindlemire/go-compose/internal/layout"

type sizeKind uint8

const (
	sizeFit sizeKind = iota
	sizeFill
	sizeAbsolute
	sizePercentage
)

// SizeStrategy decides one axis of a leaf or size override.
type SizeStrategy struct {
	kind  sizeKind
	value float64
}

// Fit uses the natural size clamped into the constraint.
func Fit() SizeStrategy { return SizeStrategy{kind: sizeFit} }

// Fill takes the constraint maximum. The maximum must be finite.
func Fill() SizeStrategy { return SizeStrategy{kind: sizeFill} }

// Absolute uses v clamped into the constraint.
func Absolute(v float64) SizeStrategy { return SizeStrategy{kind: sizeAbsolute, value: v} }

// Percentage takes fraction p (0..1) of the constraint maximum. The maximum
// must be finite.
func Percentage(p float64) SizeStrategy { return SizeStrategy{kind: sizePercentage, value: p} }

// bounds returns the [lo, hi] range the strategy allows given the incoming
// range for one axis.
func (s SizeStrategy) bounds(lo, hi float64) (float64, float64) {
	switch s.kind {
	case sizeFill:
		v := layout.Clamp(requireFinite(hi, "fill"), lo, hi)
		return v, v
	case sizeAbsolute:
		v := layout.Clamp(s.value, lo, hi)
		return v, v
	case sizePercentage:
		v := layout.Clamp(requireFinite(hi, "percentage")*s.value, lo, hi)
		return v, v
	default:
		return lo, hi
	}
}

// constrain applies width and height strategies to c.
func constrain(c Constraint, width, height SizeStrategy) Constraint {
	minW, maxW := width.bounds(c.Min.Width, c.Max.Width)
	minH, maxH := height.bounds(c.Min.Height, c.Max.Height)
	return Constraint{Min: Size{Width: minW, Height: minH}, Max: Size{Width: maxW, Height: maxH}}
}

// ViewComponent is a leaf backed by a native view.
type ViewComponent struct {
	kind     string
	make     func() View
	update   func(View)
	natural  Size
	sizeFunc func(Constraint) Size
	width    SizeStrategy
	height   SizeStrategy
}

// ViewOption configures a ViewComponent.
type ViewOption func(*ViewComponent)

// NewView creates a leaf component. kind is the default reuse key: views of
// the same kind are recycled through the engine's reuse pool. make builds a
// fresh view and update pushes the component's properties onto a view.
func NewView(kind string, make func() View, update func(View), opts ...ViewOption) *ViewComponent {
	v := &ViewComponent{kind: kind, make: make, update: update}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithSize sets the natural size used by Fit axes.
func WithSize(width, height float64) ViewOption {
	return func(v *ViewComponent) {
		v.natural = Size{Width: width, Height: height}
	}
}

// WithSizeFunc computes the natural size from the incoming constraint, for
// content such as wrapped text whose height depends on the width offered.
func WithSizeFunc(fn func(Constraint) Size) ViewOption {
	return func(v *ViewComponent) {
		v.sizeFunc = fn
	}
}

// WithWidth sets the width strategy (default Fit).
func WithWidth(s SizeStrategy) ViewOption {
	return func(v *ViewComponent) {
		v.width = s
	}
}

// WithHeight sets the height strategy (default Fit).
func WithHeight(s SizeStrategy) ViewOption {
	return func(v *ViewComponent) {
		v.height = s
	}
}

// Layout resolves the leaf's size.
func (v *ViewComponent) Layout(c Constraint) RenderNode {
	inner := constrain(c, v.width, v.height)
	natural := v.natural
	if v.sizeFunc != nil {
		natural = v.sizeFunc(inner)
	}
	size := inner.Clamp(natural)
	size = Size{Width: finiteOr(size.Width, 0), Height: finiteOr(size.Height, 0)}
	return &viewNode{size: size, kind: v.kind, make: v.make, update: v.update}
}

type viewNode struct {
	size   Size
	kind   string
	make   func() View
	update func(View)
}

var _ ViewNode = (*viewNode)(nil)

func (n *viewNode) Size() Size                { return n.size }
func (n *viewNode) Children() []RenderNode    { return nil }
func (n *viewNode) Positions() []Point        { return nil }
func (n *viewNode) Context() Context          { return nil }
func (n *viewNode) VisibleIndexes(Rect) []int { return nil }
func (n *viewNode) ReuseKey() string          { return n.kind }
func (n *viewNode) MakeView() View            { return n.make() }

func (n *viewNode) UpdateView(v View) {
	if n.update != nil {
		n.update(v)
	}
}
