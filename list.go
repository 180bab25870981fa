package compose

import "github.com/grindlemire/go-compose/internal/layout"

// ListComponent stacks children along an unbounded main axis and answers
// visibility queries with a binary search. Use it for long scrolling
// content; Stack is for short rows that need flex.
//
// Children wrapped in Sticky pin to the leading edge of the window while
// their section scrolls past.
type ListComponent struct {
	axis     Axis
	spacing  float64
	align    Align
	children []Component
	push     StickyPush
}

// List creates a vertical list.
func List(children ...Component) ListComponent {
	return ListComponent{axis: Vertical, children: children}
}

// HList creates a horizontal list.
func HList(children ...Component) ListComponent {
	return ListComponent{axis: Horizontal, children: children}
}

// Spacing sets the gap between rows.
func (l ListComponent) Spacing(v float64) ListComponent {
	l.spacing = max(0, v)
	return l
}

// Align sets the cross-axis alignment of rows.
func (l ListComponent) Align(a Align) ListComponent {
	l.align = a
	return l
}

// StickyPush sets which item pushes a pinned sticky row off the window.
func (l ListComponent) StickyPush(p StickyPush) ListComponent {
	l.push = p
	return l
}

// Repeat builds n components with fn, for use as list children.
func Repeat(n int, fn func(i int) Component) []Component {
	out := make([]Component, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// Layout lays every row out against an unbounded main axis.
func (l ListComponent) Layout(c Constraint) RenderNode {
	a := l.axis
	crossMax := a.Cross(c.Max)
	crossBounded := layout.IsFinite(crossMax)
	lo := NoMin
	if l.align == AlignStretch && crossBounded {
		lo = crossMax
	}
	rowC := Constraint{Min: a.Size(NoMin, lo), Max: a.Size(Inf, crossMax)}

	n := len(l.children)
	children := make([]RenderNode, n)
	var sticky []int
	main, widest := 0.0, 0.0
	for i, child := range l.children {
		if s, ok := child.(StickyComponent); ok {
			sticky = append(sticky, i)
			child = s.child
		}
		node := layoutChild(child, rowC)
		children[i] = node
		if i > 0 {
			main += l.spacing
		}
		main += a.Main(node.Size())
		widest = max(widest, a.Cross(node.Size()))
	}

	crossExtent := widest
	if crossBounded {
		crossExtent = crossMax
	}
	size := c.Clamp(a.Size(main, crossExtent))

	positions := make([]Point, n)
	offset := 0.0
	for i, node := range children {
		cross := layout.AlignOffset(l.align, a.Cross(size), a.Cross(node.Size()))
		positions[i] = a.Point(offset, cross)
		offset += a.Main(node.Size()) + l.spacing
	}

	sorted := NewSortedNode(a, size, children, positions)
	if len(sticky) > 0 {
		return NewStickyNode(sorted, sticky, l.push)
	}
	return sorted
}
