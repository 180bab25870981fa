package compose

// InsetComponent pads its child on each side.
type InsetComponent struct {
	child Component
	edges Edges
}

// Inset pads child by edges.
func Inset(child Component, edges Edges) InsetComponent {
	return InsetComponent{child: child, edges: edges}
}

// Layout offers the child the constraint shrunk by the insets and reports
// the child's size grown back out.
func (in InsetComponent) Layout(c Constraint) RenderNode {
	node := layoutChild(in.child, c.Inset(in.edges))
	size := c.Clamp(node.Size().Outset(in.edges))
	return &wrapperNode{
		child:  node,
		size:   size,
		offset: Point{X: in.edges.Left, Y: in.edges.Top},
	}
}

// SizedComponent overrides the sizing strategy of its child per axis.
type SizedComponent struct {
	child  Component
	width  SizeStrategy
	height SizeStrategy
}

// Sized lays child out with the given width and height strategies.
func Sized(child Component, width, height SizeStrategy) SizedComponent {
	return SizedComponent{child: child, width: width, height: height}
}

// Frame fixes child to an absolute size.
func Frame(child Component, width, height float64) SizedComponent {
	return Sized(child, Absolute(width), Absolute(height))
}

// Layout narrows the constraint per the strategies before laying out the child.
func (s SizedComponent) Layout(c Constraint) RenderNode {
	return layoutChild(s.child, constrain(c, s.width, s.height))
}

// OffsetComponent draws its child displaced by a fixed amount. The
// reported size is the child's; the offset does not affect siblings.
type OffsetComponent struct {
	child Component
	by    Point
}

// Offset displaces child by (dx, dy).
func Offset(child Component, dx, dy float64) OffsetComponent {
	return OffsetComponent{child: child, by: Point{X: dx, Y: dy}}
}

// Layout lays out the child against c unchanged.
func (o OffsetComponent) Layout(c Constraint) RenderNode {
	node := layoutChild(o.child, c)
	return &wrapperNode{child: node, size: node.Size(), offset: o.by}
}
