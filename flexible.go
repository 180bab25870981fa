package compose

// FlexFill controls how a flexible child uses its share of leftover space.
type FlexFill uint8

const (
	// FlexFillAlways gives the child exactly its share.
	FlexFillAlways FlexFill = iota
	// FlexFillNatural lets the child settle anywhere up to its share.
	FlexFillNatural
)

// FlexibleComponent marks a stack child that takes a weighted share of the
// stack's leftover main-axis space. Outside a stack it lays out its child
// unchanged.
type FlexibleComponent struct {
	child     Component
	weight    float64
	alignSelf Align
	hasAlign  bool
	fill      FlexFill
}

// Flexible wraps child with a flex weight. A weight of zero makes the child
// non-flexible while still allowing AlignSelf.
func Flexible(child Component, weight float64) FlexibleComponent {
	return FlexibleComponent{child: child, weight: max(0, weight)}
}

// AlignSelf overrides the stack's cross-axis alignment for this child.
func (f FlexibleComponent) AlignSelf(a Align) FlexibleComponent {
	f.alignSelf = a
	f.hasAlign = true
	return f
}

// Fill sets how the child uses its share.
func (f FlexibleComponent) Fill(p FlexFill) FlexibleComponent {
	f.fill = p
	return f
}

// Weight returns the flex weight.
func (f FlexibleComponent) Weight() float64 {
	return f.weight
}

// Layout lays out the child directly against c.
func (f FlexibleComponent) Layout(c Constraint) RenderNode {
	return layoutChild(f.child, c)
}
