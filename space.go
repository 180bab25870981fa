package compose

// Space is an empty component of a fixed natural size. It produces no view.
func Space(width, height float64) Component {
	return ComponentFunc(func(c Constraint) RenderNode {
		return NewNode(c.Clamp(Size{Width: width, Height: height}), nil, nil)
	})
}

// Spacer is a flexible empty component that absorbs leftover main-axis
// space in a stack.
func Spacer() FlexibleComponent {
	return Flexible(Space(0, 0), 1)
}
