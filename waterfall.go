package compose

// WaterfallComponent arranges children in equal-width columns, placing
// each child at the bottom of the currently shortest column. Leading edges
// never decrease in child order, so the result answers visibility queries
// with a binary search like a list.
type WaterfallComponent struct {
	columns  int
	spacing  float64
	children []Component
}

// Waterfall creates a vertical masonry layout with the given column count.
func Waterfall(columns int, children ...Component) WaterfallComponent {
	return WaterfallComponent{columns: max(1, columns), children: children}
}

// Spacing sets the gap between columns and between rows in a column.
func (w WaterfallComponent) Spacing(v float64) WaterfallComponent {
	w.spacing = max(0, v)
	return w
}

// Layout requires a finite maximum width.
func (w WaterfallComponent) Layout(c Constraint) RenderNode {
	width := requireFinite(c.Max.Width, "waterfall width")
	cols := w.columns
	colWidth := max(0, (width-w.spacing*float64(cols-1))/float64(cols))
	childC := Constraint{
		Min: Size{Width: colWidth, Height: NoMin},
		Max: Size{Width: colWidth, Height: Inf},
	}

	heights := make([]float64, cols)
	children := make([]RenderNode, len(w.children))
	positions := make([]Point, len(w.children))
	for i, child := range w.children {
		col := shortest(heights)
		node := layoutChild(child, childC)
		children[i] = node
		positions[i] = Point{X: float64(col) * (colWidth + w.spacing), Y: heights[col]}
		heights[col] += node.Size().Height + w.spacing
	}

	tallest := 0.0
	for _, h := range heights {
		tallest = max(tallest, h)
	}
	if len(children) > 0 {
		tallest -= w.spacing
	}
	size := c.Clamp(Size{Width: width, Height: max(0, tallest)})
	return NewSortedNode(Vertical, size, children, positions)
}

// shortest returns the lowest-indexed column with the least height.
func shortest(heights []float64) int {
	best := 0
	for i, h := range heights {
		if h < heights[best] {
			best = i
		}
	}
	return best
}
