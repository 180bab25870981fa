package compose

import (
	"github.com/grindlemire/go-compose/internal/debug"
	"github.com/grindlemire/go-compose/internal/layout"
)

// Stack lays its children out in a line along one axis.
type Stack struct {
	axis       Axis
	spacing    float64
	justify    Justify
	align      Align
	children   []Component
	concurrent int
}

// HStack lays children out left to right.
func HStack(children ...Component) Stack {
	return Stack{axis: Horizontal, children: children}
}

// VStack lays children out top to bottom.
func VStack(children ...Component) Stack {
	return Stack{axis: Vertical, children: children}
}

// Spacing sets the fixed gap between neighbouring children.
func (s Stack) Spacing(v float64) Stack {
	s.spacing = max(0, v)
	return s
}

// Justify sets how leftover main-axis space is distributed.
func (s Stack) Justify(j Justify) Stack {
	s.justify = j
	return s
}

// Align sets the cross-axis alignment of children.
func (s Stack) Align(a Align) Stack {
	s.align = a
	return s
}

// Concurrent lays out sibling children on up to limit goroutines. Children
// must then be safe to lay out in parallel. Zero disables it.
func (s Stack) Concurrent(limit int) Stack {
	s.concurrent = max(0, limit)
	return s
}

// flexItem holds per-child state for one stack layout call.
type flexItem struct {
	child  Component
	node   RenderNode
	weight float64
	align  Align
	fill   FlexFill
}

// Layout runs the flex algorithm:
//
//  1. non-flexible children are laid out with the stack's main maximum
//  2. leftover main space is split per unit of flex weight
//  3. flexible children are laid out with their share
//  4. children are positioned by justify and align
func (s Stack) Layout(c Constraint) RenderNode {
	a := s.axis
	n := len(s.children)
	mainMax, crossMax := a.Main(c.Max), a.Cross(c.Max)
	mainBounded := layout.IsFinite(mainMax)
	crossBounded := layout.IsFinite(crossMax)

	items := make([]flexItem, n)
	totalWeight := 0.0
	for i, child := range s.children {
		item := &items[i]
		item.child = child
		item.align = s.align
		if f, ok := child.(FlexibleComponent); ok {
			item.child = f.child
			item.weight = f.weight
			item.fill = f.fill
			if f.hasAlign {
				item.align = f.alignSelf
			}
		}
		if mainBounded {
			totalWeight += item.weight
		}
	}

	crossBounds := func(align Align) (float64, float64) {
		if align == AlignStretch && crossBounded {
			return crossMax, crossMax
		}
		return NoMin, crossMax
	}
	flexible := func(it *flexItem) bool { return mainBounded && it.weight > 0 }

	// Phase 1: non-flexible children
	forEach(s.concurrent, n, func(i int) {
		it := &items[i]
		if flexible(it) {
			return
		}
		lo, hi := crossBounds(it.align)
		it.node = layoutChild(it.child, Constraint{
			Min: a.Size(NoMin, lo),
			Max: a.Size(mainMax, hi),
		})
	})

	spacing := s.spacing * float64(max(0, n-1))
	consumed := spacing
	for i := range items {
		if items[i].node != nil {
			consumed += a.Main(items[i].node.Size())
		}
	}

	// Phase 2 and 3: flexible children share what is left
	if totalWeight > 0 {
		perUnit := max(0, mainMax-consumed) / max(totalWeight, 1)
		forEach(s.concurrent, n, func(i int) {
			it := &items[i]
			if !flexible(it) {
				return
			}
			share := perUnit * it.weight
			lo, hi := crossBounds(it.align)
			mainMin := share
			if it.fill == FlexFillNatural {
				mainMin = NoMin
			}
			it.node = layoutChild(it.child, Constraint{
				Min: a.Size(mainMin, lo),
				Max: a.Size(share, hi),
			})
		})
	}

	// Phase 4: extents and positions
	mains := make([]float64, n)
	mainTotal := spacing
	widestCross := 0.0
	for i := range items {
		size := items[i].node.Size()
		mains[i] = a.Main(size)
		mainTotal += mains[i]
		widestCross = max(widestCross, a.Cross(size))
	}

	mainExtent := mainTotal
	if s.justify != JustifyStart && mainBounded {
		mainExtent = max(mainTotal, mainMax)
	}
	crossExtent := widestCross
	if crossBounded {
		crossExtent = crossMax
	}
	size := c.Clamp(a.Size(mainExtent, crossExtent))

	leftover := 0.0
	if mainBounded {
		leftover = a.Main(size) - mainTotal
	}
	offsets := layout.Distribute(s.justify, mains, s.spacing, leftover)

	children := make([]RenderNode, n)
	positions := make([]Point, n)
	finalCross := a.Cross(size)
	for i := range items {
		children[i] = items[i].node
		cross := layout.AlignOffset(items[i].align, finalCross, a.Cross(items[i].node.Size()))
		positions[i] = a.Point(offsets[i], cross)
	}

	if debug.Enabled() {
		debug.Log("stack %s: %d children, %s -> (%g, %g)", a, n, c, size.Width, size.Height)
	}
	return NewNode(size, children, positions)
}
