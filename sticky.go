package compose

import (
	"sort"

	"github.com/grindlemire/go-compose/internal/debug"
)

// StickyPush selects what pushes a pinned item off the window.
type StickyPush uint8

const (
	// PushByNextSticky lets the pinned item ride until the next sticky
	// item reaches it.
	PushByNextSticky StickyPush = iota
	// PushByNextItem lets the pinned item ride only until the item
	// directly after it reaches it.
	PushByNextItem
)

// StickyComponent marks a list row that pins to the leading edge of the
// window. Outside a list it lays out its child unchanged.
type StickyComponent struct {
	child Component
}

// Sticky marks child as a sticky row.
func Sticky(child Component) StickyComponent {
	return StickyComponent{child: child}
}

// Layout lays out the child directly against c.
func (s StickyComponent) Layout(c Constraint) RenderNode {
	return layoutChild(s.child, c)
}

// StickyNode decorates a sorted node so that, for any window, the last
// sticky child starting before the window's leading edge is rendered
// pinned to that edge. The pinned child is reported last so it draws on
// top of the rows scrolling under it.
type StickyNode struct {
	*SortedNode
	sticky []int
	push   StickyPush
}

var (
	_ RenderNode = (*StickyNode)(nil)
	_ Placer     = (*StickyNode)(nil)
)

// NewStickyNode pins the children of sorted at the given indexes, which
// must be increasing.
func NewStickyNode(sorted *SortedNode, sticky []int, push StickyPush) *StickyNode {
	n := len(sorted.Children())
	valid := make([]int, 0, len(sticky))
	for _, i := range sticky {
		if !debug.Assertf(i >= 0 && i < n, "sticky index %d out of range [0, %d)", i, n) {
			continue
		}
		if len(valid) > 0 && !debug.Assertf(i > valid[len(valid)-1], "sticky indexes not increasing at %d", i) {
			continue
		}
		valid = append(valid, i)
	}
	return &StickyNode{SortedNode: sorted, sticky: valid, push: push}
}

// VisibleIndexes returns the indexes of VisiblePlacements.
func (s *StickyNode) VisibleIndexes(frame Rect) []int {
	placements := s.VisiblePlacements(frame)
	out := make([]int, len(placements))
	for i, p := range placements {
		out[i] = p.Index
	}
	return out
}

// VisiblePlacements returns the rows intersecting frame at their natural
// positions, followed by the pinned row (if any) at its pinned position.
func (s *StickyNode) VisiblePlacements(frame Rect) []Placement {
	positions := s.positions
	pinned, at := s.pinned(frame)

	var out []Placement
	for _, i := range s.SortedNode.VisibleIndexes(frame) {
		if i == pinned {
			continue
		}
		out = append(out, Placement{Index: i, Position: positions[i]})
	}
	if pinned < 0 {
		return out
	}
	size := s.children[pinned].Size()
	r := Rect{X: at.X, Y: at.Y, Width: size.Width, Height: size.Height}
	if r.Intersects(frame) {
		out = append(out, Placement{Index: pinned, Position: at})
	}
	return out
}

// pinned returns the sticky row to pin for frame and where to draw it, or
// -1 when no sticky row starts before the window.
func (s *StickyNode) pinned(frame Rect) (int, Point) {
	a := s.axis
	leading := a.Leading(frame)
	k := sort.Search(len(s.sticky), func(j int) bool {
		return a.MainOf(s.positions[s.sticky[j]]) >= leading
	}) - 1
	if k < 0 {
		return -1, Point{}
	}

	idx := s.sticky[k]
	natural := s.positions[idx]
	extent := a.Main(s.children[idx].Size())

	at := leading
	next := -1
	switch s.push {
	case PushByNextItem:
		if idx+1 < len(s.children) {
			next = idx + 1
		}
	default:
		if k+1 < len(s.sticky) {
			next = s.sticky[k+1]
		}
	}
	if next >= 0 {
		at = min(at, a.MainOf(s.positions[next])-extent)
	}
	at = max(at, a.MainOf(natural))
	return idx, a.Point(at, a.CrossOf(natural))
}
