package compose

import (
	"sort"

	"github.com/grindlemire/go-compose/internal/debug"
)

// SortedNode is a container whose children are ordered by leading edge
// along an axis. Visibility queries use a binary search instead of a
// linear scan, so windowing a list of N rows costs O(log N + visible).
type SortedNode struct {
	axis      Axis
	size      Size
	children  []RenderNode
	positions []Point

	// maxExtent is the largest main-axis size of any child; a child
	// starting more than maxExtent before the window cannot reach it.
	maxExtent float64
	sorted    bool
}

var _ RenderNode = (*SortedNode)(nil)

// NewSortedNode creates a sorted container. positions must be
// non-decreasing along axis; if they are not the node asserts and falls
// back to a linear scan.
func NewSortedNode(axis Axis, size Size, children []RenderNode, positions []Point) *SortedNode {
	if !debug.Assertf(len(children) == len(positions),
		"sorted node has %d children but %d positions", len(children), len(positions)) {
		n := min(len(children), len(positions))
		children, positions = children[:n], positions[:n]
	}
	s := &SortedNode{axis: axis, size: size, children: children, positions: positions, sorted: true}
	for i, child := range children {
		s.maxExtent = max(s.maxExtent, axis.Main(child.Size()))
		if i > 0 && axis.MainOf(positions[i]) < axis.MainOf(positions[i-1]) {
			s.sorted = false
		}
	}
	debug.Assertf(s.sorted, "sorted node children are not ordered along the %s axis", axis)
	return s
}

func (s *SortedNode) Size() Size             { return s.size }
func (s *SortedNode) Children() []RenderNode { return s.children }
func (s *SortedNode) Positions() []Point     { return s.positions }
func (s *SortedNode) Context() Context       { return nil }
func (s *SortedNode) Axis() Axis             { return s.axis }

// VisibleIndexes returns the children intersecting frame in order.
func (s *SortedNode) VisibleIndexes(frame Rect) []int {
	n := len(s.children)
	if !s.sorted {
		return scanVisible(s.children, s.positions, frame, 0, n)
	}
	leading := s.axis.Leading(frame)
	trailing := s.axis.Trailing(frame)
	start := sort.Search(n, func(i int) bool {
		return s.axis.MainOf(s.positions[i]) >= leading-s.maxExtent
	})

	var out []int
	for i := start; i < n; i++ {
		if s.axis.MainOf(s.positions[i]) >= trailing {
			break
		}
		if childFrame(s.children, s.positions, i).Intersects(frame) {
			out = append(out, i)
		}
	}
	return out
}
