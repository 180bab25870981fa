package compose

import (
	"github.com/grindlemire/go-compose/internal/debug"
)

// RenderNode is the result of one layout pass over a component.
//
// Positions()[i] is the offset of Children()[i] in this node's coordinate
// space; the two slices always have the same length. VisibleIndexes answers
// which children intersect frame (also in this node's coordinates) without
// the caller walking the subtree. Render nodes are immutable and may be
// queried any number of times.
type RenderNode interface {
	Size() Size
	Children() []RenderNode
	Positions() []Point
	Context() Context
	VisibleIndexes(frame Rect) []int
}

// ViewNode is a render node backed by a native view. View nodes are the
// leaves of the windowed query; their children are not traversed.
type ViewNode interface {
	RenderNode

	// MakeView constructs a fresh native view.
	MakeView() View

	// UpdateView pushes this node's properties onto v.
	UpdateView(v View)

	// ReuseKey is the default reuse-pool key for views of this node.
	// NoReuse disables pooling.
	ReuseKey() string
}

// Placement is a visible child together with the position it should be
// rendered at for the queried frame.
type Placement struct {
	Index    int
	Position Point
}

// Placer is implemented by render nodes whose child positions depend on the
// queried frame (for example sticky headers). The windowed query prefers
// VisiblePlacements over VisibleIndexes when a node implements it.
type Placer interface {
	VisiblePlacements(frame Rect) []Placement
}

// Node is a general container render node with a linear visibility scan.
type Node struct {
	size      Size
	children  []RenderNode
	positions []Point
}

var _ RenderNode = (*Node)(nil)

// NewNode creates a container node. children and positions must have the
// same length; on mismatch the longer slice is truncated.
func NewNode(size Size, children []RenderNode, positions []Point) *Node {
	if !debug.Assertf(len(children) == len(positions),
		"render node has %d children but %d positions", len(children), len(positions)) {
		n := min(len(children), len(positions))
		children, positions = children[:n], positions[:n]
	}
	return &Node{size: size, children: children, positions: positions}
}

func (n *Node) Size() Size             { return n.size }
func (n *Node) Children() []RenderNode { return n.children }
func (n *Node) Positions() []Point     { return n.positions }
func (n *Node) Context() Context       { return nil }

// VisibleIndexes returns every child whose frame intersects frame.
func (n *Node) VisibleIndexes(frame Rect) []int {
	return scanVisible(n.children, n.positions, frame, 0, len(n.children))
}

// scanVisible returns the indexes in [from, to) whose child frame
// intersects frame.
func scanVisible(children []RenderNode, positions []Point, frame Rect, from, to int) []int {
	var out []int
	for i := from; i < to; i++ {
		if childFrame(children, positions, i).Intersects(frame) {
			out = append(out, i)
		}
	}
	return out
}

func childFrame(children []RenderNode, positions []Point, i int) Rect {
	p := positions[i]
	s := children[i].Size()
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// wrapperNode presents a single child at an offset with its own size and
// context. Inset, offset, size overrides and context modifiers all produce
// wrapper nodes; a wrapper forwards its full context (identity key
// included) to the child it wraps.
type wrapperNode struct {
	child   RenderNode
	size    Size
	offset  Point
	context Context
}

func (w *wrapperNode) Size() Size             { return w.size }
func (w *wrapperNode) Children() []RenderNode { return []RenderNode{w.child} }
func (w *wrapperNode) Positions() []Point     { return []Point{w.offset} }
func (w *wrapperNode) Context() Context       { return w.context }

func (w *wrapperNode) VisibleIndexes(frame Rect) []int {
	r := Rect{X: w.offset.X, Y: w.offset.Y, Width: w.child.Size().Width, Height: w.child.Size().Height}
	if r.Intersects(frame) {
		return []int{0}
	}
	return nil
}

// resized reports child at a different size without moving it. View nodes
// stay view nodes so their renderable frame picks up the new size.
func resized(child RenderNode, size Size) RenderNode {
	if vn, ok := child.(ViewNode); ok {
		return &resizedViewNode{ViewNode: vn, size: size}
	}
	return &wrapperNode{child: child, size: size}
}

type resizedViewNode struct {
	ViewNode
	size Size
}

func (r *resizedViewNode) Size() Size { return r.size }

// withContext attaches ctx to child without changing geometry.
func withContext(child RenderNode, ctx Context) RenderNode {
	return &wrapperNode{child: child, size: child.Size(), context: ctx}
}
