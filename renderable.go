package compose

import "strconv"

// View is a native visual object owned by an Engine. The engine only ever
// reads and writes its frame; everything else happens in the Make/Update
// functions supplied by the view's render node.
type View interface {
	Frame() Rect
	SetFrame(frame Rect)
}

// Host is the native container views are inserted into.
type Host interface {
	// InsertView places v at index among the host's views, moving it if it
	// is already present. Indexes past the end append.
	InsertView(v View, index int)

	// RemoveView detaches v from the host.
	RemoveView(v View)
}

// Renderable is a leaf produced by the windowed query: everything the engine
// needs to create, update and animate one native view.
type Renderable struct {
	// Key is the declared identity key, or the structural path of the leaf
	// ("@0.2.1") when none was declared.
	Key string

	// Frame is the absolute frame in the queried coordinate space.
	Frame Rect

	// ReuseKey selects the reuse pool; NoReuse disables pooling.
	ReuseKey string

	// Animator overrides the engine animator when non-nil.
	Animator Animator

	Make   func() View
	Update func(View)
}

// VisibleRenderables returns the leaves of node whose frames intersect frame,
// in tree order. frame is in node's coordinate space; the returned frames
// are too.
func VisibleRenderables(node RenderNode, frame Rect) []Renderable {
	if node == nil {
		return nil
	}
	c := collector{frame: frame}
	c.visit(node, Point{}, "@", nil)
	return c.out
}

type collector struct {
	frame Rect
	out   []Renderable
}

func (c *collector) visit(node RenderNode, origin Point, path string, inherited Context) {
	ctx := node.Context().Merge(inherited)

	if vn, ok := node.(ViewNode); ok {
		f := Rect{X: origin.X, Y: origin.Y, Width: vn.Size().Width, Height: vn.Size().Height}
		if !f.Intersects(c.frame) {
			return
		}
		c.out = append(c.out, newRenderable(vn, f, ctx, path))
		return
	}

	// Identity keys name a single node; only wrappers hand theirs down.
	down := ctx
	if _, ok := node.(*wrapperNode); !ok {
		down = ctx.inheritable()
	}

	local := c.frame.Translate(-origin.X, -origin.Y)
	children := node.Children()
	if p, ok := node.(Placer); ok {
		for _, pl := range p.VisiblePlacements(local) {
			c.visit(children[pl.Index], origin.Add(pl.Position), childPath(path, pl.Index), down)
		}
		return
	}
	positions := node.Positions()
	for _, i := range node.VisibleIndexes(local) {
		c.visit(children[i], origin.Add(positions[i]), childPath(path, i), down)
	}
}

func childPath(parent string, index int) string {
	if parent == "@" {
		return "@" + strconv.Itoa(index)
	}
	return parent + "." + strconv.Itoa(index)
}

func newRenderable(vn ViewNode, frame Rect, ctx Context, path string) Renderable {
	key, ok := ctx.ID()
	if !ok || key == "" {
		key = path
	}
	reuse, ok := ctx.ReuseKey()
	if !ok {
		reuse = vn.ReuseKey()
	}
	return Renderable{
		Key:      key,
		Frame:    frame,
		ReuseKey: reuse,
		Animator: ctx.Animator(),
		Make:     vn.MakeView,
		Update:   vn.UpdateView,
	}
}
