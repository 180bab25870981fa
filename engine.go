package compose

import (
	"github.com/oklog/ulid/v2"

	"github.com/grindlemire/go-compose/internal/debug"
)

// Engine owns a component tree and the native views rendering its visible
// part inside one host.
//
// All methods must be called from a single thread (the UI thread); use a
// Loop to marshal work from other goroutines.
type Engine struct {
	id   string
	host Host

	component  Component
	renderNode RenderNode
	animator   Animator
	pool       *reusePool

	// Layout configuration
	scrollAxis         ScrollAxis
	constraintFn       func(viewport Size) Constraint
	visibleFrameInsets Edges

	// Scroll geometry
	viewport          Size
	contentOffset     Point
	contentSize       Size
	scrollOffsetDelta Point

	// Views currently mounted, aligned by slot
	visibleRenderables []Renderable
	visibleIDs         []string
	visibleViews       []View

	// Update cycle
	needsReload bool
	needsRender bool
	isReloading bool
	isRendering bool

	// Deletions handed to an animator that have not completed yet
	deleting int

	onReload     func(e *Engine)
	reloadPasses int
	renderPasses int
}

// NewEngine creates an engine rendering into host.
func NewEngine(host Host, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		id:       ulid.Make().String(),
		host:     host,
		animator: DefaultAnimator{},
		pool:     newReusePool(DefaultReusePoolLimit),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// ID returns the engine's unique id, used to tag log lines.
func (e *Engine) ID() string { return e.id }

// Host returns the host views are inserted into.
func (e *Engine) Host() Host { return e.host }

// SetComponent replaces the root component and requests a reload.
func (e *Engine) SetComponent(c Component) {
	e.component = c
	e.SetNeedsReload()
}

// Component returns the root component.
func (e *Engine) Component() Component { return e.component }

// SetViewport sets the visible size. A change requests a reload, since the
// root constraint depends on it.
func (e *Engine) SetViewport(size Size) {
	if size == e.viewport {
		return
	}
	if !debug.Assertf(size.IsFinite() && size.Width >= 0 && size.Height >= 0, "invalid viewport %v", size) {
		return
	}
	e.viewport = size
	e.SetNeedsReload()
}

// Viewport returns the visible size.
func (e *Engine) Viewport() Size { return e.viewport }

// SetContentOffset scrolls to p. A change requests a render.
func (e *Engine) SetContentOffset(p Point) {
	if p == e.contentOffset {
		return
	}
	e.contentOffset = p
	e.SetNeedsRender()
}

// ScrollBy moves the content offset by (dx, dy).
func (e *Engine) ScrollBy(dx, dy float64) {
	e.SetContentOffset(e.contentOffset.Add(Point{X: dx, Y: dy}))
}

// ContentOffset returns the scroll position.
func (e *Engine) ContentOffset() Point { return e.contentOffset }

// ContentSize returns the size of the last laid-out root node.
func (e *Engine) ContentSize() Size { return e.contentSize }

// ScrollOffsetDelta returns how far the last reload moved the content offset.
func (e *Engine) ScrollOffsetDelta() Point { return e.scrollOffsetDelta }

// RenderNode returns the last laid-out root node, or nil before the first
// reload.
func (e *Engine) RenderNode() RenderNode { return e.renderNode }

// VisibleFrame returns the window queried on render, in content coordinates.
func (e *Engine) VisibleFrame() Rect {
	return Rect{
		X:      e.contentOffset.X,
		Y:      e.contentOffset.Y,
		Width:  e.viewport.Width,
		Height: e.viewport.Height,
	}.Inset(e.visibleFrameInsets)
}

// VisibleViews returns the mounted views in slot order.
func (e *Engine) VisibleViews() []View {
	return append([]View(nil), e.visibleViews...)
}

// VisibleRenderables returns the renderables of the mounted views.
func (e *Engine) VisibleRenderables() []Renderable {
	return append([]Renderable(nil), e.visibleRenderables...)
}

// VisibleIDs returns the deduplicated identities of the mounted views.
func (e *Engine) VisibleIDs() []string {
	return append([]string(nil), e.visibleIDs...)
}

// ViewForID returns the mounted view with identity id.
func (e *Engine) ViewForID(id string) (View, bool) {
	for i, vid := range e.visibleIDs {
		if vid == id {
			return e.visibleViews[i], true
		}
	}
	return nil, false
}

// PendingDeletions returns the number of views whose delete animation has
// not completed.
func (e *Engine) PendingDeletions() int { return e.deleting }

// PooledViews returns the number of idle views held for reuseKey.
func (e *Engine) PooledViews(reuseKey string) int { return e.pool.count(reuseKey) }

// Passes returns how many reload and render passes have run.
func (e *Engine) Passes() (reloads, renders int) { return e.reloadPasses, e.renderPasses }

// layoutConstraint is the constraint the root component is laid out against.
func (e *Engine) layoutConstraint() Constraint {
	if e.constraintFn != nil {
		return e.constraintFn(e.viewport)
	}
	switch e.scrollAxis {
	case ScrollNone:
		return Loose(e.viewport)
	case ScrollHorizontal:
		return Loose(Size{Width: Inf, Height: e.viewport.Height})
	case ScrollBoth:
		return Unbounded()
	default:
		return Loose(Size{Width: e.viewport.Width, Height: Inf})
	}
}
