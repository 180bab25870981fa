package compose

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func newTestEngine(t *testing.T, viewport Size, opts ...EngineOption) (*Engine, *MockHost) {
	t.Helper()
	host := NewMockHost()
	e, err := NewEngine(host, append([]EngineOption{WithViewport(viewport)}, opts...)...)
	assert.Equal(t, err, nil)
	return e, host
}

// deferredDeleter holds delete completions until the test releases them.
type deferredDeleter struct {
	DefaultAnimator
	pending []func()
}

func (d *deferredDeleter) Delete(_ Host, _ View, completion func()) {
	d.pending = append(d.pending, completion)
}

func (d *deferredDeleter) release() {
	pending := d.pending
	d.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// recordingAnimator counts calls and applies frames immediately.
type recordingAnimator struct {
	DefaultAnimator
	inserts, updates, deletes int
	shifts                    []Point
}

func (r *recordingAnimator) Insert(h Host, v View, f Rect) {
	r.inserts++
	r.DefaultAnimator.Insert(h, v, f)
}

func (r *recordingAnimator) Update(h Host, v View, f Rect) {
	r.updates++
	r.DefaultAnimator.Update(h, v, f)
}

func (r *recordingAnimator) Delete(h Host, v View, done func()) {
	r.deletes++
	r.DefaultAnimator.Delete(h, v, done)
}

func (r *recordingAnimator) Shift(h Host, d Point, v View) {
	r.shifts = append(r.shifts, d)
	r.DefaultAnimator.Shift(h, d, v)
}

func TestEngine_RowWithFlexibleChild(t *testing.T) {
	f := &leafFactory{}
	e, host := newTestEngine(t, NewSize(300, 600))

	e.SetComponent(HStack(Keyed("A", f.leaf("a", 100, 50)), Flexible(Keyed("B", f.leaf("b", 10, 20)), 1)))
	e.LayoutIfNeeded()

	assert.Equal(t, e.ContentSize(), NewSize(300, 50))
	assert.Equal(t, host.Len(), 2)
	b, ok := e.ViewForID("B")
	assert.Equal(t, ok, true)
	assert.Equal(t, b.Frame(), NewRect(100, 0, 200, 20))
	assert.Equal(t, e.State(), StateIdle)
}

func TestEngine_EmptyReload(t *testing.T) {
	f := &leafFactory{}
	e, host := newTestEngine(t, NewSize(300, 600))

	e.SetComponent(VStack(f.leaf("a", 10, 10), f.leaf("b", 10, 10)))
	e.ReloadData()
	assert.Equal(t, host.Len(), 2)

	e.SetComponent(HStack())
	e.ReloadData()

	assert.Equal(t, e.ContentSize(), NewSize(0, 0))
	assert.Equal(t, host.Len(), 0)
	assert.Equal(t, len(e.VisibleViews()), 0)
}

func TestEngine_NoComponent(t *testing.T) {
	e, host := newTestEngine(t, NewSize(300, 600))

	e.ReloadData()

	assert.Equal(t, e.RenderNode() == nil, true)
	assert.Equal(t, e.ContentSize(), Size{})
	assert.Equal(t, host.Len(), 0)
}

func TestEngine_IdentityReuseAcrossScroll(t *testing.T) {
	f := &leafFactory{}
	e, host := newTestEngine(t, NewSize(100, 100))
	e.SetComponent(List(f.rows("row", 100, 20)...))
	e.LayoutIfNeeded()

	assert.Equal(t, e.VisibleIDs(), []string{"row-0", "row-1", "row-2", "row-3", "row-4"})
	before, _ := e.ViewForID("row-3")

	e.ScrollBy(0, 50)
	assert.Equal(t, e.State(), StateNeedsRender)
	e.LayoutIfNeeded()

	assert.Equal(t, e.VisibleIDs(), []string{"row-2", "row-3", "row-4", "row-5", "row-6", "row-7"})
	after, _ := e.ViewForID("row-3")
	assert.Equal(t, before == after, true)
	assert.Equal(t, after.Frame(), NewRect(0, 60, 100, 20))

	// rows 0 and 1 were recycled for rows 5 and 6; row 7 is new
	assert.Equal(t, f.Made(), 6)
	assert.Equal(t, e.PooledViews("row"), 0)
	assert.Equal(t, host.Len(), 6)

	// a render pass does not push properties to carried views
	updates := f.updates
	e.Render()
	assert.Equal(t, f.updates, updates)
}

func TestEngine_ReloadUpdatesCarriedViews(t *testing.T) {
	f := &leafFactory{}
	e, _ := newTestEngine(t, NewSize(100, 100))
	e.SetComponent(VStack(Keyed("title", f.text("label", "before", 100, 20))))
	e.ReloadData()
	v, _ := e.ViewForID("title")

	e.SetComponent(VStack(Keyed("title", f.text("label", "after", 100, 20))))
	e.ReloadData()

	again, _ := e.ViewForID("title")
	assert.Equal(t, v == again, true)
	assert.Equal(t, again.(*MockView).Text, "after")
	assert.Equal(t, f.Made(), 1)
}

func TestEngine_DuplicateKeys(t *testing.T) {
	f := &leafFactory{}
	e, host := newTestEngine(t, NewSize(100, 100))

	e.SetComponent(VStack(
		Keyed("x", f.leaf("cell", 100, 10)),
		Keyed("x", f.leaf("cell", 100, 10)),
		Keyed("x", f.leaf("cell", 100, 10)),
	))
	e.ReloadData()

	assert.Equal(t, e.VisibleIDs(), []string{"x", "x1", "x2"})
	assert.Equal(t, host.Len(), 3)
	first, _ := e.ViewForID("x1")

	e.ReloadData()
	again, _ := e.ViewForID("x1")
	assert.Equal(t, first == again, true)
}

func TestEngine_ReuseKeyMismatchMakesFreshView(t *testing.T) {
	f := &leafFactory{}
	e, host := newTestEngine(t, NewSize(100, 100))
	e.SetComponent(VStack(Keyed("a", f.leaf("cell", 100, 10))))
	e.ReloadData()
	old, _ := e.ViewForID("a")

	e.SetComponent(VStack(Keyed("a", f.leaf("banner", 100, 10))))
	e.ReloadData()

	v, _ := e.ViewForID("a")
	assert.Equal(t, old == v, false)
	assert.Equal(t, v.(*MockView).Kind, "banner")
	assert.Equal(t, host.Contains(old), false)
	assert.Equal(t, e.PooledViews("cell"), 1)
}

func TestEngine_DeferredDeletion(t *testing.T) {
	f := &leafFactory{}
	anim := &deferredDeleter{}
	e, host := newTestEngine(t, NewSize(100, 100), WithAnimator(anim))
	e.SetComponent(List(f.rows("row", 100, 20)...))
	e.ReloadData()
	assert.Equal(t, host.Len(), 5)

	e.SetContentOffset(Point{Y: 1000})
	e.LayoutIfNeeded()

	// deleted views stay in the host until their animation completes
	assert.Equal(t, e.PendingDeletions(), 5)
	assert.Equal(t, host.Len(), 10)
	assert.Equal(t, e.PooledViews("row"), 0)
	assert.Equal(t, f.Made(), 10)

	// a second pass overlaps the deletions still in flight
	e.SetContentOffset(Point{Y: 1100})
	e.LayoutIfNeeded()
	assert.Equal(t, e.PendingDeletions(), 10)
	assert.Equal(t, f.Made(), 15)

	anim.release()
	assert.Equal(t, e.PendingDeletions(), 0)
	assert.Equal(t, host.Len(), 5)
	assert.Equal(t, e.PooledViews("row"), 10)

	e.SetContentOffset(Point{Y: 0})
	e.LayoutIfNeeded()
	assert.Equal(t, f.Made(), 15)
	assert.Equal(t, e.PooledViews("row"), 5)
}

func TestEngine_CompletionIsIdempotent(t *testing.T) {
	f := &leafFactory{}
	anim := &deferredDeleter{}
	e, _ := newTestEngine(t, NewSize(100, 100), WithAnimator(anim))
	e.SetComponent(VStack(f.leaf("cell", 100, 10)))
	e.ReloadData()
	e.SetComponent(VStack())
	e.ReloadData()

	done := anim.pending[0]
	done()
	done()

	assert.Equal(t, e.PendingDeletions(), 0)
	assert.Equal(t, e.PooledViews("cell"), 1)
}

func TestEngine_ReusePoolLimit(t *testing.T) {
	f := &leafFactory{}
	e, _ := newTestEngine(t, NewSize(100, 100), WithReusePoolLimit(2))
	e.SetComponent(List(f.rows("row", 5, 20)...))
	e.ReloadData()

	e.SetComponent(List())
	e.ReloadData()

	assert.Equal(t, e.PooledViews("row"), 2)
}

func TestEngine_NoReuseIsNeverPooled(t *testing.T) {
	f := &leafFactory{}
	e, _ := newTestEngine(t, NewSize(100, 100))
	e.SetComponent(Reuse(NoReuse, VStack(f.leaf("cell", 100, 10))))
	e.ReloadData()
	e.SetComponent(VStack())
	e.ReloadData()

	assert.Equal(t, e.PooledViews(NoReuse), 0)
	assert.Equal(t, e.PooledViews("cell"), 0)
}

func TestEngine_ReentrantRequestsAreCoalesced(t *testing.T) {
	e, _ := newTestEngine(t, NewSize(100, 100))
	var states []State
	nested := false
	leaf := NewView("cell", func() View { return &MockView{} }, func(View) {
		states = append(states, e.State())
		if !nested {
			nested = true
			e.SetNeedsReload()
			e.ReloadData()
			e.Render()
		}
	}, WithSize(100, 10))

	e.SetComponent(VStack(leaf))
	e.LayoutIfNeeded()

	reloads, _ := e.Passes()
	assert.Equal(t, reloads, 1)
	assert.Equal(t, states, []State{StateReloading})
	assert.Equal(t, e.State(), StateNeedsReload)

	e.LayoutIfNeeded()
	reloads, _ = e.Passes()
	assert.Equal(t, reloads, 2)
	assert.Equal(t, e.State(), StateIdle)
}

func TestEngine_ReloadAdjustingOffsetShiftsCarriedViews(t *testing.T) {
	f := &leafFactory{}
	anim := &recordingAnimator{}
	e, _ := newTestEngine(t, NewSize(100, 100), WithAnimator(anim))
	e.SetComponent(List(f.rows("row", 20, 20)...))
	e.ReloadData()
	row0, _ := e.ViewForID("row-0")

	// five rows are inserted above; keep row-0 where it was on screen
	e.SetComponent(List(append(f.rows("new", 5, 20), f.rows("row", 20, 20)...)...))
	e.ReloadDataAdjustingOffset(func(e *Engine) Point {
		return e.ContentOffset().Add(Point{Y: 100})
	})

	assert.Equal(t, e.ScrollOffsetDelta(), Point{Y: 100})
	assert.Equal(t, e.ContentOffset(), Point{Y: 100})
	assert.Equal(t, len(anim.shifts), 5)
	assert.Equal(t, anim.shifts[0], Point{Y: 100})

	again, _ := e.ViewForID("row-0")
	assert.Equal(t, row0 == again, true)
	assert.Equal(t, again.Frame(), NewRect(0, 100, 100, 20))
}

func TestEngine_StateTransitions(t *testing.T) {
	f := &leafFactory{}
	e, _ := newTestEngine(t, NewSize(100, 100), WithComponent(VStack(f.leaf("a", 10, 10))))

	assert.Equal(t, e.State(), StateNeedsReload)
	e.LayoutIfNeeded()
	assert.Equal(t, e.State(), StateIdle)

	e.SetNeedsRender()
	assert.Equal(t, e.State(), StateNeedsRender)
	e.SetNeedsReload()
	assert.Equal(t, e.State(), StateNeedsReload)
	e.LayoutIfNeeded()
	assert.Equal(t, e.State(), StateIdle)
	reloads, renders := e.Passes()
	assert.Equal(t, reloads, 2)
	assert.Equal(t, renders, 2)

	e.SetViewport(NewSize(100, 100))
	assert.Equal(t, e.State(), StateIdle)
	e.SetViewport(NewSize(50, 100))
	assert.Equal(t, e.State(), StateNeedsReload)
}

func TestEngine_VisibleFrameInsets(t *testing.T) {
	f := &leafFactory{}
	e, _ := newTestEngine(t, NewSize(100, 100), WithVisibleFrameInsets(EdgeAll(-20)))
	e.SetComponent(List(f.rows("row", 100, 20)...))
	e.ReloadData()

	assert.Equal(t, e.VisibleFrame(), NewRect(-20, -20, 140, 140))
	assert.Equal(t, len(e.VisibleViews()), 6)
}

func TestEngine_ScrollAxis(t *testing.T) {
	type tc struct {
		opts     []EngineOption
		expected Constraint
	}

	tests := map[string]tc{
		"vertical by default": {
			expected: Loose(NewSize(100, Inf)),
		},
		"horizontal": {
			opts:     []EngineOption{WithScrollAxis(ScrollHorizontal)},
			expected: Loose(NewSize(Inf, 50)),
		},
		"none": {
			opts:     []EngineOption{WithScrollAxis(ScrollNone)},
			expected: Loose(NewSize(100, 50)),
		},
		"both": {
			opts:     []EngineOption{WithScrollAxis(ScrollBoth)},
			expected: Unbounded(),
		},
		"custom": {
			opts: []EngineOption{WithConstraint(func(v Size) Constraint {
				return Tight(v)
			})},
			expected: Tight(NewSize(100, 50)),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got Constraint
			probe := ComponentFunc(func(c Constraint) RenderNode {
				got = c
				return NewNode(c.Clamp(Size{}), nil, nil)
			})
			e, _ := newTestEngine(t, NewSize(100, 50), append(tt.opts, WithComponent(probe))...)
			e.LayoutIfNeeded()
			assert.Equal(t, got, tt.expected)
		})
	}
}

func TestEngine_Options(t *testing.T) {
	type tc struct {
		opt EngineOption
	}

	tests := map[string]tc{
		"nil animator":        {opt: WithAnimator(nil)},
		"nil constraint":      {opt: WithConstraint(nil)},
		"negative pool limit": {opt: WithReusePoolLimit(-1)},
		"unknown scroll axis": {opt: WithScrollAxis(ScrollAxis(9))},
		"infinite viewport":   {opt: WithViewport(NewSize(Inf, 10))},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := NewEngine(NewMockHost(), tt.opt)
			assert.NotEqual(t, err, nil)
			assert.Equal(t, e == nil, true)
		})
	}
}

func TestEngine_AnimatorOverride(t *testing.T) {
	f := &leafFactory{}
	engineAnim := &recordingAnimator{}
	rowAnim := &recordingAnimator{}
	var inserted []string
	e, _ := newTestEngine(t, NewSize(100, 100), WithAnimator(engineAnim))

	e.SetComponent(VStack(
		f.leaf("plain", 100, 10),
		Animated(rowAnim, f.leaf("fancy", 100, 10)),
		AnimateInsert(f.leaf("custom", 100, 10), func(_ Host, v View, frame Rect) {
			inserted = append(inserted, v.(*MockView).Kind)
			v.SetFrame(frame)
		}),
	))
	e.ReloadData()

	assert.Equal(t, engineAnim.inserts, 1)
	assert.Equal(t, rowAnim.inserts, 1)
	assert.Equal(t, inserted, []string{"custom"})

	e.SetComponent(VStack())
	e.ReloadData()
	assert.Equal(t, engineAnim.deletes, 1)
	assert.Equal(t, rowAnim.deletes, 1)
}

func TestEngine_HostOrderFollowsSlots(t *testing.T) {
	f := &leafFactory{}
	e, host := newTestEngine(t, NewSize(100, 100))
	e.SetComponent(VStack(Keyed("a", f.leaf("cell", 100, 10)), Keyed("b", f.leaf("cell", 100, 10))))
	e.ReloadData()
	a, _ := e.ViewForID("a")
	b, _ := e.ViewForID("b")

	e.SetComponent(VStack(Keyed("b", f.leaf("cell", 100, 10)), Keyed("a", f.leaf("cell", 100, 10))))
	e.ReloadData()

	views := host.Views()
	assert.Equal(t, views[0] == b, true)
	assert.Equal(t, views[1] == a, true)
	assert.Equal(t, b.Frame().Y, 0.0)
	assert.Equal(t, a.Frame().Y, 10.0)
}

func TestEngine_StickyHeaderDrawsOnTop(t *testing.T) {
	f := &leafFactory{}
	e, host := newTestEngine(t, NewSize(100, 50))
	e.SetComponent(List(append([]Component{Sticky(Keyed("header", f.leaf("header", 100, 10)))}, f.rows("row", 20, 20)...)...))
	e.ReloadData()

	e.SetContentOffset(Point{Y: 55})
	e.LayoutIfNeeded()

	header, ok := e.ViewForID("header")
	assert.Equal(t, ok, true)
	assert.Equal(t, header.Frame(), NewRect(0, 55, 100, 10))
	views := host.Views()
	assert.Equal(t, views[len(views)-1] == header, true)
}

func TestEngine_DeletingViewsStayBelowStickyHeader(t *testing.T) {
	f := &leafFactory{}
	anim := &deferredDeleter{}
	e, host := newTestEngine(t, NewSize(100, 50), WithAnimator(anim))
	e.SetComponent(List(append([]Component{Sticky(Keyed("header", f.leaf("header", 100, 10)))}, f.rows("row", 20, 20)...)...))
	e.ReloadData()
	row0, _ := e.ViewForID("row-0")
	row1, _ := e.ViewForID("row-1")

	e.SetContentOffset(Point{Y: 100})
	e.LayoutIfNeeded()

	header, ok := e.ViewForID("header")
	assert.Equal(t, ok, true)
	assert.Equal(t, header.Frame(), NewRect(0, 100, 100, 10))
	assert.Equal(t, e.PendingDeletions(), 2)

	views := host.Views()
	assert.Equal(t, len(views), 6)
	assert.Equal(t, views[len(views)-1] == header, true)
	for _, v := range views[:2] {
		assert.Equal(t, v == row0 || v == row1, true)
	}
	assert.Equal(t, views[2:], e.VisibleViews())

	// a later pass still keeps the in-flight deletions underneath
	e.SetContentOffset(Point{Y: 110})
	e.LayoutIfNeeded()
	views = host.Views()
	assert.Equal(t, views[len(views)-1] == header, true)
	assert.Equal(t, views[len(views)-len(e.VisibleViews()):], e.VisibleViews())

	anim.release()
	assert.Equal(t, host.Views(), e.VisibleViews())
}

func TestEngine_ID(t *testing.T) {
	a, _ := newTestEngine(t, NewSize(1, 1))
	b, _ := newTestEngine(t, NewSize(1, 1))

	assert.Equal(t, len(a.ID()), 26)
	assert.NotEqual(t, a.ID(), b.ID())
}
