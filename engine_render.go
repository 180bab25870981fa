package compose

import "github.com/grindlemire/go-compose/internal/debug"

// Render reconciles the mounted views with the renderables visible at the
// current content offset, without laying out again. Called while a pass is
// running it only records the request.
func (e *Engine) Render() {
	if e.isReloading || e.isRendering {
		e.needsRender = true
		return
	}
	e.isRendering = true
	e.needsRender = false
	e.render(false)
	e.isRendering = false
}

// render runs one reconciliation pass.
//
// Pass one walks the previously mounted views: a view whose identity and
// reuse key reappear is carried to its new slot, every other view is
// handed to its animator for deletion. Pass two fills the remaining slots
// from the reuse pool or by making new views, then updates every slot.
func (e *Engine) render(reload bool) {
	e.renderPasses++
	frame := e.VisibleFrame()
	next := VisibleRenderables(e.renderNode, frame)
	ids := assignIdentities(next)

	slot := make(map[string]int, len(ids))
	for i, id := range ids {
		slot[id] = i
	}
	views := make([]View, len(next))

	// Pass 1: carry or delete
	carried := 0
	for i, v := range e.visibleViews {
		old := e.visibleRenderables[i]
		j, ok := slot[e.visibleIDs[i]]
		if !ok || views[j] != nil || next[j].ReuseKey != old.ReuseKey {
			e.deleteView(old, v)
			continue
		}
		views[j] = v
		carried++
		if reload {
			next[j].update(v)
			if !e.scrollOffsetDelta.IsZero() {
				e.animatorFor(next[j]).Shift(e.host, e.scrollOffsetDelta, v)
			}
		}
	}

	// Pass 2: insert and update. Views still being deleted sit at the
	// bottom of the host, so slots are placed above them.
	inserted := 0
	pos := e.deleting
	for j, r := range next {
		anim := e.animatorFor(r)
		v := views[j]
		if v == nil {
			v = e.makeView(r)
			if v == nil {
				continue
			}
			r.update(v)
			e.host.InsertView(v, pos)
			anim.Insert(e.host, v, r.Frame)
			views[j] = v
			inserted++
		} else {
			e.host.InsertView(v, pos)
		}
		pos++
		anim.Update(e.host, v, r.Frame)
	}

	// Drop slots whose view could not be made.
	kept := 0
	for j := range next {
		if views[j] == nil {
			continue
		}
		next[kept], ids[kept], views[kept] = next[j], ids[j], views[j]
		kept++
	}
	e.visibleRenderables = next[:kept]
	e.visibleIDs = ids[:kept]
	e.visibleViews = views[:kept]

	debug.Log("[engine %s] render %v: %d visible, %d carried, %d inserted, %d deleting",
		e.id, frame, kept, carried, inserted, e.deleting)
}

func (e *Engine) animatorFor(r Renderable) Animator {
	if r.Animator != nil {
		return r.Animator
	}
	return e.animator
}

// makeView takes a view from the reuse pool or makes a new one.
func (e *Engine) makeView(r Renderable) View {
	if v, ok := e.pool.dequeue(r.ReuseKey); ok {
		return v
	}
	if !debug.Assertf(r.Make != nil, "renderable %q has no view constructor", r.Key) {
		return nil
	}
	return r.Make()
}

// deleteView moves v below every visible view and hands it to its
// animator. The view leaves the host and enters the reuse pool once the
// animator reports completion; a second completion call is ignored.
func (e *Engine) deleteView(r Renderable, v View) {
	e.deleting++
	e.host.InsertView(v, 0)
	done := false
	e.animatorFor(r).Delete(e.host, v, func() {
		if done {
			return
		}
		done = true
		e.deleting--
		e.host.RemoveView(v)
		e.pool.enqueue(r.ReuseKey, v)
	})
}

func (r Renderable) update(v View) {
	if r.Update != nil {
		r.Update(v)
	}
}
