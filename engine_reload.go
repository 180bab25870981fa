package compose

import "github.com/grindlemire/go-compose/internal/debug"

// ReloadData lays the root component out again and renders the result.
// Called while a pass is running it only records the request.
func (e *Engine) ReloadData() {
	e.reload(nil)
}

// ReloadDataAdjustingOffset reloads and lets adjust pick a new content
// offset after layout, typically to keep an anchor row in place when rows
// were inserted above it. Carried views are shifted by the difference.
func (e *Engine) ReloadDataAdjustingOffset(adjust func(e *Engine) Point) {
	e.reload(adjust)
}

func (e *Engine) reload(adjust func(e *Engine) Point) {
	if e.isReloading || e.isRendering {
		e.needsReload = true
		return
	}
	e.isReloading = true
	e.needsReload = false
	e.needsRender = false
	e.reloadPasses++

	if e.component != nil {
		e.renderNode = layoutChild(e.component, e.layoutConstraint())
		e.contentSize = e.renderNode.Size()
	} else {
		e.renderNode = nil
		e.contentSize = Size{}
	}

	previous := e.contentOffset
	if adjust != nil {
		e.contentOffset = adjust(e)
	}
	e.scrollOffsetDelta = e.contentOffset.Sub(previous)

	debug.Log("[engine %s] reload #%d: content (%g, %g), offset delta (%g, %g)",
		e.id, e.reloadPasses, e.contentSize.Width, e.contentSize.Height,
		e.scrollOffsetDelta.X, e.scrollOffsetDelta.Y)

	e.render(true)
	e.isReloading = false

	if e.onReload != nil {
		e.onReload(e)
	}
}
