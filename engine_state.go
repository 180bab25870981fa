package compose

// State is the engine's position in its update cycle.
type State uint8

const (
	StateIdle        State = iota // Nothing pending
	StateNeedsReload              // A reload is requested for the next layout
	StateNeedsRender              // A render is requested for the next layout
	StateReloading                // Inside ReloadData
	StateRendering                // Inside Render
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNeedsReload:
		return "needs-reload"
	case StateNeedsRender:
		return "needs-render"
	case StateReloading:
		return "reloading"
	case StateRendering:
		return "rendering"
	default:
		return "idle"
	}
}

// State reports the engine's current state. An in-progress pass takes
// precedence over pending requests.
func (e *Engine) State() State {
	switch {
	case e.isReloading:
		return StateReloading
	case e.isRendering:
		return StateRendering
	case e.needsReload:
		return StateNeedsReload
	case e.needsRender:
		return StateNeedsRender
	default:
		return StateIdle
	}
}

// SetNeedsReload requests a layout and render on the next LayoutIfNeeded.
// Requests made during a pass are coalesced into one follow-up pass.
func (e *Engine) SetNeedsReload() {
	e.needsReload = true
}

// SetNeedsRender requests a render (no layout) on the next LayoutIfNeeded.
func (e *Engine) SetNeedsRender() {
	e.needsRender = true
}

// LayoutIfNeeded runs whichever pass is pending. A pending reload subsumes
// a pending render.
func (e *Engine) LayoutIfNeeded() {
	if e.isReloading || e.isRendering {
		return
	}
	switch {
	case e.needsReload:
		e.ReloadData()
	case e.needsRender:
		e.Render()
	}
}
