// Package fynehost mounts compose views as fyne canvas objects inside a
// container without a layout, so the engine alone decides positions.
//
// Every method must be called on the fyne main goroutine (see fyne.Do).
package fynehost

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	compose "github.com/grindlemire/go-compose"
	"github.com/grindlemire/go-compose/internal/debug"
)

// Host is a compose.Host backed by a fyne container.
type Host struct {
	container *fyne.Container
	views     []*Object
	origin    compose.Point
}

var _ compose.Host = (*Host)(nil)

// NewHost creates a host with an empty container.
func NewHost() *Host {
	return &Host{container: container.NewWithoutLayout()}
}

// Container returns the fyne container to embed in a window.
func (h *Host) Container() *fyne.Container {
	return h.container
}

// InsertView places an *Object at index in the container's z-order.
func (h *Host) InsertView(v compose.View, index int) {
	o, ok := v.(*Object)
	if !debug.Assertf(ok, "fynehost: cannot host %T", v) {
		return
	}
	if i := slices.Index(h.views, o); i >= 0 {
		h.views = slices.Delete(h.views, i, i+1)
	}
	index = min(max(index, 0), len(h.views))
	h.views = slices.Insert(h.views, index, o)
	o.place(h.origin)
	h.sync()
}

// RemoveView detaches v.
func (h *Host) RemoveView(v compose.View) {
	o, ok := v.(*Object)
	if !ok {
		return
	}
	if i := slices.Index(h.views, o); i >= 0 {
		h.views = slices.Delete(h.views, i, i+1)
		h.sync()
	}
}

// Views returns the attached objects in z-order.
func (h *Host) Views() []*Object {
	return slices.Clone(h.views)
}

// SetOrigin maps content point p to the container's top-left corner and
// moves every object accordingly.
func (h *Host) SetOrigin(p compose.Point) {
	if p == h.origin {
		return
	}
	h.origin = p
	for _, o := range h.views {
		o.place(p)
	}
}

// Draw follows the engine's content offset.
func (h *Host) Draw(e *compose.Engine) {
	h.SetOrigin(e.ContentOffset())
}

func (h *Host) sync() {
	objects := make([]fyne.CanvasObject, len(h.views))
	for i, o := range h.views {
		objects[i] = o.CanvasObject
	}
	h.container.Objects = objects
	h.container.Refresh()
}
