// Package rasterhost paints compose views onto an in-memory image with gg.
//
// It is the headless host: snapshots of an engine's visible region can be
// compared pixel by pixel in tests or written out as PNG files.
package rasterhost

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/fogleman/gg"
	compose "github.com/grindlemire/go-compose"
	"github.com/grindlemire/go-compose/internal/debug"
)

// Host is a compose.Host that paints Swatch views in insertion order.
type Host struct {
	context    *gg.Context
	background color.Color
	views      []*Swatch
}

var _ compose.Host = (*Host)(nil)

// NewHost creates a host with a width x height pixel canvas.
func NewHost(width, height int) *Host {
	return &Host{
		context:    gg.NewContext(width, height),
		background: color.White,
	}
}

// SetBackground sets the color the canvas is cleared to.
func (h *Host) SetBackground(c color.Color) {
	h.background = c
}

// InsertView places a *Swatch at index in the paint order.
func (h *Host) InsertView(v compose.View, index int) {
	s, ok := v.(*Swatch)
	if !debug.Assertf(ok, "rasterhost: cannot host %T", v) {
		return
	}
	if i := slices.Index(h.views, s); i >= 0 {
		h.views = slices.Delete(h.views, i, i+1)
	}
	index = min(max(index, 0), len(h.views))
	h.views = slices.Insert(h.views, index, s)
}

// RemoveView detaches v.
func (h *Host) RemoveView(v compose.View) {
	s, ok := v.(*Swatch)
	if !ok {
		return
	}
	if i := slices.Index(h.views, s); i >= 0 {
		h.views = slices.Delete(h.views, i, i+1)
	}
}

// Views returns the attached swatches in paint order.
func (h *Host) Views() []*Swatch {
	return slices.Clone(h.views)
}

// Render clears the canvas and paints every swatch, with origin mapped to
// the top-left pixel.
func (h *Host) Render(origin compose.Point) {
	h.context.SetColor(h.background)
	h.context.Clear()
	for _, s := range h.views {
		s.draw(h.context, origin)
	}
}

// Draw paints the engine's visible region.
func (h *Host) Draw(e *compose.Engine) {
	h.Render(e.ContentOffset())
}

// Image returns the canvas.
func (h *Host) Image() image.Image {
	return h.context.Image()
}

// SavePNG writes the canvas to path.
func (h *Host) SavePNG(path string) error {
	if err := h.context.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
