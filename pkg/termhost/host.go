package termhost

import (
	"fmt"
	"io"
	"slices"

	compose "github.com/grindlemire/go-compose"
	"github.com/grindlemire/go-compose/internal/debug"
)

// Host is a compose.Host backed by a cell buffer. One layout unit is one cell.
type Host struct {
	buf       *Buffer
	views     []*Box
	origin    compose.Point
	trueColor bool
	esc       *escBuilder
}

var _ compose.Host = (*Host)(nil)

// Option configures a Host.
type Option func(*Host)

// WithTrueColor emits 24-bit color sequences instead of the 256 palette.
func WithTrueColor() Option {
	return func(h *Host) {
		h.trueColor = true
	}
}

// NewHost creates a host with a width x height cell grid.
func NewHost(width, height int, opts ...Option) *Host {
	h := &Host{
		buf: NewBuffer(width, height),
		esc: newEscBuilder(width * height * 4),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InsertView places a *Box at index in the draw order, moving it if it is
// already attached.
func (h *Host) InsertView(v compose.View, index int) {
	box, ok := v.(*Box)
	if !debug.Assertf(ok, "termhost: cannot host %T", v) {
		return
	}
	if i := slices.Index(h.views, box); i >= 0 {
		h.views = slices.Delete(h.views, i, i+1)
	}
	index = min(max(index, 0), len(h.views))
	h.views = slices.Insert(h.views, index, box)
}

// RemoveView detaches v.
func (h *Host) RemoveView(v compose.View) {
	box, ok := v.(*Box)
	if !ok {
		return
	}
	if i := slices.Index(h.views, box); i >= 0 {
		h.views = slices.Delete(h.views, i, i+1)
	}
}

// Views returns the attached boxes in draw order.
func (h *Host) Views() []*Box {
	return slices.Clone(h.views)
}

// Buffer returns the underlying cell buffer.
func (h *Host) Buffer() *Buffer {
	return h.buf
}

// Resize changes the grid size. The next Flush repaints everything.
func (h *Host) Resize(width, height int) {
	h.buf.Resize(width, height)
	h.buf.Invalidate()
}

// Paint redraws every box into the back buffer, with origin mapped to the
// top-left cell.
func (h *Host) Paint(origin compose.Point) {
	h.origin = origin
	h.buf.Clear()
	for _, b := range h.views {
		b.paint(h.buf, origin)
	}
}

// Draw paints the engine's visible region.
func (h *Host) Draw(e *compose.Engine) {
	h.Paint(e.ContentOffset())
}

// Begin clears the screen and hides the cursor, and forces the next Flush
// to write every cell.
func (h *Host) Begin(w io.Writer) error {
	h.esc.Reset()
	h.esc.HideCursor()
	h.esc.ClearScreen()
	h.buf.Invalidate()
	if _, err := w.Write(h.esc.Bytes()); err != nil {
		return fmt.Errorf("begin terminal session: %w", err)
	}
	return nil
}

// End restores the cursor below the grid.
func (h *Host) End(w io.Writer) error {
	_, height := h.buf.Size()
	h.esc.Reset()
	h.esc.ResetStyle()
	h.esc.MoveTo(0, height)
	h.esc.ShowCursor()
	if _, err := w.Write(h.esc.Bytes()); err != nil {
		return fmt.Errorf("end terminal session: %w", err)
	}
	return nil
}

// Flush writes the cells that changed since the previous flush and returns
// how many were written.
func (h *Host) Flush(w io.Writer) (int, error) {
	changes := h.buf.Diff()
	if len(changes) == 0 {
		return 0, nil
	}
	h.esc.Reset()
	var style Style
	styled := false
	cx, cy := -1, -1
	for _, ch := range changes {
		if ch.X != cx || ch.Y != cy {
			h.esc.MoveTo(ch.X, ch.Y)
		}
		if !styled || !ch.Cell.Style.Equal(style) {
			h.esc.SetStyle(ch.Cell.Style, h.trueColor)
			style, styled = ch.Cell.Style, true
		}
		h.esc.WriteRune(ch.Cell.Rune)
		cx, cy = ch.X+1, ch.Y
	}
	h.esc.ResetStyle()
	if _, err := w.Write(h.esc.Bytes()); err != nil {
		return 0, fmt.Errorf("flush %d cells: %w", len(changes), err)
	}
	h.buf.Swap()
	if debug.Enabled() {
		debug.Log("termhost: flushed %d cells (%d bytes)", len(changes), len(h.esc.Bytes()))
	}
	return len(changes), nil
}
