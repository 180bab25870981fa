package termhost

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the 0-indexed cell (x, y).
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle emits a full SGR sequence for s. RGB colors fall back to the 256
// palette unless trueColor is set.
func (e *escBuilder) SetStyle(s Style, trueColor bool) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.HasAttr(AttrUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if s.HasAttr(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}
	e.appendColor(s.Fg, 38, trueColor)
	e.appendColor(s.Bg, 48, trueColor)
	e.buf = append(e.buf, 'm')
}

// appendColor writes a color parameter. base is 38 for foreground and 48
// for background.
func (e *escBuilder) appendColor(c Color, base int, trueColor bool) {
	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		e.buf = append(e.buf, ';')
		switch {
		case idx < 8:
			e.writeInt(base - 8 + idx)
		case idx < 16:
			e.writeInt(base + 52 + idx - 8)
		default:
			e.writeInt(base)
			e.buf = append(e.buf, ';', '5', ';')
			e.writeInt(idx)
		}
	case ColorRGB:
		if !trueColor {
			e.appendColor(c.ToANSI(), base, false)
			return
		}
		r, g, b := c.RGB()
		e.buf = append(e.buf, ';')
		e.writeInt(base)
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

// WriteRune appends a UTF-8 encoded rune.
func (e *escBuilder) WriteRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	e.buf = append(e.buf, buf[:n]...)
}
