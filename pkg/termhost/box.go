package termhost

import (
	"image"
	"math"
	"strings"
	"unicode/utf8"

	compose "github.com/grindlemire/go-compose"
)

// Box is the only view a Host draws: a styled rectangle with optional
// border, title and text.
type Box struct {
	Text   string
	Title  string
	Style  Style
	Border bool

	frame compose.Rect
}

var _ compose.View = (*Box)(nil)

// Frame returns the box's frame in content coordinates.
func (b *Box) Frame() compose.Rect { return b.frame }

// SetFrame moves the box.
func (b *Box) SetFrame(frame compose.Rect) { b.frame = frame }

// cells snaps the frame to whole cells relative to origin.
func (b *Box) cells(origin compose.Point) image.Rectangle {
	f := b.frame.Translate(-origin.X, -origin.Y)
	return image.Rect(
		int(math.Round(f.X)), int(math.Round(f.Y)),
		int(math.Round(f.Right())), int(math.Round(f.Bottom())),
	)
}

func (b *Box) paint(buf *Buffer, origin compose.Point) {
	r := b.cells(origin)
	if r.Empty() {
		return
	}
	buf.Fill(r, ' ', b.Style)
	inner := r
	if b.Border && r.Dx() >= 2 && r.Dy() >= 2 {
		drawBorder(buf, r, b.Style)
		if b.Title != "" {
			top := image.Rect(r.Min.X+1, r.Min.Y, r.Max.X-1, r.Min.Y+1)
			buf.SetString(top.Min.X, top.Min.Y, b.Title, b.Style, top)
		}
		inner = r.Inset(1)
	}
	for i, line := range strings.Split(b.Text, "\n") {
		buf.SetString(inner.Min.X, inner.Min.Y+i, line, b.Style, inner)
	}
}

func drawBorder(buf *Buffer, r image.Rectangle, style Style) {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := x0 + 1; x < x1; x++ {
		buf.SetCell(x, y0, Cell{Rune: '─', Style: style})
		buf.SetCell(x, y1, Cell{Rune: '─', Style: style})
	}
	for y := y0 + 1; y < y1; y++ {
		buf.SetCell(x0, y, Cell{Rune: '│', Style: style})
		buf.SetCell(x1, y, Cell{Rune: '│', Style: style})
	}
	buf.SetCell(x0, y0, Cell{Rune: '┌', Style: style})
	buf.SetCell(x1, y0, Cell{Rune: '┐', Style: style})
	buf.SetCell(x0, y1, Cell{Rune: '└', Style: style})
	buf.SetCell(x1, y1, Cell{Rune: '┘', Style: style})
}

// Reuse keys of the boxes built by this package.
const (
	LabelKind = "termhost.label"
	PanelKind = "termhost.panel"
)

func newBox() compose.View { return &Box{} }

// Label is a borderless text leaf sized to its longest line and line count.
func Label(text string, style Style, opts ...compose.ViewOption) *compose.ViewComponent {
	size := textSize(text)
	opts = append([]compose.ViewOption{compose.WithSize(size.Width, size.Height)}, opts...)
	return compose.NewView(LabelKind, newBox, func(v compose.View) {
		b := v.(*Box)
		b.Text, b.Title, b.Style, b.Border = text, "", style, false
	}, opts...)
}

// Panel is a bordered box with a title on its top edge. Its natural size
// fits the body plus the border, and is at least wide enough for the title.
func Panel(title, body string, style Style, opts ...compose.ViewOption) *compose.ViewComponent {
	size := textSize(body)
	size.Width = max(size.Width, float64(utf8.RuneCountInString(title)))
	opts = append([]compose.ViewOption{compose.WithSize(size.Width+2, size.Height+2)}, opts...)
	return compose.NewView(PanelKind, newBox, func(v compose.View) {
		b := v.(*Box)
		b.Text, b.Title, b.Style, b.Border = body, title, style, true
	}, opts...)
}

func textSize(text string) compose.Size {
	if text == "" {
		return compose.Size{}
	}
	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	return compose.NewSize(float64(width), float64(len(lines)))
}
