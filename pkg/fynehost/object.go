package fynehost

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	compose "github.com/grindlemire/go-compose"
)

// Object adapts a fyne.CanvasObject to compose.View.
type Object struct {
	CanvasObject fyne.CanvasObject

	frame  compose.Rect
	origin compose.Point
}

var _ compose.View = (*Object)(nil)

// NewObject wraps obj.
func NewObject(obj fyne.CanvasObject) *Object {
	return &Object{CanvasObject: obj}
}

// Frame returns the frame in content coordinates.
func (o *Object) Frame() compose.Rect { return o.frame }

// SetFrame moves and resizes the wrapped object.
func (o *Object) SetFrame(frame compose.Rect) {
	o.frame = frame
	o.place(o.origin)
}

func (o *Object) place(origin compose.Point) {
	o.origin = origin
	f := o.frame.Translate(-origin.X, -origin.Y)
	o.CanvasObject.Move(fyne.NewPos(float32(f.X), float32(f.Y)))
	o.CanvasObject.Resize(fyne.NewSize(float32(f.Width), float32(f.Height)))
}

// Reuse keys of the objects built by this package.
const (
	RectangleKind = "fynehost.rectangle"
	TextKind      = "fynehost.text"
)

// Rectangle is a filled rectangle leaf of the given natural size.
func Rectangle(fill color.Color, width, height float64, opts ...compose.ViewOption) *compose.ViewComponent {
	opts = append([]compose.ViewOption{compose.WithSize(width, height)}, opts...)
	return compose.NewView(RectangleKind, func() compose.View {
		return NewObject(canvas.NewRectangle(fill))
	}, func(v compose.View) {
		r := v.(*Object).CanvasObject.(*canvas.Rectangle)
		if r.FillColor != fill {
			r.FillColor = fill
			r.Refresh()
		}
	}, opts...)
}

// Text is a single line of text sized with the current theme's text size.
func Text(text string, ink color.Color, opts ...compose.ViewOption) *compose.ViewComponent {
	size := fyne.MeasureText(text, theme.TextSize(), fyne.TextStyle{})
	opts = append([]compose.ViewOption{compose.WithSize(float64(size.Width), float64(size.Height))}, opts...)
	return compose.NewView(TextKind, func() compose.View {
		return NewObject(canvas.NewText(text, ink))
	}, func(v compose.View) {
		t := v.(*Object).CanvasObject.(*canvas.Text)
		if t.Text != text || t.Color != ink {
			t.Text, t.Color = text, ink
			t.Refresh()
		}
	}, opts...)
}
