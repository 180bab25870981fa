package rasterhost

import (
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	compose "github.com/grindlemire/go-compose"
)

// Swatch is a filled, optionally rounded and outlined rectangle with an
// optional caption centered inside it.
type Swatch struct {
	Fill    color.Color
	Stroke  color.Color
	Radius  float64
	Caption string
	Ink     color.Color

	frame compose.Rect
}

var _ compose.View = (*Swatch)(nil)

// Frame returns the swatch's frame in content coordinates.
func (s *Swatch) Frame() compose.Rect { return s.frame }

// SetFrame moves the swatch.
func (s *Swatch) SetFrame(frame compose.Rect) { s.frame = frame }

func (s *Swatch) draw(dc *gg.Context, origin compose.Point) {
	f := s.frame.Translate(-origin.X, -origin.Y)
	if f.IsEmpty() {
		return
	}
	path := func() {
		if s.Radius > 0 {
			dc.DrawRoundedRectangle(f.X, f.Y, f.Width, f.Height, s.Radius)
		} else {
			dc.DrawRectangle(f.X, f.Y, f.Width, f.Height)
		}
	}
	if s.Fill != nil {
		path()
		dc.SetColor(s.Fill)
		dc.Fill()
	}
	if s.Stroke != nil {
		path()
		dc.SetColor(s.Stroke)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
	if s.Caption != "" {
		ink := s.Ink
		if ink == nil {
			ink = color.Black
		}
		dc.SetColor(ink)
		dc.DrawStringAnchored(s.Caption, f.X+f.Width/2, f.Y+f.Height/2, 0.5, 0.5)
	}
}

// SwatchKind is the reuse key of views built by this package.
const SwatchKind = "rasterhost.swatch"

func newSwatch() compose.View { return &Swatch{} }

// Block is a swatch leaf of fixed natural size.
func Block(fill color.Color, width, height float64, opts ...compose.ViewOption) *compose.ViewComponent {
	opts = append([]compose.ViewOption{compose.WithSize(width, height)}, opts...)
	return compose.NewView(SwatchKind, newSwatch, func(v compose.View) {
		s := v.(*Swatch)
		s.Fill, s.Stroke, s.Radius, s.Caption, s.Ink = fill, nil, 0, "", nil
	}, opts...)
}

// Card is a rounded, outlined swatch sized to its caption plus padding.
func Card(caption string, fill, ink color.Color, padding float64, opts ...compose.ViewOption) *compose.ViewComponent {
	w, h := MeasureString(caption)
	opts = append([]compose.ViewOption{compose.WithSize(w+2*padding, h+2*padding)}, opts...)
	return compose.NewView(SwatchKind, newSwatch, func(v compose.View) {
		s := v.(*Swatch)
		s.Fill, s.Stroke, s.Radius, s.Caption, s.Ink = fill, ink, 4, caption, ink
	}, opts...)
}

var (
	measureMu sync.Mutex
	measureDC = gg.NewContext(1, 1)
)

// MeasureString returns the size of s in the default face. Safe for
// concurrent layout.
func MeasureString(s string) (w, h float64) {
	measureMu.Lock()
	defer measureMu.Unlock()
	return measureDC.MeasureString(s)
}
