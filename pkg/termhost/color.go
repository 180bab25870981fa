package termhost

import (
	"fmt"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	typ     ColorType
	r, g, b uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB".
func HexColor(hex string) (Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", hex, err)
	}
	return RGBColor(r, g, b), nil
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// RGB returns the components of an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// ANSI returns the palette index of an ANSI color.
func (c Color) ANSI() uint8 {
	return c.r
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorANSI:
		return c.r == other.r
	case ColorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b
	}
	return true
}

// ToANSI approximates an RGB color to the nearest ANSI 256 palette entry.
// Uses the 6x6x6 color cube (indices 16-231) plus grayscale (232-255).
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}
	r, g, b := c.r, c.g, c.b
	if r == g && g == b {
		if r < 8 {
			return ANSIColor(16)
		}
		if r > 248 {
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}
	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return ANSIColor(uint8(16 + 36*ri + 6*gi + bi))
}

// Standard ANSI colors.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)
