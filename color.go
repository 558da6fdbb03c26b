package stockbook

import "image/color"

// Color is the color of a single pixel of a Stamp.
type Color uint8

const (
	// Black is rgba(0, 0, 0, 255). It is stored as a cleared bit.
	Black Color = iota
	// White is rgba(255, 255, 255, 255). It is stored as a set bit.
	White
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c == White {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// String returns "Black" or "White".
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Palette is the two-color palette of every Stamp, indexed by bit value.
var Palette = color.Palette{Black, White}

// toColor converts any color.Color to a Color.
func toColor(c color.Color) color.Color {
	if s, ok := c.(Color); ok {
		return s
	}
	r, g, b, _ := c.RGBA()
	// Same weights as color.GrayModel; anything at or above mid-gray is White.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	if y >= 0x8000 {
		return White
	}
	return Black
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)
