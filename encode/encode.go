// Package encode turns decoded images into the packed 1-bit format of
// stockbook.Stamp.
//
// It runs at build time, from stampgen or from tests, and has no business in a
// program running on the target.
package encode

import (
	"fmt"
	"image"
	"image/color"

	"github.com/flavioheleno/stockbook"
)

var (
	opaqueBlack = color.NRGBA{R: 0, G: 0, B: 0, A: 0xFF}
	opaqueWhite = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// InvalidPixelError is returned by Encode for a pixel that is neither opaque
// black nor opaque white. X and Y are relative to the top-left corner of the
// image.
type InvalidPixelError struct {
	X, Y  int
	Color color.NRGBA
}

func (e *InvalidPixelError) Error() string {
	c := e.Color
	return fmt.Sprintf("invalid pixel at %d,%d (#%02x%02x%02x%02x)", e.X, e.Y, c.R, c.G, c.B, c.A)
}

// Packed is an image in the stockbook packing format.
type Packed struct {
	Width  int
	Height int
	// Data holds stockbook.DataLen(Width, Height) bytes; pixel (x, y) is bit
	// 7 - i%8 of Data[i/8], where i = y*Width + x.
	Data []byte
}

// Stamp wraps p in a Stamp. p must not be modified afterwards.
func (p *Packed) Stamp() stockbook.Stamp[stockbook.DynamicSize] {
	return stockbook.FromRaw(stockbook.Dynamic(p.Width, p.Height), p.Data)
}

// String returns a representation of p.
func (p *Packed) String() string {
	return fmt.Sprintf("encode.Packed{%dx%d, %d bytes}", p.Width, p.Height, len(p.Data))
}

// Encode validates img and packs it.
//
// Every pixel must be exactly rgba(0, 0, 0, 255) or rgba(255, 255, 255, 255);
// the first one that is not is reported as an *InvalidPixelError.
func Encode(img image.Image) (*Packed, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	white := make([]bool, w*h)
	for y := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			switch c {
			case opaqueBlack:
			case opaqueWhite:
				white[y*w+x] = true
			default:
				return nil, &InvalidPixelError{X: x, Y: y, Color: c}
			}
		}
	}

	p := &Packed{
		Width:  w,
		Height: h,
		Data:   Pack(w, h, func(x, y int) bool { return white[y*w+x] }),
	}
	Logger().Debug("encoded image", "width", w, "height", h, "bytes", len(p.Data))
	return p, nil
}

// Pack packs a width x height grid of pixels, white reporting the color of each.
// Padding bits are zero.
//
// It panics if !stockbook.ValidSize(width, height).
func Pack(width, height int, white func(x, y int) bool) []byte {
	data := make([]byte, stockbook.DataLen(width, height))
	for y := range height {
		for x := range width {
			if white(x, y) {
				i := y*width + x
				data[i/8] |= 0x80 >> (i % 8)
			}
		}
	}
	return data
}
