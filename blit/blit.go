// Package blit draws stamps on periph.io displays and framebuffers.
//
// The functions take an image.Image so that both stockbook.Stamp and its Mask
// can be passed; any other image works too.
package blit

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/flavioheleno/stockbook"
)

// Draw draws img on dev with its top-left corner at at. Pixels outside of the
// device are clipped; nothing is sent when img does not overlap it.
func Draw(dev display.Drawer, img image.Image, at image.Point) error {
	b := img.Bounds()
	dst := image.Rectangle{Min: at, Max: at.Add(b.Size())}.Intersect(dev.Bounds())
	if dst.Empty() {
		return nil
	}
	return dev.Draw(dst, img, b.Min.Add(dst.Min.Sub(at)))
}

// Overlay paints ink on dst wherever img is White, with its top-left corner at
// at. Black pixels are transparent and leave dst untouched.
func Overlay(dst draw.Image, img image.Image, at image.Point, ink color.Color) {
	b := img.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	var m image.Image = mask{img}
	if mk, ok := img.(masker); ok {
		m = mk.Mask()
	}
	draw.DrawMask(dst, r, image.NewUniform(ink), image.Point{}, m, b.Min, draw.Over)
}

// VerticalLSB copies img into the native layout of SSD1306 displays, White
// pixels being On. The result has img's bounds.
func VerticalLSB(img image.Image) *image1bit.VerticalLSB {
	b := img.Bounds()
	out := image1bit.NewVerticalLSB(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isWhite(img, x, y) {
				out.SetBit(x, y, image1bit.On)
			}
		}
	}
	return out
}

func isWhite(img image.Image, x, y int) bool {
	return stockbook.Model.Convert(img.At(x, y)) == stockbook.White
}

// masker is implemented by stockbook.Stamp.
type masker interface {
	Mask() image.Image
}

// mask views any image as an alpha mask that is opaque where it is White.
type mask struct {
	img image.Image
}

func (m mask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m mask) Bounds() image.Rectangle {
	return m.img.Bounds()
}

func (m mask) At(x, y int) color.Color {
	if isWhite(m.img, x, y) {
		return color.Opaque
	}
	return color.Transparent
}
