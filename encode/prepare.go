package encode

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"
)

// Monochrome is the palette of images accepted by Encode.
var Monochrome = color.Palette{opaqueBlack, opaqueWhite}

// Dither reduces img to Monochrome with serpentine Floyd-Steinberg error
// diffusion. The result always passes Encode.
func Dither(img image.Image) *image.Paletted {
	d := dither.NewDitherer([]color.Color{opaqueBlack, opaqueWhite})
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true

	out := d.DitherPaletted(flatten(img))
	// The ditherer keeps its own copy of the palette; make sure the result uses
	// exactly the encodable colors.
	out.Palette = Monochrome
	Logger().Debug("dithered image", "bounds", out.Bounds())
	return out
}

// Threshold reduces img to Monochrome: pixels whose luminance is at least level
// become white, the others black. Transparent pixels count as black.
func Threshold(img image.Image, level uint8) *image.Paletted {
	src := flatten(img)
	b := src.Bounds()
	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), Monochrome)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			if g.Y >= level {
				out.SetColorIndex(x-b.Min.X, y-b.Min.Y, 1)
			}
		}
	}
	return out
}

// flatten composites img over opaque black so that alpha does not leak into
// the luminance.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(opaqueBlack), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
