package stockbook

import (
	"image"
	"image/color"
	"iter"
	"math"
	"strconv"
)

// Stamp is a rectangular, 1-bit, raster image.
//
// Coordinate (0, 0) is the top-left corner. Pixels are stored one bit each, in
// row-major order, most significant bit first; a set bit is White. The final byte
// is padded and anything past it is ignored.
//
// Stamp is immutable and cheap to copy. It implements image.PalettedImage.
type Stamp[S Size] struct {
	size S
	data Data
}

// ValidSize reports whether a width x height stamp can exist: both dimensions
// are non-negative and the packed length fits in an int.
func ValidSize(width, height int) bool {
	if width < 0 || height < 0 {
		return false
	}
	return width == 0 || height <= (math.MaxInt-7)/width
}

// DataLen returns the number of bytes needed to store width x height pixels.
//
// It panics if !ValidSize(width, height).
func DataLen(width, height int) int {
	if !ValidSize(width, height) {
		panic("stockbook: invalid size " + sizeString(width, height))
	}
	return (width*height + 7) / 8
}

// FromRaw returns a stamp of the given size over data.
//
// It panics if the size is not ValidSize or data is shorter than DataLen of the
// size, so a package level variable built with an invalid length fails at
// program initialization.
func FromRaw[S Size](size S, data []byte) Stamp[S] {
	wh := size.Size()
	if !ValidSize(wh[0], wh[1]) {
		panic("stockbook: invalid size " + sizeString(wh[0], wh[1]))
	}
	if DataLen(wh[0], wh[1]) > len(data) {
		panic("stockbook: length of data doesn't match the number of pixels")
	}
	return Stamp[S]{size: size, data: DataOf(data)}
}

// FromRawUnchecked returns a stamp of the given size over data, without any
// checks. The caller guarantees data holds at least DataLen bytes.
func FromRawUnchecked[S Size](size S, data Data) Stamp[S] {
	return Stamp[S]{size: size, data: data}
}

// Size returns the width and height of the stamp, in that order.
func (s Stamp[S]) Size() [2]int {
	return s.size.Size()
}

// Width returns the number of columns.
func (s Stamp[S]) Width() int {
	return s.size.Size()[0]
}

// Height returns the number of rows.
func (s Stamp[S]) Height() int {
	return s.size.Size()[1]
}

// PixelCount returns Width * Height.
func (s Stamp[S]) PixelCount() int {
	wh := s.size.Size()
	return wh[0] * wh[1]
}

// Dynamic returns the same stamp with its size stored at runtime.
func (s Stamp[S]) Dynamic() Stamp[DynamicSize] {
	wh := s.size.Size()
	return Stamp[DynamicSize]{size: DynamicSize{width: wh[0], height: wh[1]}, data: s.data}
}

// Data returns the accessor over the packed pixels.
func (s Stamp[S]) Data() Data {
	return s.data
}

// IsWithinBounds reports whether (x, y) is a pixel of the stamp.
func (s Stamp[S]) IsWithinBounds(x, y int) bool {
	wh := s.size.Size()
	return x >= 0 && y >= 0 && x < wh[0] && y < wh[1]
}

// ColorAt returns the color at (x, y).
//
// It panics if (x, y) is out of bounds; see ColorAtChecked.
func (s Stamp[S]) ColorAt(x, y int) Color {
	c, ok := s.ColorAtChecked(x, y)
	if !ok {
		panic("stockbook: coordinate (" + strconv.Itoa(x) + ", " + strconv.Itoa(y) + ") out of bounds " + s.sizeString())
	}
	return c
}

// ColorAtChecked returns the color at (x, y), or false if (x, y) is out of
// bounds.
func (s Stamp[S]) ColorAtChecked(x, y int) (Color, bool) {
	if !s.IsWithinBounds(x, y) {
		return Black, false
	}
	return s.ColorAtUnchecked(x, y), true
}

// ColorAtUnchecked returns the color at (x, y) without bounds checking.
//
// The caller guarantees (x, y) is within bounds; otherwise the result is
// undefined and may read past the pixel data.
func (s Stamp[S]) ColorAtUnchecked(x, y int) Color {
	offset, mask := bitOffset(s.Width(), x, y)
	if s.data.ByteAt(offset)&mask != 0 {
		return White
	}
	return Black
}

// bitOffset returns the byte offset and bit mask of the pixel at (x, y) in a
// stamp of the given width.
func bitOffset(width, x, y int) (offset int, mask byte) {
	idx := y*width + x
	return idx / 8, 0x80 >> (idx % 8)
}

// Pixels returns an enumerator over all pixels of the stamp, in row-major order
// from the front and reverse row-major order from the back.
func (s Stamp[S]) Pixels() *Pixels[S] {
	return newPixels(s)
}

// All returns an iterator over all pixels in row-major order.
func (s Stamp[S]) All() iter.Seq[Pixel] {
	return s.Pixels().All()
}

// Backward returns an iterator over all pixels in reverse row-major order.
func (s Stamp[S]) Backward() iter.Seq[Pixel] {
	return s.Pixels().Backward()
}

// ColorModel implements image.Image. It is Palette.
func (s Stamp[S]) ColorModel() color.Model {
	return Palette
}

// Bounds implements image.Image.
func (s Stamp[S]) Bounds() image.Rectangle {
	wh := s.size.Size()
	return image.Rect(0, 0, wh[0], wh[1])
}

// At implements image.Image. Pixels out of bounds are Black.
func (s Stamp[S]) At(x, y int) color.Color {
	c, _ := s.ColorAtChecked(x, y)
	return c
}

// ColorIndexAt implements image.PalettedImage.
func (s Stamp[S]) ColorIndexAt(x, y int) uint8 {
	c, _ := s.ColorAtChecked(x, y)
	return uint8(c)
}

// Mask returns an alpha mask of the stamp: White pixels are opaque and Black
// pixels transparent.
func (s Stamp[S]) Mask() image.Image {
	return mask{src: s}
}

// String returns a representation of the stamp.
func (s Stamp[S]) String() string {
	return "stockbook.Stamp{" + s.sizeString() + "}"
}

func (s Stamp[S]) sizeString() string {
	wh := s.size.Size()
	return sizeString(wh[0], wh[1])
}

// sizeString formats dimensions as WxH. Core code stays off fmt so TinyGo
// builds don't link it.
func sizeString(width, height int) string {
	return strconv.Itoa(width) + "x" + strconv.Itoa(height)
}

// mask adapts a PalettedImage to color.AlphaModel.
type mask struct {
	src image.PalettedImage
}

func (m mask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m mask) Bounds() image.Rectangle {
	return m.src.Bounds()
}

func (m mask) At(x, y int) color.Color {
	if m.src.ColorIndexAt(x, y) == uint8(White) {
		return color.Opaque
	}
	return color.Transparent
}
