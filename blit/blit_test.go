package blit

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/display/displaytest"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/flavioheleno/stockbook"
)

// checker3x3 is W B W / B W B / W B W.
var checker3x3 = stockbook.FromRaw(stockbook.StaticSize[[3]byte, [3]byte]{}, []byte{0b10101010, 0b10000000})

var (
	red  = color.NRGBA{0xFF, 0, 0, 0xFF}
	blue = color.NRGBA{0, 0, 0xFF, 0xFF}
)

func newDrawer(w, h int) *displaytest.Drawer {
	return &displaytest.Drawer{Img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func want(c stockbook.Color) color.NRGBA {
	if c == stockbook.White {
		return color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	}
	return color.NRGBA{0, 0, 0, 0xFF}
}

func TestDraw(t *testing.T) {
	dev := newDrawer(8, 8)
	if err := Draw(dev, checker3x3, image.Pt(2, 3)); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	for p := range checker3x3.All() {
		if got := dev.Img.NRGBAAt(p.X+2, p.Y+3); got != want(p.Color) {
			t.Errorf("pixel (%d, %d) = %v, want %v", p.X+2, p.Y+3, got, want(p.Color))
		}
	}
	if got := dev.Img.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("pixel (0, 0) = %v, want untouched", got)
	}
}

func TestDrawClipped(t *testing.T) {
	tests := []struct {
		name string
		at   image.Point
	}{
		{"bottom right", image.Pt(3, 3)},
		{"top left", image.Pt(-2, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newDrawer(4, 4)
			if err := Draw(dev, checker3x3, tt.at); err != nil {
				t.Fatalf("Draw() = %v", err)
			}
			for p := range checker3x3.All() {
				pt := image.Pt(p.X, p.Y).Add(tt.at)
				if !pt.In(dev.Bounds()) {
					continue
				}
				if got := dev.Img.NRGBAAt(pt.X, pt.Y); got != want(p.Color) {
					t.Errorf("pixel %v = %v, want %v", pt, got, want(p.Color))
				}
			}
		})
	}
}

// failingDrawer records whether Draw was called.
type failingDrawer struct {
	displaytest.Drawer
	called bool
}

func (f *failingDrawer) Draw(image.Rectangle, image.Image, image.Point) error {
	f.called = true
	return errors.New("bus error")
}

var _ display.Drawer = &failingDrawer{}

func TestDrawOutside(t *testing.T) {
	dev := &failingDrawer{Drawer: *newDrawer(4, 4)}
	if err := Draw(dev, checker3x3, image.Pt(10, 10)); err != nil {
		t.Errorf("Draw() outside = %v, want nil", err)
	}
	if dev.called {
		t.Error("Draw() outside of the device reached the device")
	}

	if err := Draw(dev, checker3x3, image.Point{}); err == nil {
		t.Error("Draw() did not return the device error")
	}
}

func TestOverlay(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	for y := range 5 {
		for x := range 5 {
			dst.SetNRGBA(x, y, blue)
		}
	}

	Overlay(dst, checker3x3, image.Pt(1, 1), red)

	for p := range checker3x3.All() {
		wantC := blue
		if p.Color == stockbook.White {
			wantC = red
		}
		if got := dst.NRGBAAt(p.X+1, p.Y+1); got != wantC {
			t.Errorf("pixel (%d, %d) = %v, want %v", p.X+1, p.Y+1, got, wantC)
		}
	}
	if got := dst.NRGBAAt(4, 4); got != blue {
		t.Errorf("pixel (4, 4) = %v, want untouched", got)
	}
}

func TestOverlayAnyImage(t *testing.T) {
	src := image.NewGray(image.Rect(10, 10, 12, 11))
	src.SetGray(11, 10, color.Gray{Y: 0xFF})

	dst := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	Overlay(dst, src, image.Point{}, red)

	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("pixel (0, 0) = %v, want untouched", got)
	}
	if got := dst.NRGBAAt(1, 0); got != red {
		t.Errorf("pixel (1, 0) = %v, want %v", got, red)
	}
}

func TestVerticalLSB(t *testing.T) {
	img := VerticalLSB(checker3x3)

	if img.Bounds() != checker3x3.Bounds() {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), checker3x3.Bounds())
	}
	for p := range checker3x3.All() {
		wantBit := image1bit.Bit(p.Color == stockbook.White)
		if got := img.BitAt(p.X, p.Y); got != wantBit {
			t.Errorf("BitAt(%d, %d) = %v, want %v", p.X, p.Y, got, wantBit)
		}
	}
	// Column 0 of the first page holds rows 0..2 in its low bits: 1, 0, 1.
	if img.Pix[0] != 0b101 {
		t.Errorf("Pix[0] = %#08b, want 0b101", img.Pix[0])
	}
}
