package encode

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyText is returned by RenderText for an empty string.
var ErrEmptyText = errors.New("encode: empty text")

// TextOptions configures RenderText.
type TextOptions struct {
	// Font is one of the builtin Go fonts: "goregular", "gomono" or "gobold".
	// Defaults to "goregular".
	Font string
	// Size in points at 72 DPI, i.e. in pixels. Defaults to 12.
	Size float64
	// Threshold is the coverage at which a pixel becomes white. Defaults to 128.
	Threshold uint8
}

// Fonts lists the builtin font names accepted by TextOptions.
var Fonts = []string{"goregular", "gomono", "gobold"}

func fontData(name string) ([]byte, error) {
	switch name {
	case "", "goregular":
		return goregular.TTF, nil
	case "gomono":
		return gomono.TTF, nil
	case "gobold":
		return gobold.TTF, nil
	default:
		return nil, fmt.Errorf("encode: unrecognised font %q", name)
	}
}

// RenderText draws text in white on black, one line high, and reduces it to
// Monochrome. The image is as wide as the text advance and as tall as the font
// ascent plus descent.
func RenderText(text string, opts TextOptions) (*image.Paletted, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if opts.Size <= 0 {
		opts.Size = 12
	}
	if opts.Threshold == 0 {
		opts.Threshold = 128
	}

	data, err := fontData(opts.Font)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("encode: couldn't parse font %q: %w", opts.Font, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("encode: couldn't create font face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := m.Ascent.Ceil() + m.Descent.Ceil()

	dst := image.NewGray(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(text)

	Logger().Debug("rendered text", "text", text, "font", opts.Font, "size", opts.Size, "width", width, "height", height)
	return Threshold(dst, opts.Threshold), nil
}
