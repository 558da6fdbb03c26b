package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/flavioheleno/stockbook/encode"
)

type DitherCmd struct {
	Input     string `short:"i" required:"" type:"existingfile" help:"Source image"`
	Output    string `short:"o" required:"" help:"PNG file to write"`
	Threshold uint8  `help:"Use a luminance threshold instead of dithering (1-255, 0 dithers)" default:"0"`
}

func (c *DitherCmd) Run(logger *slog.Logger) error {
	img, format, err := encode.DecodeFile(c.Input)
	if err != nil {
		return err
	}

	var out *image.Paletted
	if c.Threshold > 0 {
		out = encode.Threshold(img, c.Threshold)
	} else {
		out = encode.Dither(img)
	}

	if err := writePNG(c.Output, out); err != nil {
		return err
	}
	logger.Info("wrote monochrome image", "from", c.Input, "format", format, "to", c.Output,
		"threshold", c.Threshold, "bounds", out.Bounds())
	return nil
}

type TextCmd struct {
	Output    string  `short:"o" required:"" help:"PNG file to write"`
	Font      string  `help:"Builtin font" enum:"goregular,gomono,gobold" default:"goregular"`
	Size      float64 `help:"Font size in pixels" default:"12"`
	Threshold uint8   `help:"Coverage at which a pixel becomes white" default:"128"`
	Text      string  `arg:"" help:"Text to render"`
}

func (c *TextCmd) Run(logger *slog.Logger) error {
	img, err := encode.RenderText(c.Text, encode.TextOptions{
		Font:      c.Font,
		Size:      c.Size,
		Threshold: c.Threshold,
	})
	if err != nil {
		return err
	}
	if err := writePNG(c.Output, img); err != nil {
		return err
	}
	logger.Info("rendered text", "text", c.Text, "to", c.Output, "bounds", img.Bounds())
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", path, closeErr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	return nil
}
