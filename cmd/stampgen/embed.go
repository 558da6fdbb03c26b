package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/flavioheleno/stockbook/encode"
	"github.com/flavioheleno/stockbook/internal/gen"
)

type EmbedCmd struct {
	Input   string `short:"i" required:"" type:"existingfile" help:"Image to embed (png, jpeg, gif, bmp, tiff, webp)"`
	Output  string `short:"o" help:"Go file to write; defaults to the input name with a _stamp.go suffix"`
	Package string `help:"Package of the generated file; defaults to $GOPACKAGE" env:"GOPACKAGE"`
	Name    string `help:"Name of the stamp variable" required:""`
	Size    string `help:"Size of the stamp type" enum:"static,dynamic" default:"static"`
	Embed   bool   `help:"Store the pixels in a .bin file loaded with go:embed"`
}

func (c *EmbedCmd) Validate(kctx *kong.Context) error {
	if c.Package == "" {
		return errors.New("no package given and $GOPACKAGE is not set")
	}
	if c.Output == "" {
		base := filepath.Base(c.Input)
		c.Output = filepath.Join(filepath.Dir(c.Input), base[:len(base)-len(filepath.Ext(base))]+"_stamp.go")
	}
	return nil
}

func (c *EmbedCmd) Run(logger *slog.Logger) error {
	p, err := encode.EncodeFile(c.Input)
	if err != nil {
		return err
	}

	out, err := gen.Generate(p, gen.Options{
		Package: c.Package,
		Name:    c.Name,
		Source:  filepath.ToSlash(c.Input),
		Size:    gen.SizeKind(c.Size),
		Embed:   c.Embed,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, out.Go, 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", c.Output, err)
	}
	if c.Embed {
		bin := filepath.Join(filepath.Dir(c.Output), out.BinName)
		if err := os.WriteFile(bin, out.Bin, 0o644); err != nil {
			return fmt.Errorf("could not write %q: %w", bin, err)
		}
		logger.Info("wrote data", "file", bin, "bytes", len(out.Bin))
	}

	logger.Info("embedded stamp", "from", c.Input, "to", c.Output, "name", c.Name,
		"width", p.Width, "height", p.Height, "bytes", len(p.Data))
	return nil
}
