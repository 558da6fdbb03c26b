// Command stampgen converts black and white images into Go source declaring
// stockbook stamps. It is meant to be run by go generate:
//
//	//go:generate go run github.com/flavioheleno/stockbook/cmd/stampgen embed -i assets/invader.png -o invader_stamp.go --package main --name Invader
//
// The dither and text subcommands prepare images that embed accepts: every
// pixel of an embedded image must be opaque black or opaque white.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/flavioheleno/stockbook/encode"
)

type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info" env:"STAMPGEN_LOG_LEVEL"`

	Embed  EmbedCmd  `cmd:"" help:"Generate Go source embedding an image as a stamp"`
	Dither DitherCmd `cmd:"" help:"Reduce any image to black and white with dithering or a threshold"`
	Text   TextCmd   `cmd:"" help:"Render a line of text to a black and white PNG"`
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("stampgen"),
		kong.Description("Embed 1-bit images in Go programs."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.LogLevel)
	encode.SetLogger(logger)

	kctx.FatalIfErrorf(runCommand(kctx, logger))
}

// runCommand runs the selected command and prefixes its error with the command
// name. Reporting is left to the caller.
func runCommand(kctx *kong.Context, logger *slog.Logger) error {
	if err := kctx.Run(logger); err != nil {
		return fmt.Errorf("%s: %w", kctx.Command(), err)
	}
	return nil
}
