// Command pixtool runs pix operations over every image in a directory.
//
//	pixtool resample --width 640 --filter lanczos3 ./photos
//	pixtool adjust --gamma 2.2 --grayscale ./photos
//	pixtool trim ./sprites
//	pixtool palette --palette vga16 --dither ./photos
//
// Files are processed concurrently; results go to a destination folder
// (default "pixtool" under the scanned folder).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/internal/parallel"
)

type cli struct {
	LogLevel string `help:"Log level (debug, info, warn, error). Debug also enables engine logs." default:"info" enum:"debug,info,warn,error"`
	Workers  int    `help:"Number of images processed concurrently; 0 uses every CPU." default:"0"`

	Resample ResampleCmd `cmd:"" help:"Resample images to a new size."`
	Adjust   AdjustCmd   `cmd:"" help:"Apply color adjustments and flips."`
	Trim     TrimCmd     `cmd:"" help:"Crop images to their non-transparent content."`
	Palette  PaletteCmd  `cmd:"" help:"Map images onto an indexed palette."`
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("pixtool"),
		kong.Description("Batch image processing with the pix raster engine."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(c.LogLevel)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		pix.SetLogger(logger.With("lib", "pix"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool := parallel.NewWorkerPool(c.Workers)
	defer pool.Close()

	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())
	kctx.Bind(pool)
	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(); err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
		pool.Close()
		stop()
		os.Exit(1)
	}
}
