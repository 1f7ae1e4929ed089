package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/internal/parallel"
)

// ResampleCmd resamples every image.
type ResampleCmd struct {
	Batch

	Width  int    `help:"Target width. 0 derives it from the height and the aspect ratio."`
	Height int    `help:"Target height. 0 derives it from the width and the aspect ratio."`
	Filter string `help:"Resampling filter (box, triangle, hermite, bell, bspline, mitchell, lanczos3 ... lanczos11)." default:"bspline"`
	Wrap   bool   `help:"Wrap around image edges instead of reflecting, for tiling textures."`
	Fit    bool   `help:"Keep the aspect ratio inside width x height and letterbox the rest."`
	Fill   string `help:"Letterbox color for --fit." default:"transparent"`

	filter pix.Filter
	fill   pix.Color
}

func (c *ResampleCmd) Validate(kctx *kong.Context) error {
	if err := c.Batch.Validate(kctx); err != nil {
		return err
	}
	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid height: %d", c.Height)
	case c.Width == 0 && c.Height == 0:
		return fmt.Errorf("no target size given")
	case c.Fit && (c.Width == 0 || c.Height == 0):
		return fmt.Errorf("--fit needs both width and height")
	}

	var err error
	if c.filter, err = pix.ParseFilter(c.Filter); err != nil {
		return err
	}
	if c.fill, err = pix.ParseColor(c.Fill); err != nil {
		return fmt.Errorf("invalid fill color: %w", err)
	}
	return nil
}

func (c *ResampleCmd) Run(ctx context.Context, pool *parallel.WorkerPool) error {
	return c.run(ctx, pool, "resample", c.apply)
}

func (c *ResampleCmd) apply(logger *slog.Logger, img *pix.Image) (*pix.Image, error) {
	opts := pix.ResampleOptions{Width: c.Width, Height: c.Height, Filter: c.filter}
	if c.Wrap {
		opts.Edges = pix.WrapEdges
	}
	if !c.Fit {
		logger.Info("resampling", "width", opts.Width, "height", opts.Height, "filter", c.filter)
		return img.Resample(opts)
	}
	return letterbox(logger, img, opts, c.fill)
}

// letterbox resamples img to the largest size that fits opts.Width x
// opts.Height with its aspect ratio intact, then centers it on a canvas of
// exactly that size filled with fill.
func letterbox(logger *slog.Logger, img *pix.Image, opts pix.ResampleOptions, fill pix.Color) (*pix.Image, error) {
	sw, sh := img.Size()
	if sw == 0 || sh == 0 {
		return pix.NewFilled(opts.Width, opts.Height, fill), nil
	}

	scale := math.Min(float64(opts.Width)/float64(sw), float64(opts.Height)/float64(sh))
	fitted := opts
	fitted.Width = min(max(int(math.Round(float64(sw)*scale)), 1), opts.Width)
	fitted.Height = min(max(int(math.Round(float64(sh)*scale)), 1), opts.Height)

	logger.Info("resampling", "width", fitted.Width, "height", fitted.Height, "filter", opts.Filter,
		"canvas", pix.R(0, 0, opts.Width, opts.Height))
	out, err := img.Resample(fitted)
	if err != nil {
		return nil, err
	}

	canvas := pix.NewFilled(opts.Width, opts.Height, fill)
	x := (opts.Width - fitted.Width) / 2
	y := (opts.Height - fitted.Height) / 2
	if err := canvas.Blit(out, 0, 0, x, y, fitted.Width, fitted.Height, pix.BlitAlpha); err != nil {
		return nil, err
	}
	return canvas, nil
}
