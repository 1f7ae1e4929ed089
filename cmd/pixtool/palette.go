package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/alecthomas/kong"
	"golang.org/x/image/draw"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/internal/parallel"
	"github.com/gogpu/pix/palette"
)

// PaletteCmd maps every image onto a palette of at most 256 colors.
type PaletteCmd struct {
	Batch

	Palette string `help:"Built-in palette name (bw, gray4, gray16, vga16, spectra6, websafe, plan9) or a RIFF PAL file." required:""`
	Dither  bool   `help:"Apply Floyd-Steinberg error diffusion."`

	colors palette.Palette
}

func (c *PaletteCmd) Validate(kctx *kong.Context) error {
	if err := c.Batch.Validate(kctx); err != nil {
		return err
	}
	p, err := palette.Load(c.Palette)
	if err != nil {
		return err
	}
	if len(p) == 0 || len(p) > 256 {
		return fmt.Errorf("palette %q has %d colors, want 1 to 256", c.Palette, len(p))
	}
	c.colors = p
	return nil
}

func (c *PaletteCmd) Run(ctx context.Context, pool *parallel.WorkerPool) error {
	return c.run(ctx, pool, "palette", c.apply)
}

func (c *PaletteCmd) apply(logger *slog.Logger, img *pix.Image) (*pix.Image, error) {
	logger.Info("applying palette", "palette", c.Palette, "colors", len(c.colors), "dither", c.Dither)
	if !c.Dither {
		return c.colors.Apply(img)
	}
	return dither(img, c.colors), nil
}

// dither maps img onto p with Floyd-Steinberg error diffusion.
func dither(img *pix.Image, p palette.Palette) *pix.Image {
	r := img.Bounds()
	dst := image.NewPaletted(r, p.ColorPalette())
	draw.FloydSteinberg.Draw(dst, r, img, r.Min)
	return pix.FromImage(dst)
}
