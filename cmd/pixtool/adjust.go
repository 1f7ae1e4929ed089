package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/internal/lut"
	"github.com/gogpu/pix/internal/parallel"
)

// AdjustCmd applies whole-image color adjustments. Channel curves (gamma
// then invert) are merged into one table pass.
type AdjustCmd struct {
	Batch

	Gamma      float64 `help:"Gamma exponent for the color channels. 1 leaves them unchanged." default:"1"`
	Invert     bool    `help:"Invert the color channels."`
	Saturation float64 `help:"Saturation factor. 0 is grayscale, 1 leaves colors unchanged." default:"1"`
	Grayscale  bool    `help:"Convert to luma grayscale."`
	Sepia      float32 `help:"Sepia tone strength. 0 disables it; 0.25 is a classic tint."`
	FlipH      bool    `name:"flip-h" help:"Mirror horizontally."`
	FlipV      bool    `name:"flip-v" help:"Mirror vertically."`
}

func (c *AdjustCmd) Validate(kctx *kong.Context) error {
	if err := c.Batch.Validate(kctx); err != nil {
		return err
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("invalid gamma: %v", c.Gamma)
	}
	if c.Saturation < 0 {
		return fmt.Errorf("invalid saturation: %v", c.Saturation)
	}
	if c.Sepia < 0 || c.Sepia > 1 {
		return fmt.Errorf("sepia strength %v outside [0, 1]", c.Sepia)
	}
	return nil
}

func (c *AdjustCmd) Run(ctx context.Context, pool *parallel.WorkerPool) error {
	return c.run(ctx, pool, "adjust", c.apply)
}

// table returns the merged channel curve, or nil when it is the identity.
func (c *AdjustCmd) table() *pix.ChannelTable {
	var t *lut.Table
	if c.Gamma != 1 {
		t = lut.Gamma(c.Gamma)
	}
	if c.Invert {
		if t == nil {
			t = lut.Invert()
		} else {
			t = t.Compose(lut.Invert())
		}
	}
	return t
}

func (c *AdjustCmd) apply(logger *slog.Logger, img *pix.Image) (*pix.Image, error) {
	if t := c.table(); t != nil {
		img.ApplyTable(t)
	}
	if c.Saturation != 1 {
		img.RemapMatrix(pix.SaturationMatrix(c.Saturation))
	}
	if c.Grayscale {
		img.Grayscale()
	}
	if c.Sepia > 0 {
		img.Sepia(c.Sepia)
	}
	if c.FlipH {
		img.FlipHorz()
	}
	if c.FlipV {
		img.FlipVert()
	}
	logger.Debug("adjusted", "hash", img.Hash())
	return img, nil
}
