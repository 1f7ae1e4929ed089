package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/internal/parallel"
)

var errFullyTransparent = errors.New("image is fully transparent")

// TrimCmd crops every image to the bounds of its visible pixels.
type TrimCmd struct {
	Batch
}

func (c *TrimCmd) Run(ctx context.Context, pool *parallel.WorkerPool) error {
	return c.run(ctx, pool, "trim", trim)
}

func trim(logger *slog.Logger, img *pix.Image) (*pix.Image, error) {
	r := img.ContentBounds(img.Rect())
	if r.Empty() {
		return nil, errFullyTransparent
	}
	if r == img.Rect() {
		return img, nil
	}
	logger.Info("trimming", "bounds", r)
	return img.Extract(r.X, r.Y, r.Width, r.Height), nil
}
