// Package pix provides a CPU-resident 2D raster image engine for Go.
//
// # Overview
//
// pix works on a single type, Image: a fixed-size, row-major buffer of
// 8-bit RGBA pixels with no padding between rows. Every operation runs
// synchronously on the calling goroutine and produces bit-exact results
// from integer or fixed-point arithmetic.
//
// # Quick Start
//
//	import "github.com/gogpu/pix"
//
//	img := pix.NewFilled(256, 256, pix.White)
//	img.FillRect(16, 16, 64, 64, pix.RGBA(255, 0, 0, 128), pix.BlitAlpha)
//	img.DrawLine(0, 0, 255, 255, pix.Blue, pix.BlitCopy)
//
//	big, err := img.Resample(pix.ResampleOptions{Width: 512, Filter: pix.Lanczos3})
//
// # Blitting
//
// Blit copies a rectangle of one image into another through one of six
// compositing modes (BlitCopy, BlitTransparent, BlitAlpha, BlitPMAlpha,
// BlitMultiply, BlitAdd), optionally mirrored with BlitFlipHorz and
// BlitFlipVert. Regions are clipped against both images first; a region
// that misses either image is a no-op rather than an error.
//
// # Resampling
//
// Resample scales with a separable convolution filter (Box through
// Lanczos11) in two passes, with per-side edge handling (Reflect or Wrap).
// Resize is a fast nearest-neighbour alternative.
//
// # Drawing
//
// Lines (Bresenham with Cohen-Sutherland clipping), thick lines, even-odd
// polygons, cubic Bezier curves, rectangles and bilinear gradients are
// drawn directly into the pixel buffer without anti-aliasing.
//
// # Interop
//
// Image implements image.Image and draw.Image, so it can be encoded with
// the standard image codecs and used as a draw target. FromImage converts
// any image.Image into an Image.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rectangles are half-open on the right and bottom
//
// # Thread Safety
//
// An Image performs no locking. Any number of goroutines may read an
// Image concurrently; writes must be serialized by the caller.
package pix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
