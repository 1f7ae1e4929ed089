package pix

import (
	"fmt"

	"github.com/gogpu/pix/internal/blend"
	"github.com/gogpu/pix/internal/filter"
	"github.com/gogpu/pix/internal/scratch"
)

// Filter selects the resampling kernel used by Resample.
type Filter = filter.Filter

// Resampling kernels.
const (
	Box       = filter.Box
	Triangle  = filter.Triangle
	Hermite   = filter.Hermite
	Bell      = filter.Bell
	BSpline   = filter.BSpline
	Mitchell  = filter.Mitchell
	Lanczos3  = filter.Lanczos3
	Lanczos5  = filter.Lanczos5
	Lanczos7  = filter.Lanczos7
	Lanczos9  = filter.Lanczos9
	Lanczos11 = filter.Lanczos11
)

// DefaultFilter is a good general-purpose kernel for photographs and
// artwork alike.
const DefaultFilter = BSpline

// ParseFilter returns the filter with the given case-insensitive name.
func ParseFilter(name string) (Filter, error) {
	f, ok := filter.Parse(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return f, nil
}

// EdgeMode decides which pixels a kernel reads past an image edge.
type EdgeMode = filter.EdgeMode

// Edge modes.
const (
	// Reflect mirrors the image at the edge.
	Reflect = filter.Reflect
	// Wrap reads from the opposite edge, for tiling textures.
	Wrap = filter.Wrap
)

// Edges holds the edge mode of each side of an image.
type Edges struct {
	Top, Bottom, Left, Right EdgeMode
}

// WrapEdges wraps on every side.
var WrapEdges = Edges{Top: Wrap, Bottom: Wrap, Left: Wrap, Right: Wrap}

// ResampleOptions configures Resample.
type ResampleOptions struct {
	// Width and Height are the target size. When one is zero it is derived
	// from the other, preserving the aspect ratio. When both are zero the
	// size is unchanged.
	Width, Height int

	// Filter is the kernel. The zero value is Box.
	Filter Filter

	// Edges selects the edge policy per side. The zero value reflects.
	Edges Edges
}

// scratchRetained caps the pixels kept between resamples (16 MiB).
const scratchRetained = 4 << 20

// scratchPool holds the intermediate buffers of the horizontal pass.
var scratchPool = scratch.NewPool[Color](4, scratchRetained)

func (img *Image) targetSize(width, height int) (int, int, error) {
	switch {
	case width == 0 && height == 0:
		return img.width, img.height, nil
	case width != 0 && height != 0:
		return width, height, nil
	case img.width == 0 || img.height == 0:
		return 0, 0, fmt.Errorf("%w: cannot derive size from %dx%d image", ErrInvalidDimensions, img.width, img.height)
	case height == 0:
		return width, int(float64(width)*float64(img.height)/float64(img.width) + 0.5), nil
	default:
		return int(float64(height)*float64(img.width)/float64(img.height) + 0.5), height, nil
	}
}

// Resample returns a new image scaled to the requested size with a
// separable filter: a horizontal pass into a scratch buffer followed by a
// vertical pass.
//
// Requesting the current size returns a clone. A non-positive target size
// returns ErrInvalidDimensions and an unknown filter returns
// ErrUnknownFilter.
//
// When an axis shrinks, every kernel other than Box is replaced on that
// axis by an area average over the covered source pixels, and Box picks
// the nearest source pixel.
func (img *Image) Resample(opts ResampleOptions) (*Image, error) {
	if !opts.Filter.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilter, opts.Filter)
	}
	width, height, err := img.targetSize(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if width == img.width && height == img.height {
		return img.Clone(), nil
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	dest := New(width, height)
	if err := img.ResampleTo(dest, opts.Filter, opts.Edges); err != nil {
		return nil, err
	}
	return dest, nil
}

// ResampleTo resamples img to exactly fill dest, overwriting every pixel.
// An empty dest is a no-op; an empty img clears dest.
func (img *Image) ResampleTo(dest *Image, f Filter, edges Edges) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownFilter, f)
	}
	if dest.width <= 0 || dest.height <= 0 {
		return nil
	}
	if img.width <= 0 || img.height <= 0 {
		dest.Fill(Transparent)
		return nil
	}

	contribX := filter.Build(f, dest.width, img.width, edges.Left, edges.Right)
	contribY := filter.Build(f, dest.height, img.height, edges.Top, edges.Bottom)

	if l, ok := debugLogger(); ok {
		l.Debug("resample",
			"src", fmt.Sprintf("%dx%d", img.width, img.height),
			"dst", fmt.Sprintf("%dx%d", dest.width, dest.height),
			"filter", f,
			"contribX", contribX.Count(),
			"contribY", contribY.Count())
	}

	// Horizontal pass: img (w x h) -> temp (dest.w x h).
	temp := scratchPool.Get(dest.width * img.height)
	defer scratchPool.Put(temp)

	for y := range img.height {
		src := img.Row(y)
		row := temp[y*dest.width : (y+1)*dest.width]
		for x := range row {
			row[x] = convolve(contribX.At(x), func(i int32) Color { return src[i] })
		}
	}

	// Vertical pass: temp (dest.w x h) -> dest.
	for y := range dest.height {
		contribs := contribY.At(y)
		row := dest.Row(y)
		for x := range row {
			row[x] = convolve(contribs, func(i int32) Color { return temp[int(i)*dest.width+x] })
		}
	}

	if !contribX.Intact() || !contribY.Intact() {
		panic(fmt.Sprintf("pix: resample contribution table overrun (%dx%d -> %dx%d, %s)",
			img.width, img.height, dest.width, dest.height, f))
	}
	return nil
}

// convolve sums the weighted samples in 16.16 fixed point and rounds each
// channel to a saturated byte.
func convolve(contribs []filter.Contribution, sample func(int32) Color) Color {
	var r, g, b, a int32
	for _, c := range contribs {
		p := sample(c.Pixel)
		r += int32(p.R) * c.Weight
		g += int32(p.G) * c.Weight
		b += int32(p.B) * c.Weight
		a += int32(p.A) * c.Weight
	}
	return Color{
		R: blend.Fixed16Round(r),
		G: blend.Fixed16Round(g),
		B: blend.Fixed16Round(b),
		A: blend.Fixed16Round(a),
	}
}

// Resize returns a new image scaled to width x height by nearest-neighbour
// sampling in 16.16 fixed point. It is much faster than Resample and
// suited to pixel art. A non-positive size returns ErrInvalidDimensions.
func (img *Image) Resize(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	dest := New(width, height)
	if img.width == 0 || img.height == 0 {
		return dest, nil
	}

	xStep := int((int64(img.width) << 16) / int64(width))
	yStep := int((int64(img.height) << 16) / int64(height))

	for y, sy := 0, 0; y < height; y, sy = y+1, sy+yStep {
		src := img.Row(sy >> 16)
		row := dest.Row(y)
		for x, sx := 0, 0; x < width; x, sx = x+1, sx+xStep {
			row[x] = src[sx>>16]
		}
	}
	return dest, nil
}
