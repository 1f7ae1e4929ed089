package pix

import (
	"fmt"
	"strings"

	"github.com/gogpu/pix/internal/blend"
)

// BlitMode selects how source pixels are combined with destination pixels.
//
// The low four bits hold exactly one compositing mode (BlitCopy through
// BlitAdd). The remaining bits are independent flags that may be OR-ed in.
type BlitMode uint32

// Compositing modes.
const (
	// BlitCopy copies source pixels verbatim.
	BlitCopy BlitMode = iota
	// BlitTransparent copies source pixels whose alpha is non-zero.
	BlitTransparent
	// BlitAlpha composites straight-alpha source pixels over the destination.
	BlitAlpha
	// BlitPMAlpha composites premultiplied source pixels over the destination.
	BlitPMAlpha
	// BlitMultiply multiplies source and destination color channels.
	BlitMultiply
	// BlitAdd adds source and destination color channels, saturating.
	BlitAdd

	blitModeCount
)

// Flags.
const (
	// BlitAlphaMask selects the compositing mode bits.
	BlitAlphaMask BlitMode = 0xF

	// BlitFastUnsafe skips clipping. The caller guarantees that the region
	// lies inside both images; an out-of-range region panics.
	BlitFastUnsafe BlitMode = 1 << 4

	// BlitFlipHorz mirrors the source region left to right. Only BlitCopy
	// and BlitTransparent support it.
	BlitFlipHorz BlitMode = 1 << 5

	// BlitFlipVert mirrors the source region top to bottom.
	BlitFlipVert BlitMode = 1 << 6
)

var blitModeNames = [blitModeCount]string{
	BlitCopy:        "Copy",
	BlitTransparent: "Transparent",
	BlitAlpha:       "Alpha",
	BlitPMAlpha:     "PMAlpha",
	BlitMultiply:    "Multiply",
	BlitAdd:         "Add",
}

// Alpha returns the compositing mode with all flags cleared.
func (m BlitMode) Alpha() BlitMode {
	return m & BlitAlphaMask
}

// String returns a readable form such as "Alpha|FlipVert".
func (m BlitMode) String() string {
	var sb strings.Builder
	if a := m.Alpha(); a < blitModeCount {
		sb.WriteString(blitModeNames[a])
	} else {
		fmt.Fprintf(&sb, "Mode(%d)", uint32(a))
	}
	if m&BlitFastUnsafe != 0 {
		sb.WriteString("|FastUnsafe")
	}
	if m&BlitFlipHorz != 0 {
		sb.WriteString("|FlipHorz")
	}
	if m&BlitFlipVert != 0 {
		sb.WriteString("|FlipVert")
	}
	return sb.String()
}

// rowFunc combines one source row into one destination row of equal length.
type rowFunc func(dst, src []Color)

// rowKernel returns the row kernel for the mode and flip-horizontal pair,
// or nil if the combination is unsupported.
func rowKernel(mode BlitMode) rowFunc {
	switch mode & (BlitAlphaMask | BlitFlipHorz) {
	case BlitCopy:
		return copyRow
	case BlitTransparent:
		return transparentRow
	case BlitCopy | BlitFlipHorz:
		return copyRowFlipped
	case BlitTransparent | BlitFlipHorz:
		return transparentRowFlipped
	case BlitAlpha:
		return alphaRow(blend.Over)
	case BlitPMAlpha:
		return alphaRow(blend.OverPremul)
	case BlitMultiply:
		return blendRow(blend.Multiply)
	case BlitAdd:
		return blendRow(blend.Add)
	}
	return nil
}

// Blit combines a width x height region of src at (srcX, srcY) into img
// at (destX, destY) using mode.
//
// Unless mode has BlitFastUnsafe, the region is first clipped against both
// images; a region that misses either image is a no-op. Blit returns
// ErrUnsupportedBlitMode for a mode outside the known set or for
// BlitFlipHorz combined with a blending mode.
//
// src and img may be the same image only if the regions do not overlap.
func (img *Image) Blit(src *Image, srcX, srcY, destX, destY, width, height int, mode BlitMode) error {
	kernel := rowKernel(mode)
	if kernel == nil {
		Logger().Debug("blit: rejected mode", "mode", mode)
		return fmt.Errorf("%w: %s", ErrUnsupportedBlitMode, mode)
	}

	if mode&BlitFastUnsafe == 0 {
		if !img.ClipBlit(src, &srcX, &srcY, &destX, &destY, &width, &height) {
			return nil
		}
	} else if width <= 0 || height <= 0 {
		return nil
	}

	img.blitRows(src, srcX, srcY, destX, destY, width, height, mode&BlitFlipVert != 0, kernel)
	return nil
}

// blitRows walks the already clipped region row by row. With flipVert the
// source rows are visited from the bottom of the region upward.
func (img *Image) blitRows(src *Image, srcX, srcY, destX, destY, width, height int, flipVert bool, kernel rowFunc) {
	srcRow := srcY
	step := 1
	if flipVert {
		srcRow = srcY + height - 1
		step = -1
	}
	for y := destY; y < destY+height; y++ {
		s := src.pix[srcRow*src.width+srcX:][:width]
		d := img.pix[y*img.width+destX:][:width]
		kernel(d, s)
		srcRow += step
	}
}

func copyRow(dst, src []Color) {
	copy(dst, src)
}

func copyRowFlipped(dst, src []Color) {
	last := len(dst) - 1
	for i, c := range src {
		dst[last-i] = c
	}
}

func transparentRow(dst, src []Color) {
	for i, c := range src {
		if c.A != 0 {
			dst[i] = c
		}
	}
}

func transparentRowFlipped(dst, src []Color) {
	last := len(dst) - 1
	for i, c := range src {
		if c.A != 0 {
			dst[last-i] = c
		}
	}
}

// alphaRow wraps an over-style kernel: transparent source pixels leave the
// destination untouched and opaque ones replace it.
func alphaRow(fn blend.Func) rowFunc {
	return func(dst, src []Color) {
		for i, s := range src {
			switch s.A {
			case 0:
			case 255:
				dst[i] = s
			default:
				d := dst[i]
				r, g, b, a := fn(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
				dst[i] = Color{R: r, G: g, B: b, A: a}
			}
		}
	}
}

func blendRow(fn blend.Func) rowFunc {
	return func(dst, src []Color) {
		for i, s := range src {
			d := dst[i]
			r, g, b, a := fn(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
			dst[i] = Color{R: r, G: g, B: b, A: a}
		}
	}
}

// ShadowBlit darkens img through the alpha channel of a region of src,
// as if src were a black silhouette at the given opacity. The source
// color channels are ignored. Destination alpha accumulates toward 255.
func (img *Image) ShadowBlit(src *Image, srcX, srcY, destX, destY, width, height int, opacity uint8) {
	if !img.ClipBlit(src, &srcX, &srcY, &destX, &destY, &width, &height) {
		return
	}
	img.blitRows(src, srcX, srcY, destX, destY, width, height, false, func(dst, src []Color) {
		for i, s := range src {
			a := blend.ShadowAlpha(s.A, opacity)
			switch a {
			case 0:
			case 255:
				dst[i] = Black
			default:
				d := dst[i]
				r, g, b, da := blend.Shadow(a, d.R, d.G, d.B, d.A)
				dst[i] = Color{R: r, G: g, B: b, A: da}
			}
		}
	})
}

// PatternBlit fills destRect of img by tiling srcRect of src. The tiling
// is anchored at destRect's origin, so clipping destRect does not shift
// the pattern.
//
// srcRect must be non-empty and lie entirely inside src; otherwise
// PatternBlit returns ErrInvalidSourceRect. A destRect outside img is a
// no-op.
func (img *Image) PatternBlit(src *Image, srcRect, destRect Rect) error {
	if srcRect.X < 0 || srcRect.Y < 0 || srcRect.Width < 1 || srcRect.Height < 1 ||
		srcRect.X > src.width-srcRect.Width || srcRect.Y > src.height-srcRect.Height {
		return fmt.Errorf("%w: %s in %dx%d image", ErrInvalidSourceRect, srcRect, src.width, src.height)
	}

	clipped, ok := img.clipRect(destRect)
	if !ok {
		return nil
	}

	offsetX := (clipped.X - destRect.X) % srcRect.Width
	offsetY := (clipped.Y - destRect.Y) % srcRect.Height

	for y := clipped.Y; y < clipped.Bottom(); y++ {
		srcRow := src.pix[(srcRect.Y+offsetY)*src.width+srcRect.X:][:srcRect.Width]
		dst := img.pix[y*img.width+clipped.X:][:clipped.Width]

		// Copy the partial first tile, then whole tiles.
		n := copy(dst, srcRow[offsetX:])
		for n < len(dst) {
			n += copy(dst[n:], srcRow)
		}

		if offsetY++; offsetY >= srcRect.Height {
			offsetY = 0
		}
	}
	return nil
}
