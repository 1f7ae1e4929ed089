package pix

import (
	"fmt"

	"github.com/gogpu/pix/internal/blend"
	"github.com/gogpu/pix/internal/lut"
)

// FlipHorz mirrors the image left to right in place.
func (img *Image) FlipHorz() {
	for y := range img.height {
		row := img.Row(y)
		for l, r := 0, len(row)-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}
	}
}

// FlipVert mirrors the image top to bottom in place.
func (img *Image) FlipVert() {
	for top, bottom := 0, img.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a, b := img.Row(top), img.Row(bottom)
		for x := range a {
			a[x], b[x] = b[x], a[x]
		}
	}
}

// RemapColor replaces every pixel exactly equal to from with to.
func (img *Image) RemapColor(from, to Color) {
	for i, c := range img.pix {
		if c == from {
			img.pix[i] = to
		}
	}
}

// RemapTable replaces every pixel found as a key in table with its value.
// Pixels without an entry are left unchanged.
func (img *Image) RemapTable(table map[Color]Color) {
	if len(table) == 0 {
		return
	}
	for i, c := range img.pix {
		if r, ok := table[c]; ok {
			img.pix[i] = r
		}
	}
}

// ChannelTable maps one 8-bit channel value to another.
type ChannelTable = lut.Table

// ApplyTable passes the R, G and B channels of every pixel through t.
// Alpha is unchanged.
func (img *Image) ApplyTable(t *ChannelTable) {
	for i, c := range img.pix {
		img.pix[i] = Color{R: t[c.R], G: t[c.G], B: t[c.B], A: c.A}
	}
}

// Gamma raises every color channel to the given power:
// 255 * (v/255)^amount, rounded. Alpha is unchanged.
func (img *Image) Gamma(amount float64) {
	img.ApplyTable(lut.Gamma(amount))
}

// Invert replaces every color channel v with 255-v. Alpha is unchanged.
func (img *Image) Invert() {
	img.ApplyTable(lut.Invert())
}

// Grayscale replaces every color with its BT.601 luma. Alpha is unchanged.
func (img *Image) Grayscale() {
	for i, c := range img.pix {
		y := lut.Luma(c.R, c.G, c.B)
		img.pix[i] = Color{R: y, G: y, B: y, A: c.A}
	}
}

// DefaultSepia is the customary Sepia amount.
const DefaultSepia = 0.25

// Sepia tints the image brown. The luma of each pixel is kept and its
// chroma is replaced with a fixed warm tint of the given strength, in
// YIQ space. Alpha is unchanged.
func (img *Image) Sepia(amount float32) {
	ti := float32(int(amount*255 + 0.5))
	for i, c := range img.pix {
		y := 0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B)
		img.pix[i] = NewColor(
			int(y+0.956*ti+0.5),
			int(y-0.272*ti+0.5),
			int(y-1.106*ti+0.5),
			int(c.A),
		)
	}
}

// Mix interpolates every pixel toward the matching pixel of other:
// amount 0 keeps img, 1 yields other. The images must be the same size.
func (img *Image) Mix(other *Image, amount float32) error {
	if other.width != img.width || other.height != img.height {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrSizeMismatch,
			img.width, img.height, other.width, other.height)
	}
	for i, c := range img.pix {
		img.pix[i] = c.Mix(other.pix[i], amount)
	}
	return nil
}

// Multiply scales each channel of every pixel by the matching factor,
// rounding and saturating.
func (img *Image) Multiply(r, g, b, a float32) {
	for i, c := range img.pix {
		img.pix[i] = Color{
			R: floatToByte(float32(c.R) * r),
			G: floatToByte(float32(c.G) * g),
			B: floatToByte(float32(c.B) * b),
			A: floatToByte(float32(c.A) * a),
		}
	}
}

// PremultiplyAlpha converts straight-alpha pixels to premultiplied alpha
// in place, for use with BlitPMAlpha.
func (img *Image) PremultiplyAlpha() {
	for i, c := range img.pix {
		img.pix[i] = Color{
			R: blend.MulDiv255(c.R, c.A),
			G: blend.MulDiv255(c.G, c.A),
			B: blend.MulDiv255(c.B, c.A),
			A: c.A,
		}
	}
}

// UnpremultiplyAlpha converts premultiplied pixels back to straight alpha
// in place.
func (img *Image) UnpremultiplyAlpha() {
	for i, c := range img.pix {
		img.pix[i] = c.Unpremultiply()
	}
}
