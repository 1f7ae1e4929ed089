// Package palette provides color palettes for indexed pix images: a set of
// built-in palettes, RIFF PAL files and nearest-color mapping.
//
// A Palette holds at most 65535 colors, the limit of the PAL format.
// pix.NewIndexed accepts at most 256, so only palettes of that size can
// index an image.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/pix"
)

var (
	// ErrUnknownPalette is returned by Named for a name it does not know.
	ErrUnknownPalette = errors.New("palette: unknown palette")

	// ErrFormat is returned when PAL data is malformed.
	ErrFormat = errors.New("palette: invalid PAL data")

	// ErrEmpty is returned when mapping to a palette with no colors.
	ErrEmpty = errors.New("palette: no colors")
)

// Palette is an ordered list of colors.
type Palette []pix.Color

// FromColorPalette converts a standard library palette.
func FromColorPalette(p color.Palette) Palette {
	out := make(Palette, len(p))
	for i, c := range p {
		out[i] = pix.FromColor(c)
	}
	return out
}

// ColorPalette returns p as a standard library palette, for use with
// image.Paletted.
func (p Palette) ColorPalette() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return out
}

// Index returns the index of the palette color closest to c by squared
// distance over all four channels. Ties go to the lower index. Index
// returns 0 for an empty palette.
func (p Palette) Index(c pix.Color) int {
	best, bestSum := 0, int(^uint(0)>>1)
	for i, v := range p {
		dr := int(c.R) - int(v.R)
		dg := int(c.G) - int(v.G)
		db := int(c.B) - int(v.B)
		da := int(c.A) - int(v.A)
		sum := dr*dr + dg*dg + db*db + da*da
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			best, bestSum = i, sum
		}
	}
	return best
}

// Convert returns the palette color closest to c, or pix.Transparent for
// an empty palette.
func (p Palette) Convert(c pix.Color) pix.Color {
	if len(p) == 0 {
		return pix.Transparent
	}
	return p[p.Index(c)]
}

// Indices maps every pixel of img to the index of its closest palette
// color, in row-major order.
func (p Palette) Indices(img *pix.Image) ([]byte, error) {
	if len(p) == 0 {
		return nil, ErrEmpty
	}
	if len(p) > 256 {
		return nil, fmt.Errorf("%w: %d", pix.ErrPaletteTooLarge, len(p))
	}

	seen := make(map[pix.Color]byte)
	out := make([]byte, len(img.Pix()))
	for i, c := range img.Pix() {
		idx, ok := seen[c]
		if !ok {
			idx = byte(p.Index(c))
			seen[c] = idx
		}
		out[i] = idx
	}
	return out, nil
}

// Apply returns a copy of img with every pixel replaced by its closest
// palette color. The copy is built through pix.NewIndexed.
func (p Palette) Apply(img *pix.Image) (*pix.Image, error) {
	indices, err := p.Indices(img)
	if err != nil {
		return nil, err
	}
	w, h := img.Size()
	return pix.NewIndexed(w, h, indices, p)
}
