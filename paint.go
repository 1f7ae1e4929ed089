package pix

import "github.com/gogpu/pix/internal/blend"

// painter applies one color to destination pixels under a resolved mode.
// A nil fn means plain copy.
type painter struct {
	c  Color
	fn blend.Func
}

// newPainter resolves mode for drawing the solid color c. It reports false
// when the draw would leave every pixel unchanged.
//
// BlitTransparent draws like BlitCopy for visible colors. The alpha modes
// collapse to copy for opaque colors. BlitMultiply and BlitAdd have no
// solid-color form and draw like BlitCopy.
func newPainter(c Color, mode BlitMode) (painter, bool) {
	switch mode.Alpha() {
	case BlitTransparent:
		return painter{c: c}, c.A != 0
	case BlitAlpha:
		if c.A == 255 {
			return painter{c: c}, true
		}
		return painter{c: c, fn: blend.Over}, c.A != 0
	case BlitPMAlpha:
		if c.A == 255 {
			return painter{c: c}, true
		}
		return painter{c: c, fn: blend.OverPremul}, c.A != 0
	default:
		return painter{c: c}, true
	}
}

func (p painter) plot(d *Color) {
	if p.fn == nil {
		*d = p.c
		return
	}
	s := p.c
	r, g, b, a := p.fn(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
	*d = Color{R: r, G: g, B: b, A: a}
}

func (p painter) span(row []Color) {
	if p.fn == nil {
		for i := range row {
			row[i] = p.c
		}
		return
	}
	for i := range row {
		p.plot(&row[i])
	}
}
