package pix

// FillRect paints a rectangle with c. BlitCopy and BlitTransparent write
// c directly; BlitAlpha and BlitPMAlpha composite it over the existing
// pixels. Parts outside the image are clipped unless mode has
// BlitFastUnsafe.
func (img *Image) FillRect(x, y, width, height int, c Color, mode BlitMode) {
	if mode&BlitFastUnsafe == 0 {
		if !img.ClipRect(&x, &y, &width, &height) {
			return
		}
	} else if width <= 0 || height <= 0 {
		return
	}

	p, ok := newPainter(c, mode)
	if !ok {
		return
	}
	for row := y; row < y+height; row++ {
		p.span(img.pix[row*img.width+x:][:width])
	}
}

// FillRectR is FillRect taking a Rect.
func (img *Image) FillRectR(r Rect, c Color, mode BlitMode) {
	img.FillRect(r.X, r.Y, r.Width, r.Height, c, mode)
}

// DrawRect paints the border of a rectangle, thickness pixels wide,
// entirely inside the rectangle. A border too thick to leave a hole fills
// the whole rectangle.
func (img *Image) DrawRect(x, y, width, height int, c Color, thickness int, mode BlitMode) {
	if thickness <= 0 {
		return
	}
	if thickness >= width/2 || thickness >= height/2 {
		img.FillRect(x, y, width, height, c, mode)
		return
	}

	img.FillRect(x, y, width, thickness, c, mode)
	img.FillRect(x, y+height-thickness, width, thickness, c, mode)

	innerY := y + thickness
	innerHeight := height - thickness*2
	img.FillRect(x, innerY, thickness, innerHeight, c, mode)
	img.FillRect(x+width-thickness, innerY, thickness, innerHeight, c, mode)
}

// channels16 is a color in 16.16 fixed point, one int32 per channel.
type channels16 [4]int32

func toChannels16(c Color) channels16 {
	return channels16{int32(c.R) << 16, int32(c.G) << 16, int32(c.B) << 16, int32(c.A) << 16}
}

// step returns (to - from) * frac in 16.16, where frac is also 16.16.
func (from channels16) step(to channels16, frac int32) channels16 {
	var d channels16
	for i := range d {
		d[i] = int32((int64(to[i]-from[i]) * int64(frac)) >> 16)
	}
	return d
}

func (v channels16) advance(d channels16, n int32) channels16 {
	for i := range v {
		v[i] += d[i] * n
	}
	return v
}

func (v channels16) color() Color {
	return Color{
		R: clampRound16(v[0]),
		G: clampRound16(v[1]),
		B: clampRound16(v[2]),
		A: clampRound16(v[3]),
	}
}

func clampRound16(v int32) uint8 {
	return uint8(min(max((v+32768)>>16, 0), 255))
}

// reciprocal16 returns 65536/(n-1), or 0 when n < 2 so that a single row
// or column takes the starting color.
func reciprocal16(n int) int32 {
	if n < 2 {
		return 0
	}
	return int32(65536 / (n - 1))
}

// FillGradientRect paints a rectangle with a bilinear gradient between
// its four corner colors. The gradient is anchored to the unclipped
// rectangle, so clipping hides part of it without compressing it.
//
// BlitAlpha and BlitPMAlpha composite each gradient pixel over the
// image; BlitTransparent skips fully transparent gradient pixels; every
// other mode copies.
func (img *Image) FillGradientRect(x, y, width, height int, topLeft, topRight, bottomLeft, bottomRight Color, mode BlitMode) {
	cx, cy, cw, ch := x, y, width, height
	if mode&BlitFastUnsafe == 0 {
		if !img.ClipRect(&cx, &cy, &cw, &ch) {
			return
		}
	} else if width <= 0 || height <= 0 {
		return
	}

	rowFrac := reciprocal16(height)
	colFrac := reciprocal16(width)

	tl, tr := toChannels16(topLeft), toChannels16(topRight)
	leftStep := tl.step(toChannels16(bottomLeft), rowFrac)
	rightStep := tr.step(toChannels16(bottomRight), rowFrac)

	for row := cy; row < cy+ch; row++ {
		j := int32(row - y)
		left := tl.advance(leftStep, j)
		right := tr.advance(rightStep, j)
		spanStep := left.step(right, colFrac)

		v := left.advance(spanStep, int32(cx-x))
		dst := img.pix[row*img.width+cx:][:cw]
		for i := range dst {
			if p, ok := newPainter(v.color(), mode); ok {
				p.plot(&dst[i])
			}
			v = v.advance(spanStep, 1)
		}
	}
}
