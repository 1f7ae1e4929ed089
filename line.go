package pix

// outCode classifies a point against the image for Cohen-Sutherland
// clipping.
type outCode uint8

const (
	outLeft outCode = 1 << iota
	outRight
	outTop
	outBottom
)

func (img *Image) outCode(x, y int) outCode {
	var code outCode
	if x < 0 {
		code |= outLeft
	} else if x >= img.width {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y >= img.height {
		code |= outBottom
	}
	return code
}

// DrawLine draws a one-pixel line from (x1, y1) to (x2, y2) inclusive.
//
// BlitCopy writes c directly. BlitTransparent skips invisible colors.
// BlitAlpha and BlitPMAlpha composite c over the existing pixels. The line
// is clipped to the image unless mode has BlitFastUnsafe.
func (img *Image) DrawLine(x1, y1, x2, y2 int, c Color, mode BlitMode) {
	img.drawLine(x1, y1, x2, y2, c, mode, false)
}

// DrawLineSkipStart is DrawLine without the pixel at (x1, y1), so that
// chained segments paint each shared joint exactly once. A zero-length
// segment draws nothing.
func (img *Image) DrawLineSkipStart(x1, y1, x2, y2 int, c Color, mode BlitMode) {
	img.drawLine(x1, y1, x2, y2, c, mode, true)
}

func (img *Image) drawLine(x1, y1, x2, y2 int, c Color, mode BlitMode, skipStart bool) {
	p, ok := newPainter(c, mode)
	if !ok {
		return
	}
	if mode&BlitFastUnsafe != 0 {
		img.bresenham(x1, y1, x2, y2, p, skipStart)
		return
	}

	code1 := img.outCode(x1, y1)
	code2 := img.outCode(x2, y2)
	for {
		switch {
		case code1|code2 == 0:
			img.bresenham(x1, y1, x2, y2, p, skipStart)
			return
		case code1&code2 != 0:
			return
		}

		out := code1
		if out == 0 {
			out = code2
		}

		var x, y int
		switch {
		case out&outBottom != 0:
			x = x1 + int(int64(x2-x1)*int64(img.height-1-y1)/int64(y2-y1))
			y = img.height - 1
		case out&outTop != 0:
			x = x1 + int(int64(x2-x1)*int64(-y1)/int64(y2-y1))
			y = 0
		case out&outRight != 0:
			y = y1 + int(int64(y2-y1)*int64(img.width-1-x1)/int64(x2-x1))
			x = img.width - 1
		default:
			y = y1 + int(int64(y2-y1)*int64(-x1)/int64(x2-x1))
			x = 0
		}

		if out == code1 {
			// The start pixel was clipped away; the new one must be drawn.
			x1, y1 = x, y
			code1 = img.outCode(x1, y1)
			skipStart = false
		} else {
			x2, y2 = x, y
			code2 = img.outCode(x2, y2)
		}
	}
}

// bresenham steps from (x1, y1) to (x2, y2) through pixel offsets. Both
// endpoints must lie inside the image.
func (img *Image) bresenham(x1, y1, x2, y2 int, p painter, skipStart bool) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := img.width
	if y1 > y2 {
		sy = -img.width
	}
	index := y1*img.width + x1
	end := y2*img.width + x2
	err := dx + dy

	next := func() {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			index += sx
		}
		if e2 <= dx {
			err += dx
			index += sy
		}
	}

	if skipStart {
		if index == end {
			return
		}
		next()
	}
	for {
		p.plot(&img.pix[index])
		if index == end {
			return
		}
		next()
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
