package pix

// ClipBlit clips a copy of a width x height region at (srcX, srcY) of src
// to (destX, destY) of img so that every addressed pixel lies inside both
// images. The parameters are updated in place. ClipBlit reports false when
// nothing is left to copy, in which case the parameters are unspecified.
//
// Leading overhang on either image advances both origins together, so the
// pixel-to-pixel correspondence of the region is preserved.
func (img *Image) ClipBlit(src *Image, srcX, srcY, destX, destY, width, height *int) bool {
	if *width <= 0 || *height <= 0 ||
		*srcX >= src.width || *srcY >= src.height ||
		*destX >= img.width || *destY >= img.height {
		return false
	}

	if *srcX < 0 {
		*width += *srcX
		*destX -= *srcX
		*srcX = 0
	}
	if *srcY < 0 {
		*height += *srcY
		*destY -= *srcY
		*srcY = 0
	}
	if *destX < 0 {
		*width += *destX
		*srcX -= *destX
		*destX = 0
	}
	if *destY < 0 {
		*height += *destY
		*srcY -= *destY
		*destY = 0
	}

	*width = min(*width, src.width-*srcX, img.width-*destX)
	*height = min(*height, src.height-*srcY, img.height-*destY)

	return *width > 0 && *height > 0
}

// ClipRect clips the rectangle (x, y, width, height) to img in place and
// reports whether any of it remains.
func (img *Image) ClipRect(x, y, width, height *int) bool {
	if *width <= 0 || *height <= 0 || *x >= img.width || *y >= img.height {
		return false
	}

	if *x < 0 {
		*width += *x
		*x = 0
	}
	if *y < 0 {
		*height += *y
		*y = 0
	}
	*width = min(*width, img.width-*x)
	*height = min(*height, img.height-*y)

	return *width > 0 && *height > 0
}

// clipRect is the value form of ClipRect.
func (img *Image) clipRect(r Rect) (Rect, bool) {
	ok := img.ClipRect(&r.X, &r.Y, &r.Width, &r.Height)
	return r, ok
}
