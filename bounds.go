package pix

// IsRowTransparent reports whether the width pixels starting at (x, y)
// all have zero alpha. Pixels outside the image count as transparent.
func (img *Image) IsRowTransparent(x, y, width int) bool {
	if y < 0 || y >= img.height {
		return true
	}
	if x < 0 {
		width += x
		x = 0
	}
	width = min(width, img.width-x)
	if width <= 0 {
		return true
	}
	for _, c := range img.pix[y*img.width+x:][:width] {
		if c.A != 0 {
			return false
		}
	}
	return true
}

// IsColumnTransparent reports whether the height pixels starting at
// (x, y) and going down all have zero alpha. Pixels outside the image
// count as transparent.
func (img *Image) IsColumnTransparent(x, y, height int) bool {
	if x < 0 || x >= img.width {
		return true
	}
	if y < 0 {
		height += y
		y = 0
	}
	height = min(height, img.height-y)
	for i := y * img.width; height > 0; i, height = i+img.width, height-1 {
		if img.pix[i+x].A != 0 {
			return false
		}
	}
	return true
}

// MeasureContentWidth returns the width of r after trimming fully
// transparent columns from its right side. A fully transparent r
// measures 0.
func (img *Image) MeasureContentWidth(r Rect) int {
	for width := r.Width; width > 0; width-- {
		if !img.IsColumnTransparent(r.X+width-1, r.Y, r.Height) {
			return width
		}
	}
	return 0
}

// MeasureContentHeight returns the height of r after trimming fully
// transparent rows from its bottom. A fully transparent r measures 0.
func (img *Image) MeasureContentHeight(r Rect) int {
	for height := r.Height; height > 0; height-- {
		if !img.IsRowTransparent(r.X, r.Y+height-1, r.Width) {
			return height
		}
	}
	return 0
}

// ContentBounds returns the smallest rectangle inside r that contains
// every pixel of r with non-zero alpha. A fully transparent r yields an
// empty Rect at r's origin.
func (img *Image) ContentBounds(r Rect) Rect {
	left := 0
	for left < r.Width && img.IsColumnTransparent(r.X+left, r.Y, r.Height) {
		left++
	}
	if left == r.Width || r.Width <= 0 {
		return Rect{X: r.X, Y: r.Y}
	}
	top := 0
	for top < r.Height && img.IsRowTransparent(r.X, r.Y+top, r.Width) {
		top++
	}

	inner := Rect{X: r.X + left, Y: r.Y + top, Width: r.Width - left, Height: r.Height - top}
	inner.Width = img.MeasureContentWidth(inner)
	inner.Height = img.MeasureContentHeight(inner)
	return inner
}
