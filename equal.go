package pix

// Equal reports whether other has the same size and pixels as img.
// A nil other is never equal.
func (img *Image) Equal(other *Image) bool {
	if img == other {
		return true
	}
	if other == nil || img == nil {
		return false
	}
	if img.width != other.width || img.height != other.height {
		return false
	}
	for i, c := range img.pix {
		if c != other.pix[i] {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same pixels. Two nil images are
// equal.
func Equal(a, b *Image) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

// Hash returns a content hash of the pixels. Equal images hash equally.
// The size is not mixed in.
func (img *Image) Hash() uint32 {
	var h uint32
	for _, c := range img.pix {
		h = h*65599 + c.packed()
	}
	return h
}

// packed returns the color as a little-endian RGBA word.
func (c Color) packed() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}
