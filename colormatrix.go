package pix

import "golang.org/x/image/math/f64"

// ColorMatrix is a row-major 3x3 matrix applied to normalized (R, G, B)
// column vectors.
type ColorMatrix f64.Mat3

// IdentityColorMatrix returns the matrix that leaves colors unchanged.
func IdentityColorMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// ScaleColorMatrix scales each channel independently.
func ScaleColorMatrix(r, g, b float64) ColorMatrix {
	return ColorMatrix{
		r, 0, 0,
		0, g, 0,
		0, 0, b,
	}
}

// SaturationMatrix moves colors away from (s > 1) or toward (s < 1) their
// BT.601 luma. SaturationMatrix(0) produces grayscale.
func SaturationMatrix(s float64) ColorMatrix {
	const lr, lg, lb = 0.299, 0.587, 0.114
	t := 1 - s
	return ColorMatrix{
		lr*t + s, lg * t, lb * t,
		lr * t, lg*t + s, lb * t,
		lr * t, lg * t, lb*t + s,
	}
}

// Mul returns m*n, the matrix that applies n first and then m.
func (m ColorMatrix) Mul(n ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for r := range 3 {
		for c := range 3 {
			out[r*3+c] = m[r*3]*n[c] + m[r*3+1]*n[3+c] + m[r*3+2]*n[6+c]
		}
	}
	return out
}

// Apply transforms a normalized (r, g, b) vector.
func (m ColorMatrix) Apply(r, g, b float64) (float64, float64, float64) {
	return m[0]*r + m[1]*g + m[2]*b,
		m[3]*r + m[4]*g + m[5]*b,
		m[6]*r + m[7]*g + m[8]*b
}

// RemapMatrix transforms the color of every pixel by m. Channels are
// normalized to [0, 1] before the transform and rounded and saturated
// after it. Alpha is unchanged.
func (img *Image) RemapMatrix(m ColorMatrix) {
	const inv = 1.0 / 255
	for i, c := range img.pix {
		r, g, b := m.Apply(float64(c.R)*inv, float64(c.G)*inv, float64(c.B)*inv)
		img.pix[i] = NewColor(int(r*255+0.5), int(g*255+0.5), int(b*255+0.5), int(c.A))
	}
}
