// Package lut provides 256-entry byte lookup tables for per-channel
// pixel transforms.
//
// A table is built once per call and then applied to every channel of
// every pixel, replacing a math.Pow per sample with an array index.
package lut

import "math"

// Table maps one 8-bit channel value to another.
type Table [256]uint8

// Luma weights in 16.16 fixed point, rounded from ITU-R BT.601
// (0.299, 0.587, 0.114).
const (
	LumaR = 19595
	LumaG = 38470
	LumaB = 7471
)

// Identity returns the table that maps every value to itself.
func Identity() *Table {
	var t Table
	for i := range t {
		t[i] = uint8(i)
	}
	return &t
}

// Gamma returns the table round(255 * (i/255)^amount), clamped to [0, 255].
//
// Example:
//
//	t := Gamma(2.0)
//	_ = t[128] // 64
func Gamma(amount float64) *Table {
	var t Table
	for i := range t {
		t[i] = GammaSlow(uint8(i), amount)
	}
	return &t
}

// GammaSlow computes a single gamma entry with math.Pow.
// Reference implementation used to build and verify tables.
func GammaSlow(v uint8, amount float64) uint8 {
	x := math.Pow(float64(v)/255, amount)*255 + 0.5
	switch {
	case x >= 255:
		return 255
	case !(x > 0): // also catches NaN
		return 0
	}
	return uint8(x)
}

// Invert returns the table that maps i to 255-i.
func Invert() *Table {
	var t Table
	for i := range t {
		t[i] = uint8(255 - i)
	}
	return &t
}

// Luma returns the 16.16 rounded luma of an RGB triple.
func Luma(r, g, b uint8) uint8 {
	//nolint:gosec // G115: weights sum to 65536, result is in [0,255]
	return uint8((LumaR*uint32(r) + LumaG*uint32(g) + LumaB*uint32(b) + 32768) >> 16)
}

// Compose returns the table equivalent to applying t and then u.
func (t *Table) Compose(u *Table) *Table {
	var out Table
	for i := range out {
		out[i] = u[t[i]]
	}
	return &out
}
