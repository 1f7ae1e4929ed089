// Package blend provides the integer arithmetic and per-pixel compositing
// kernels behind the pix blit engine.
//
// Every division by 255 in the engine goes through Div255 so that all
// compositing paths round identically.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
package blend

// Div255 divides x by 255 without a hardware divide.
//
// Formula: (x + 1 + (x >> 8)) >> 8
//
// The result equals x/255 (floor) for every x in [0, 65534], which covers
// every product of two bytes plus the +127 rounding bias used by the alpha
// kernels.
func Div255(x uint32) uint32 {
	return (x + 1 + (x >> 8)) >> 8
}

// MulDiv255 multiplies two bytes and divides by 255.
func MulDiv255(a, b byte) byte {
	return byte(Div255(uint32(a) * uint32(b)))
}

// Lerp255 computes (s*a + d*(255-a) + 127) / 255, the rounded straight-alpha
// interpolation between d and s.
func Lerp255(s, d, a byte) byte {
	return byte(Div255(uint32(s)*uint32(a) + uint32(d)*uint32(255-a) + 127))
}

// AddClamp adds two bytes and saturates at 255.
func AddClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// Clamp255 saturates an int to [0, 255].
func Clamp255(x int) byte {
	if x&^0xFF == 0 {
		return byte(x)
	}
	if x < 0 {
		return 0
	}
	return 255
}

// Fixed16Round converts a 16.16 fixed-point accumulator to a byte, rounding
// to nearest and saturating.
func Fixed16Round(sum int32) byte {
	return Clamp255(int((sum + 32768) >> 16))
}
