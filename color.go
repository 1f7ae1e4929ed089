package pix

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/pix/internal/blend"
	"golang.org/x/image/colornames"
)

// Color is an 8-bit-per-channel RGBA value. Whether the channels are
// straight or premultiplied depends on the operation that produced it.
//
// The in-memory layout is R, G, B, A, one byte each.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NewColor creates a color from int channels, saturating each to [0, 255].
func NewColor(r, g, b, a int) Color {
	return Color{
		R: blend.Clamp255(r),
		G: blend.Clamp255(g),
		B: blend.Clamp255(b),
		A: blend.Clamp255(a),
	}
}

// ColorF creates a color from channels in [0, 1], rounding to nearest and
// saturating.
func ColorF(r, g, b, a float32) Color {
	return Color{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: unitToByte(a)}
}

func unitToByte(v float32) uint8 {
	return floatToByte(v * 255)
}

// floatToByte rounds v to nearest and saturates to [0, 255]. NaN maps to 0.
func floatToByte(v float32) uint8 {
	v += 0.5
	switch {
	case v >= 255:
		return 255
	case !(v > 0):
		return 0
	}
	return uint8(v)
}

// FromColor converts any color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Common colors
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Gray        = RGB(128, 128, 128)
)

// RGBA implements color.Color. The returned values are alpha-premultiplied
// and scaled to 16 bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ColorModel converts any color.Color to a Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return FromColor(c)
})

// Premultiply scales the color channels by alpha.
func (c Color) Premultiply() Color {
	if c.A == 255 {
		return c
	}
	return Color{
		R: blend.MulDiv255(c.R, c.A),
		G: blend.MulDiv255(c.G, c.A),
		B: blend.MulDiv255(c.B, c.A),
		A: c.A,
	}
}

// Unpremultiply divides the color channels by alpha. A fully transparent
// color becomes Transparent. The conversion is lossy: Premultiply followed
// by Unpremultiply does not always restore the original channels.
func (c Color) Unpremultiply() Color {
	switch c.A {
	case 255:
		return c
	case 0:
		return Transparent
	}
	ooa := (uint64(255) << 32) / uint64(c.A)
	return Color{
		R: unpremul(c.R, ooa),
		G: unpremul(c.G, ooa),
		B: unpremul(c.B, ooa),
		A: c.A,
	}
}

func unpremul(v uint8, ooa uint64) uint8 {
	x := (uint64(v) * ooa) >> 32
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// Add returns the saturating channel-wise sum. The alpha is the larger of
// the two alphas.
func (c Color) Add(o Color) Color {
	return Color{
		R: blend.AddClamp(c.R, o.R),
		G: blend.AddClamp(c.G, o.G),
		B: blend.AddClamp(c.B, o.B),
		A: max(c.A, o.A),
	}
}

// Sub returns the channel-wise difference clamped at zero. The alpha is
// the larger of the two alphas.
func (c Color) Sub(o Color) Color {
	return Color{
		R: subClamp(c.R, o.R),
		G: subClamp(c.G, o.G),
		B: subClamp(c.B, o.B),
		A: max(c.A, o.A),
	}
}

func subClamp(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// Mul returns the channel-wise product scaled back to [0, 255]. The alpha
// is the larger of the two alphas.
func (c Color) Mul(o Color) Color {
	return Color{
		R: blend.MulDiv255(c.R, o.R),
		G: blend.MulDiv255(c.G, o.G),
		B: blend.MulDiv255(c.B, o.B),
		A: max(c.A, o.A),
	}
}

// Invert returns 255 minus each color channel, keeping alpha.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Merge returns the channel-wise average of c and o.
func (c Color) Merge(o Color) Color {
	return Color{
		R: uint8((uint16(c.R) + uint16(o.R)) >> 1),
		G: uint8((uint16(c.G) + uint16(o.G)) >> 1),
		B: uint8((uint16(c.B) + uint16(o.B)) >> 1),
		A: uint8((uint16(c.A) + uint16(o.A)) >> 1),
	}
}

// Mix interpolates from c (amount 0) to o (amount 1) in 16.16 fixed point.
// amount is clamped to [0, 1].
func (c Color) Mix(o Color, amount float32) Color {
	amount = min(max(amount, 0), 1)
	oa := uint32(amount*65536 + 0.5)
	ca := 65536 - oa
	mix := func(a, b uint8) uint8 {
		return uint8((uint32(a)*ca + uint32(b)*oa + 32768) >> 16)
	}
	return Color{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B), A: mix(c.A, o.A)}
}

// Hex6 returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex6() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hex8 returns the color as "#rrggbbaa".
func (c Color) Hex8() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String returns the CSS name of an opaque named color, "transparent" for
// Transparent, and the hex form otherwise.
func (c Color) String() string {
	if c == Transparent {
		return "transparent"
	}
	if c.A == 255 {
		if name, ok := namesByColor[c]; ok {
			return name
		}
		return c.Hex6()
	}
	return c.Hex8()
}

// namesByColor maps opaque colors to their first CSS name in
// alphabetical order.
var namesByColor = func() map[Color]string {
	m := make(map[Color]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := FromColor(colornames.Map[name])
		if _, ok := m[c]; !ok {
			m[c] = name
		}
	}
	return m
}()

// ParseColor parses "#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
// "rgb(r, g, b)", "rgba(r, g, b, a)" with a in [0, 1], "transparent", or a
// CSS color name. Matching is case-insensitive.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if c, ok := parseHex(s[1:]); ok {
			return c, nil
		}
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		if c, ok := parseFunc(s[len("rgba("):len(s)-1], true); ok {
			return c, nil
		}
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		if c, ok := parseFunc(s[len("rgb("):len(s)-1], false); ok {
			return c, nil
		}
	case s == "transparent":
		return Transparent, nil
	default:
		if c, ok := colornames.Map[s]; ok {
			return FromColor(c), nil
		}
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(s string) (Color, bool) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	nib := func(shift uint) uint8 { return uint8(v>>shift&0xF) * 17 }
	byt := func(shift uint) uint8 { return uint8(v >> shift) }

	switch len(s) {
	case 3:
		return Color{R: nib(8), G: nib(4), B: nib(0), A: 255}, true
	case 4:
		return Color{R: nib(12), G: nib(8), B: nib(4), A: nib(0)}, true
	case 6:
		return Color{R: byt(16), G: byt(8), B: byt(0), A: 255}, true
	case 8:
		return Color{R: byt(24), G: byt(16), B: byt(8), A: byt(0)}, true
	}
	return Color{}, false
}

func parseFunc(args string, withAlpha bool) (Color, bool) {
	parts := strings.Split(args, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, false
	}
	var ch [3]uint8
	for i := range ch {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, false
		}
		ch[i] = uint8(n)
	}
	c := Color{R: ch[0], G: ch[1], B: ch[2], A: 255}
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 32)
		if err != nil || a < 0 || a > 1 {
			return Color{}, false
		}
		c.A = unitToByte(float32(a))
	}
	return c, true
}
