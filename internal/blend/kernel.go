package blend

// Func is the signature shared by the compositing kernels.
// s* is the source pixel, d* the destination pixel; the result replaces
// the destination.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Over composites a straight-alpha source over an opaque destination:
// out = s*sa/255 + d*(255-sa)/255, alpha forced to 255.
func Over(sr, sg, sb, sa, dr, dg, db, _ byte) (r, g, b, a byte) {
	return Lerp255(sr, dr, sa), Lerp255(sg, dg, sa), Lerp255(sb, db, sa), 255
}

// OverPremul composites a premultiplied source over an opaque destination:
// out = s + d*(255-sa)/255, alpha forced to 255.
func OverPremul(sr, sg, sb, sa, dr, dg, db, _ byte) (r, g, b, a byte) {
	ia := uint32(255 - sa)
	r = AddClamp(sr, byte(Div255(uint32(dr)*ia+127)))
	g = AddClamp(sg, byte(Div255(uint32(dg)*ia+127)))
	b = AddClamp(sb, byte(Div255(uint32(db)*ia+127)))
	return r, g, b, 255
}

// Multiply multiplies the color channels: out = s*d/255. The result alpha
// is the larger of the two input alphas.
func Multiply(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	return MulDiv255(sr, dr), MulDiv255(sg, dg), MulDiv255(sb, db), max(sa, da)
}

// Add adds the color channels, saturating at 255. The result alpha is the
// larger of the two input alphas.
func Add(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	return AddClamp(sr, dr), AddClamp(sg, dg), AddClamp(sb, db), max(sa, da)
}

// ShadowAlpha scales a source coverage value by an opacity.
func ShadowAlpha(sa, opacity byte) byte {
	return MulDiv255(sa, opacity)
}

// Shadow composites pure black at coverage a over the destination and
// accumulates the destination alpha toward 255. Callers handle a == 0
// (skip) and a == 255 (opaque black) before calling.
func Shadow(a, dr, dg, db, da byte) (r, g, b, outA byte) {
	ia := uint32(255 - a)
	r = byte(Div255(uint32(dr)*ia + 127))
	g = byte(Div255(uint32(dg)*ia + 127))
	b = byte(Div255(uint32(db)*ia + 127))
	return r, g, b, AddClamp(da, a)
}
