package pix

import (
	"math"
	"slices"
)

// FillPolygon fills the polygon through points with c using the even-odd
// rule. The last point connects back to the first.
//
// A pixel is inside when its center is inside, so the polygon with
// corners (x, y) and (x+w, y+h) covers exactly the pixels FillRect(x, y,
// w, h) does. Mode handling matches FillRect.
func (img *Image) FillPolygon(points []Vec2, c Color, mode BlitMode) {
	if len(points) < 3 || img.width == 0 || img.height == 0 {
		return
	}
	p, ok := newPainter(c, mode)
	if !ok {
		return
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pt := range points {
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	if maxY < 0 || minY >= float64(img.height) {
		return
	}
	// Clamp before converting; huge coordinates do not fit in an int.
	top := int(max(minY, 0))
	bottom := int(min(maxY, float64(img.height-1))) + 1

	xs := make([]float64, 0, len(points))
	for y := top; y < bottom; y++ {
		cy := float64(y) + 0.5

		// Half-open crossing test: a vertex on the scanline counts for
		// exactly one of its two edges.
		xs = xs[:0]
		prev := points[len(points)-1]
		for _, cur := range points {
			if (cur.Y < cy && cy <= prev.Y) || (prev.Y < cy && cy <= cur.Y) {
				xs = append(xs, cur.X+(cy-cur.Y)/(prev.Y-cur.Y)*(prev.X-cur.X))
			}
			prev = cur
		}
		slices.Sort(xs)

		row := img.Row(y)
		for i := 0; i+1 < len(xs); i += 2 {
			if xs[i] >= float64(img.width) {
				break
			}
			if xs[i+1] <= 0 {
				continue
			}
			start := int(max(xs[i], 0))
			end := int(min(xs[i+1], float64(img.width)))
			if start < end {
				p.span(row[start:end])
			}
		}
	}
}

// DrawThickLine fills the rectangle of the given thickness centered on
// the segment from start to end. The ends are square and flush with the
// endpoints. A zero-length segment draws nothing.
func (img *Image) DrawThickLine(start, end Vec2, thickness float64, c Color, mode BlitMode) {
	dir := end.Sub(start)
	if dir.IsZero() || thickness <= 0 {
		return
	}
	offset := dir.Normalize().Perp().Mul(thickness * 0.5)
	img.FillPolygon([]Vec2{
		start.Add(offset),
		end.Add(offset),
		end.Sub(offset),
		start.Sub(offset),
	}, c, mode)
}

// DrawThickLineInt is DrawThickLine between the centers of two pixels.
func (img *Image) DrawThickLineInt(x1, y1, x2, y2 int, thickness float64, c Color, mode BlitMode) {
	img.DrawThickLine(
		V2(float64(x1)+0.5, float64(y1)+0.5),
		V2(float64(x2)+0.5, float64(y2)+0.5),
		thickness, c, mode)
}
