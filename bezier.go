package pix

// BezierOptions configures DrawBezier.
type BezierOptions struct {
	// Steps is the number of line segments. Zero picks a count from the
	// length of the control polygon, never fewer than 20.
	Steps int

	// Mode is the blit mode of every segment.
	Mode BlitMode

	// SkipStart leaves the first point unpainted, for curves chained to a
	// previous segment.
	SkipStart bool
}

const minBezierSteps = 20

// BezierSteps returns the default segment count for a cubic curve: a
// quarter of the control polygon length, at least 20.
func BezierSteps(p0, c0, c1, p1 Vec2) int {
	length := c0.Sub(p0).Length() + c1.Sub(c0).Length() + p1.Sub(c1).Length()
	return max(int(length*0.25), minBezierSteps)
}

// CubicPoint evaluates the cubic Bezier curve at t in [0, 1].
func CubicPoint(p0, c0, c1, p1 Vec2, t float64) Vec2 {
	it := 1 - t
	a := it * it * it
	b := 3 * it * it * t
	c := 3 * it * t * t
	d := t * t * t
	return Vec2{
		X: a*p0.X + b*c0.X + c*c1.X + d*p1.X,
		Y: a*p0.Y + b*c0.Y + c*c1.Y + d*p1.Y,
	}
}

// DrawBezier draws the cubic Bezier curve from p0 to p1 with control
// points c0 and c1 as a chain of one-pixel lines. Every pixel of the
// chain is painted once, so translucent curves have no dark joints.
func (img *Image) DrawBezier(p0, c0, c1, p1 Vec2, c Color, opts BezierOptions) {
	steps := opts.Steps
	if steps <= 0 {
		steps = BezierSteps(p0, c0, c1, p1)
	}
	inv := 1 / float64(steps)

	lastX, lastY := p0.Round()
	if !opts.SkipStart {
		img.DrawLine(lastX, lastY, lastX, lastY, c, opts.Mode)
	}

	for i := 1; i <= steps; i++ {
		x, y := CubicPoint(p0, c0, c1, p1, float64(i)*inv).Round()
		if x != lastX || y != lastY {
			img.DrawLineSkipStart(lastX, lastY, x, y, c, opts.Mode)
		}
		lastX, lastY = x, y
	}
}
