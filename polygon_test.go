package pix

import "testing"

func rectPolygon(x, y, w, h float64) []Vec2 {
	return []Vec2{V2(x, y), V2(x+w, y), V2(x+w, y+h), V2(x, y+h)}
}

func TestFillPolygonMatchesFillRect(t *testing.T) {
	rects := []Rect{
		R(1, 1, 4, 3),
		R(0, 0, 10, 8),
		R(-2, -3, 5, 20),
		R(7, 5, 9, 9),
		R(3, 3, 1, 1),
	}
	for _, r := range rects {
		t.Run(r.String(), func(t *testing.T) {
			poly := New(10, 8)
			poly.FillPolygon(rectPolygon(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height)), Red, BlitCopy)

			rect := New(10, 8)
			rect.FillRectR(r, Red, BlitCopy)

			if !poly.Equal(rect) {
				t.Errorf("polygon painted %d pixels, rect %d", count(poly, Red), count(rect, Red))
			}
		})
	}
}

func TestFillPolygonTriangle(t *testing.T) {
	img := New(8, 8)
	img.FillPolygon([]Vec2{V2(0, 0), V2(8, 0), V2(0, 8)}, White, BlitCopy)
	if got := count(img, White); got != 28 {
		t.Errorf("painted %d pixels, want 28", got)
	}
	if img.Pixel(0, 0) != White || img.Pixel(7, 7) != Transparent {
		t.Error("wrong side of the hypotenuse painted")
	}
}

func TestFillPolygonEvenOdd(t *testing.T) {
	// Outer square with the inner square traced as part of the same
	// outline: the inner area has two crossings on each side and stays
	// empty.
	img := New(10, 10)
	outline := []Vec2{
		V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10), V2(0, 0),
		V2(3, 3), V2(3, 7), V2(7, 7), V2(7, 3), V2(3, 3),
	}
	img.FillPolygon(outline, White, BlitCopy)
	if img.Pixel(5, 5) != Transparent {
		t.Error("hole painted")
	}
	if img.Pixel(1, 5) != White || img.Pixel(8, 5) != White {
		t.Error("ring not painted")
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	img := New(4, 4)
	img.FillPolygon(nil, White, BlitCopy)
	img.FillPolygon([]Vec2{V2(0, 0), V2(3, 3)}, White, BlitCopy)
	img.FillPolygon(rectPolygon(0, 0, 4, 4), Transparent, BlitAlpha)
	img.FillPolygon(rectPolygon(0, 10, 4, 4), White, BlitCopy)
	if count(img, Transparent) != 16 {
		t.Error("degenerate polygon painted pixels")
	}
}

func TestFillPolygonHugeCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		points []Vec2
		inside [2]int
	}{
		{"wide", []Vec2{V2(2, 2), V2(1e20, 2), V2(1e20, 5), V2(2, 5)}, [2]int{5, 3}},
		{"tall", []Vec2{V2(2, 2), V2(5, 2), V2(5, 1e20), V2(2, 1e20)}, [2]int{3, 7}},
		{"negative", []Vec2{V2(-1e20, -1e20), V2(4, -1e20), V2(4, 4), V2(-1e20, 4)}, [2]int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(8, 8)
			img.FillPolygon(tt.points, White, BlitCopy)
			if img.Pixel(tt.inside[0], tt.inside[1]) != White {
				t.Errorf("pixel %v not painted", tt.inside)
			}
		})
	}

	img := New(10, 10)
	img.DrawThickLine(V2(5, 5), V2(5, 1e20), 3, White, BlitCopy)
	if got := count(img, White); got != 15 {
		t.Errorf("thick line to 1e20 painted %d pixels, want 15", got)
	}
}

func TestDrawThickLine(t *testing.T) {
	img := New(10, 10)
	img.DrawThickLine(V2(1, 4), V2(7, 4), 2, White, BlitCopy)
	if got := count(img, White); got != 12 {
		t.Errorf("painted %d pixels, want 12", got)
	}
	for x := 1; x < 7; x++ {
		if img.Pixel(x, 3) != White || img.Pixel(x, 4) != White {
			t.Errorf("column %d not covered", x)
		}
	}
}

func TestDrawThickLineInt(t *testing.T) {
	img := New(10, 10)
	img.DrawThickLineInt(1, 4, 6, 4, 2, White, BlitCopy)
	if got := count(img, White); got != 10 {
		t.Errorf("painted %d pixels, want 10", got)
	}
	if img.Pixel(1, 4) != White || img.Pixel(5, 5) != White || img.Pixel(6, 4) != Transparent {
		t.Error("unexpected coverage")
	}
}

func TestDrawThickLineZeroLength(t *testing.T) {
	img := New(4, 4)
	img.DrawThickLine(V2(2, 2), V2(2, 2), 3, White, BlitCopy)
	img.DrawThickLine(V2(0, 2), V2(4, 2), 0, White, BlitCopy)
	if count(img, White) != 0 {
		t.Error("degenerate thick line painted pixels")
	}
}

func BenchmarkFillPolygon(b *testing.B) {
	img := New(256, 256)
	star := []Vec2{
		V2(128, 0), V2(158, 98), V2(256, 98), V2(176, 158), V2(206, 256),
		V2(128, 196), V2(50, 256), V2(80, 158), V2(0, 98), V2(98, 98),
	}
	for b.Loop() {
		img.FillPolygon(star, White, BlitAlpha)
	}
}
