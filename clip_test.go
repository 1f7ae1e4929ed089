package pix

import "testing"

func TestClipBlit(t *testing.T) {
	src := New(10, 10)
	dst := New(8, 6)

	type region struct{ sx, sy, dx, dy, w, h int }
	tests := []struct {
		name string
		in   region
		want region
		ok   bool
	}{
		{"inside", region{0, 0, 0, 0, 4, 4}, region{0, 0, 0, 0, 4, 4}, true},
		{"trailing clamp to dest", region{0, 0, 6, 4, 5, 5}, region{0, 0, 6, 4, 2, 2}, true},
		{"trailing clamp to src", region{8, 9, 0, 0, 5, 5}, region{8, 9, 0, 0, 2, 1}, true},
		{"src overhang", region{-2, -1, 0, 0, 4, 4}, region{0, 0, 2, 1, 2, 3}, true},
		{"dest overhang", region{0, 0, -3, -2, 5, 5}, region{3, 2, 0, 0, 2, 3}, true},
		{"both overhang", region{-1, 0, -2, 0, 4, 2}, region{1, 0, 0, 0, 2, 2}, true},
		{"zero width", region{0, 0, 0, 0, 0, 4}, region{}, false},
		{"src past end", region{10, 0, 0, 0, 4, 4}, region{}, false},
		{"dest past end", region{0, 0, 8, 0, 4, 4}, region{}, false},
		{"dest before start", region{0, 0, -5, 0, 4, 4}, region{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.in
			ok := dst.ClipBlit(src, &r.sx, &r.sy, &r.dx, &r.dy, &r.w, &r.h)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (region %+v)", ok, tt.ok, r)
			}
			if ok && r != tt.want {
				t.Errorf("region = %+v, want %+v", r, tt.want)
			}
		})
	}
}

func TestClipBlitKeepsCorrespondence(t *testing.T) {
	src := New(5, 5)
	dst := New(5, 5)
	for sx := -6; sx <= 6; sx++ {
		for dx := -6; dx <= 6; dx++ {
			r := [6]int{sx, 1, dx, 1, 7, 2}
			in := r
			if !dst.ClipBlit(src, &r[0], &r[1], &r[2], &r[3], &r[4], &r[5]) {
				continue
			}
			if r[0]-in[0] != r[2]-in[2] {
				t.Errorf("sx=%d dx=%d: origins moved by %d and %d", sx, dx, r[0]-in[0], r[2]-in[2])
			}
			if r[0] < 0 || r[0]+r[4] > 5 || r[2] < 0 || r[2]+r[4] > 5 {
				t.Errorf("sx=%d dx=%d: clipped region %v out of bounds", sx, dx, r)
			}
		}
	}
}

func TestClipRect(t *testing.T) {
	img := New(10, 5)
	tests := []struct {
		in, want Rect
		ok       bool
	}{
		{R(2, 1, 3, 3), R(2, 1, 3, 3), true},
		{R(-2, -1, 5, 5), R(0, 0, 3, 4), true},
		{R(8, 3, 5, 5), R(8, 3, 2, 2), true},
		{R(10, 0, 1, 1), Rect{}, false},
		{R(-3, 0, 3, 1), Rect{}, false},
		{R(0, 0, -1, 1), Rect{}, false},
	}
	for _, tt := range tests {
		r := tt.in
		ok := img.ClipRect(&r.X, &r.Y, &r.Width, &r.Height)
		if ok != tt.ok {
			t.Errorf("ClipRect(%v) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && r != tt.want {
			t.Errorf("ClipRect(%v) = %v, want %v", tt.in, r, tt.want)
		}
	}
}
