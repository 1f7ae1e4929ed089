package pix

import (
	"image"
	"testing"
)

func TestRect(t *testing.T) {
	r := R(2, 3, 4, 5)
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, want 6/8", r.Right(), r.Bottom())
	}
	if r.Empty() {
		t.Error("R(2,3,4,5) reported empty")
	}
	if !R(0, 0, 0, 3).Empty() || !R(0, 0, 3, -1).Empty() {
		t.Error("degenerate rect not empty")
	}
	if got := r.String(); got != "(2,3 4x5)" {
		t.Errorf("String() = %q", got)
	}
}

func TestRectContains(t *testing.T) {
	r := R(1, 1, 2, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{2, 2, true},
		{3, 2, false},
		{2, 3, false},
		{0, 1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectImageRectangle(t *testing.T) {
	ir := image.Rect(-1, 2, 5, 9)
	if got := RectFrom(ir).ImageRect(); got != ir {
		t.Errorf("round trip = %v, want %v", got, ir)
	}
}
