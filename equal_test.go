package pix

import "testing"

func TestEqual(t *testing.T) {
	a := NewFilled(3, 2, Red)
	b := NewFilled(3, 2, Red)
	if !a.Equal(b) || !Equal(a, b) {
		t.Error("identical fills not equal")
	}

	b.SetPixel(2, 1, RGBA(255, 0, 0, 254))
	if a.Equal(b) {
		t.Error("images differing in one alpha value are equal")
	}

	if NewFilled(3, 2, Red).Equal(NewFilled(2, 3, Red)) {
		t.Error("images of different shapes are equal")
	}
	if New(0, 5).Equal(New(5, 0)) {
		t.Error("empty images of different shapes are equal")
	}
}

func TestEqualNil(t *testing.T) {
	img := New(1, 1)
	tests := []struct {
		name string
		a, b *Image
		want bool
	}{
		{"both nil", nil, nil, true},
		{"left nil", nil, img, false},
		{"right nil", img, nil, false},
		{"same", img, img, true},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}
	if img.Equal(nil) {
		t.Error("image equals nil")
	}
}

func TestHash(t *testing.T) {
	if got := New(3, 3).Hash(); got != 0 {
		t.Errorf("transparent hash = %d, want 0", got)
	}

	img, _ := NewFromColors(2, 1, []Color{RGBA(1, 0, 0, 0), RGBA(0, 1, 0, 0)})
	if got, want := img.Hash(), uint32(65599+256); got != want {
		t.Errorf("Hash = %d, want %d", got, want)
	}

	a, b := gradientImage(8, 8), gradientImage(8, 8)
	if a.Hash() != b.Hash() {
		t.Error("equal images hash differently")
	}
	b.SetPixel(7, 7, Black)
	if a.Hash() == b.Hash() {
		t.Error("single-pixel change kept the hash")
	}
}

func BenchmarkHash(b *testing.B) {
	img := gradientImage(256, 256)
	for b.Loop() {
		_ = img.Hash()
	}
}
