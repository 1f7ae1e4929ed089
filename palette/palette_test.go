package palette

import (
	"errors"
	"testing"

	"github.com/gogpu/pix"
)

func TestIndex(t *testing.T) {
	p := Palette{pix.Black, pix.White, pix.Red, pix.Red}
	tests := []struct {
		in   pix.Color
		want int
	}{
		{pix.Black, 0},
		{pix.RGB(10, 10, 10), 0},
		{pix.RGB(200, 200, 200), 1},
		{pix.RGB(250, 20, 20), 2},
		{pix.Red, 2},
		{pix.RGBA(0, 0, 0, 0), 0},
	}
	for _, tt := range tests {
		if got := p.Index(tt.in); got != tt.want {
			t.Errorf("Index(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := Palette(nil).Index(pix.Red); got != 0 {
		t.Errorf("empty Index = %d, want 0", got)
	}
}

func TestConvert(t *testing.T) {
	p, _ := Named("bw")
	if got := p.Convert(pix.RGB(100, 100, 100)); got != pix.Black {
		t.Errorf("Convert(dark gray) = %v, want black", got)
	}
	if got := p.Convert(pix.RGB(160, 160, 160)); got != pix.White {
		t.Errorf("Convert(light gray) = %v, want white", got)
	}
	if got := Palette(nil).Convert(pix.Red); got != pix.Transparent {
		t.Errorf("empty Convert = %v, want transparent", got)
	}
}

func TestApply(t *testing.T) {
	img := pix.New(4, 1)
	img.SetPixel(0, 0, pix.RGB(250, 5, 0))
	img.SetPixel(1, 0, pix.RGB(5, 5, 240))
	img.SetPixel(2, 0, pix.RGB(240, 240, 10))
	img.SetPixel(3, 0, pix.RGB(3, 3, 3))

	p, _ := Named("spectra6")
	out, err := p.Apply(img)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []pix.Color{pix.Red, pix.Blue, pix.Yellow, pix.Black}
	for i, c := range out.Pix() {
		if c != want[i] {
			t.Errorf("pixel %d = %v, want %v", i, c, want[i])
		}
	}
	if img.Pixel(0, 0) != pix.RGB(250, 5, 0) {
		t.Error("Apply modified its input")
	}
}

func TestApplyErrors(t *testing.T) {
	img := pix.New(2, 2)
	if _, err := Palette(nil).Apply(img); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty palette err = %v", err)
	}
	web, _ := Named("websafe")
	big := append(web, web...)
	if _, err := big.Apply(img); !errors.Is(err, pix.ErrPaletteTooLarge) {
		t.Errorf("oversized palette err = %v", err)
	}
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"bw", 2},
		{"gray4", 4},
		{"GRAY16", 16},
		{"vga16", 16},
		{"spectra6", 6},
		{"websafe", 216},
		{"plan9", 256},
	}
	for _, tt := range tests {
		p, err := Named(tt.name)
		if err != nil {
			t.Errorf("Named(%q): %v", tt.name, err)
			continue
		}
		if len(p) != tt.n {
			t.Errorf("Named(%q) has %d colors, want %d", tt.name, len(p), tt.n)
		}
	}

	if _, err := Named("cga"); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("Named(cga) err = %v", err)
	}
	if got := len(Names()); got != len(tests) {
		t.Errorf("Names() lists %d palettes, want %d", got, len(tests))
	}
}

func TestNamedReturnsCopy(t *testing.T) {
	a, _ := Named("bw")
	a[0] = pix.Red
	b, _ := Named("bw")
	if b[0] != pix.Black {
		t.Error("mutating a named palette changed the built-in")
	}
}

func TestGrays(t *testing.T) {
	p := grays(4)
	want := []uint8{0, 85, 170, 255}
	for i, c := range p {
		if c != pix.RGB(want[i], want[i], want[i]) {
			t.Errorf("gray %d = %v, want %d", i, c, want[i])
		}
	}
}

func TestColorPaletteRoundTrip(t *testing.T) {
	p, _ := Named("vga16")
	back := FromColorPalette(p.ColorPalette())
	for i := range p {
		if back[i] != p[i] {
			t.Errorf("color %d = %v, want %v", i, back[i], p[i])
		}
	}
}

func BenchmarkApply(b *testing.B) {
	img := pix.New(256, 256)
	for y := range 256 {
		for x := range 256 {
			img.SetPixel(x, y, pix.RGB(uint8(x), uint8(y), uint8(x^y)))
		}
	}
	p, _ := Named("websafe")
	for b.Loop() {
		if _, err := p.Apply(img); err != nil {
			b.Fatal(err)
		}
	}
}
