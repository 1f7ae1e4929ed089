package palette

import (
	"fmt"
	stdpalette "image/color/palette"
	"os"
	"slices"
	"strings"

	"github.com/gogpu/pix"
)

var named = map[string]func() Palette{
	"bw":       func() Palette { return Palette{pix.Black, pix.White} },
	"gray4":    func() Palette { return grays(4) },
	"gray16":   func() Palette { return grays(16) },
	"vga16":    vga16,
	"spectra6": spectra6,
	"websafe":  func() Palette { return FromColorPalette(stdpalette.WebSafe) },
	"plan9":    func() Palette { return FromColorPalette(stdpalette.Plan9) },
}

// Names returns the names Named accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Named returns a fresh copy of a built-in palette. Names are matched
// case-insensitively.
func Named(name string) (Palette, error) {
	fn, ok := named[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return fn(), nil
}

// Load returns the built-in palette called nameOrPath, or else reads the
// RIFF PAL file at that path.
func Load(nameOrPath string) (Palette, error) {
	if p, err := Named(nameOrPath); err == nil {
		return p, nil
	}

	f, err := os.Open(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("palette: open %q: %w", nameOrPath, err)
	}
	defer f.Close()

	p, err := ReadRIFF(f)
	if err != nil {
		return nil, fmt.Errorf("palette: read %q: %w", nameOrPath, err)
	}
	pix.Logger().Debug("palette: loaded", "file", nameOrPath, "colors", len(p))
	return p, nil
}

// grays returns n evenly spaced opaque grays from black to white.
func grays(n int) Palette {
	p := make(Palette, n)
	for i := range p {
		v := uint8(i * 255 / (n - 1))
		p[i] = pix.RGB(v, v, v)
	}
	return p
}

func vga16() Palette {
	return Palette{
		pix.RGB(0x00, 0x00, 0x00), pix.RGB(0x00, 0x00, 0xAA),
		pix.RGB(0x00, 0xAA, 0x00), pix.RGB(0x00, 0xAA, 0xAA),
		pix.RGB(0xAA, 0x00, 0x00), pix.RGB(0xAA, 0x00, 0xAA),
		pix.RGB(0xAA, 0x55, 0x00), pix.RGB(0xAA, 0xAA, 0xAA),
		pix.RGB(0x55, 0x55, 0x55), pix.RGB(0x55, 0x55, 0xFF),
		pix.RGB(0x55, 0xFF, 0x55), pix.RGB(0x55, 0xFF, 0xFF),
		pix.RGB(0xFF, 0x55, 0x55), pix.RGB(0xFF, 0x55, 0xFF),
		pix.RGB(0xFF, 0xFF, 0x55), pix.RGB(0xFF, 0xFF, 0xFF),
	}
}

// spectra6 is the six-ink set of color e-paper panels.
func spectra6() Palette {
	return Palette{pix.Black, pix.White, pix.Red, pix.Green, pix.Blue, pix.Yellow}
}
