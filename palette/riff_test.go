package palette

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/pix"
)

// chunk returns a RIFF chunk with the given id and payload.
func chunk(id string, payload []byte) []byte {
	b := append([]byte(id), binary.LittleEndian.AppendUint32(nil, uint32(len(payload)))...)
	b = append(b, payload...)
	if len(payload)%2 == 1 {
		b = append(b, 0)
	}
	return b
}

// form returns a RIFF stream of the given form type holding chunks.
func form(formType string, chunks ...[]byte) []byte {
	body := []byte(formType)
	for _, c := range chunks {
		body = append(body, c...)
	}
	return chunk("RIFF", body)
}

// logPalette returns a LOGPALETTE payload.
func logPalette(version uint16, colors ...pix.Color) []byte {
	b := binary.LittleEndian.AppendUint16(nil, version)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(colors)))
	for _, c := range colors {
		b = append(b, c.R, c.G, c.B, 0)
	}
	return b
}

func TestReadRIFF(t *testing.T) {
	stream := form("PAL ",
		chunk("data", logPalette(0x0300, pix.Red, pix.RGB(1, 2, 3))),
		chunk("offl", []byte{1, 2, 3}),
		chunk("data", logPalette(0x0300, pix.Blue)),
	)
	p, err := ReadRIFF(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("ReadRIFF: %v", err)
	}
	want := Palette{pix.Red, pix.RGB(1, 2, 3), pix.Blue}
	if len(p) != len(want) {
		t.Fatalf("read %d colors, want %d", len(p), len(want))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestReadRIFFErrors(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
	}{
		{"not riff", []byte("GIF89a")},
		{"wrong form", form("WAVE", chunk("data", logPalette(0x0300, pix.Red)))},
		{"no data chunk", form("PAL ", chunk("offl", []byte{0, 0}))},
		{"bad version", form("PAL ", chunk("data", logPalette(3, pix.Red)))},
		{"short entries", form("PAL ", chunk("data", logPalette(0x0300, pix.Red)[:6]))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadRIFF(bytes.NewReader(tt.stream)); !errors.Is(err, ErrFormat) {
				t.Errorf("err = %v, want ErrFormat", err)
			}
		})
	}
}

func TestWriteRIFF(t *testing.T) {
	p, _ := Named("vga16")
	var buf bytes.Buffer
	if err := WriteRIFF(&buf, p); err != nil {
		t.Fatalf("WriteRIFF: %v", err)
	}
	if want := form("PAL ", chunk("data", logPalette(0x0300, p...))); !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wrote %x\nwant  %x", buf.Bytes(), want)
	}

	back, err := ReadRIFF(&buf)
	if err != nil {
		t.Fatalf("ReadRIFF: %v", err)
	}
	for i := range p {
		if back[i] != p[i] {
			t.Errorf("color %d = %v, want %v", i, back[i], p[i])
		}
	}
}

func TestLoad(t *testing.T) {
	if p, err := Load("bw"); err != nil || len(p) != 2 {
		t.Errorf("Load(bw) = %v, %v", p, err)
	}

	path := filepath.Join(t.TempDir(), "two.pal")
	if err := os.WriteFile(path, form("PAL ", chunk("data", logPalette(0x0300, pix.Green, pix.White))), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load(file): %v", err)
	}
	if len(p) != 2 || p[0] != pix.Green {
		t.Errorf("Load(file) = %v", p)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.pal")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
