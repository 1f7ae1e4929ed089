package palette

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/image/riff"

	"github.com/gogpu/pix"
)

// A PAL file is a RIFF form of type "PAL " holding one or more "data"
// chunks. Each chunk is a LOGPALETTE: a uint16 version (0x0300), a uint16
// entry count and four bytes per entry (red, green, blue, flags), all
// little-endian.
var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 0x0300

// ReadRIFF reads a RIFF PAL stream. Colors of every data chunk are
// concatenated in file order and are opaque; the flags byte is ignored.
// Chunks of other types are skipped.
func ReadRIFF(r io.Reader) (Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if formType != palType {
		return nil, fmt.Errorf("%w: RIFF form type %q", ErrFormat, formType[:])
	}

	var p Palette
	chunks := 0
	for {
		id, _, data, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %d: %w", ErrFormat, chunks, err)
		}
		if id != dataType {
			continue
		}
		if p, err = readData(data, p); err != nil {
			return nil, fmt.Errorf("chunk %d: %w", chunks, err)
		}
		chunks++
	}
	if chunks == 0 {
		return nil, fmt.Errorf("%w: no data chunk", ErrFormat)
	}
	return p, nil
}

func readData(r io.Reader, p Palette) (Palette, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return p, fmt.Errorf("%w: header: %w", ErrFormat, err)
	}
	if v := binary.LittleEndian.Uint16(hdr[:2]); v != palVersion {
		return p, fmt.Errorf("%w: version %#04x", ErrFormat, v)
	}

	count := int(binary.LittleEndian.Uint16(hdr[2:]))
	entries := make([]byte, count*4)
	if _, err := io.ReadFull(r, entries); err != nil {
		return p, fmt.Errorf("%w: %d entries: %w", ErrFormat, count, err)
	}
	for i := 0; i < len(entries); i += 4 {
		p = append(p, pix.RGB(entries[i], entries[i+1], entries[i+2]))
	}
	return p, nil
}

// WriteRIFF writes p as a RIFF PAL stream with a single data chunk.
// Alpha is not stored.
func WriteRIFF(w io.Writer, p Palette) error {
	if len(p) > 0xFFFF {
		return fmt.Errorf("%w: %d colors", ErrFormat, len(p))
	}

	chunkSize := 4 + len(p)*4
	buf := make([]byte, 0, 20+len(p)*4)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(4+8+chunkSize))
	buf = append(buf, palType[:]...)
	buf = append(buf, dataType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(chunkSize))
	buf = binary.LittleEndian.AppendUint16(buf, palVersion)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(p)))
	for _, c := range p {
		buf = append(buf, c.R, c.G, c.B, 0)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("palette: write: %w", err)
	}
	return nil
}
