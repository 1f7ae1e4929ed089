package pix

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Image is a rectangular buffer of straight or premultiplied RGBA pixels.
//
// Pixels are stored row-major with no padding: pixel (x, y) is at index
// y*Width()+x of Pix(). The dimensions are fixed at construction; resizing
// always produces a new Image.
//
// Thread safety: an Image performs no synchronization. Concurrent reads are
// safe; concurrent writes to the same Image must be serialized by the
// caller.
type Image struct {
	width  int
	height int
	pix    []Color
}

// Empty is a shared 0x0 image.
var Empty = New(0, 0)

// Verify at compile time that Image implements draw.Image.
var _ draw.Image = (*Image)(nil)

func checkSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if height > 0 && width > math.MaxInt32/height {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return nil
}

// New creates a transparent image. A zero width or height yields an empty
// image. New panics if either dimension is negative.
func New(width, height int) *Image {
	if err := checkSize(width, height); err != nil {
		panic(err)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// NewFilled creates an image with every pixel set to c.
// It panics under the same conditions as New.
func NewFilled(width, height int, c Color) *Image {
	img := New(width, height)
	img.Fill(c)
	return img
}

// NewIndexed creates an image by looking every byte of indices up in
// palette. The data is copied.
func NewIndexed(width, height int, indices []byte, palette []Color) (*Image, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	n := width * height
	if len(indices) < n {
		return nil, fmt.Errorf("%w: %d indices for %dx%d image", ErrDataTooSmall, len(indices), width, height)
	}
	if len(palette) > 256 {
		return nil, fmt.Errorf("%w: %d", ErrPaletteTooLarge, len(palette))
	}

	img := New(width, height)
	for i, idx := range indices[:n] {
		if int(idx) >= len(palette) {
			return nil, fmt.Errorf("%w: index %d at pixel %d, palette has %d entries",
				ErrPaletteIndex, idx, i, len(palette))
		}
		img.pix[i] = palette[idx]
	}
	return img, nil
}

// NewFromBytes creates an image from interleaved R, G, B, A bytes. The data
// is copied.
func NewFromBytes(width, height int, raw []byte) (*Image, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	img := New(width, height)
	if err := img.OverwriteBytes(raw); err != nil {
		return nil, err
	}
	return img, nil
}

// NewFromColors creates an image from a slice of pixels. The data is
// copied.
func NewFromColors(width, height int, data []Color) (*Image, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	img := New(width, height)
	if err := img.Overwrite(data); err != nil {
		return nil, err
	}
	return img, nil
}

// FromImage converts any image.Image to a straight-alpha Image whose
// origin is the source bounds' minimum point.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
		b = nrgba.Bounds()
	}

	img := New(b.Dx(), b.Dy())
	for y := range img.height {
		row := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := img.pix[y*img.width : (y+1)*img.width]
		for x := range dst {
			p := row[x*4 : x*4+4 : x*4+4]
			dst[x] = Color{R: p[0], G: p[1], B: p[2], A: p[3]}
		}
	}
	return img
}

// Borrowed is an Image whose pixels live in caller-owned storage.
//
// Writes through a Borrowed image are visible in the caller's slice and
// vice versa. The caller must keep the storage alive and must not resize
// it while the Borrowed image is in use.
type Borrowed struct {
	*Image
}

// Borrow wraps data without copying. data must hold at least
// width*height pixels; any excess is ignored.
func Borrow(width, height int, data []Color) (*Borrowed, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	n := width * height
	if len(data) < n {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d image", ErrDataTooSmall, len(data), width, height)
	}
	return &Borrowed{Image: &Image{width: width, height: height, pix: data[:n:n]}}, nil
}

// Width returns the width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Size returns the width and height in pixels.
func (img *Image) Size() (width, height int) {
	return img.width, img.height
}

// Rect returns the rectangle covering the whole image.
func (img *Image) Rect() Rect {
	return Rect{Width: img.width, Height: img.height}
}

// Pix returns the pixel slice. Writes to it modify the image.
func (img *Image) Pix() []Color {
	return img.pix
}

// Row returns the pixels of row y. Writes to it modify the image.
func (img *Image) Row(y int) []Color {
	return img.pix[y*img.width : (y+1)*img.width]
}

// Pixel returns the pixel at (x, y), or Transparent outside the image.
func (img *Image) Pixel(x, y int) Color {
	if uint(x) >= uint(img.width) || uint(y) >= uint(img.height) {
		return Transparent
	}
	return img.pix[y*img.width+x]
}

// SetPixel sets the pixel at (x, y). Coordinates outside the image are
// ignored.
func (img *Image) SetPixel(x, y int, c Color) {
	if uint(x) >= uint(img.width) || uint(y) >= uint(img.height) {
		return
	}
	img.pix[y*img.width+x] = c
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	return img.Pixel(x, y)
}

// Set implements the draw.Image interface.
func (img *Image) Set(x, y int, c color.Color) {
	img.SetPixel(x, y, FromColor(c))
}

// Bytes returns a copy of the pixels as interleaved R, G, B, A bytes.
func (img *Image) Bytes() []byte {
	out := make([]byte, len(img.pix)*4)
	for i, c := range img.pix {
		out[i*4+0] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = c.A
	}
	return out
}

// Overwrite replaces every pixel with the leading pixels of data.
func (img *Image) Overwrite(data []Color) error {
	if len(data) < len(img.pix) {
		return fmt.Errorf("%w: %d pixels for %dx%d image", ErrDataTooSmall, len(data), img.width, img.height)
	}
	copy(img.pix, data)
	return nil
}

// OverwriteBytes replaces every pixel with the leading interleaved
// R, G, B, A bytes of raw.
func (img *Image) OverwriteBytes(raw []byte) error {
	if len(raw) < len(img.pix)*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d image", ErrDataTooSmall, len(raw), img.width, img.height)
	}
	for i := range img.pix {
		p := raw[i*4 : i*4+4 : i*4+4]
		img.pix[i] = Color{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	return nil
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	return &Image{
		width:  img.width,
		height: img.height,
		pix:    append([]Color(nil), img.pix...),
	}
}

// Extract copies the given region into a new image of exactly
// width x height pixels. Parts of the region outside img stay transparent.
// Negative sizes are treated as zero.
func (img *Image) Extract(x, y, width, height int) *Image {
	out := New(max(width, 0), max(height, 0))
	destX, destY := 0, 0
	if out.ClipBlit(img, &x, &y, &destX, &destY, &width, &height) {
		out.blitRows(img, x, y, destX, destY, width, height, false, copyRow)
	}
	return out
}

// Fill sets every pixel to c.
func (img *Image) Fill(c Color) {
	for i := range img.pix {
		img.pix[i] = c
	}
}

// ToNRGBA copies the image into a new image.NRGBA, treating the pixels as
// straight alpha.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	for y := range img.height {
		row := out.Pix[y*out.Stride:]
		for x, c := range img.Row(y) {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return out
}
