package pix

import "errors"

// Sentinel errors. Returned errors may wrap these with context; test with
// errors.Is.
var (
	// ErrInvalidDimensions is returned when a width or height is out of range.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrDataTooSmall is returned when caller data is smaller than the image.
	ErrDataTooSmall = errors.New("pix: data buffer too small")

	// ErrPaletteTooLarge is returned when a palette has more than 256 entries.
	ErrPaletteTooLarge = errors.New("pix: palette has more than 256 entries")

	// ErrPaletteIndex is returned when an index has no palette entry.
	ErrPaletteIndex = errors.New("pix: palette index out of range")

	// ErrUnsupportedBlitMode is returned for a blend mode and flip
	// combination that has no kernel.
	ErrUnsupportedBlitMode = errors.New("pix: unsupported blit mode")

	// ErrInvalidSourceRect is returned when a pattern source rectangle does
	// not lie inside the source image.
	ErrInvalidSourceRect = errors.New("pix: source rectangle outside source image")

	// ErrSizeMismatch is returned when two images must have equal size.
	ErrSizeMismatch = errors.New("pix: image sizes differ")

	// ErrUnknownFilter is returned for a resampling filter outside the
	// known set.
	ErrUnknownFilter = errors.New("pix: unknown resampling filter")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("pix: invalid color")
)
