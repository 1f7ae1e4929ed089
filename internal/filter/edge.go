package filter

// EdgeMode decides where the resampler reads when a kernel extends past
// the first or last sample of an axis.
type EdgeMode uint8

const (
	// Reflect mirrors back into the axis: -1 reads 1, n reads n-1.
	Reflect EdgeMode = iota

	// Wrap continues from the opposite edge: -1 reads n-1, n reads 0.
	Wrap
)

// String returns the mode name.
func (m EdgeMode) String() string {
	switch m {
	case Reflect:
		return "Reflect"
	case Wrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}

// Remap maps sample index x into [0, n) using low for indices before the
// start of the axis and high for indices past its end. Indices further out
// than one axis length are folded repeatedly. n must be positive.
func Remap(x, n int, low, high EdgeMode) int {
	for x < 0 || x >= n {
		if x < 0 {
			if low == Wrap {
				x += n
			} else {
				x = -x
			}
		} else {
			if high == Wrap {
				x -= n
			} else {
				x = 2*n - x - 1
			}
		}
	}
	return x
}
