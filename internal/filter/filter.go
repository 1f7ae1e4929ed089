// Package filter implements the resampling kernels and the per-axis
// contribution tables used by the two-pass resampler.
package filter

import (
	"strings"

	"github.com/chewxy/math32"
)

// Filter selects a resampling kernel.
type Filter uint8

const (
	// Box is the nearest-neighbour pulse.
	Box Filter = iota

	// Triangle is the linear (bilinear) tent.
	Triangle

	// Hermite is a smooth cubic on [-1, 1].
	Hermite

	// Bell is the quadratic B-spline.
	Bell

	// BSpline is the cubic B-spline.
	BSpline

	// Mitchell is the Mitchell-Netravali cubic with B = C = 1/3.
	Mitchell

	// Lanczos3 is a 3-lobed windowed sinc.
	Lanczos3

	// Lanczos5 is a 5-lobed windowed sinc.
	Lanczos5

	// Lanczos7 is a 7-lobed windowed sinc.
	Lanczos7

	// Lanczos9 is a 9-lobed windowed sinc.
	Lanczos9

	// Lanczos11 is an 11-lobed windowed sinc.
	Lanczos11

	filterCount
)

type info struct {
	name    string
	support float32
	eval    func(x float32) float32
}

// infoTable is indexed by Filter.
var infoTable = [filterCount]info{
	Box:       {"Box", 0.5, box},
	Triangle:  {"Triangle", 1, triangle},
	Hermite:   {"Hermite", 1, hermite},
	Bell:      {"Bell", 1.5, bell},
	BSpline:   {"BSpline", 2, bspline},
	Mitchell:  {"Mitchell", 2, mitchell},
	Lanczos3:  {"Lanczos3", 3, lanczos(3)},
	Lanczos5:  {"Lanczos5", 5, lanczos(5)},
	Lanczos7:  {"Lanczos7", 7, lanczos(7)},
	Lanczos9:  {"Lanczos9", 9, lanczos(9)},
	Lanczos11: {"Lanczos11", 11, lanczos(11)},
}

// Valid reports whether f names a known kernel.
func (f Filter) Valid() bool {
	return f < filterCount
}

// Support returns the kernel radius: Eval is zero for |x| >= Support.
// Invalid filters report 0.
func (f Filter) Support() float32 {
	if !f.Valid() {
		return 0
	}
	return infoTable[f].support
}

// Eval evaluates the kernel at offset x. Invalid filters evaluate to 0.
func (f Filter) Eval(x float32) float32 {
	if !f.Valid() {
		return 0
	}
	return infoTable[f].eval(x)
}

// String returns the kernel name.
func (f Filter) String() string {
	if !f.Valid() {
		return "Unknown"
	}
	return infoTable[f].name
}

// Parse looks a filter up by name, ignoring case.
func Parse(name string) (Filter, bool) {
	for f := range filterCount {
		if strings.EqualFold(infoTable[f].name, name) {
			return f, true
		}
	}
	return 0, false
}

// All returns every known filter in declaration order.
func All() []Filter {
	all := make([]Filter, filterCount)
	for f := range filterCount {
		all[f] = f
	}
	return all
}

func box(x float32) float32 {
	if x >= -0.5 && x < 0.5 {
		return 1
	}
	return 0
}

func triangle(x float32) float32 {
	x = math32.Abs(x)
	if x >= 1 {
		return 0
	}
	return 1 - x
}

func hermite(x float32) float32 {
	x = math32.Abs(x)
	if x >= 1 {
		return 0
	}
	return (x*2-3)*x*x + 1
}

func bell(x float32) float32 {
	x = math32.Abs(x)
	if x < 0.5 {
		return 0.75 - x*x
	}
	if x >= 1.5 {
		return 0
	}
	x -= 1.5
	return x * x * 0.5
}

func bspline(x float32) float32 {
	x = math32.Abs(x)
	switch {
	case x < 1:
		x2 := x * x
		return 0.5*x2*x - x2 + 2.0/3.0
	case x < 2:
		x = 2 - x
		return x * x * x / 6
	default:
		return 0
	}
}

func mitchell(x float32) float32 {
	const b, c = float32(1.0 / 3.0), float32(1.0 / 3.0)

	x = math32.Abs(x)
	x2 := x * x
	switch {
	case x < 1:
		return ((12-9*b-6*c)*(x*x2) + (-18+12*b+6*c)*x2 + (6 - 2*b)) / 6
	case x < 2:
		return ((-b-6*c)*(x*x2) + (6*b+30*c)*x2 + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	default:
		return 0
	}
}

func sinc(x float32) float32 {
	nx := math32.Pi * x
	return math32.Sin(nx) / nx
}

func lanczos(lobes float32) func(float32) float32 {
	inv := 1 / lobes
	return func(x float32) float32 {
		x = math32.Abs(x)
		switch {
		case x >= lobes:
			return 0
		case x == 0:
			return 1
		default:
			return sinc(x) * sinc(x*inv)
		}
	}
}
