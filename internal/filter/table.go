package filter

import "github.com/chewxy/math32"

// sentinel is 0x8BADF00D as a signed 32-bit value. It marks the slot past
// the end of both backing slices of a Table.
const sentinel int32 = -0x74520FF3

// One is 1.0 in the 16.16 fixed-point weight format.
const One = 1 << 16

// Contribution is one source sample feeding a destination sample.
type Contribution struct {
	// Pixel is the source index, already remapped into range.
	Pixel int32

	// Weight is the 16.16 fixed-point weight.
	Weight int32
}

type run struct {
	start, count int32
}

// Table lists, for every destination index along one axis, which source
// samples contribute to it and by how much.
//
// All runs share one backing slice sized up front from the kernel span.
// Both slices carry a trailing sentinel; Intact reports whether any
// construction overran them.
type Table struct {
	runs []run
	data []Contribution
}

// Build computes the contribution table that maps srcSize samples onto
// destSize samples with kernel f. low and high select the edge policy
// before the first and past the last source sample.
//
// Up-scaling evaluates f directly. Down-scaling with Box picks the nearest
// source sample. Down-scaling with any other kernel uses area coverage
// with weights normalized to one, whatever kernel was requested.
//
// Both sizes must be positive and f must be valid.
func Build(f Filter, destSize, srcSize int, low, high EdgeMode) *Table {
	support := f.Support()
	span := support
	if destSize < srcSize {
		span = support * float32(srcSize) / float32(destSize)
	}
	capacity := int(span*2+3) * destSize

	t := &Table{
		runs: make([]run, destSize+1),
		data: make([]Contribution, capacity+1),
	}
	t.runs[destSize] = run{count: sentinel}
	t.data[capacity] = Contribution{Pixel: sentinel}

	scale := float32(srcSize) / float32(destSize)
	switch {
	case destSize > srcSize:
		t.scaleUp(f, destSize, srcSize, scale, low, high)
	case f != Box:
		t.scaleDown(destSize, srcSize, scale, low, high)
	default:
		t.decimate(destSize, scale)
	}
	return t
}

// Len returns the number of destination indices.
func (t *Table) Len() int {
	return len(t.runs) - 1
}

// At returns the contributions for destination index i.
func (t *Table) At(i int) []Contribution {
	r := t.runs[i]
	return t.data[r.start : r.start+r.count]
}

// Capacity returns the number of contribution slots, excluding the sentinel.
func (t *Table) Capacity() int {
	return len(t.data) - 1
}

// Count returns the total number of contributions across all runs.
func (t *Table) Count() int {
	n := 0
	for _, r := range t.runs[:len(t.runs)-1] {
		n += int(r.count)
	}
	return n
}

// Intact reports whether both sentinels still hold their marker.
func (t *Table) Intact() bool {
	return t.runs[len(t.runs)-1].count == sentinel &&
		t.data[len(t.data)-1].Pixel == sentinel
}

func (t *Table) scaleUp(f Filter, destSize, srcSize int, scale float32, low, high EdgeMode) {
	support := f.Support()
	stride := int(support*2 + 3)

	for i := range destSize {
		offset := stride * i
		center := float32(i) * scale
		top := int(center - support)
		bottom := int(math32.Ceil(center + support))

		k := 0
		for j := top; j <= bottom; j++ {
			w := f.Eval(float32(j) - center)
			if w == 0 {
				continue
			}
			t.data[offset+k] = Contribution{
				Pixel:  int32(Remap(j, srcSize, low, high)),
				Weight: int32(w * One),
			}
			k++
		}
		t.runs[i] = run{start: int32(offset), count: int32(k)}
	}
}

func (t *Table) scaleDown(destSize, srcSize int, scale float32, low, high EdgeMode) {
	stride := int(scale*2 + 3)
	weights := make([]float32, stride)

	for i := range destSize {
		offset := stride * i
		lo := float32(i) * scale
		hi := lo + scale
		top := int(lo)
		bottom := int(math32.Ceil(hi))

		var total float32
		k := 0
		for j := top; j < bottom; j++ {
			var w float32
			switch j {
			case top:
				w = 1 - (lo - float32(top))
			case bottom - 1:
				w = 1 - (float32(bottom) - hi)
			default:
				w = 1
			}
			if w == 0 {
				continue
			}
			t.data[offset+k].Pixel = int32(Remap(j, srcSize, low, high))
			weights[k] = w
			total += w
			k++
		}

		// Truncation leaves the run short of One; the remainder goes to
		// the heaviest sample so solid input stays solid.
		inv := 1 / total
		var sum int32
		heaviest := offset
		for j := range k {
			w := int32(weights[j] * inv * One)
			t.data[offset+j].Weight = w
			sum += w
			if w > t.data[heaviest].Weight {
				heaviest = offset + j
			}
		}
		if k > 0 {
			t.data[heaviest].Weight += One - sum
		}
		t.runs[i] = run{start: int32(offset), count: int32(k)}
	}
}

func (t *Table) decimate(destSize int, scale float32) {
	for i := range destSize {
		t.data[i] = Contribution{Pixel: int32(float32(i)*scale + 0.5), Weight: One}
		t.runs[i] = run{start: int32(i), count: 1}
	}
}
