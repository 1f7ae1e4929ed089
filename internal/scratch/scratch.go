// Package scratch provides a bucketed pool of temporary slices.
//
// Callers acquire a slice for the duration of one operation and release it
// with defer, so the slice is returned on every exit path:
//
//	buf := pool.Get(n)
//	defer pool.Put(buf)
package scratch

import "sync"

// Pool is a thread-safe pool of []T grouped by length.
//
// Thread safety: All methods are safe for concurrent use.
type Pool[T any] struct {
	mu          sync.Mutex
	buckets     map[int][][]T
	maxSize     int // max slices per bucket
	maxRetained int // max total elements held across buckets
	retained    int
	outstanding int
}

// NewPool creates a pool that retains at most maxPerBucket slices of each
// length and at most maxRetained elements in total. A limit of 0 means
// unlimited.
//
// When a returned slice would push the pool past maxRetained, slices of
// other lengths are dropped first; a slice larger than maxRetained is
// never kept.
func NewPool[T any](maxPerBucket, maxRetained int) *Pool[T] {
	return &Pool[T]{
		buckets:     make(map[int][][]T),
		maxSize:     maxPerBucket,
		maxRetained: maxRetained,
	}
}

// Get returns a zeroed slice of length n, reusing a pooled one when
// available.
func (p *Pool[T]) Get(n int) []T {
	p.mu.Lock()
	p.outstanding++
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.retained -= n
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]T, n)
}

// Put returns buf to the pool. The slice must not be used afterwards.
// A nil slice is ignored.
func (p *Pool[T]) Put(buf []T) {
	if buf == nil {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.outstanding--
	if p.maxRetained > 0 && n > p.maxRetained {
		return
	}
	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	if p.maxRetained > 0 {
		for size, other := range p.buckets {
			if p.retained+n <= p.maxRetained {
				break
			}
			if size == n {
				continue
			}
			p.retained -= size * len(other)
			delete(p.buckets, size)
		}
		if p.retained+n > p.maxRetained {
			// Only same-length slices are left; drop the oldest.
			bucket = bucket[1:]
			p.retained -= n
		}
	}
	p.buckets[n] = append(bucket, buf[:n:n])
	p.retained += n
}

// Retained returns the total number of elements held by pooled slices.
func (p *Pool[T]) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.retained
}

// Outstanding returns the number of slices handed out by Get and not yet
// returned with Put.
func (p *Pool[T]) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outstanding
}

// Len returns the number of pooled slices of length n.
func (p *Pool[T]) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}
