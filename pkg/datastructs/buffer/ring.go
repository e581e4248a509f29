package buffer

import (
	"fmt"

	"github.com/huynhanx03/go-crossqueue/pkg/utils"
)

const (
	// minRingCap is the smallest backing array a Ring allocates once it holds data.
	minRingCap = 8

	// shrinkFactor controls when a Ring releases memory: the backing array is
	// halved once Len drops to 1/shrinkFactor of Cap.
	shrinkFactor = 4
)

// Ring is a growable circular deque of T backed by a power-of-two slice.
// Elements are appended at the back and usually removed from the front, but
// any element can be read or removed by its position from the front.
// It is NOT thread-safe.
//
// The zero value is an empty ring ready to use.
type Ring[T any] struct {
	buf   []T
	head  int // position of the front element
	count int // number of stored elements
	floor int // backing size the ring never shrinks below
}

// NewRing creates a Ring with room for at least capacity elements before the
// first grow. The capacity is rounded up to the nearest power of two and is
// kept for the life of the ring: shrinking and Clear never go below it.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		return &Ring[T]{}
	}
	n := utils.CeilToPowerOfTwo(capacity)
	return &Ring[T]{buf: make([]T, n), floor: n}
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the length of the backing slice.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool { return r.count == 0 }

// PushBack appends v after the last element, growing the ring if it is full.
func (r *Ring[T]) PushBack(v T) {
	if r.count == len(r.buf) {
		r.resize(r.calculateGrowth(r.count + 1))
	}
	r.buf[r.wrapIndex(r.head+r.count)] = v
	r.count++
}

// Front returns the first element without removing it.
func (r *Ring[T]) Front() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.head], true
}

// PopFront removes and returns the first element.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}

	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = r.wrapIndex(r.head + 1)
	r.count--
	r.afterRemove()
	return v, true
}

// At returns the element at position i counted from the front.
// It panics if i is out of range.
func (r *Ring[T]) At(i int) T {
	r.checkIndex(i)
	return r.buf[r.wrapIndex(r.head+i)]
}

// RemoveAt removes and returns the element at position i counted from the
// front, closing the gap by moving whichever side of i is shorter.
// It panics if i is out of range.
func (r *Ring[T]) RemoveAt(i int) T {
	r.checkIndex(i)

	var zero T
	v := r.buf[r.wrapIndex(r.head+i)]

	if i < r.count/2 {
		// Shift the front segment one slot towards the back.
		for j := i; j > 0; j-- {
			r.buf[r.wrapIndex(r.head+j)] = r.buf[r.wrapIndex(r.head+j-1)]
		}
		r.buf[r.head] = zero
		r.head = r.wrapIndex(r.head + 1)
	} else {
		// Shift the back segment one slot towards the front.
		for j := i; j < r.count-1; j++ {
			r.buf[r.wrapIndex(r.head+j)] = r.buf[r.wrapIndex(r.head+j+1)]
		}
		r.buf[r.wrapIndex(r.head+r.count-1)] = zero
	}

	r.count--
	r.afterRemove()
	return v
}

// Slice returns a copy of all elements in front-to-back order.
// The result is never nil.
func (r *Ring[T]) Slice() []T {
	out := make([]T, r.count)
	r.copyTo(out)
	return out
}

// Clear removes all elements. The backing slice is released, or cut back
// to the size given to NewRing.
func (r *Ring[T]) Clear() {
	switch {
	case r.floor == 0:
		r.buf = nil
	case len(r.buf) == r.floor:
		clear(r.buf)
	default:
		r.buf = make([]T, r.floor)
	}
	r.head = 0
	r.count = 0
}

// copyTo copies the elements in order into dst, which must hold at least Len elements.
func (r *Ring[T]) copyTo(dst []T) {
	if r.count == 0 {
		return
	}
	tail := r.head + r.count
	if tail <= len(r.buf) {
		copy(dst, r.buf[r.head:tail])
		return
	}
	n := copy(dst, r.buf[r.head:])
	copy(dst[n:], r.buf[:tail-len(r.buf)])
}

// afterRemove resets the head of an emptied ring and shrinks sparse rings
// down to max(minRingCap, floor).
func (r *Ring[T]) afterRemove() {
	if r.count == 0 {
		r.head = 0
	}
	if len(r.buf) > max(minRingCap, r.floor) && r.count <= len(r.buf)/shrinkFactor {
		r.resize(len(r.buf) / 2)
	}
}

// resize moves the elements into a new backing slice of size n, starting at index 0.
func (r *Ring[T]) resize(n int) {
	newBuf := make([]T, n)
	r.copyTo(newBuf)
	r.buf = newBuf
	r.head = 0
}

// calculateGrowth returns the next backing size able to hold minCap elements.
// Sizes double so the index mask stays valid.
func (r *Ring[T]) calculateGrowth(minCap int) int {
	newCap := len(r.buf)
	if newCap < minRingCap {
		newCap = minRingCap
	}
	for newCap < minCap {
		newCap <<= 1
	}
	return newCap
}

// wrapIndex returns the index wrapped within the backing slice.
func (r *Ring[T]) wrapIndex(idx int) int {
	return idx & (len(r.buf) - 1)
}

func (r *Ring[T]) checkIndex(i int) {
	if i < 0 || i >= r.count {
		panic(fmt.Sprintf("buffer: ring index %d out of range [0:%d]", i, r.count))
	}
}
