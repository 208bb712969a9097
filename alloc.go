package comb

import "unsafe"

// MaxPreallocBytes caps how many bytes any combinator will reserve up
// front when a count sourced from the data asks it to pre-size a slice. A
// length field in hostile input must not be able to allocate unbounded
// memory before a single element has parsed. The cap limits only the
// initial reservation; the combinator still reads exactly as many elements
// as requested, growing the slice normally past the cap.
var MaxPreallocBytes = 64 * 1024

// Prealloc returns the initial capacity to reserve for n elements of type
// O under the MaxPreallocBytes cap.
func Prealloc[O any](n int) int {
	if n < 0 {
		return 0
	}
	var zero O
	size := int(unsafe.Sizeof(zero))
	if size < 1 {
		size = 1
	}
	if limit := MaxPreallocBytes / size; n > limit {
		return limit
	}
	return n
}
