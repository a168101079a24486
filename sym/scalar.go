package sym

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of concrete payload types a Value can carry. Every
// member supports + - * / & | ^ and has a natural fmt representation.
type Scalar interface {
	constraints.Integer
}

// BitWidth returns the storage size of T in bits.
func BitWidth[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Signed reports whether T is a signed integer type.
func Signed[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

// Bits returns the two's-complement bit pattern of v truncated to T's width.
func Bits[T Scalar](v T) uint64 {
	bits := uint64(v)
	if w := BitWidth[T](); w < 64 {
		bits &= 1<<w - 1
	}
	return bits
}
