package fixed

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bounds returns the smallest and largest values representable by T.
func Bounds[T constraints.Signed]() (lo, hi int64) {
	var zero T
	width := uint(unsafe.Sizeof(zero)) * 8
	hi = int64(uint64(1)<<(width-1) - 1)

	return -hi - 1, hi
}

// Wrap narrows x to T modulo 2^width, the way a C cast does.
func Wrap[T constraints.Signed](x int64) T {
	return T(x)
}

// Clamp narrows x to T, pinning out-of-range values to T's bounds.
func Clamp[T constraints.Signed](x int64) T {
	lo, hi := Bounds[T]()
	if x < lo {
		return T(lo)
	}
	if x > hi {
		return T(hi)
	}

	return T(x)
}
