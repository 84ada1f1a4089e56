// Package fixed provides the Q-format arithmetic helpers used by fixed-point
// reference oracles.
//
// The saturating helpers operate on int64 values holding 32-bit quantities.
// "Saturating" follows the target kernels' convention: a result that leaves
// the int32 range is folded back by one 2^32 turn instead of being pinned to
// the bound. Use Clamp for pinning.
package fixed

import "fmt"

const (
	MaxInt32 = 1<<31 - 1
	MinInt32 = -1 << 31

	turn = 1 << 32

	// maxShift is the largest shift whose rounding increment fits in int64.
	maxShift = 63
)

// Saturate folds x into [MinInt32, MaxInt32] with a single reflection: values
// above MaxInt32 lose 2^32 and values below MinInt32 gain 2^32. Values more
// than one turn outside the range are not fully reduced.
func Saturate(x int64) int64 {
	switch {
	case x > MaxInt32:
		return x - turn
	case x < MinInt32:
		return x + turn
	default:
		return x
	}
}

// SaturatingAdd returns Saturate(a + b).
func SaturatingAdd(a, b int64) int64 {
	return Saturate(a + b)
}

// SaturatingSub returns Saturate(a - b).
func SaturatingSub(a, b int64) int64 {
	return Saturate(a - b)
}

// RoundNormalize drops p fractional bits from a with round-half-up:
// Saturate((a + 2^(p-1)) >> p), using an arithmetic shift.
// It panics if p is outside [1, 63]. a + 2^(p-1) must not overflow int64,
// which holds for any int32-range a.
func RoundNormalize(a int64, p uint) int64 {
	if p < 1 || p > maxShift {
		panic(fmt.Sprintf("fixed: rounding shift must be in [1, %d]: %d", maxShift, p))
	}

	rounding := int64(1) << (p - 1)

	return Saturate((a + rounding) >> p)
}

// SaturatingMul multiplies two Qp values and rescales the product back to Qp.
// The product must fit in int64, which holds for any pair of int32 operands.
func SaturatingMul(a, b int64, p uint) int64 {
	return RoundNormalize(a*b, p)
}
