package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturate(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want int64
	}{
		{"zero", 0, 0},
		{"max", math.MaxInt32, math.MaxInt32},
		{"min", math.MinInt32, math.MinInt32},
		{"max+1", math.MaxInt32 + 1, math.MinInt32},
		{"min-1", math.MinInt32 - 1, math.MaxInt32},
		{"max+5", math.MaxInt32 + 5, math.MinInt32 + 4},
		{"one turn below", -(1 << 32), 0},
		// A single reflection does not reduce values two turns out.
		{"two turns above", 3 << 32, 2 << 32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Saturate(tc.in))
		})
	}
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, int64(math.MinInt32), SaturatingAdd(math.MaxInt32, 1))
	assert.Equal(t, int64(42), SaturatingAdd(100, -58))
	assert.Equal(t, int64(math.MaxInt32), SaturatingAdd(math.MinInt32, -1))
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt32), SaturatingSub(math.MinInt32, 1))
	assert.Equal(t, int64(-42), SaturatingSub(10, 52))
}

func TestRoundNormalize(t *testing.T) {
	tests := []struct {
		a    int64
		p    uint
		want int64
	}{
		{5, 1, 3},
		{-5, 1, -2},
		{4, 1, 2},
		{-4, 1, -2},
		{6, 2, 2},   // 1.5 rounds up
		{-6, 2, -1}, // -1.5 rounds toward +inf
		{1 << 15, 15, 1},
		{(1 << 14) - 1, 15, 0},
		{1 << 14, 15, 1},
		{math.MaxInt32, 63, 0},
		{math.MinInt32, 63, 0},
		{-(1 << 62), 63, 0},
		{-(1 << 62) - 1, 63, -1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, RoundNormalize(tc.a, tc.p), "RoundNormalize(%d, %d)", tc.a, tc.p)
	}
}

func TestRoundNormalizeFoldsOverflow(t *testing.T) {
	// (2^33 + 1) >> 1 = 2^32, folded once to 0.
	assert.Equal(t, int64(0), RoundNormalize(1<<33, 1))
}

func TestRoundNormalizePanicsOnInvalidShift(t *testing.T) {
	for _, p := range []uint{0, 64, 100} {
		assert.Panics(t, func() { RoundNormalize(1, p) }, "p=%d", p)
	}
}

func TestSaturatingMulQ15(t *testing.T) {
	const half = 1 << 14 // 0.5 in Q15
	assert.Equal(t, int64(1<<13), SaturatingMul(half, half, 15))
	assert.Equal(t, int64(-(1 << 13)), SaturatingMul(-half, half, 15))
	// -1.0 * -1.0 in Q31 overflows to 2^31 and folds to MinInt32.
	assert.Equal(t, int64(math.MinInt32), SaturatingMul(math.MinInt32, math.MinInt32, 31))
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name           string
		lo, hi         int64
		wantLo, wantHi int64
	}{
		{"int8", 0, 0, math.MinInt8, math.MaxInt8},
		{"int16", 0, 0, math.MinInt16, math.MaxInt16},
		{"int32", 0, 0, math.MinInt32, math.MaxInt32},
		{"int64", 0, 0, math.MinInt64, math.MaxInt64},
	}
	tests[0].lo, tests[0].hi = Bounds[int8]()
	tests[1].lo, tests[1].hi = Bounds[int16]()
	tests[2].lo, tests[2].hi = Bounds[int32]()
	tests[3].lo, tests[3].hi = Bounds[int64]()

	for _, tc := range tests {
		assert.Equal(t, tc.wantLo, tc.lo, "%s lo", tc.name)
		assert.Equal(t, tc.wantHi, tc.hi, "%s hi", tc.name)
	}
}

func TestWrapAndClamp(t *testing.T) {
	assert.Equal(t, int8(-128), Wrap[int8](128))
	assert.Equal(t, int16(4464), Wrap[int16](70000))
	assert.Equal(t, int8(127), Clamp[int8](128))
	assert.Equal(t, int8(-128), Clamp[int8](-1000))
	assert.Equal(t, int32(12345), Clamp[int32](12345))
}
