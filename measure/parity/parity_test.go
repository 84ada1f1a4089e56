package parity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dspref/dsp/ctype"
	"github.com/cwbudde/algo-dspref/harness"
	"github.com/cwbudde/algo-dspref/internal/testutil"
)

func TestCompareIdentical(t *testing.T) {
	v := harness.NewVector([]int16{1, -2, 3})

	rep, err := Compare(v, harness.NewVector([]int16{1, -2, 3}))
	require.NoError(t, err)
	assert.True(t, rep.Pass())
	assert.Equal(t, ctype.TypeInt16, rep.Type)
	assert.Equal(t, 3, rep.Len)
	assert.Zero(t, rep.MaxAbsDiff)
	assert.Equal(t, 2.0, rep.WantChecksum)
	assert.Equal(t, rep.WantChecksum, rep.GotChecksum)
}

func TestCompareIntegerMismatch(t *testing.T) {
	want := harness.NewVector([]int8{-128, 0, 5, 7})
	got := harness.NewVector([]int8{127, 0, 6, 7})

	rep, err := Compare(want, got)
	require.NoError(t, err)
	assert.False(t, rep.Pass())
	assert.Equal(t, 2, rep.Mismatches)
	assert.Equal(t, 255.0, rep.MaxAbsDiff)
	require.Len(t, rep.First, 2)
	assert.Equal(t, Mismatch{Index: 0, Want: -128, Got: 127}, rep.First[0])
	assert.Equal(t, 2, rep.First[1].Index)
}

func TestCompareMaxReported(t *testing.T) {
	want, err := harness.VectorFromFloat64s(ctype.TypeInt32, testutil.Alternating(20, 1, -1))
	require.NoError(t, err)
	got, err := harness.VectorFromFloat64s(ctype.TypeInt32, testutil.Alternating(20, -1, 1))
	require.NoError(t, err)

	rep, err := Compare(want, got, WithMaxReported(3))
	require.NoError(t, err)
	assert.Equal(t, 20, rep.Mismatches)
	assert.Len(t, rep.First, 3)
	assert.Equal(t, 2.0, rep.MaxAbsDiff)
	assert.Zero(t, rep.WantChecksum)
}

func TestCompareFloat32ULP(t *testing.T) {
	a := float32(1)
	b := math.Nextafter32(a, 2)
	c := math.Nextafter32(b, 2)

	want := harness.NewVector([]float32{a, a, 0})
	got := harness.NewVector([]float32{b, c, float32(math.Copysign(0, -1))})

	rep, err := Compare(want, got)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Mismatches)
	assert.Equal(t, uint64(2), rep.MaxULP)

	rep, err = Compare(want, got, WithULP(1))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Mismatches)
	assert.Equal(t, 1, rep.First[0].Index)

	rep, err = Compare(want, got, WithULP(2))
	require.NoError(t, err)
	assert.True(t, rep.Pass())
}

func TestCompareErrors(t *testing.T) {
	_, err := Compare(harness.NewVector([]int8{1}), harness.NewVector([]int16{1}))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Compare(harness.NewVector([]int8{1}), harness.NewVector([]int8{1, 2}))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCompareEmpty(t *testing.T) {
	rep, err := Compare(harness.NewVector([]float32{}), harness.NewVector[float32](nil))
	require.NoError(t, err)
	assert.True(t, rep.Pass())
	assert.Zero(t, rep.Len)
}

func TestULPDistance(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	tiny := float32(math.SmallestNonzeroFloat32)

	tests := []struct {
		name string
		a, b float32
		want uint64
	}{
		{"equal", 1.5, 1.5, 0},
		{"signed zeros", 0, negZero, 0},
		{"across zero", tiny, -tiny, 2},
		{"neighbours", 1, math.Nextafter32(1, 0), 1},
		{"nan pair", nan, nan, 0},
		{"nan vs number", nan, 1, math.MaxUint64},
		{"inf vs max", float32(math.Inf(1)), math.MaxFloat32, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ULPDistance(tc.a, tc.b))
			assert.Equal(t, tc.want, ULPDistance(tc.b, tc.a))
		})
	}
}
