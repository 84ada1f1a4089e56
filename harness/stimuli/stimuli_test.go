package stimuli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dspref/dsp/ctype"
	"github.com/cwbudde/algo-dspref/harness"
)

func TestGenerateStaysInRange(t *testing.T) {
	for _, typ := range ctype.All() {
		meta := ctype.Info(typ)
		for k := KindNoise; k < numKinds; k++ {
			t.Run(typ.String()+"/"+k.String(), func(t *testing.T) {
				out, err := Generate(typ, 257, WithKind(k), WithSeed(7))
				require.NoError(t, err)
				require.Len(t, out, 257)

				for i, v := range out {
					require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d not finite", i)
					require.GreaterOrEqual(t, v, meta.Min, "index %d", i)
					require.LessOrEqual(t, v, meta.Max, "index %d", i)
					if !meta.Float {
						require.Equal(t, math.Trunc(v), v, "index %d not integral", i)
					} else {
						require.Equal(t, float64(float32(v)), v, "index %d not single precision", i)
					}
				}
			})
		}
	}
}

func TestGenerateNoiseDeterministic(t *testing.T) {
	a, err := Generate(ctype.TypeInt16, 64, WithSeed(42))
	require.NoError(t, err)
	b, err := Generate(ctype.TypeInt16, 64, WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(ctype.TypeInt16, 64, WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateNoiseAmplitude(t *testing.T) {
	out, err := Generate(ctype.TypeFloat32, 1024, WithAmplitude(0.25))
	require.NoError(t, err)

	for i, v := range out {
		require.LessOrEqual(t, math.Abs(v), 0.25, "index %d", i)
	}
}

func TestGenerateRamp(t *testing.T) {
	out, err := Generate(ctype.TypeInt8, 3, WithKind(KindRamp))
	require.NoError(t, err)
	assert.Equal(t, []float64{-127, 0, 127}, out)

	one, err := Generate(ctype.TypeInt8, 1, WithKind(KindRamp))
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, one)
}

func TestGenerateDCAndImpulse(t *testing.T) {
	dc, err := Generate(ctype.TypeInt16, 4, WithKind(KindDC), WithAmplitude(0.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{16384, 16384, 16384, 16384}, dc)

	imp, err := Generate(ctype.TypeFloat32, 4, WithKind(KindImpulse))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, imp)

	empty, err := Generate(ctype.TypeFloat32, 0, WithKind(KindImpulse))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGenerateExtremes(t *testing.T) {
	out, err := Generate(ctype.TypeInt8, 8, WithKind(KindExtremes))
	require.NoError(t, err)
	assert.Equal(t, []float64{127, -128, 126, -127, 0, -1, 1, 127}, out)
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(ctype.TypeInvalid, 4)
	assert.ErrorIs(t, err, ctype.ErrUnsupportedType)

	_, err = Generate(ctype.TypeInt8, -1)
	assert.Error(t, err)

	_, err = Generate(ctype.TypeInt8, 4, WithAmplitude(1.5))
	assert.Error(t, err)

	_, err = Generate(ctype.TypeInt8, 4, WithAmplitude(math.NaN()))
	assert.Error(t, err)

	_, err = Generate(ctype.TypeInt8, 4, WithKind(Kind(99)))
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	for k := KindNoise; k < numKinds; k++ {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("square")
	assert.Error(t, err)
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestSeedFor(t *testing.T) {
	env := harness.Env{"len": 16, "stride": 2}

	assert.Equal(t, SeedFor("pSrc", env), SeedFor("pSrc", env.Clone()))
	assert.NotEqual(t, SeedFor("pSrc", env), SeedFor("offset", env))
	assert.NotEqual(t, SeedFor("pSrc", env), SeedFor("pSrc", harness.Env{"len": 17, "stride": 2}))
	assert.GreaterOrEqual(t, SeedFor("pSrc", env), int64(0))
}
