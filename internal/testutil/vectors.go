package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dspref/harness"
)

// RequireVectorEqual fails t unless got and want have the same type, the
// same length and bit-identical elements. Float32 zeros must agree in sign.
func RequireVectorEqual(t *testing.T, got, want harness.Vector) {
	t.Helper()
	require.Equal(t, want.Type(), got.Type(), "element type")
	require.Equal(t, want.Len(), got.Len(), "length")

	g, w := got.Float64s(), want.Float64s()
	for i := range g {
		require.Equal(t, math.Float64bits(w[i]), math.Float64bits(g[i]), "index %d: got %v, want %v", i, g[i], w[i])
	}
}

// RequireSliceEqual fails t if got and want differ in length or in any element.
func RequireSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		require.Equal(t, want[i], got[i], "index %d", i)
	}
}
