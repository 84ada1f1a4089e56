// Package testutil holds helpers shared by the package tests.
package testutil

// Counting returns start, start+1, ..., n values in total.
func Counting(n int, start float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

// Alternating returns n values cycling through pattern.
func Alternating(n int, pattern ...float64) []float64 {
	out := make([]float64, n)
	if len(pattern) == 0 {
		return out
	}
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}
