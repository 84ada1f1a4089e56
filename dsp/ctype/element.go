package ctype

import "github.com/cwbudde/algo-dspref/dsp/fixed"

// Element is the set of Go types backing the supported element types.
type Element interface {
	float32 | int8 | int16 | int32
}

// Of returns the Type backed by T.
func Of[T Element]() Type {
	var zero T
	switch any(zero).(type) {
	case float32:
		return TypeFloat32
	case int8:
		return TypeInt8
	case int16:
		return TypeInt16
	case int32:
		return TypeInt32
	}

	return TypeInvalid
}

// Cast converts v to T with C cast semantics: float32 rounds to nearest,
// integers truncate toward zero and then wrap modulo 2^width.
// v must be finite and within the int64 range for integer targets.
func Cast[T Element](v float64) T {
	var out any
	switch any(*new(T)).(type) {
	case float32:
		out = float32(v)
	case int8:
		out = fixed.Wrap[int8](int64(v))
	case int16:
		out = fixed.Wrap[int16](int64(v))
	case int32:
		out = fixed.Wrap[int32](int64(v))
	}

	return out.(T)
}

// CastSlice casts the first n values of src into a new slice of T.
// It panics if n exceeds len(src).
func CastSlice[T Element](src []float64, n int) []T {
	out := make([]T, n)
	for i, v := range src[:n] {
		out[i] = Cast[T](v)
	}

	return out
}
