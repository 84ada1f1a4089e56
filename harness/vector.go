package harness

import "github.com/cwbudde/algo-dspref/dsp/ctype"

// Vector is a typed sequence produced by an oracle. The zero Vector is an
// empty vector of invalid type.
type Vector struct {
	typ  ctype.Type
	data any // []T for the T backing typ
}

// NewVector wraps data without copying; the Vector takes ownership.
func NewVector[T ctype.Element](data []T) Vector {
	if data == nil {
		data = []T{}
	}

	return Vector{typ: ctype.Of[T](), data: data}
}

// As returns the backing slice if v holds elements of type T.
func As[T ctype.Element](v Vector) ([]T, bool) {
	s, ok := v.data.([]T)
	return s, ok
}

// Type returns the element type.
func (v Vector) Type() ctype.Type { return v.typ }

// Len returns the number of elements.
func (v Vector) Len() int {
	switch s := v.data.(type) {
	case []float32:
		return len(s)
	case []int8:
		return len(s)
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	}

	return 0
}

// Float64s widens the elements to float64. The conversion is exact for
// every supported element type.
func (v Vector) Float64s() []float64 {
	switch s := v.data.(type) {
	case []float32:
		return widen(s)
	case []int8:
		return widen(s)
	case []int16:
		return widen(s)
	case []int32:
		return widen(s)
	}

	return []float64{}
}

// VectorFromFloat64s casts values into a Vector of type typ using C cast
// semantics. It is the inverse of Float64s for in-range values.
func VectorFromFloat64s(typ ctype.Type, values []float64) (Vector, error) {
	switch typ {
	case ctype.TypeFloat32:
		return NewVector(ctype.CastSlice[float32](values, len(values))), nil
	case ctype.TypeInt8:
		return NewVector(ctype.CastSlice[int8](values, len(values))), nil
	case ctype.TypeInt16:
		return NewVector(ctype.CastSlice[int16](values, len(values))), nil
	case ctype.TypeInt32:
		return NewVector(ctype.CastSlice[int32](values, len(values))), nil
	}

	return Vector{}, &ctype.UnsupportedTypeError{Tag: typ.String()}
}

func widen[T ctype.Element](s []T) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}

	return out
}
