package harness

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-dspref/dsp/ctype"
)

// Argument is a named kernel input with a declared C type tag.
//
// The values are copied on construction and never handed out by reference,
// so an Argument is immutable once built. Integer stimuli are stored as
// exactly representable float64 values.
type Argument struct {
	Name   string
	CType  string
	array  bool
	sized  bool
	length int // declared element count when sized
	value  []float64
}

// Scalar builds a scalar argument.
func Scalar(name, ctypeTag string, v float64) Argument {
	return Argument{Name: name, CType: ctypeTag, sized: true, length: 1, value: []float64{v}}
}

// Array builds an array argument owning a copy of values. Its declared
// length is len(values).
func Array(name, ctypeTag string, values []float64) Argument {
	return Argument{Name: name, CType: ctypeTag, array: true, sized: true, length: len(values), value: slices.Clone(values)}
}

// Shape builds an array descriptor of n elements that carries no data yet.
// Stimulus generators fill it in.
func Shape(name, ctypeTag string, n int) Argument {
	return Argument{Name: name, CType: ctypeTag, array: true, sized: true, length: n}
}

// Unsized builds an array descriptor whose length the oracle takes from
// the case's variables.
func Unsized(name, ctypeTag string) Argument {
	return Argument{Name: name, CType: ctypeTag, array: true}
}

// IsArray reports whether the argument is an array or array descriptor.
func (a Argument) IsArray() bool { return a.array }

// Len returns the number of elements held; scalars have length 1.
func (a Argument) Len() int { return len(a.value) }

// DeclaredLength returns the element count the argument was declared with.
// ok is false for Unsized descriptors. A Shape may declare more elements
// than it holds, and a negative count is returned as declared.
func (a Argument) DeclaredLength() (n int, ok bool) {
	return a.length, a.sized
}

// At returns element i.
func (a Argument) At(i int) float64 { return a.value[i] }

// Values returns a copy of the elements.
func (a Argument) Values() []float64 { return slices.Clone(a.value) }

// Scalar returns the value of a scalar argument.
func (a Argument) Scalar() (float64, error) {
	if a.array || len(a.value) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrNotScalar, a.Name)
	}

	return a.value[0], nil
}

// Type resolves the declared C type tag.
func (a Argument) Type() (ctype.Type, error) {
	return ctype.Parse(a.CType)
}

// Head returns a copy of the first n elements.
func (a Argument) Head(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if n > len(a.value) {
		return nil, fmt.Errorf("%w: %s has %d elements, need %d", ErrShortInput, a.Name, len(a.value), n)
	}

	return slices.Clone(a.value[:n]), nil
}

// Inputs maps argument names to arguments.
type Inputs map[string]Argument

// NewInputs indexes args by name. Later arguments replace earlier ones with
// the same name.
func NewInputs(args ...Argument) Inputs {
	in := make(Inputs, len(args))
	for _, a := range args {
		in[a.Name] = a
	}

	return in
}

// Lookup returns the argument called name.
func (in Inputs) Lookup(name string) (Argument, error) {
	a, ok := in[name]
	if !ok {
		return Argument{}, fmt.Errorf("%w: %s", ErrMissingInput, name)
	}

	return a, nil
}

// ParameterKind tells how the kernel hands back its result.
type ParameterKind int

const (
	// KindOutput is a caller-provided output buffer.
	KindOutput ParameterKind = iota
	// KindReturn is the kernel's return value.
	KindReturn
)

// Parameter describes where the kernel result goes and its element type.
type Parameter struct {
	Name  string
	CType string
	Kind  ParameterKind
}

// Output describes an output buffer parameter.
func Output(name, ctypeTag string) Parameter {
	return Parameter{Name: name, CType: ctypeTag, Kind: KindOutput}
}

// Return describes a return value.
func Return(ctypeTag string) Parameter {
	return Parameter{Name: "return", CType: ctypeTag, Kind: KindReturn}
}

// Type resolves the declared C type tag.
func (p Parameter) Type() (ctype.Type, error) {
	return ctype.Parse(p.CType)
}
