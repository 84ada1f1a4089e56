package harness

import (
	"fmt"
	"maps"
	"slices"
)

// Env maps sweep and dynamic variable names to their values for one test
// case. Oracles only read it.
type Env map[string]int

// Int returns the value of variable name.
func (e Env) Int(name string) (int, error) {
	v, ok := e[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingVariable, name)
	}

	return v, nil
}

// Length returns variable name as an element count.
func (e Env) Length(name string) (int, error) {
	n, err := e.Int(name)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s=%d", ErrNegativeLength, name, n)
	}

	return n, nil
}

// Names returns the variable names in sorted order.
func (e Env) Names() []string {
	return slices.Sorted(maps.Keys(e))
}

// Clone returns a copy of e.
func (e Env) Clone() Env {
	return maps.Clone(e)
}

// FixPoint is the number of fractional bits of a Q-format kernel, or
// NoFixPoint for kernels that do not scale.
type FixPoint int

// NoFixPoint marks a kernel without Q-format scaling.
const NoFixPoint FixPoint = -1

// Valid reports whether f names a fractional bit count.
func (f FixPoint) Valid() bool { return f >= 0 }
