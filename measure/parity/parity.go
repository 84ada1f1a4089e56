// Package parity checks kernel output against oracle output.
//
// Integer vectors must match exactly. Float32 vectors match when every
// element pair is within a configurable distance in units in the last place
// (0 by default, i.e. bit-exact up to the sign of zero).
package parity

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dspref/dsp/ctype"
	"github.com/cwbudde/algo-dspref/harness"
)

var (
	ErrTypeMismatch   = errors.New("parity: element types differ")
	ErrLengthMismatch = errors.New("parity: lengths differ")
)

const defaultMaxReported = 8

// Mismatch is one element outside tolerance.
type Mismatch struct {
	Index int
	Want  float64
	Got   float64
	ULP   uint64 // float32 only
}

// Report summarises a comparison.
type Report struct {
	Type         ctype.Type
	Len          int
	MaxAbsDiff   float64
	MaxULP       uint64
	Mismatches   int
	First        []Mismatch // at most the configured number of mismatches, in index order
	WantChecksum float64
	GotChecksum  float64
}

// Pass reports whether every element is within tolerance.
func (r Report) Pass() bool { return r.Mismatches == 0 }

type config struct {
	ulp         uint64
	maxReported int
}

// Option configures Compare.
type Option func(*config)

// WithULP allows float32 elements to differ by up to n units in the last place.
func WithULP(n uint64) Option {
	return func(cfg *config) { cfg.ulp = n }
}

// WithMaxReported limits how many mismatches Report.First keeps (default 8).
func WithMaxReported(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.maxReported = n
		}
	}
}

// Compare checks got against want.
func Compare(want, got harness.Vector, opts ...Option) (Report, error) {
	cfg := config{maxReported: defaultMaxReported}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if want.Type() != got.Type() {
		return Report{}, fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, want.Type(), got.Type())
	}
	if want.Len() != got.Len() {
		return Report{}, fmt.Errorf("%w: want %d, got %d", ErrLengthMismatch, want.Len(), got.Len())
	}

	w := want.Float64s()
	g := got.Float64s()
	rep := Report{Type: want.Type(), Len: len(w)}
	if len(w) == 0 {
		return rep, nil
	}

	diff := make([]float64, len(w))
	vecmath.ScaleBlock(diff, g, -1)
	vecmath.AddBlockInPlace(diff, w)
	rep.MaxAbsDiff = vecmath.MaxAbs(diff)
	rep.WantChecksum = vecmath.Sum(w)
	rep.GotChecksum = vecmath.Sum(g)

	isFloat := ctype.Info(rep.Type).Float
	for i := range w {
		var (
			ulp uint64
			bad bool
		)
		if isFloat {
			ulp = ULPDistance(float32(w[i]), float32(g[i]))
			bad = ulp > cfg.ulp
			rep.MaxULP = max(rep.MaxULP, ulp)
		} else {
			bad = w[i] != g[i]
		}

		if !bad {
			continue
		}

		rep.Mismatches++
		if len(rep.First) < cfg.maxReported {
			rep.First = append(rep.First, Mismatch{Index: i, Want: w[i], Got: g[i], ULP: ulp})
		}
	}

	return rep, nil
}

// ULPDistance returns how many representable float32 values lie between a
// and b. Zeros of either sign are equal, two NaNs are equal, and a NaN
// against a number is infinitely far.
func ULPDistance(a, b float32) uint64 {
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || bNaN:
		return math.MaxUint64
	case a == b:
		return 0
	}

	d := ordered(a) - ordered(b)
	if d < 0 {
		d = -d
	}

	return uint64(d)
}

// ordered maps float32 bit patterns onto a monotonic integer line.
func ordered(f float32) int64 {
	b := int64(int32(math.Float32bits(f)))
	if b < 0 {
		return math.MinInt32 - b
	}

	return b
}
