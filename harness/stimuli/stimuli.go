// Package stimuli generates deterministic input data for kernel test cases.
//
// Generated values are already representable in the requested element type:
// integer stimuli are rounded and pinned to the type's range, float32 stimuli
// are rounded to single precision. The same options always yield the same
// data.
package stimuli

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-dspref/dsp/ctype"
	"github.com/cwbudde/algo-dspref/dsp/fixed"
	"github.com/cwbudde/algo-dspref/harness"
)

// Kind selects a stimulus waveform.
type Kind int

const (
	// KindNoise is triangular-PDF noise spanning the amplitude.
	KindNoise Kind = iota
	// KindRamp rises linearly from -amplitude to +amplitude.
	KindRamp
	// KindDC holds the amplitude constant.
	KindDC
	// KindImpulse is the amplitude at index 0 and zero elsewhere.
	KindImpulse
	// KindExtremes cycles through the type's boundary values.
	KindExtremes

	numKinds
)

var kindNames = [...]string{
	KindNoise:    "noise",
	KindRamp:     "ramp",
	KindDC:       "dc",
	KindImpulse:  "impulse",
	KindExtremes: "extremes",
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// ParseKind resolves a kind name such as "noise".
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("stimuli: unknown kind: %q", name)
}

// Generate returns length values of the configured waveform for typ.
func Generate(typ ctype.Type, length int, opts ...Option) ([]float64, error) {
	if !typ.Valid() {
		return nil, &ctype.UnsupportedTypeError{Tag: typ.String()}
	}
	if length < 0 {
		return nil, fmt.Errorf("stimuli: length must be >= 0: %d", length)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	meta := ctype.Info(typ)
	fullScale := 1.0
	if !meta.Float {
		fullScale = meta.Max
	}
	amp := cfg.amplitude * fullScale

	out := make([]float64, length)
	switch cfg.kind {
	case KindNoise:
		vecmath.GenerateTPDF(out, amp, vecmath.NewDitherState(cfg.seed))
	case KindRamp:
		ramp(out, amp)
	case KindDC:
		for i := range out {
			out[i] = amp
		}
	case KindImpulse:
		if length > 0 {
			out[0] = amp
		}
	case KindExtremes:
		extremes(out, meta, amp)
	}

	quantize(typ, out)

	return out, nil
}

// SeedFor derives a stable seed from an argument name and the case's
// variables, so every argument of every case gets its own noise.
func SeedFor(name string, env harness.Env) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	for _, k := range env.Names() {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(k))
		_, _ = h.Write([]byte{'='})
		_, _ = h.Write([]byte(strconv.Itoa(env[k])))
	}

	return int64(h.Sum64() >> 1)
}

func ramp(out []float64, amp float64) {
	n := len(out)
	if n == 1 {
		out[0] = 0
		return
	}

	for i := range out {
		out[i] = -amp + 2*amp*float64(i)/float64(n-1)
	}
}

func extremes(out []float64, meta ctype.Metadata, amp float64) {
	var pattern []float64
	if meta.Float {
		pattern = []float64{amp, -amp, 0, math.Copysign(0, -1), math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32}
	} else {
		pattern = []float64{meta.Max, meta.Min, meta.Max - 1, meta.Min + 1, 0, -1, 1}
	}

	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
}

func quantize(typ ctype.Type, buf []float64) {
	switch typ {
	case ctype.TypeFloat32:
		for i, v := range buf {
			buf[i] = float64(float32(v))
		}
	case ctype.TypeInt8:
		quantizeInt[int8](buf)
	case ctype.TypeInt16:
		quantizeInt[int16](buf)
	case ctype.TypeInt32:
		quantizeInt[int32](buf)
	}
}

func quantizeInt[T constraints.Signed](buf []float64) {
	for i, v := range buf {
		buf[i] = float64(fixed.Clamp[T](int64(math.Round(v))))
	}
}
