// Package offset is the reference oracle for the offset-add kernel family
// (plp_offset_*): dst[i] = src[i] + offset.
//
// Integer variants wrap modulo 2^width like the fixed-width C arithmetic of
// the kernels; they do not saturate. The float variant uses IEEE-754 single
// precision addition.
package offset

import (
	"fmt"

	"github.com/cwbudde/algo-dspref/dsp/ctype"
	"github.com/cwbudde/algo-dspref/harness"
	"github.com/cwbudde/algo-dspref/harness/stimuli"
)

// Name is the kernel name the oracle is registered under.
const Name = "offset"

// Argument and variable names used by the kernel's test cases.
const (
	SrcArg    = "pSrc"
	OffsetArg = "offset"
	LenVar    = "len"
)

func init() {
	harness.Global.Register(Name, New())
}

// Oracle computes stimuli and expected results for the offset kernels.
type Oracle struct {
	srcKind    stimuli.Kind
	offsetKind stimuli.Kind
	amplitude  float64
}

var _ harness.Oracle = (*Oracle)(nil)

// Option configures an Oracle.
type Option func(*Oracle)

// WithSourceKind selects the waveform generated for pSrc (default noise).
func WithSourceKind(k stimuli.Kind) Option {
	return func(o *Oracle) { o.srcKind = k }
}

// WithOffsetKind selects the waveform generated for offset (default noise).
func WithOffsetKind(k stimuli.Kind) Option {
	return func(o *Oracle) { o.offsetKind = k }
}

// WithAmplitude sets the stimulus level as a fraction of full scale.
func WithAmplitude(a float64) Option {
	return func(o *Oracle) { o.amplitude = a }
}

// New returns an oracle with full-scale noise stimuli.
func New(opts ...Option) *Oracle {
	o := &Oracle{
		srcKind:    stimuli.KindNoise,
		offsetKind: stimuli.KindNoise,
		amplitude:  1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// GenerateStimuli returns the declared number of values for pSrc, or
// env["len"] values for an Unsized descriptor, and a single value for offset.
func (o *Oracle) GenerateStimuli(arg harness.Argument, env harness.Env) ([]float64, error) {
	typ, err := arg.Type()
	if err != nil {
		return nil, err
	}

	var (
		kind   stimuli.Kind
		length int
	)
	switch arg.Name {
	case SrcArg:
		kind = o.srcKind
		n, ok := arg.DeclaredLength()
		if !ok {
			if n, err = env.Length(LenVar); err != nil {
				return nil, err
			}
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %s has length %d", harness.ErrNegativeLength, arg.Name, n)
		}
		length = n
	case OffsetArg:
		kind = o.offsetKind
		length = 1
	default:
		return nil, fmt.Errorf("offset: no stimulus for argument %q", arg.Name)
	}

	return stimuli.Generate(typ, length,
		stimuli.WithKind(kind),
		stimuli.WithAmplitude(o.amplitude),
		stimuli.WithSeed(stimuli.SeedFor(arg.Name, env)),
	)
}

// ComputeResult returns src[i] + offset for i in [0, env["len"]) in the
// element type declared by result. fixPoint is ignored: offsetting does not
// rescale. Inputs are never modified and the result is freshly allocated.
func (o *Oracle) ComputeResult(
	result harness.Parameter,
	inputs harness.Inputs,
	env harness.Env,
	_ harness.FixPoint,
) (harness.Vector, error) {
	typ, err := result.Type()
	if err != nil {
		return harness.Vector{}, err
	}

	n, err := env.Length(LenVar)
	if err != nil {
		return harness.Vector{}, err
	}

	srcArg, err := inputs.Lookup(SrcArg)
	if err != nil {
		return harness.Vector{}, err
	}
	src, err := srcArg.Head(n)
	if err != nil {
		return harness.Vector{}, err
	}

	offArg, err := inputs.Lookup(OffsetArg)
	if err != nil {
		return harness.Vector{}, err
	}
	off, err := offArg.Scalar()
	if err != nil {
		return harness.Vector{}, err
	}

	switch typ {
	case ctype.TypeFloat32:
		return harness.NewVector(Add[float32](src, off)), nil
	case ctype.TypeInt8:
		return harness.NewVector(Add[int8](src, off)), nil
	case ctype.TypeInt16:
		return harness.NewVector(Add[int16](src, off)), nil
	case ctype.TypeInt32:
		return harness.NewVector(Add[int32](src, off)), nil
	}

	return harness.Vector{}, &ctype.UnsupportedTypeError{Tag: result.CType}
}

// Add casts src and offset to T and returns their element-wise sum in T's
// arithmetic.
func Add[T ctype.Element](src []float64, offset float64) []T {
	out := ctype.CastSlice[T](src, len(src))
	off := ctype.Cast[T](offset)
	for i := range out {
		out[i] = T(out[i] + off)
	}

	return out
}
