package stimuli

import (
	"fmt"
	"math"
)

const (
	defaultKind      = KindNoise
	defaultSeed      = 1
	defaultAmplitude = 1.0
)

type config struct {
	kind      Kind
	seed      int64
	amplitude float64
}

func defaultConfig() config {
	return config{
		kind:      defaultKind,
		seed:      defaultSeed,
		amplitude: defaultAmplitude,
	}
}

// Option configures stimulus generation.
type Option func(*config) error

// WithKind selects the waveform (default [KindNoise]).
func WithKind(k Kind) Option {
	return func(cfg *config) error {
		if !k.Valid() {
			return fmt.Errorf("stimuli: invalid kind: %d", k)
		}

		cfg.kind = k

		return nil
	}
}

// WithSeed sets the noise seed (default 1).
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}

// WithAmplitude sets the peak level as a fraction of full scale, in [0, 1]
// (default 1). Full scale is the type's maximum for integers and 1.0 for
// float32.
func WithAmplitude(a float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(a) || a < 0 || a > 1 {
			return fmt.Errorf("stimuli: amplitude must be in [0, 1]: %f", a)
		}

		cfg.amplitude = a

		return nil
	}
}
