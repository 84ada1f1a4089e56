// Package sweep expands a kernel test sweep into cases and produces their
// stimuli and expected outputs through a harness.Oracle.
//
// A sweep is described in YAML:
//
//	function: offset
//	variants:
//	  - {name: plp_offset_i8, ctype: int8_t}
//	  - {name: plp_offset_f32, ctype: float}
//	sweep:
//	  len: [0, 1, 16]
//	arguments:
//	  - {name: pSrc, length: len}
//	  - {name: offset}
//	result: {name: pDst}
//
// Every variant is run for every combination of the sweep variables.
package sweep

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dspref/dsp/ctype"
	"github.com/cwbudde/algo-dspref/harness"
)

var ErrInvalidConfig = errors.New("sweep: invalid config")

// Config describes one sweep.
type Config struct {
	Function  string           `yaml:"function"`
	FixPoint  *int             `yaml:"fix_point,omitempty"`
	Variants  []Variant        `yaml:"variants"`
	Sweep     map[string][]int `yaml:"sweep"`
	Arguments []ArgumentSpec   `yaml:"arguments"`
	Result    ResultSpec       `yaml:"result"`
	// ULP is the float32 tolerance used when checking device output.
	ULP uint64 `yaml:"ulp,omitempty"`
}

// Variant is one kernel implementation under test, e.g. plp_offset_i16.
type Variant struct {
	Name  string `yaml:"name"`
	CType string `yaml:"ctype"`
}

// ArgumentSpec declares a kernel input. Length names the sweep variable
// holding the array length; scalars leave it empty.
type ArgumentSpec struct {
	Name   string `yaml:"name"`
	Length string `yaml:"length,omitempty"`
}

// ResultSpec declares where the kernel result goes.
type ResultSpec struct {
	Name   string `yaml:"name,omitempty"`
	Return bool   `yaml:"return,omitempty"`
}

// Default returns the sweep of the plp_offset kernels.
func Default() Config {
	return Config{
		Function: "offset",
		Variants: []Variant{
			{Name: "plp_offset_i8", CType: "int8_t"},
			{Name: "plp_offset_i16", CType: "int16_t"},
			{Name: "plp_offset_i32", CType: "int32_t"},
			{Name: "plp_offset_f32", CType: "float"},
		},
		Sweep: map[string][]int{
			"len": {0, 1, 7, 16, 255},
		},
		Arguments: []ArgumentSpec{
			{Name: "pSrc", Length: "len"},
			{Name: "offset"},
		},
		Result: ResultSpec{Name: "pDst"},
	}
}

// Load reads and validates a YAML sweep file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sweep: read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML sweep.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("sweep: decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the config describes a runnable sweep.
func (c Config) Validate() error {
	if c.Function == "" {
		return fmt.Errorf("%w: function is empty", ErrInvalidConfig)
	}
	if c.FixPoint != nil && !harness.FixPoint(*c.FixPoint).Valid() {
		return fmt.Errorf("%w: fix_point must be >= 0: %d", ErrInvalidConfig, *c.FixPoint)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if v.Name == "" {
			return fmt.Errorf("%w: variant without name", ErrInvalidConfig)
		}
		if seen[v.Name] {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalidConfig, v.Name)
		}
		seen[v.Name] = true

		if _, err := ctype.Parse(v.CType); err != nil {
			return fmt.Errorf("%w: variant %q: %w", ErrInvalidConfig, v.Name, err)
		}
	}

	for name, values := range c.Sweep {
		if len(values) == 0 {
			return fmt.Errorf("%w: sweep variable %q has no values", ErrInvalidConfig, name)
		}
	}

	if len(c.Arguments) == 0 {
		return fmt.Errorf("%w: no arguments", ErrInvalidConfig)
	}

	args := make(map[string]bool, len(c.Arguments))
	for _, a := range c.Arguments {
		if a.Name == "" {
			return fmt.Errorf("%w: argument without name", ErrInvalidConfig)
		}
		if args[a.Name] {
			return fmt.Errorf("%w: duplicate argument %q", ErrInvalidConfig, a.Name)
		}
		args[a.Name] = true

		if a.Length == "" {
			continue
		}
		values, ok := c.Sweep[a.Length]
		if !ok {
			return fmt.Errorf("%w: argument %q: unknown length variable %q", ErrInvalidConfig, a.Name, a.Length)
		}
		for _, n := range values {
			if n < 0 {
				return fmt.Errorf("%w: argument %q: negative length %d", ErrInvalidConfig, a.Name, n)
			}
		}
	}

	if !c.Result.Return && c.Result.Name == "" {
		return fmt.Errorf("%w: result needs a name or return: true", ErrInvalidConfig)
	}

	return nil
}

// fixPoint converts the optional config value.
func (c Config) fixPoint() harness.FixPoint {
	if c.FixPoint == nil {
		return harness.NoFixPoint
	}

	return harness.FixPoint(*c.FixPoint)
}

// resultParameter builds the result descriptor for a variant.
func (c Config) resultParameter(v Variant) harness.Parameter {
	if c.Result.Return {
		return harness.Return(v.CType)
	}

	return harness.Output(c.Result.Name, v.CType)
}
