package sweep

import (
	"fmt"

	"github.com/cwbudde/algo-dspref/harness"
)

// Vectors holds the data of one case: the generated inputs and the oracle's
// expected output.
type Vectors struct {
	Case     Case
	Inputs   []harness.Argument
	Result   harness.Parameter
	Expected harness.Vector
}

// Run generates stimuli and expected results for every case of cfg.
func Run(cfg Config, oracle harness.Oracle) ([]Vectors, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cases := cfg.Cases()
	out := make([]Vectors, 0, len(cases))
	for _, c := range cases {
		vec, err := runCase(cfg, oracle, c)
		if err != nil {
			return nil, fmt.Errorf("sweep: case %s: %w", c.Name(), err)
		}
		out = append(out, vec)
	}

	return out, nil
}

// RunRegistered looks up cfg.Function in reg and runs the sweep with it.
func RunRegistered(cfg Config, reg *harness.Registry) ([]Vectors, error) {
	oracle, err := reg.Lookup(cfg.Function)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	return Run(cfg, oracle)
}

func runCase(cfg Config, oracle harness.Oracle, c Case) (Vectors, error) {
	tag := c.Variant.CType
	args := make([]harness.Argument, 0, len(cfg.Arguments))

	for _, spec := range cfg.Arguments {
		var desc harness.Argument
		if spec.Length != "" {
			n, err := c.Env.Length(spec.Length)
			if err != nil {
				return Vectors{}, err
			}
			desc = harness.Shape(spec.Name, tag, n)
		} else {
			desc = harness.Scalar(spec.Name, tag, 0)
		}

		values, err := oracle.GenerateStimuli(desc, c.Env)
		if err != nil {
			return Vectors{}, fmt.Errorf("stimuli for %s: %w", spec.Name, err)
		}

		if desc.IsArray() {
			args = append(args, harness.Array(spec.Name, tag, values))
			continue
		}
		if len(values) != 1 {
			return Vectors{}, fmt.Errorf("stimuli for scalar %s: got %d values", spec.Name, len(values))
		}
		args = append(args, harness.Scalar(spec.Name, tag, values[0]))
	}

	result := cfg.resultParameter(c.Variant)
	expected, err := oracle.ComputeResult(result, harness.NewInputs(args...), c.Env, cfg.fixPoint())
	if err != nil {
		return Vectors{}, err
	}

	return Vectors{Case: c, Inputs: args, Result: result, Expected: expected}, nil
}
