package sweep

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dspref/dsp/ctype"
	"github.com/cwbudde/algo-dspref/harness"
	"github.com/cwbudde/algo-dspref/measure/parity"
)

var (
	ErrMissingCase   = errors.New("sweep: case missing from results")
	ErrDuplicateCase = errors.New("sweep: duplicate case in results")
	ErrInvalidValue  = errors.New("sweep: value not representable in element type")
)

type vectorFile struct {
	Function string     `yaml:"function"`
	Cases    []caseData `yaml:"cases"`
}

type caseData struct {
	Name    string         `yaml:"name"`
	Variant string         `yaml:"variant"`
	CType   string         `yaml:"ctype"`
	Env     map[string]int `yaml:"env"`
	Inputs  []valueData    `yaml:"inputs,omitempty"`
	Result  valueData      `yaml:"result"`
}

type valueData struct {
	Name   string    `yaml:"name"`
	Values floatList `yaml:"values,flow"`
}

// floatList decodes every element as a float so that "-0" keeps its sign;
// yaml.v3 would otherwise resolve it as the integer 0.
type floatList []float64

func (l *floatList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: values must be a sequence", node.Line)
	}

	out := make(floatList, len(node.Content))
	for i, n := range node.Content {
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value must be a scalar", n.Line)
		}
		v, err := parseFloat(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		out[i] = v
	}
	*l = out

	return nil
}

func parseFloat(s string) (float64, error) {
	switch s {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), nil
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), nil
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), nil
	}

	return strconv.ParseFloat(s, 64)
}

// WriteYAML writes the vectors of a sweep run to w.
func WriteYAML(w io.Writer, function string, vecs []Vectors) error {
	doc := vectorFile{Function: function, Cases: make([]caseData, 0, len(vecs))}
	for _, v := range vecs {
		cd := caseData{
			Name:    v.Case.Name(),
			Variant: v.Case.Variant.Name,
			CType:   v.Case.Variant.CType,
			Env:     v.Case.Env,
			Result:  valueData{Name: v.Result.Name, Values: floatList(v.Expected.Float64s())},
		}
		for _, a := range v.Inputs {
			cd.Inputs = append(cd.Inputs, valueData{Name: a.Name, Values: floatList(a.Values())})
		}
		doc.Cases = append(doc.Cases, cd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("sweep: encode vectors: %w", err)
	}

	return enc.Close()
}

// ReadResults decodes a vector file and returns each case's result vector
// keyed by case name. Device dumps use the same layout; only name, ctype and
// result are read. Integer results must be integral and in range for their
// type, and every case name must be unique.
func ReadResults(r io.Reader) (map[string]harness.Vector, error) {
	var doc vectorFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("sweep: decode vectors: %w", err)
	}

	out := make(map[string]harness.Vector, len(doc.Cases))
	for _, cd := range doc.Cases {
		if _, dup := out[cd.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCase, cd.Name)
		}

		typ, err := ctype.Parse(cd.CType)
		if err != nil {
			return nil, fmt.Errorf("sweep: case %s: %w", cd.Name, err)
		}
		if err := checkRepresentable(typ, cd.Result.Values); err != nil {
			return nil, fmt.Errorf("%w: case %s: %w", ErrInvalidValue, cd.Name, err)
		}

		v, err := harness.VectorFromFloat64s(typ, cd.Result.Values)
		if err != nil {
			return nil, fmt.Errorf("sweep: case %s: %w", cd.Name, err)
		}
		out[cd.Name] = v
	}

	return out, nil
}

// checkRepresentable rejects integer values that a cast would truncate or
// wrap. Float values are always accepted.
func checkRepresentable(typ ctype.Type, values []float64) error {
	meta := ctype.Info(typ)
	if meta.Float {
		return nil
	}

	for i, v := range values {
		if v != math.Trunc(v) || v < meta.Min || v > meta.Max {
			return fmt.Errorf("index %d: %v is not a %s", i, v, meta.Name)
		}
	}

	return nil
}

// LoadResults reads a vector file from disk.
func LoadResults(path string) (map[string]harness.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sweep: open results: %w", err)
	}
	defer f.Close()

	return ReadResults(f)
}

// CheckResult is the comparison of one case against device output.
type CheckResult struct {
	Case   string
	Report parity.Report
}

// Check compares every case's expected output with the matching entry of
// got. A case missing from got is an error.
func Check(vecs []Vectors, got map[string]harness.Vector, opts ...parity.Option) ([]CheckResult, error) {
	out := make([]CheckResult, 0, len(vecs))
	for _, v := range vecs {
		name := v.Case.Name()

		dev, ok := got[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCase, name)
		}

		rep, err := parity.Compare(v.Expected, dev, opts...)
		if err != nil {
			return nil, fmt.Errorf("sweep: case %s: %w", name, err)
		}
		out = append(out, CheckResult{Case: name, Report: rep})
	}

	return out, nil
}
