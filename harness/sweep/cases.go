package sweep

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dspref/harness"
)

// Case is one variant run with one assignment of the sweep variables.
type Case struct {
	Variant Variant
	Env     harness.Env
}

// Name identifies the case, e.g. "plp_offset_i8/len=16".
func (c Case) Name() string {
	var b strings.Builder
	b.WriteString(c.Variant.Name)
	for i, k := range c.Env.Names() {
		if i == 0 {
			b.WriteByte('/')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(c.Env[k]))
	}

	return b.String()
}

// Cases expands the sweep. Variants vary slowest; variables are nested in
// name order, each iterating its values in the order given.
func (c Config) Cases() []Case {
	names := make([]string, 0, len(c.Sweep))
	for name := range c.Sweep {
		names = append(names, name)
	}
	slices.Sort(names)

	var envs []harness.Env
	expand(c.Sweep, names, harness.Env{}, &envs)

	out := make([]Case, 0, len(c.Variants)*len(envs))
	for _, v := range c.Variants {
		for _, env := range envs {
			out = append(out, Case{Variant: v, Env: env.Clone()})
		}
	}

	return out
}

func expand(sweep map[string][]int, names []string, cur harness.Env, out *[]harness.Env) {
	if len(names) == 0 {
		*out = append(*out, cur.Clone())
		return
	}

	name := names[0]
	for _, v := range sweep[name] {
		cur[name] = v
		expand(sweep, names[1:], cur, out)
	}
	delete(cur, name)
}
