package harness

import (
	"fmt"
	"slices"
	"sync"
)

// Oracle computes stimuli and expected results for one kernel.
type Oracle interface {
	// GenerateStimuli returns the values for arg in the case described by env.
	GenerateStimuli(arg Argument, env Env) ([]float64, error)

	// ComputeResult returns the expected kernel output. fixPoint is the
	// kernel's Q-format, or NoFixPoint.
	ComputeResult(result Parameter, inputs Inputs, env Env, fixPoint FixPoint) (Vector, error)
}

// Registry maps kernel names to oracles.
type Registry struct {
	mu      sync.RWMutex
	oracles map[string]Oracle
}

// Global is the registry oracle packages add themselves to in init.
var Global = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{oracles: make(map[string]Oracle)}
}

// Register adds o under name, replacing any previous entry.
func (r *Registry) Register(name string, o Oracle) {
	if o == nil {
		panic("harness: Register called with nil oracle for " + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.oracles[name] = o
}

// Lookup returns the oracle registered under name.
func (r *Registry) Lookup(name string) (Oracle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.oracles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOracle, name)
	}

	return o, nil
}

// Names lists the registered kernel names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.oracles))
	for name := range r.oracles {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
