// Package algorithms holds the sample algorithms shipped with the backtest CLI.
package algorithms

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// Factory builds a fresh algorithm instance. Algorithms keep per-run state, so
// every run gets its own instance.
type Factory func() algorithm.Algorithm

// Registry maps algorithm names to factories.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mu:        sync.RWMutex{},
	}
}

// NewDefaultRegistry creates a registry with every sample algorithm.
// Printed statistics go to output, or to stdout when output is nil.
func NewDefaultRegistry(output io.Writer) *Registry {
	registry := NewRegistry()

	// names are unique, so registration cannot fail here
	_ = registry.Register(StatisticsServiceDemoName, func() algorithm.Algorithm {
		return NewStatisticsServiceDemo(output)
	})
	_ = registry.Register(ConsolidateHourBarsName, func() algorithm.Algorithm {
		return NewConsolidateHourBars()
	})
	_ = registry.Register(StochasticWarmUpName, func() algorithm.Algorithm {
		return NewStochasticWarmUp()
	})
	_ = registry.Register(BuyAndHoldName, func() algorithm.Algorithm {
		return NewBuyAndHold("SPY", types.ResolutionDaily)
	})

	return registry
}

// Register adds a factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "algorithm name and factory are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("Register: algorithm with name %s already registered", name)
	}

	r.factories[name] = factory

	return nil
}

// Create builds a new instance of the named algorithm.
func (r *Registry) Create(name string) (algorithm.Algorithm, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrCodeUnknownAlgorithm, "algorithm with name %s not found", name)
	}

	return factory(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
