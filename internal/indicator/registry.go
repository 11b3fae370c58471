package indicator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// Factory builds a new indicator instance from positional parameters.
type Factory func(name string, params ...any) (Indicator, error)

// IndicatorRegistry manages the indicator factories available to algorithms.
type IndicatorRegistry interface {
	RegisterFactory(indicatorType types.IndicatorType, factory Factory) error
	Create(indicatorType types.IndicatorType, name string, params ...any) (Indicator, error)
	ListIndicators() []types.IndicatorType
	RemoveFactory(indicatorType types.IndicatorType) error
}

// IndicatorRegistryV1 is a concurrency-safe IndicatorRegistry.
type IndicatorRegistryV1 struct {
	factories map[types.IndicatorType]Factory
	mu        sync.RWMutex
}

// NewIndicatorRegistry creates an empty indicator registry.
func NewIndicatorRegistry() IndicatorRegistry {
	return &IndicatorRegistryV1{
		factories: make(map[types.IndicatorType]Factory),
		mu:        sync.RWMutex{},
	}
}

// NewDefaultIndicatorRegistry creates a registry with every built-in indicator.
func NewDefaultIndicatorRegistry() IndicatorRegistry {
	registry := NewIndicatorRegistry()

	// names are unique, so registration cannot fail here
	_ = registry.RegisterFactory(types.IndicatorTypeRSI, rsiFactory)
	_ = registry.RegisterFactory(types.IndicatorTypeStochastic, stochasticFactory)
	_ = registry.RegisterFactory(types.IndicatorTypeSMA, movingAverageFactory(MovingAverageTypeSimple))
	_ = registry.RegisterFactory(types.IndicatorTypeWilders, movingAverageFactory(MovingAverageTypeWilders))
	_ = registry.RegisterFactory(types.IndicatorTypeMaximum, func(name string, params ...any) (Indicator, error) {
		period, err := intParam(params, 0, "period")
		if err != nil {
			return nil, err
		}

		return NewMaximum(name, period)
	})
	_ = registry.RegisterFactory(types.IndicatorTypeMinimum, func(name string, params ...any) (Indicator, error) {
		period, err := intParam(params, 0, "period")
		if err != nil {
			return nil, err
		}

		return NewMinimum(name, period)
	})

	return registry
}

// RegisterFactory adds a factory to the registry.
func (r *IndicatorRegistryV1) RegisterFactory(indicatorType types.IndicatorType, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[indicatorType]; exists {
		return fmt.Errorf("RegisterFactory: indicator with name %s already registered", indicatorType)
	}

	r.factories[indicatorType] = factory

	return nil
}

// Create builds a new indicator of the given type.
func (r *IndicatorRegistryV1) Create(indicatorType types.IndicatorType, name string, params ...any) (Indicator, error) {
	r.mu.RLock()
	factory, exists := r.factories[indicatorType]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator with name %s not found", indicatorType)
	}

	return factory(name, params...)
}

// ListIndicators returns the registered indicator types in sorted order.
func (r *IndicatorRegistryV1) ListIndicators() []types.IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.IndicatorType, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// RemoveFactory removes a factory from the registry.
func (r *IndicatorRegistryV1) RemoveFactory(indicatorType types.IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[indicatorType]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator with name %s not found", indicatorType)
	}

	delete(r.factories, indicatorType)

	return nil
}

// rsiFactory expects: period (int), optional moving average type.
func rsiFactory(name string, params ...any) (Indicator, error) {
	period, err := intParam(params, 0, "period")
	if err != nil {
		return nil, err
	}

	maType := MovingAverageTypeWilders

	if len(params) > 1 {
		switch v := params[1].(type) {
		case MovingAverageType:
			maType = v
		case string:
			maType = MovingAverageType(v)
		default:
			return nil, errors.New(errors.ErrCodeInvalidParameter, "invalid type for moving average type parameter, expected string")
		}
	}

	return NewRelativeStrengthIndex(name, period, maType)
}

// stochasticFactory expects: period, kPeriod, dPeriod (int).
func stochasticFactory(name string, params ...any) (Indicator, error) {
	period, err := intParam(params, 0, "period")
	if err != nil {
		return nil, err
	}

	kPeriod, err := intParam(params, 1, "kPeriod")
	if err != nil {
		return nil, err
	}

	dPeriod, err := intParam(params, 2, "dPeriod")
	if err != nil {
		return nil, err
	}

	return NewStochastic(name, period, kPeriod, dPeriod)
}

func movingAverageFactory(maType MovingAverageType) Factory {
	return func(name string, params ...any) (Indicator, error) {
		period, err := intParam(params, 0, "period")
		if err != nil {
			return nil, err
		}

		return NewMovingAverage(maType, name, period)
	}
}

func intParam(params []any, index int, name string) (int, error) {
	if len(params) <= index {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "missing %s parameter at position %d", name, index)
	}

	value, ok := params[index].(int)
	if !ok {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "invalid type for %s parameter, expected int", name)
	}

	return value, nil
}
