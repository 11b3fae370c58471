// Package indicator implements streaming technical indicators. Each indicator is
// fed one bar or value at a time and keeps only the state it needs.
package indicator

import (
	"fmt"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// DataPoint is an indicator value stamped with the time of the input that produced it.
type DataPoint struct {
	Time  time.Time
	Value float64
}

// Indicator is a technical indicator updated with bars.
type Indicator interface {
	// Name returns the display name of the indicator.
	Name() string
	// Update feeds a bar to the indicator.
	Update(bar types.MarketData) error
	// IsReady reports whether the indicator has seen enough samples.
	IsReady() bool
	// Current returns the latest value.
	Current() DataPoint
	// Samples returns the number of inputs received since the last reset.
	Samples() int
	// WarmUpPeriod returns the number of inputs required before IsReady is true.
	WarmUpPeriod() int
	// Reset clears all state.
	Reset()
}

// ValueIndicator is an indicator that can also be fed single values.
type ValueIndicator interface {
	Indicator
	// UpdateValue feeds a single value observed at t.
	UpdateValue(t time.Time, value float64) error
}

// MovingAverageType selects the smoothing used by composite indicators.
type MovingAverageType string

const (
	MovingAverageTypeSimple  MovingAverageType = "simple"
	MovingAverageTypeWilders MovingAverageType = "wilders"
)

// NewMovingAverage creates a moving average of the given type.
func NewMovingAverage(maType MovingAverageType, name string, period int) (ValueIndicator, error) {
	switch maType {
	case MovingAverageTypeSimple:
		return NewSimpleMovingAverage(name, period)
	case MovingAverageTypeWilders:
		return NewWildersMovingAverage(name, period)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported moving average type: %s", maType)
	}
}

func validatePeriod(name string, period int) error {
	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "%s: period must be a positive integer, got %d", name, period)
	}

	return nil
}

func defaultName(name string, format string, args ...any) string {
	if name != "" {
		return name
	}

	return fmt.Sprintf(format, args...)
}
