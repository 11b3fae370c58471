package indicator

import (
	"math"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// RelativeStrengthIndex compares the smoothed average of gains with the smoothed
// average of losses over period changes of the input.
type RelativeStrengthIndex struct {
	name        string
	period      int
	maType      MovingAverageType
	averageGain ValueIndicator
	averageLoss ValueIndicator
	previous    float64
	hasPrevious bool
	samples     int
	current     DataPoint
}

// NewRelativeStrengthIndex creates an RSI. An empty name defaults to RSI(period).
func NewRelativeStrengthIndex(name string, period int, maType MovingAverageType) (*RelativeStrengthIndex, error) {
	if err := validatePeriod("RSI", period); err != nil {
		return nil, err
	}

	averageGain, err := NewMovingAverage(maType, "AverageGain", period)
	if err != nil {
		return nil, err
	}

	averageLoss, err := NewMovingAverage(maType, "AverageLoss", period)
	if err != nil {
		return nil, err
	}

	return &RelativeStrengthIndex{
		name:        defaultName(name, "RSI(%d)", period),
		period:      period,
		maType:      maType,
		averageGain: averageGain,
		averageLoss: averageLoss,
		previous:    0,
		hasPrevious: false,
		samples:     0,
		current:     DataPoint{},
	}, nil
}

func (r *RelativeStrengthIndex) Name() string { return r.name }

// Update feeds the bar close.
func (r *RelativeStrengthIndex) Update(bar types.MarketData) error {
	return r.UpdateValue(bar.EndTime(), bar.Close)
}

// UpdateValue feeds a single value observed at t.
func (r *RelativeStrengthIndex) UpdateValue(t time.Time, value float64) error {
	r.samples++

	if !r.hasPrevious {
		r.previous = value
		r.hasPrevious = true
		r.current = DataPoint{Time: t, Value: 0}

		return nil
	}

	change := value - r.previous
	r.previous = value

	if err := r.averageGain.UpdateValue(t, math.Max(change, 0)); err != nil {
		return err
	}

	if err := r.averageLoss.UpdateValue(t, math.Max(-change, 0)); err != nil {
		return err
	}

	averageLoss := r.averageLoss.Current().Value
	if averageLoss == 0 {
		r.current = DataPoint{Time: t, Value: 100}

		return nil
	}

	rs := r.averageGain.Current().Value / averageLoss
	r.current = DataPoint{Time: t, Value: 100 - 100/(1+rs)}

	return nil
}

// IsReady is true once period changes, i.e. period+1 values, were seen.
func (r *RelativeStrengthIndex) IsReady() bool { return r.averageLoss.IsReady() }

func (r *RelativeStrengthIndex) Current() DataPoint { return r.current }

func (r *RelativeStrengthIndex) Samples() int { return r.samples }

func (r *RelativeStrengthIndex) WarmUpPeriod() int { return r.period + 1 }

// MovingAverageType returns the smoothing used for gains and losses.
func (r *RelativeStrengthIndex) MovingAverageType() MovingAverageType { return r.maType }

func (r *RelativeStrengthIndex) Reset() {
	r.averageGain.Reset()
	r.averageLoss.Reset()
	r.previous = 0
	r.hasPrevious = false
	r.samples = 0
	r.current = DataPoint{}
}
