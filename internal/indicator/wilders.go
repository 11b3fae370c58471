package indicator

import (
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// WildersMovingAverage seeds with the simple average of the first period values
// and then applies value*k + previous*(1-k) with k = 1/period.
type WildersMovingAverage struct {
	name    string
	period  int
	k       float64
	sum     float64
	samples int
	current DataPoint
}

func NewWildersMovingAverage(name string, period int) (*WildersMovingAverage, error) {
	if err := validatePeriod("Wilders", period); err != nil {
		return nil, err
	}

	return &WildersMovingAverage{
		name:    defaultName(name, "WWMA(%d)", period),
		period:  period,
		k:       1 / float64(period),
		sum:     0,
		samples: 0,
		current: DataPoint{},
	}, nil
}

func (w *WildersMovingAverage) Name() string { return w.name }

func (w *WildersMovingAverage) Update(bar types.MarketData) error {
	return w.UpdateValue(bar.EndTime(), bar.Close)
}

func (w *WildersMovingAverage) UpdateValue(t time.Time, value float64) error {
	w.samples++

	if w.samples <= w.period {
		w.sum += value
		w.current = DataPoint{Time: t, Value: w.sum / float64(w.samples)}

		return nil
	}

	w.current = DataPoint{Time: t, Value: value*w.k + w.current.Value*(1-w.k)}

	return nil
}

func (w *WildersMovingAverage) IsReady() bool { return w.samples >= w.period }

func (w *WildersMovingAverage) Current() DataPoint { return w.current }

func (w *WildersMovingAverage) Samples() int { return w.samples }

func (w *WildersMovingAverage) WarmUpPeriod() int { return w.period }

func (w *WildersMovingAverage) Reset() {
	w.sum = 0
	w.samples = 0
	w.current = DataPoint{}
}
