package indicator

import (
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// SimpleMovingAverage is the arithmetic mean of the last period values.
// Before it is ready it returns the mean of the values seen so far.
type SimpleMovingAverage struct {
	name    string
	period  int
	window  *rollingWindow
	sum     float64
	samples int
	current DataPoint
}

func NewSimpleMovingAverage(name string, period int) (*SimpleMovingAverage, error) {
	if err := validatePeriod("SMA", period); err != nil {
		return nil, err
	}

	return &SimpleMovingAverage{
		name:    defaultName(name, "SMA(%d)", period),
		period:  period,
		window:  newRollingWindow(period),
		sum:     0,
		samples: 0,
		current: DataPoint{},
	}, nil
}

func (s *SimpleMovingAverage) Name() string { return s.name }

func (s *SimpleMovingAverage) Update(bar types.MarketData) error {
	return s.UpdateValue(bar.EndTime(), bar.Close)
}

func (s *SimpleMovingAverage) UpdateValue(t time.Time, value float64) error {
	s.samples++
	s.sum += value

	if evicted, ok := s.window.add(value); ok {
		s.sum -= evicted
	}

	s.current = DataPoint{Time: t, Value: s.sum / float64(s.window.len())}

	return nil
}

func (s *SimpleMovingAverage) IsReady() bool { return s.samples >= s.period }

func (s *SimpleMovingAverage) Current() DataPoint { return s.current }

func (s *SimpleMovingAverage) Samples() int { return s.samples }

func (s *SimpleMovingAverage) WarmUpPeriod() int { return s.period }

func (s *SimpleMovingAverage) Reset() {
	s.window.reset()
	s.sum = 0
	s.samples = 0
	s.current = DataPoint{}
}
