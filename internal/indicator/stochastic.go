package indicator

import (
	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// Stochastic is the stochastic oscillator. The current value is the fast
// stochastic 100*(close-lowest low)/(highest high-lowest low) over period bars;
// StochK smooths it over kPeriod and StochD smooths StochK over dPeriod.
type Stochastic struct {
	name    string
	period  int
	kPeriod int
	dPeriod int
	maximum *Maximum
	minimum *Minimum
	stochK  *SimpleMovingAverage
	stochD  *SimpleMovingAverage
	samples int
	current DataPoint
}

func NewStochastic(name string, period int, kPeriod int, dPeriod int) (*Stochastic, error) {
	for _, p := range []int{period, kPeriod, dPeriod} {
		if err := validatePeriod("STO", p); err != nil {
			return nil, err
		}
	}

	maximum, err := NewMaximum("", period)
	if err != nil {
		return nil, err
	}

	minimum, err := NewMinimum("", period)
	if err != nil {
		return nil, err
	}

	stochK, err := NewSimpleMovingAverage("StochK", kPeriod)
	if err != nil {
		return nil, err
	}

	stochD, err := NewSimpleMovingAverage("StochD", dPeriod)
	if err != nil {
		return nil, err
	}

	return &Stochastic{
		name:    defaultName(name, "STO(%d,%d,%d)", period, kPeriod, dPeriod),
		period:  period,
		kPeriod: kPeriod,
		dPeriod: dPeriod,
		maximum: maximum,
		minimum: minimum,
		stochK:  stochK,
		stochD:  stochD,
		samples: 0,
		current: DataPoint{},
	}, nil
}

func (s *Stochastic) Name() string { return s.name }

func (s *Stochastic) Update(bar types.MarketData) error {
	s.samples++

	if err := s.maximum.Update(bar); err != nil {
		return err
	}

	if err := s.minimum.Update(bar); err != nil {
		return err
	}

	t := bar.EndTime()
	fast := 0.0

	if denominator := s.maximum.Current().Value - s.minimum.Current().Value; denominator != 0 {
		fast = 100 * (bar.Close - s.minimum.Current().Value) / denominator
	}

	s.current = DataPoint{Time: t, Value: fast}

	if !s.maximum.IsReady() {
		return nil
	}

	if err := s.stochK.UpdateValue(t, fast); err != nil {
		return err
	}

	if !s.stochK.IsReady() {
		return nil
	}

	return s.stochD.UpdateValue(t, s.stochK.Current().Value)
}

// StochK returns the smoothed fast stochastic.
func (s *Stochastic) StochK() DataPoint { return s.stochK.Current() }

// StochD returns the smoothed StochK.
func (s *Stochastic) StochD() DataPoint { return s.stochD.Current() }

func (s *Stochastic) IsReady() bool { return s.stochD.IsReady() }

func (s *Stochastic) Current() DataPoint { return s.current }

func (s *Stochastic) Samples() int { return s.samples }

func (s *Stochastic) WarmUpPeriod() int { return s.period + s.kPeriod + s.dPeriod - 2 }

func (s *Stochastic) Reset() {
	s.maximum.Reset()
	s.minimum.Reset()
	s.stochK.Reset()
	s.stochD.Reset()
	s.samples = 0
	s.current = DataPoint{}
}
