package indicator

import (
	"math"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// Maximum is the largest of the last period values. Fed with bar highs.
type Maximum struct {
	extremum
}

// Minimum is the smallest of the last period values. Fed with bar lows.
type Minimum struct {
	extremum
}

func NewMaximum(name string, period int) (*Maximum, error) {
	if err := validatePeriod("MAX", period); err != nil {
		return nil, err
	}

	return &Maximum{extremum: newExtremum(defaultName(name, "MAX(%d)", period), period, math.Max)}, nil
}

func NewMinimum(name string, period int) (*Minimum, error) {
	if err := validatePeriod("MIN", period); err != nil {
		return nil, err
	}

	return &Minimum{extremum: newExtremum(defaultName(name, "MIN(%d)", period), period, math.Min)}, nil
}

func (m *Maximum) Update(bar types.MarketData) error {
	return m.UpdateValue(bar.EndTime(), bar.High)
}

func (m *Minimum) Update(bar types.MarketData) error {
	return m.UpdateValue(bar.EndTime(), bar.Low)
}

type extremum struct {
	name    string
	period  int
	pick    func(a, b float64) float64
	window  *rollingWindow
	samples int
	current DataPoint
}

func newExtremum(name string, period int, pick func(a, b float64) float64) extremum {
	return extremum{
		name:    name,
		period:  period,
		pick:    pick,
		window:  newRollingWindow(period),
		samples: 0,
		current: DataPoint{},
	}
}

func (e *extremum) Name() string { return e.name }

func (e *extremum) UpdateValue(t time.Time, value float64) error {
	e.samples++
	e.window.add(value)

	result := value
	e.window.each(func(v float64) {
		result = e.pick(result, v)
	})

	e.current = DataPoint{Time: t, Value: result}

	return nil
}

func (e *extremum) IsReady() bool { return e.samples >= e.period }

func (e *extremum) Current() DataPoint { return e.current }

func (e *extremum) Samples() int { return e.samples }

func (e *extremum) WarmUpPeriod() int { return e.period }

func (e *extremum) Reset() {
	e.window.reset()
	e.samples = 0
	e.current = DataPoint{}
}
