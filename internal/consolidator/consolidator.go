// Package consolidator aggregates bars of one period into bars of a longer period.
package consolidator

import (
	"math"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// DataConsolidatedHandler receives every bar a consolidator emits.
type DataConsolidatedHandler func(bar types.MarketData) error

// Consolidator turns input bars into output bars.
type Consolidator interface {
	// Update feeds a bar. Completed bars are passed to the registered handlers.
	Update(bar types.MarketData) error
	// Scan emits the working bar if its end time is at or before t.
	Scan(t time.Time) error
	// OnDataConsolidated registers a handler for emitted bars.
	OnDataConsolidated(handler DataConsolidatedHandler)
	// Period returns the length of the output bars.
	Period() time.Duration
	// Reset drops the working bar. Handlers stay registered.
	Reset()
}

// TradeBarConsolidator aggregates bars into period-aligned OHLCV bars.
// Output bars start at multiples of the period counted from the UTC midnight of
// the bar's day, or from the Unix epoch for periods longer than a day.
type TradeBarConsolidator struct {
	period   time.Duration
	working  *types.MarketData
	handlers []DataConsolidatedHandler
}

// NewTradeBarConsolidator creates a consolidator producing bars of the given period.
func NewTradeBarConsolidator(period time.Duration) (*TradeBarConsolidator, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "consolidation period must be positive, got %s", period)
	}

	return &TradeBarConsolidator{
		period:   period,
		working:  nil,
		handlers: nil,
	}, nil
}

// NewResolutionConsolidator creates a consolidator for the given resolution.
func NewResolutionConsolidator(resolution types.Resolution) (*TradeBarConsolidator, error) {
	if !resolution.IsValid() {
		return nil, errors.Newf(errors.ErrCodeInvalidResolution, "unsupported resolution: %s", resolution)
	}

	return NewTradeBarConsolidator(resolution.Duration())
}

// Period implements Consolidator.
func (c *TradeBarConsolidator) Period() time.Duration {
	return c.period
}

// OnDataConsolidated implements Consolidator.
func (c *TradeBarConsolidator) OnDataConsolidated(handler DataConsolidatedHandler) {
	c.handlers = append(c.handlers, handler)
}

// Reset implements Consolidator.
func (c *TradeBarConsolidator) Reset() {
	c.working = nil
}

// WorkingBar returns a copy of the bar currently being built.
func (c *TradeBarConsolidator) WorkingBar() (types.MarketData, bool) {
	if c.working == nil {
		return types.MarketData{}, false
	}

	return *c.working, true
}

// Update implements Consolidator.
func (c *TradeBarConsolidator) Update(bar types.MarketData) error {
	if c.working != nil && !bar.Time.Before(c.working.EndTime()) {
		if err := c.emit(); err != nil {
			return err
		}
	}

	if c.working == nil {
		start := roundDown(bar.Time, c.period)
		c.working = &types.MarketData{
			Id:     "",
			Symbol: bar.Symbol,
			Time:   start,
			Period: c.period,
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		}
	} else {
		c.working.High = math.Max(c.working.High, bar.High)
		c.working.Low = math.Min(c.working.Low, bar.Low)
		c.working.Close = bar.Close
		c.working.Volume += bar.Volume
	}

	if !bar.EndTime().Before(c.working.EndTime()) {
		return c.emit()
	}

	return nil
}

// Scan implements Consolidator.
func (c *TradeBarConsolidator) Scan(t time.Time) error {
	if c.working != nil && !t.Before(c.working.EndTime()) {
		return c.emit()
	}

	return nil
}

func (c *TradeBarConsolidator) emit() error {
	bar := *c.working
	c.working = nil

	for _, handler := range c.handlers {
		if err := handler(bar); err != nil {
			return err
		}
	}

	return nil
}

// Consolidate aggregates bars in one pass and returns only the completed output
// bars whose end time is at or before until.
func Consolidate(bars []types.MarketData, period time.Duration, until time.Time) ([]types.MarketData, error) {
	c, err := NewTradeBarConsolidator(period)
	if err != nil {
		return nil, err
	}

	result := make([]types.MarketData, 0, len(bars))

	c.OnDataConsolidated(func(bar types.MarketData) error {
		result = append(result, bar)

		return nil
	})

	for _, bar := range bars {
		if err := c.Update(bar); err != nil {
			return nil, err
		}
	}

	if err := c.Scan(until); err != nil {
		return nil, err
	}

	return result, nil
}

func roundDown(t time.Time, period time.Duration) time.Time {
	t = t.UTC()
	if period > 24*time.Hour {
		return t.Truncate(period)
	}

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return midnight.Add(t.Sub(midnight).Truncate(period))
}
