package engine

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine"
	"github.com/rxtech-lab/argo-algorithm/internal/metrics"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// runner replays raw bars through an algorithm host one time step at a time.
//
// For every group of raw bars starting at the same time T the runner
//  1. flushes consolidators whose bar ended at or before T,
//  2. delivers the slices closing at or before T,
//  3. feeds the raw bars to prices, subscriptions and indicators,
//  4. delivers the slices closing at or before T plus the data resolution.
type runner struct {
	ctx     context.Context
	host    *algorithmHost
	state   *BacktestState
	metrics *metrics.Metrics

	// tradingStart is the first time that is not warm-up. Zero until known.
	tradingStart time.Time

	// firstTime and lastTime bound the delivered slices outside warm-up.
	firstTime time.Time
	lastTime  time.Time
	lastBar   time.Time
}

func (r *runner) replay(bars func(yield func(types.MarketData, error) bool), total int, onProcessData *engine.OnProcessDataCallback) error {
	rawPeriod := r.host.rawPeriod()

	var group []types.MarketData

	processed := 0

	for bar, err := range bars {
		if err != nil {
			return errors.Wrap(errors.ErrCodeQueryFailed, "failed to read data", err)
		}

		bar.Period = rawPeriod

		if len(group) > 0 && !bar.Time.Equal(group[0].Time) {
			if err := r.step(group); err != nil {
				return err
			}

			group = group[:0]

			if r.host.quit {
				return nil
			}
		}

		group = append(group, bar)
		processed++

		r.metrics.ObserveBar()

		if onProcessData != nil {
			if err := (*onProcessData)(processed, total); err != nil {
				return errors.Wrap(errors.ErrCodeCallbackFailed, "process data callback failed", err)
			}
		}
	}

	if len(group) > 0 {
		if err := r.step(group); err != nil {
			return err
		}
	}

	if r.host.quit || r.lastBar.IsZero() {
		return nil
	}

	flushTime := nextMidnight(r.lastBar)
	if !r.host.endDate.IsZero() {
		flushTime = r.host.endDate.Add(time.Nanosecond)
	}

	if err := r.host.scan(flushTime); err != nil {
		return err
	}

	return r.deliver(flushTime)
}

func (r *runner) step(group []types.MarketData) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}

	t := group[0].Time

	if r.tradingStart.IsZero() {
		r.tradingStart = t.Add(r.host.warmUp)
	}

	if err := r.host.scan(t); err != nil {
		return err
	}

	if err := r.deliver(t); err != nil {
		return err
	}

	for _, bar := range group {
		if err := r.host.update(bar); err != nil {
			return err
		}
	}

	r.lastBar = group[0].EndTime()

	return r.deliver(r.lastBar)
}

// deliver hands every pending slice closing at or before t to the algorithm.
func (r *runner) deliver(t time.Time) error {
	for _, slice := range r.host.due(t) {
		if r.host.quit {
			return nil
		}

		if err := r.ctx.Err(); err != nil {
			return err
		}

		if err := r.onData(slice); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) onData(slice types.Slice) error {
	host := r.host
	host.now = slice.Time
	host.warmingUp = host.warmUp > 0 && !slice.Time.After(r.tradingStart)

	if err := host.algorithm.OnData(slice); err != nil {
		return errors.Wrapf(errors.ErrCodeAlgorithmRuntimeError, err, "algorithm %s failed at %s",
			host.algorithm.Name(), slice.Time.Format(time.RFC3339))
	}

	r.metrics.ObserveSlice()

	if host.warmingUp {
		return nil
	}

	if r.firstTime.IsZero() {
		r.firstTime = slice.Time
	}

	r.lastTime = slice.Time

	if err := r.state.RecordEquity(slice.Time, host.trading.Cash(), host.trading.HoldingsValue()); err != nil {
		return errors.Wrap(errors.ErrCodeStatisticsFailed, "failed to record equity", err)
	}

	return nil
}

// nextMidnight returns the first UTC midnight at or after t.
func nextMidnight(t time.Time) time.Time {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	if midnight.Equal(t) {
		return t
	}

	return midnight.AddDate(0, 0, 1)
}
