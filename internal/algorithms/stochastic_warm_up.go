package algorithms

import (
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/consolidator"
	"github.com/rxtech-lab/argo-algorithm/internal/indicator"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// StochasticWarmUpName is the registry name of StochasticWarmUp.
const StochasticWarmUpName = "StochasticWarmUp"

// StochasticWarmUp checks that indicators warmed with WarmUpIndicator agree
// with indicators warmed by hand from History. Both pairs hang off the same
// daily consolidator of hourly SPY bars.
type StochasticWarmUp struct {
	api        algorithm.Api
	spy        types.Symbol
	rsi        *indicator.RelativeStrengthIndex
	sto        *indicator.Stochastic
	rsiHistory *indicator.RelativeStrengthIndex
	stoHistory *indicator.Stochastic
	received   bool
}

func NewStochasticWarmUp() *StochasticWarmUp {
	return &StochasticWarmUp{
		api:        nil,
		spy:        types.Symbol{},
		rsi:        nil,
		sto:        nil,
		rsiHistory: nil,
		stoHistory: nil,
		received:   false,
	}
}

func (a *StochasticWarmUp) Name() string {
	return StochasticWarmUpName
}

func (a *StochasticWarmUp) Initialize(api algorithm.Api) error {
	a.api = api

	if err := api.SetStartDate(2020, time.January, 1); err != nil {
		return err
	}

	if err := api.SetEndDate(2020, time.February, 1); err != nil {
		return err
	}

	if err := api.SetCash(100000); err != nil {
		return err
	}

	spy, err := api.AddEquity("SPY", types.ResolutionHour)
	if err != nil {
		return err
	}

	a.spy = spy

	daily, err := consolidator.NewTradeBarConsolidator(24 * time.Hour)
	if err != nil {
		return err
	}

	if a.rsi, err = indicator.NewRelativeStrengthIndex("", 14, indicator.MovingAverageTypeWilders); err != nil {
		return err
	}

	if a.sto, err = indicator.NewStochastic("FIRST", 14, 3, 3); err != nil {
		return err
	}

	if a.rsiHistory, err = indicator.NewRelativeStrengthIndex("", 14, indicator.MovingAverageTypeWilders); err != nil {
		return err
	}

	if a.stoHistory, err = indicator.NewStochastic("SECOND", 14, 3, 3); err != nil {
		return err
	}

	for _, ind := range []indicator.Indicator{a.rsi, a.sto} {
		if err := api.RegisterIndicatorWithConsolidator(spy, ind, daily); err != nil {
			return err
		}

		if err := api.WarmUpIndicator(spy, ind, types.ResolutionDaily); err != nil {
			return err
		}
	}

	if err := api.RegisterIndicatorWithConsolidator(spy, a.rsiHistory, daily); err != nil {
		return err
	}

	if err := api.RegisterIndicatorWithConsolidator(spy, a.stoHistory, daily); err != nil {
		return err
	}

	return a.warmUpFromHistory()
}

// warmUpFromHistory feeds the second pair the same bars WarmUpIndicator used.
// The RSI goes through UpdateValue so both update paths are exercised.
// Each pair member gets exactly its own WarmUpPeriod of bars, matching what
// WarmUpIndicator requests, not one fixed window shared by both.
func (a *StochasticWarmUp) warmUpFromHistory() error {
	bars, err := a.api.History(a.spy, a.rsiHistory.WarmUpPeriod(), types.ResolutionDaily)
	if err != nil {
		return err
	}

	for _, bar := range bars {
		if err := a.rsiHistory.UpdateValue(bar.EndTime(), bar.Close); err != nil {
			return err
		}
	}

	bars, err = a.api.History(a.spy, a.stoHistory.WarmUpPeriod(), types.ResolutionDaily)
	if err != nil {
		return err
	}

	for _, bar := range bars {
		if err := a.stoHistory.Update(bar); err != nil {
			return err
		}
	}

	return nil
}

func (a *StochasticWarmUp) OnData(slice types.Slice) error {
	if a.api.IsWarmingUp() || !slice.ContainsKey(a.spy) {
		return nil
	}

	a.received = true

	if a.rsi.Current().Value != a.rsiHistory.Current().Value {
		return errors.Newf(errors.ErrCodeIndicatorCalculation, "values of indicators differ: %s: %v | %s: %v",
			a.rsi.Name(), a.rsi.Current().Value, a.rsiHistory.Name(), a.rsiHistory.Current().Value)
	}

	if a.sto.StochK().Value != a.stoHistory.StochK().Value {
		return errors.Newf(errors.ErrCodeIndicatorCalculation, "stoch K values of indicators differ: %s.StochK: %v | %s.StochK: %v",
			a.sto.Name(), a.sto.StochK().Value, a.stoHistory.Name(), a.stoHistory.StochK().Value)
	}

	if a.sto.StochD().Value != a.stoHistory.StochD().Value {
		return errors.Newf(errors.ErrCodeIndicatorCalculation, "stoch D values of indicators differ: %s.StochD: %v | %s.StochD: %v",
			a.sto.Name(), a.sto.StochD().Value, a.stoHistory.Name(), a.stoHistory.StochD().Value)
	}

	return nil
}

func (a *StochasticWarmUp) OnEndOfAlgorithm() error {
	if !a.received {
		return errors.New(errors.ErrCodeInsufficientData, "no data points received")
	}

	return nil
}

// Ready reports whether both warmed indicators are ready.
func (a *StochasticWarmUp) Ready() bool {
	return a.rsi.IsReady() && a.sto.IsReady()
}
