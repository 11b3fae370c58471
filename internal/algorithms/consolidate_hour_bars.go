package algorithms

import (
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/indicator"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// ConsolidateHourBarsName is the registry name of ConsolidateHourBars.
const ConsolidateHourBarsName = "ConsolidateHourBars"

const dayLayout = "2006-01-02"

// ConsolidateHourBars subscribes to hourly SPY bars and registers a daily RSI.
// Until the month of the end date it records the RSI value per day. On the
// first bar of the final month it rebuilds the RSI from daily history and
// fails when any day disagrees with the recorded value.
type ConsolidateHourBars struct {
	api     algorithm.Api
	spy     types.Symbol
	rsi     *indicator.RelativeStrengthIndex
	replay  *indicator.RelativeStrengthIndex
	values  map[string]float64
	days    int
	checked int
}

func NewConsolidateHourBars() *ConsolidateHourBars {
	return &ConsolidateHourBars{
		api:     nil,
		spy:     types.Symbol{},
		rsi:     nil,
		replay:  nil,
		values:  make(map[string]float64),
		days:    0,
		checked: 0,
	}
}

func (a *ConsolidateHourBars) Name() string {
	return ConsolidateHourBarsName
}

func (a *ConsolidateHourBars) Initialize(api algorithm.Api) error {
	a.api = api

	if err := api.SetStartDate(2020, time.May, 1); err != nil {
		return err
	}

	if err := api.SetEndDate(2020, time.June, 5); err != nil {
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

	a.rsi, err = indicator.NewRelativeStrengthIndex("First", 15, indicator.MovingAverageTypeWilders)
	if err != nil {
		return err
	}

	if err := api.RegisterIndicator(spy, a.rsi, types.ResolutionDaily); err != nil {
		return err
	}

	a.replay, err = indicator.NewRelativeStrengthIndex("Second", 15, indicator.MovingAverageTypeWilders)

	return err
}

func (a *ConsolidateHourBars) OnData(slice types.Slice) error {
	if a.api.IsWarmingUp() || !slice.ContainsKey(a.spy) {
		return nil
	}

	now := a.api.Time()
	if now.Month() == a.api.EndDate().Month() {
		return a.compare()
	}

	a.values[now.Format(dayLayout)] = a.rsi.Current().Value
	if now.Hour() == 16 {
		a.days++
	}

	return nil
}

// compare replays the daily history through the second RSI and quits.
func (a *ConsolidateHourBars) compare() error {
	if a.days == 0 {
		return errors.New(errors.ErrCodeInsufficientData, "no complete days were recorded before the final month")
	}

	history, err := a.api.History(a.spy, a.days, types.ResolutionDaily)
	if err != nil {
		return err
	}

	for _, bar := range history {
		end := bar.EndTime()
		if err := a.replay.UpdateValue(end, bar.Close); err != nil {
			return err
		}

		expected, ok := a.values[end.Format(dayLayout)]
		if !ok {
			continue
		}

		a.checked++

		if got := a.replay.Current().Value; got != expected {
			return errors.Newf(errors.ErrCodeIndicatorCalculation,
				"both %s and %s should have the same values, but they differ on %s. %s: %v | %s: %v",
				a.rsi.Name(), a.replay.Name(), end.Format(dayLayout), a.rsi.Name(), expected, a.replay.Name(), got)
		}
	}

	if a.checked == 0 {
		return errors.New(errors.ErrCodeInsufficientData, "daily history did not overlap the recorded values")
	}

	a.api.Quit("daily RSI values match")

	return nil
}

// Checked returns the number of days compared.
func (a *ConsolidateHourBars) Checked() int {
	return a.checked
}
