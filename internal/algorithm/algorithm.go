// Package algorithm defines the contract between trading algorithms and the
// backtest host that runs them.
package algorithm

import (
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/consolidator"
	"github.com/rxtech-lab/argo-algorithm/internal/indicator"
	"github.com/rxtech-lab/argo-algorithm/internal/statistics"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// Algorithm is a trading algorithm driven by the host.
type Algorithm interface {
	// Name returns the unique name of the algorithm.
	Name() string
	// Initialize is called once before any data. Subscriptions, dates, cash and
	// indicators are set up here.
	Initialize(api Api) error
	// OnData is called once per time step with every bar that closed at that time.
	OnData(slice types.Slice) error
}

// EndOfAlgorithmHandler is implemented by algorithms that want to be notified
// after the last slice.
type EndOfAlgorithmHandler interface {
	OnEndOfAlgorithm() error
}

// VersionedAlgorithm is implemented by algorithms that require a specific engine version.
type VersionedAlgorithm interface {
	EngineVersion() string
}

// Holding is an open position in one symbol.
type Holding struct {
	Symbol       types.Symbol
	Quantity     float64
	AveragePrice float64
	LastPrice    float64
}

// MarketValue returns quantity times the last price.
func (h Holding) MarketValue() float64 {
	return h.Quantity * h.LastPrice
}

// UnrealizedPnL returns the open profit or loss at the last price.
func (h Holding) UnrealizedPnL() float64 {
	return h.Quantity * (h.LastPrice - h.AveragePrice)
}

// PortfolioView is a read-only view of the portfolio.
type PortfolioView interface {
	Cash() float64
	TotalValue() float64
	Holding(symbol types.Symbol) (Holding, bool)
	Holdings() []Holding
	Invested() bool
	// BuyingPower returns the largest quantity of symbol the cash can buy, fees included.
	BuyingPower(symbol types.Symbol) float64
}

// Api is the surface the host exposes to algorithms.
type Api interface {
	// SetStartDate sets the first day of the backtest.
	SetStartDate(year int, month time.Month, day int) error
	// SetEndDate sets the last day of the backtest. The whole day is included.
	SetEndDate(year int, month time.Month, day int) error
	// SetCash sets the starting cash.
	SetCash(amount float64) error
	// SetWarmUp replays period of data before the start date with IsWarmingUp true.
	SetWarmUp(period time.Duration) error
	// AddEquity subscribes to an equity at the given resolution.
	AddEquity(ticker string, resolution types.Resolution) (types.Symbol, error)

	// SetStatisticsService plugs a statistics service. Nil restores the default one.
	SetStatisticsService(service statistics.Service)
	// Statistics returns the results container of the active statistics service.
	Statistics() types.StatisticsResults
	// SetSummaryStatistic forwards a summary entry to the active statistics service.
	SetSummaryStatistic(name string, value string)

	Log(message string)
	Debug(message string)
	Error(message string)

	// Time returns the current algorithm time.
	Time() time.Time
	StartDate() time.Time
	EndDate() time.Time
	IsWarmingUp() bool

	// RegisterIndicator updates ind with bars of symbol consolidated to resolution.
	RegisterIndicator(symbol types.Symbol, ind indicator.Indicator, resolution types.Resolution) error
	// RegisterIndicatorWithConsolidator updates ind with every bar emitted by c.
	// The consolidator is fed with the raw bars of symbol.
	RegisterIndicatorWithConsolidator(symbol types.Symbol, ind indicator.Indicator, c consolidator.Consolidator) error
	// WarmUpIndicator feeds ind with history of symbol at resolution until it is ready.
	WarmUpIndicator(symbol types.Symbol, ind indicator.Indicator, resolution types.Resolution) error
	// History returns the last count complete bars at resolution ending at or
	// before the current time, oldest first.
	History(symbol types.Symbol, count int, resolution types.Resolution) ([]types.MarketData, error)

	// MarketOrder fills quantity at the last close. A negative quantity sells.
	MarketOrder(symbol types.Symbol, quantity float64) (types.Order, error)
	// Liquidate sells the whole position in symbol.
	Liquidate(symbol types.Symbol) (types.Order, error)
	Portfolio() PortfolioView

	// Quit stops the run after the current slice.
	Quit(reason string)
}
