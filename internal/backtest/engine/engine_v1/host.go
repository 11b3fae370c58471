package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-algorithm/internal/consolidator"
	"github.com/rxtech-lab/argo-algorithm/internal/indicator"
	"github.com/rxtech-lab/argo-algorithm/internal/log"
	"github.com/rxtech-lab/argo-algorithm/internal/logger"
	"github.com/rxtech-lab/argo-algorithm/internal/metrics"
	"github.com/rxtech-lab/argo-algorithm/internal/statistics"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"go.uber.org/zap"
)

// maxHistoryAttempts bounds how often History doubles its raw bar request.
const maxHistoryAttempts = 8

type subscription struct {
	symbol     types.Symbol
	resolution types.Resolution
	// consolidator is nil when the subscription uses the raw data resolution.
	consolidator consolidator.Consolidator
}

// indicatorBinding feeds the raw bars of ticker to an indicator, directly or
// through a consolidator. A consolidator shared by several indicators is fed
// only by the binding that registered it first.
type indicatorBinding struct {
	ticker       string
	indicator    indicator.Indicator
	consolidator consolidator.Consolidator
	feeds        bool
}

// algorithmHost implements algorithm.Api for one run of one algorithm.
type algorithmHost struct {
	algorithm  algorithm.Algorithm
	runID      string
	logger     *logger.Logger
	logs       log.Log
	datasource datasource.DataSource
	trading    *BacktestTrading
	metrics    *metrics.Metrics

	defaultStatistics *statistics.DefaultService
	statistics        statistics.Service

	rawResolution types.Resolution
	startDate     time.Time
	endDate       time.Time
	initialCash   float64
	warmUp        time.Duration
	warmingUp     bool
	now           time.Time

	subscriptions map[string]*subscription
	bindings      []*indicatorBinding
	pending       map[time.Time]types.Slice

	quit       bool
	quitReason string
}

type hostConfig struct {
	algorithm     algorithm.Algorithm
	runID         string
	logger        *logger.Logger
	logs          log.Log
	datasource    datasource.DataSource
	trading       *BacktestTrading
	metrics       *metrics.Metrics
	rawResolution types.Resolution
	initialCash   float64
}

func newAlgorithmHost(config hostConfig) *algorithmHost {
	defaultStatistics := statistics.NewDefaultService()

	return &algorithmHost{
		algorithm:         config.algorithm,
		runID:             config.runID,
		logger:            config.logger,
		logs:              config.logs,
		datasource:        config.datasource,
		trading:           config.trading,
		metrics:           config.metrics,
		defaultStatistics: defaultStatistics,
		statistics:        defaultStatistics,
		rawResolution:     config.rawResolution,
		startDate:         time.Time{},
		endDate:           time.Time{},
		initialCash:       config.initialCash,
		warmUp:            0,
		warmingUp:         false,
		now:               time.Time{},
		subscriptions:     make(map[string]*subscription),
		bindings:          nil,
		pending:           make(map[time.Time]types.Slice),
		quit:              false,
		quitReason:        "",
	}
}

func (h *algorithmHost) rawPeriod() time.Duration {
	return h.rawResolution.Duration()
}

// SetStartDate implements algorithm.Api.
func (h *algorithmHost) SetStartDate(year int, month time.Month, day int) error {
	date, err := newDate(year, month, day)
	if err != nil {
		return err
	}

	h.startDate = date

	return nil
}

// SetEndDate implements algorithm.Api.
func (h *algorithmHost) SetEndDate(year int, month time.Month, day int) error {
	date, err := newDate(year, month, day)
	if err != nil {
		return err
	}

	h.endDate = endOfDay(date)

	return nil
}

func newDate(year int, month time.Month, day int) (time.Time, error) {
	if year <= 0 || month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, errors.Newf(errors.ErrCodeInvalidDate, "invalid date %04d-%02d-%02d", year, int(month), day)
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflowing days, e.g. February 30th
	if date.Day() != day {
		return time.Time{}, errors.Newf(errors.ErrCodeInvalidDate, "invalid date %04d-%02d-%02d", year, int(month), day)
	}

	return date, nil
}

func endOfDay(date time.Time) time.Time {
	return date.Add(24*time.Hour - time.Nanosecond)
}

// SetCash implements algorithm.Api.
func (h *algorithmHost) SetCash(amount float64) error {
	if amount < 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "cash must not be negative, got %v", amount)
	}

	h.initialCash = amount
	h.trading.SetCash(amount)

	return nil
}

// SetWarmUp implements algorithm.Api.
func (h *algorithmHost) SetWarmUp(period time.Duration) error {
	if period < 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "warm-up period must not be negative, got %s", period)
	}

	h.warmUp = period

	return nil
}

// AddEquity implements algorithm.Api.
func (h *algorithmHost) AddEquity(ticker string, resolution types.Resolution) (types.Symbol, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return types.Symbol{}, errors.New(errors.ErrCodeInvalidParameter, "ticker must not be empty")
	}

	if err := h.checkResolution(resolution); err != nil {
		return types.Symbol{}, err
	}

	symbol := types.NewEquitySymbol(ticker)
	sub := &subscription{symbol: symbol, resolution: resolution, consolidator: nil}

	if resolution != h.rawResolution {
		c, err := consolidator.NewResolutionConsolidator(resolution)
		if err != nil {
			return types.Symbol{}, err
		}

		c.OnDataConsolidated(h.enqueue)
		sub.consolidator = c
	}

	h.subscriptions[ticker] = sub

	h.logger.Debug("Equity subscription added",
		zap.String("ticker", ticker),
		zap.String("resolution", string(resolution)),
	)

	return symbol, nil
}

func (h *algorithmHost) checkResolution(resolution types.Resolution) error {
	if !resolution.IsValid() {
		return errors.Newf(errors.ErrCodeInvalidResolution, "unsupported resolution: %q", resolution)
	}

	if resolution.Duration() < h.rawPeriod() {
		return errors.Newf(errors.ErrCodeInvalidResolution,
			"resolution %s is finer than the data resolution %s", resolution, h.rawResolution)
	}

	return nil
}

// Symbols returns the subscribed tickers in sorted order.
func (h *algorithmHost) Symbols() []string {
	tickers := make([]string, 0, len(h.subscriptions))
	for ticker := range h.subscriptions {
		tickers = append(tickers, ticker)
	}

	sort.Strings(tickers)

	return tickers
}

// SetStatisticsService implements algorithm.Api.
func (h *algorithmHost) SetStatisticsService(service statistics.Service) {
	if service == nil {
		h.statistics = h.defaultStatistics

		return
	}

	h.statistics = service
}

// Statistics implements algorithm.Api.
func (h *algorithmHost) Statistics() types.StatisticsResults {
	return h.statistics.StatisticsResults()
}

// SetSummaryStatistic implements algorithm.Api.
func (h *algorithmHost) SetSummaryStatistic(name string, value string) {
	h.statistics.SetSummaryStatistic(name, value)
}

// Log implements algorithm.Api.
func (h *algorithmHost) Log(message string) {
	h.write(types.LogLevelInfo, message)
}

// Debug implements algorithm.Api.
func (h *algorithmHost) Debug(message string) {
	h.write(types.LogLevelDebug, message)
}

// Error implements algorithm.Api.
func (h *algorithmHost) Error(message string) {
	h.write(types.LogLevelError, message)
}

func (h *algorithmHost) write(level types.LogLevel, message string) {
	fields := []zap.Field{
		zap.Time("algorithm_time", h.now),
		zap.Bool("warming_up", h.warmingUp),
	}

	switch level {
	case types.LogLevelDebug:
		h.logger.Debug(message, fields...)
	case types.LogLevelError:
		h.logger.Error(message, fields...)
	default:
		h.logger.Info(message, fields...)
	}

	if h.logs == nil {
		return
	}

	err := h.logs.Log(log.LogEntry{
		Timestamp: h.now,
		Algorithm: h.algorithm.Name(),
		Level:     level,
		Message:   message,
		WarmingUp: h.warmingUp,
	})
	if err != nil {
		h.logger.Warn("Failed to store algorithm log", zap.Error(err))
	}
}

// Time implements algorithm.Api.
func (h *algorithmHost) Time() time.Time {
	return h.now
}

// StartDate implements algorithm.Api.
func (h *algorithmHost) StartDate() time.Time {
	return h.startDate
}

// EndDate implements algorithm.Api.
func (h *algorithmHost) EndDate() time.Time {
	return h.endDate
}

// IsWarmingUp implements algorithm.Api.
func (h *algorithmHost) IsWarmingUp() bool {
	return h.warmingUp
}

// RegisterIndicator implements algorithm.Api.
func (h *algorithmHost) RegisterIndicator(symbol types.Symbol, ind indicator.Indicator, resolution types.Resolution) error {
	if err := h.checkResolution(resolution); err != nil {
		return err
	}

	if resolution == h.rawResolution {
		return h.bind(symbol, ind, nil)
	}

	c, err := consolidator.NewResolutionConsolidator(resolution)
	if err != nil {
		return err
	}

	return h.RegisterIndicatorWithConsolidator(symbol, ind, c)
}

// RegisterIndicatorWithConsolidator implements algorithm.Api.
func (h *algorithmHost) RegisterIndicatorWithConsolidator(symbol types.Symbol, ind indicator.Indicator, c consolidator.Consolidator) error {
	if c == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "consolidator must not be nil")
	}

	if c.Period() < h.rawPeriod() {
		return errors.Newf(errors.ErrCodeInvalidPeriod,
			"consolidator period %s is shorter than the data resolution %s", c.Period(), h.rawResolution)
	}

	if err := h.bind(symbol, ind, c); err != nil {
		return err
	}

	c.OnDataConsolidated(ind.Update)

	return nil
}

func (h *algorithmHost) bind(symbol types.Symbol, ind indicator.Indicator, c consolidator.Consolidator) error {
	if ind == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "indicator must not be nil")
	}

	if _, ok := h.subscriptions[symbol.Ticker]; !ok {
		return errors.Newf(errors.ErrCodeSymbolNotSubscribed, "symbol %s is not subscribed", symbol.Ticker)
	}

	feeds := true

	for _, binding := range h.bindings {
		if c != nil && binding.consolidator == c {
			if binding.ticker != symbol.Ticker {
				return errors.Newf(errors.ErrCodeInvalidParameter,
					"consolidator is already fed with %s", binding.ticker)
			}

			feeds = false
		}
	}

	h.bindings = append(h.bindings, &indicatorBinding{
		ticker:       symbol.Ticker,
		indicator:    ind,
		consolidator: c,
		feeds:        feeds,
	})

	return nil
}

// WarmUpIndicator implements algorithm.Api.
func (h *algorithmHost) WarmUpIndicator(symbol types.Symbol, ind indicator.Indicator, resolution types.Resolution) error {
	if ind == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "indicator must not be nil")
	}

	bars, err := h.History(symbol, ind.WarmUpPeriod(), resolution)
	if err != nil {
		return err
	}

	for _, bar := range bars {
		if err := ind.Update(bar); err != nil {
			return errors.Wrapf(errors.ErrCodeIndicatorCalculation, err, "failed to warm up %s", ind.Name())
		}
	}

	if !ind.IsReady() {
		h.logger.Debug("Indicator not ready after warm-up",
			zap.String("indicator", ind.Name()),
			zap.Int("samples", ind.Samples()),
			zap.Int("required", ind.WarmUpPeriod()),
		)
	}

	return nil
}

// History implements algorithm.Api.
func (h *algorithmHost) History(symbol types.Symbol, count int, resolution types.Resolution) ([]types.MarketData, error) {
	if count <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "history count must be positive, got %d", count)
	}

	if err := h.checkResolution(resolution); err != nil {
		return nil, err
	}

	now := h.now
	// during Initialize history ends at the start date
	if now.IsZero() {
		now = h.startDate
	}

	if now.IsZero() {
		return nil, errors.New(errors.ErrCodeInsufficientData, "history is not available before the start date is known")
	}

	rawPeriod := h.rawPeriod()
	end := now.Add(-rawPeriod)

	if resolution == h.rawResolution {
		return h.rawHistory(end, symbol.Ticker, count)
	}

	period := resolution.Duration()
	ratio := int((period + rawPeriod - 1) / rawPeriod)
	requested := (count + 1) * ratio

	var result []types.MarketData

	for attempt := 0; attempt < maxHistoryAttempts; attempt++ {
		raw, err := h.rawHistory(end, symbol.Ticker, requested)
		if err != nil {
			return nil, err
		}

		bars, err := consolidator.Consolidate(raw, period, now)
		if err != nil {
			return nil, err
		}

		// the oldest bar may be missing raw bars before the requested window
		if len(raw) == requested && len(bars) > 0 {
			bars = bars[1:]
		}

		result = lastN(bars, count)

		if len(result) == count || len(raw) < requested {
			break
		}

		requested *= 2
	}

	return result, nil
}

func (h *algorithmHost) rawHistory(end time.Time, ticker string, count int) ([]types.MarketData, error) {
	bars, err := h.datasource.GetPreviousNumberOfDataPoints(end, ticker, count)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoricalDataFailed, err, "failed to read history of %s", ticker)
	}

	for i := range bars {
		bars[i].Period = h.rawPeriod()
	}

	return bars, nil
}

func lastN(bars []types.MarketData, n int) []types.MarketData {
	if len(bars) <= n {
		return bars
	}

	return bars[len(bars)-n:]
}

// MarketOrder implements algorithm.Api.
func (h *algorithmHost) MarketOrder(symbol types.Symbol, quantity float64) (types.Order, error) {
	return h.placeOrder(symbol, quantity, types.Reason{Reason: types.OrderReasonAlgorithm, Message: "market order"})
}

// Liquidate implements algorithm.Api.
func (h *algorithmHost) Liquidate(symbol types.Symbol) (types.Order, error) {
	holding, ok := h.trading.Holding(symbol)
	if !ok {
		return types.Order{}, errors.Newf(errors.ErrCodePositionNotFound, "no position in %s", symbol.Ticker)
	}

	return h.placeOrder(symbol, -holding.Quantity, types.Reason{Reason: types.OrderReasonLiquidate, Message: "liquidate"})
}

func (h *algorithmHost) placeOrder(symbol types.Symbol, quantity float64, reason types.Reason) (types.Order, error) {
	if h.warmingUp {
		order := types.Order{
			OrderID:       uuid.New().String(),
			Symbol:        symbol.Ticker,
			Side:          types.PurchaseTypeBuy,
			OrderType:     types.OrderTypeMarket,
			Quantity:      quantity,
			Price:         0,
			Timestamp:     h.now,
			Status:        types.OrderStatusRejected,
			Reason:        types.Reason{Reason: types.OrderReasonWarmingUp, Message: "orders are not accepted during warm-up"},
			AlgorithmName: h.algorithm.Name(),
			Fee:           0,
			RealizedPnL:   0,
		}

		if quantity < 0 {
			order.Side = types.PurchaseTypeSell
			order.Quantity = -quantity
		}

		h.logger.Debug("Order rejected during warm-up", zap.String("symbol", symbol.Ticker), zap.Float64("quantity", quantity))

		return order, nil
	}

	order, err := h.trading.PlaceMarketOrder(OrderRequest{
		Symbol:        symbol.Ticker,
		Quantity:      quantity,
		Time:          h.now,
		Reason:        reason,
		AlgorithmName: h.algorithm.Name(),
	})
	if err != nil {
		return types.Order{}, err
	}

	h.metrics.ObserveOrder(order)

	h.logger.Debug("Order processed",
		zap.String("order_id", order.OrderID),
		zap.String("symbol", order.Symbol),
		zap.String("side", string(order.Side)),
		zap.Float64("quantity", order.Quantity),
		zap.Float64("price", order.Price),
		zap.String("status", string(order.Status)),
	)

	return order, nil
}

// Portfolio implements algorithm.Api.
func (h *algorithmHost) Portfolio() algorithm.PortfolioView {
	return h.trading
}

// Quit implements algorithm.Api.
func (h *algorithmHost) Quit(reason string) {
	h.quit = true
	h.quitReason = reason

	h.logger.Info("Algorithm requested quit", zap.String("reason", reason))
}

// enqueue adds a bar to the slice closing at the bar's end time.
func (h *algorithmHost) enqueue(bar types.MarketData) error {
	end := bar.EndTime()

	slice, ok := h.pending[end]
	if !ok {
		slice = types.NewSlice(end)
		h.pending[end] = slice
	}

	slice.Bars[bar.Symbol] = bar

	return nil
}

// scan flushes every consolidator whose working bar ended at or before t.
func (h *algorithmHost) scan(t time.Time) error {
	for _, ticker := range h.Symbols() {
		if c := h.subscriptions[ticker].consolidator; c != nil {
			if err := c.Scan(t); err != nil {
				return err
			}
		}
	}

	for _, binding := range h.bindings {
		if binding.consolidator != nil && binding.feeds {
			if err := binding.consolidator.Scan(t); err != nil {
				return errors.Wrapf(errors.ErrCodeIndicatorCalculation, err, "failed to update %s", binding.indicator.Name())
			}
		}
	}

	return nil
}

// update feeds one raw bar to the portfolio, the subscription and the indicators.
func (h *algorithmHost) update(bar types.MarketData) error {
	h.trading.UpdatePrice(bar)

	sub, ok := h.subscriptions[bar.Symbol]
	if !ok {
		return nil
	}

	if sub.consolidator != nil {
		if err := sub.consolidator.Update(bar); err != nil {
			return err
		}
	} else if err := h.enqueue(bar); err != nil {
		return err
	}

	for _, binding := range h.bindings {
		if binding.ticker != bar.Symbol || (binding.consolidator != nil && !binding.feeds) {
			continue
		}

		var err error
		if binding.consolidator != nil {
			err = binding.consolidator.Update(bar)
		} else {
			err = binding.indicator.Update(bar)
		}

		if err != nil {
			return errors.Wrapf(errors.ErrCodeIndicatorCalculation, err, "failed to update %s", binding.indicator.Name())
		}
	}

	return nil
}

// due removes and returns the pending slices at or before t in time order.
func (h *algorithmHost) due(t time.Time) []types.Slice {
	var slices []types.Slice

	for end, slice := range h.pending {
		if !end.After(t) {
			slices = append(slices, slice)
			delete(h.pending, end)
		}
	}

	sort.Slice(slices, func(i, j int) bool {
		return slices[i].Time.Before(slices[j].Time)
	})

	return slices
}
