package statistics

import (
	"math"
	"sort"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/shopspring/decimal"
)

const (
	defaultTradingDaysPerYear = 252
	// windows shorter than this are not annualized
	minAnnualizedWindow = 24 * time.Hour
)

// EquityPoint is the total portfolio value at a point in time.
type EquityPoint struct {
	Time   time.Time `csv:"time"`
	Equity float64   `csv:"equity"`
}

// Input is everything the calculator needs from a finished run.
type Input struct {
	StartDate   time.Time
	EndDate     time.Time
	StartEquity float64
	// Equity is the end-of-day equity curve in time order.
	Equity []EquityPoint
	Orders []types.Order
}

// Calculator derives run statistics from the equity curve and the order log.
type Calculator struct {
	TradingDaysPerYear int
}

// NewCalculator creates a calculator annualizing over 252 trading days.
func NewCalculator() *Calculator {
	return &Calculator{TradingDaysPerYear: defaultTradingDaysPerYear}
}

// Calculate computes the performance and trade figures and their summary strings.
// Identification fields (ID, Algorithm, ...) are left for the caller to fill.
func (c *Calculator) Calculate(input Input) types.StatisticsResults {
	results := types.NewStatisticsResults()
	results.StartDate = input.StartDate
	results.EndDate = input.EndDate
	results.TotalPerformance = c.portfolioStatistics(input)
	results.Trades = c.tradeStatistics(input.Orders)
	results.Summary = Summarize(results.TotalPerformance, results.Trades)

	return results
}

func (c *Calculator) portfolioStatistics(input Input) types.PortfolioStatistics {
	start := decimal.NewFromFloat(input.StartEquity)
	end := start

	if len(input.Equity) > 0 {
		end = decimal.NewFromFloat(input.Equity[len(input.Equity)-1].Equity)
	}

	stats := types.PortfolioStatistics{
		StartEquity: start.InexactFloat64(),
		EndEquity:   end.InexactFloat64(),
	}

	if !start.IsPositive() {
		return stats
	}

	stats.TotalReturn = end.Sub(start).Div(start).InexactFloat64()

	window := input.EndDate.Sub(input.StartDate)
	if window >= minAnnualizedWindow && end.IsPositive() {
		years := window.Hours() / 24 / 365.25
		stats.CompoundingAnnualReturn = finite(math.Pow(end.Div(start).InexactFloat64(), 1/years) - 1)
	}

	curve := make([]float64, 0, len(input.Equity)+1)
	curve = append(curve, stats.StartEquity)

	for _, point := range input.Equity {
		curve = append(curve, point.Equity)
	}

	stats.MaxDrawdown = maxDrawdown(curve)

	returns := dailyReturns(curve)
	mean, deviation := meanAndStandardDeviation(returns)
	annualization := math.Sqrt(float64(c.tradingDaysPerYear()))

	stats.AnnualStandardDeviation = finite(deviation * annualization)
	if deviation > 0 {
		stats.SharpeRatio = finite(mean / deviation * annualization)
	}

	return stats
}

func (c *Calculator) tradeStatistics(orders []types.Order) types.TradeStatistics {
	stats := types.TradeStatistics{TotalOrders: len(orders)}

	fees := decimal.Zero
	realized := decimal.Zero
	closing, wins, losses := 0, 0, 0

	for _, order := range orders {
		if !order.IsFilled() {
			stats.RejectedOrders++

			continue
		}

		stats.FilledOrders++
		fees = fees.Add(decimal.NewFromFloat(order.Fee))

		if order.Side != types.PurchaseTypeSell {
			continue
		}

		closing++
		pnl := decimal.NewFromFloat(order.RealizedPnL)
		realized = realized.Add(pnl)

		switch {
		case pnl.IsPositive():
			wins++
		case pnl.IsNegative():
			losses++
		}
	}

	stats.TotalFees = fees.InexactFloat64()
	stats.RealizedPnL = realized.InexactFloat64()

	if closing > 0 {
		stats.WinRate = float64(wins) / float64(closing)
		stats.LossRate = float64(losses) / float64(closing)
	}

	return stats
}

func (c *Calculator) tradingDaysPerYear() int {
	if c.TradingDaysPerYear <= 0 {
		return defaultTradingDaysPerYear
	}

	return c.TradingDaysPerYear
}

// Summarize formats the figures into the named summary entries.
func Summarize(performance types.PortfolioStatistics, trades types.TradeStatistics) map[string]string {
	return map[string]string{
		TotalOrders:             decimal.NewFromInt(int64(trades.TotalOrders)).String(),
		StartEquity:             money(performance.StartEquity),
		EndEquity:               money(performance.EndEquity),
		NetProfit:               percent(performance.TotalReturn),
		CompoundingAnnualReturn: percent(performance.CompoundingAnnualReturn),
		Drawdown:                percent(performance.MaxDrawdown),
		SharpeRatio:             decimal.NewFromFloat(performance.SharpeRatio).StringFixed(3),
		AnnualStandardDeviation: decimal.NewFromFloat(performance.AnnualStandardDeviation).StringFixed(3),
		WinRate:                 percent(trades.WinRate),
		LossRate:                percent(trades.LossRate),
		TotalFees:               money(trades.TotalFees),
		RealizedPnL:             money(trades.RealizedPnL),
	}
}

// SortedNames returns the summary names in sorted order.
func SortedNames(summary map[string]string) []string {
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func money(value float64) string {
	d := decimal.NewFromFloat(finite(value)).Round(2)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}

	return "$" + d.StringFixed(2)
}

func percent(value float64) string {
	return decimal.NewFromFloat(finite(value)).Mul(decimal.NewFromInt(100)).StringFixed(3) + "%"
}

// finite maps NaN and the infinities to zero; decimal cannot hold them.
func finite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

func maxDrawdown(curve []float64) float64 {
	peak := 0.0
	drawdown := 0.0

	for _, equity := range curve {
		if equity > peak {
			peak = equity
		}

		if peak > 0 {
			drawdown = math.Max(drawdown, (peak-equity)/peak)
		}
	}

	return drawdown
}

func dailyReturns(curve []float64) []float64 {
	returns := make([]float64, 0, len(curve))

	for i := 1; i < len(curve); i++ {
		if curve[i-1] <= 0 {
			continue
		}

		returns = append(returns, curve[i]/curve[i-1]-1)
	}

	return returns
}

// meanAndStandardDeviation returns the mean and the sample standard deviation.
func meanAndStandardDeviation(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	mean := sum / float64(len(values))

	if len(values) < 2 {
		return mean, 0
	}

	squares := 0.0
	for _, v := range values {
		squares += (v - mean) * (v - mean)
	}

	return mean, math.Sqrt(squares / float64(len(values)-1))
}
