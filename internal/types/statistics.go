package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PortfolioStatistics holds the performance figures of one run.
type PortfolioStatistics struct {
	// Portfolio value at the start of the run.
	StartEquity float64 `yaml:"start_equity" json:"start_equity"`
	// Portfolio value at the end of the run.
	EndEquity float64 `yaml:"end_equity" json:"end_equity"`
	// (EndEquity - StartEquity) / StartEquity.
	TotalReturn float64 `yaml:"total_return" json:"total_return"`
	// Annualized TotalReturn over the calendar length of the run.
	CompoundingAnnualReturn float64 `yaml:"compounding_annual_return" json:"compounding_annual_return"`
	// Largest peak-to-trough decline of the daily equity curve, as a fraction.
	MaxDrawdown float64 `yaml:"max_drawdown" json:"max_drawdown"`
	// Annualized mean over standard deviation of daily returns.
	SharpeRatio float64 `yaml:"sharpe_ratio" json:"sharpe_ratio"`
	// Annualized standard deviation of daily returns.
	AnnualStandardDeviation float64 `yaml:"annual_standard_deviation" json:"annual_standard_deviation"`
}

// TradeStatistics holds order and fill figures of one run.
type TradeStatistics struct {
	TotalOrders    int     `yaml:"total_orders" json:"total_orders"`
	FilledOrders   int     `yaml:"filled_orders" json:"filled_orders"`
	RejectedOrders int     `yaml:"rejected_orders" json:"rejected_orders"`
	TotalFees      float64 `yaml:"total_fees" json:"total_fees"`
	RealizedPnL    float64 `yaml:"realized_pnl" json:"realized_pnl"`
	// Fraction of closing fills with positive realized PnL.
	WinRate float64 `yaml:"win_rate" json:"win_rate"`
	// Fraction of closing fills with negative realized PnL.
	LossRate float64 `yaml:"loss_rate" json:"loss_rate"`
}

// StatisticsResults is the results container handed out by a statistics service.
type StatisticsResults struct {
	// ID is the unique identifier of the backtest run.
	ID string `yaml:"id" json:"id"`
	// Algorithm is the name of the algorithm that produced the run.
	Algorithm string `yaml:"algorithm" json:"algorithm"`
	// Symbols subscribed during the run.
	Symbols   []string  `yaml:"symbols" json:"symbols"`
	StartDate time.Time `yaml:"start_date" json:"start_date"`
	EndDate   time.Time `yaml:"end_date" json:"end_date"`
	// DataPath is the market data file used for this run.
	DataPath         string              `yaml:"data_path" json:"data_path"`
	TotalPerformance PortfolioStatistics `yaml:"total_performance" json:"total_performance"`
	Trades           TradeStatistics     `yaml:"trades" json:"trades"`
	// Summary holds the display strings keyed by statistic name.
	Summary map[string]string `yaml:"summary" json:"summary"`
}

// NewStatisticsResults returns an empty results container.
func NewStatisticsResults() StatisticsResults {
	return StatisticsResults{Summary: map[string]string{}}
}

func (s StatisticsResults) String() string {
	return fmt.Sprintf("StatisticsResults{id=%s algorithm=%s summary=%d entries}", s.ID, s.Algorithm, len(s.Summary))
}

// WriteStatistics writes the results as YAML to path.
func WriteStatistics(path string, stats StatisticsResults) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal statistics to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write statistics to file: %w", err)
	}

	return nil
}

// ReadStatistics reads results previously written by WriteStatistics.
func ReadStatistics(path string) (StatisticsResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StatisticsResults{}, fmt.Errorf("failed to read statistics file: %w", err)
	}

	var stats StatisticsResults
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return StatisticsResults{}, fmt.Errorf("failed to unmarshal statistics: %w", err)
	}

	return stats, nil
}
