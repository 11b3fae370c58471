package mocks

import (
	"io"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// BarGenerator produces synthetic OHLCV bars for tests.
type BarGenerator struct {
	rng *rand.Rand
}

// NewBarGenerator creates a generator. Use a fixed seed for reproducible results.
func NewBarGenerator(seed int64) *BarGenerator {
	return &BarGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// BarConfig configures a generated series.
type BarConfig struct {
	Symbol string
	// Start is the start time of the first bar.
	Start time.Time
	// Resolution is the length of every bar.
	Resolution types.Resolution
	Count      int
	// SkipWeekends leaves out bars starting on Saturday or Sunday.
	SkipWeekends bool
	InitialPrice float64
	// Volatility is the standard deviation of the per-bar return.
	Volatility float64
	// Drift is the mean per-bar return.
	Drift      float64
	VolumeBase float64
}

// DefaultBarConfig returns a year of daily SPY-like bars starting 2023-01-02.
func DefaultBarConfig() BarConfig {
	return BarConfig{
		Symbol:       "SPY",
		Start:        time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		Resolution:   types.ResolutionDaily,
		Count:        252,
		SkipWeekends: true,
		InitialPrice: 380,
		Volatility:   0.01,
		Drift:        0.0004,
		VolumeBase:   80_000_000,
	}
}

// Generate returns config.Count bars following a geometric random walk.
func (g *BarGenerator) Generate(config BarConfig) []types.MarketData {
	period := config.Resolution.Duration()
	bars := make([]types.MarketData, 0, config.Count)
	price := config.InitialPrice
	t := config.Start

	for len(bars) < config.Count {
		if config.SkipWeekends && isWeekend(t) {
			t = t.Add(period)

			continue
		}

		open := price
		closePrice := open * math.Exp(config.Drift+config.Volatility*g.rng.NormFloat64())
		high := math.Max(open, closePrice) * (1 + math.Abs(g.rng.NormFloat64())*config.Volatility/2)
		low := math.Min(open, closePrice) * (1 - math.Abs(g.rng.NormFloat64())*config.Volatility/2)
		volume := config.VolumeBase * (0.5 + g.rng.Float64())

		bars = append(bars, types.MarketData{
			Id:     "",
			Symbol: config.Symbol,
			Time:   t,
			Period: period,
			Open:   round(open, 4),
			High:   round(high, 4),
			Low:    round(low, 4),
			Close:  round(closePrice, 4),
			Volume: math.Round(volume),
		})

		price = closePrice
		t = t.Add(period)
	}

	return bars
}

// Ramp returns bars whose close rises by step every bar, starting at price.
// Open equals the previous close and the range is one step wide.
func Ramp(symbol string, start time.Time, resolution types.Resolution, count int, price float64, step float64) []types.MarketData {
	bars := make([]types.MarketData, count)
	period := resolution.Duration()

	for i := range bars {
		closePrice := price + float64(i)*step
		bars[i] = types.MarketData{
			Id:     "",
			Symbol: symbol,
			Time:   start.Add(time.Duration(i) * period),
			Period: period,
			Open:   closePrice - step,
			High:   math.Max(closePrice, closePrice-step),
			Low:    math.Min(closePrice, closePrice-step),
			Close:  closePrice,
			Volume: 1000,
		}
	}

	return bars
}

// WriteCSV writes bars in the column layout read by the data sources.
func WriteCSV(w io.Writer, bars []types.MarketData) error {
	return gocsv.Marshal(&bars, w)
}

// WriteCSVFile writes bars to a CSV file at path.
func WriteCSVFile(path string, bars []types.MarketData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, bars)
}

func isWeekend(t time.Time) bool {
	day := t.UTC().Weekday()

	return day == time.Saturday || day == time.Sunday
}

func round(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(val*pow) / pow
}
