package datasource

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// DataSource provides raw market data bars to the backtest engine.
// Bars carry no period; the engine stamps them with the configured data resolution.
type DataSource interface {
	// Initialize loads the data file at path. Parquet and CSV files are supported.
	Initialize(path string) error
	// ReadAll yields every bar within [start, end] ordered by time, then symbol.
	ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) func(yield func(types.MarketData, error) bool)
	// Count returns the number of bars within [start, end].
	Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error)
	// GetPreviousNumberOfDataPoints returns up to count bars of symbol starting at
	// or before end, oldest first.
	GetPreviousNumberOfDataPoints(end time.Time, symbol string, count int) ([]types.MarketData, error)
	// Symbols returns every symbol in the data in sorted order.
	Symbols() ([]string, error)
	// Close releases any resources.
	Close() error
}
