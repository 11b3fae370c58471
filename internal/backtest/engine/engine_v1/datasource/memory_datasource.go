package datasource

import (
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// MemoryDataSource keeps every bar in memory. Bars are indexed per symbol so
// history lookups are a binary search.
type MemoryDataSource struct {
	mu       sync.RWMutex
	all      []types.MarketData
	bySymbol map[string][]types.MarketData
}

// NewMemoryDataSource creates a data source holding bars.
func NewMemoryDataSource(bars []types.MarketData) *MemoryDataSource {
	ds := &MemoryDataSource{
		mu:       sync.RWMutex{},
		all:      nil,
		bySymbol: nil,
	}
	ds.load(bars)

	return ds
}

// Preload copies every bar of another data source within [start, end] into memory.
func Preload(source DataSource, start optional.Option[time.Time], end optional.Option[time.Time]) (*MemoryDataSource, error) {
	var bars []types.MarketData

	for bar, err := range source.ReadAll(start, end) {
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDataNotFound, "failed to preload data", err)
		}

		bars = append(bars, bar)
	}

	return NewMemoryDataSource(bars), nil
}

// Initialize loads a CSV file with the columns time, symbol, open, high, low,
// close, volume. Times are RFC 3339.
func (m *MemoryDataSource) Initialize(path string) error {
	format, err := DetectFileFormat(path)
	if err != nil {
		return err
	}

	if format != FileFormatCSV {
		return errors.Newf(errors.ErrCodeBacktestDataPathError, "memory data source only reads csv files, got %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeBacktestDataPathError, err, "failed to open %s", path)
	}
	defer file.Close()

	return m.LoadCSV(file)
}

// LoadCSV replaces the held bars with the CSV content of r.
func (m *MemoryDataSource) LoadCSV(r io.Reader) error {
	var bars []types.MarketData
	if err := gocsv.Unmarshal(r, &bars); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestDataPathError, "failed to parse csv market data", err)
	}

	m.load(bars)

	return nil
}

func (m *MemoryDataSource) load(bars []types.MarketData) {
	all := make([]types.MarketData, len(bars))
	copy(all, bars)

	for i := range all {
		all[i].Time = all[i].Time.UTC()
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Time.Equal(all[j].Time) {
			return all[i].Time.Before(all[j].Time)
		}

		return all[i].Symbol < all[j].Symbol
	})

	bySymbol := make(map[string][]types.MarketData)
	for _, bar := range all {
		bySymbol[bar.Symbol] = append(bySymbol[bar.Symbol], bar)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.all = all
	m.bySymbol = bySymbol
}

// ReadAll implements DataSource.
func (m *MemoryDataSource) ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) func(yield func(types.MarketData, error) bool) {
	return func(yield func(types.MarketData, error) bool) {
		m.mu.RLock()
		all := m.all
		m.mu.RUnlock()

		for _, bar := range all {
			if !inRange(bar.Time, start, end) {
				continue
			}

			if !yield(bar, nil) {
				return
			}
		}
	}
}

// Count implements DataSource.
func (m *MemoryDataSource) Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0

	for _, bar := range m.all {
		if inRange(bar.Time, start, end) {
			count++
		}
	}

	return count, nil
}

// GetPreviousNumberOfDataPoints implements DataSource.
func (m *MemoryDataSource) GetPreviousNumberOfDataPoints(end time.Time, symbol string, count int) ([]types.MarketData, error) {
	if count <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "count must be positive, got %d", count)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	bars := m.bySymbol[symbol]
	// index of the first bar after end
	upper := sort.Search(len(bars), func(i int) bool { return bars[i].Time.After(end) })
	lower := max(upper-count, 0)

	result := make([]types.MarketData, upper-lower)
	copy(result, bars[lower:upper])

	return result, nil
}

// Symbols implements DataSource.
func (m *MemoryDataSource) Symbols() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	symbols := make([]string, 0, len(m.bySymbol))
	for symbol := range m.bySymbol {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	return symbols, nil
}

// Close implements DataSource.
func (m *MemoryDataSource) Close() error {
	return nil
}

func inRange(t time.Time, start optional.Option[time.Time], end optional.Option[time.Time]) bool {
	if start.IsSome() && t.Before(start.Unwrap()) {
		return false
	}

	if end.IsSome() && t.After(end.Unwrap()) {
		return false
	}

	return true
}
