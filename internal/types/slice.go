package types

import (
	"sort"
	"time"
)

// Slice holds every bar that closed at the same time across all subscriptions.
type Slice struct {
	Time time.Time
	Bars map[string]MarketData
}

// NewSlice creates an empty slice at the given time.
func NewSlice(t time.Time) Slice {
	return Slice{Time: t, Bars: make(map[string]MarketData)}
}

// ContainsKey reports whether the slice has a bar for the symbol.
func (s Slice) ContainsKey(symbol Symbol) bool {
	_, ok := s.Bars[symbol.Ticker]

	return ok
}

// Get returns the bar for the symbol.
func (s Slice) Get(symbol Symbol) (MarketData, bool) {
	bar, ok := s.Bars[symbol.Ticker]

	return bar, ok
}

// Tickers returns the tickers in the slice in sorted order.
func (s Slice) Tickers() []string {
	tickers := make([]string, 0, len(s.Bars))
	for ticker := range s.Bars {
		tickers = append(tickers, ticker)
	}

	sort.Strings(tickers)

	return tickers
}

// Len returns the number of bars in the slice.
func (s Slice) Len() int {
	return len(s.Bars)
}
