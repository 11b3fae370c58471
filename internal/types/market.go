package types

import "time"

// SecurityType is the asset class of a subscribed symbol.
type SecurityType string

const (
	SecurityTypeEquity SecurityType = "equity"
)

// Symbol identifies a subscribed security.
type Symbol struct {
	Ticker       string       `yaml:"ticker" json:"ticker"`
	SecurityType SecurityType `yaml:"security_type" json:"security_type"`
}

// NewEquitySymbol creates an equity symbol for the given ticker.
func NewEquitySymbol(ticker string) Symbol {
	return Symbol{Ticker: ticker, SecurityType: SecurityTypeEquity}
}

func (s Symbol) String() string {
	return s.Ticker
}

// MarketData is a single OHLCV bar. Time is the start of the bar and Period its
// length, so the bar covers [Time, Time+Period).
type MarketData struct {
	Id     string        `yaml:"id" json:"id" csv:"id"`
	Symbol string        `yaml:"symbol" json:"symbol" csv:"symbol"`
	Time   time.Time     `yaml:"time" json:"time" csv:"time"`
	Period time.Duration `yaml:"period" json:"period" csv:"-"`
	Open   float64       `yaml:"open" json:"open" csv:"open"`
	High   float64       `yaml:"high" json:"high" csv:"high"`
	Low    float64       `yaml:"low" json:"low" csv:"low"`
	Close  float64       `yaml:"close" json:"close" csv:"close"`
	Volume float64       `yaml:"volume" json:"volume" csv:"volume"`
}

// EndTime returns the time at which the bar closed.
func (m MarketData) EndTime() time.Time {
	return m.Time.Add(m.Period)
}
