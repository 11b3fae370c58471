package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderRequest is a market order as placed by an algorithm. A negative quantity sells.
type OrderRequest struct {
	Symbol        string
	Quantity      float64
	Time          time.Time
	Reason        types.Reason
	AlgorithmName string
}

type position struct {
	quantity     decimal.Decimal
	averagePrice decimal.Decimal
}

// BacktestTrading fills market orders at the last close and keeps the cash and
// positions of one run. Short selling and leverage are not supported.
type BacktestTrading struct {
	state            *BacktestState
	cash             decimal.Decimal
	positions        map[string]*position
	lastPrices       map[string]decimal.Decimal
	commission       commission_fee.CommissionFee
	decimalPrecision int32
}

func NewBacktestTrading(state *BacktestState, initialCash float64, commission commission_fee.CommissionFee, decimalPrecision int) *BacktestTrading {
	return &BacktestTrading{
		state:            state,
		cash:             decimal.NewFromFloat(initialCash),
		positions:        make(map[string]*position),
		lastPrices:       make(map[string]decimal.Decimal),
		commission:       commission,
		decimalPrecision: int32(decimalPrecision),
	}
}

// Reset drops every position and price and sets the cash.
func (b *BacktestTrading) Reset(cash float64) {
	b.cash = decimal.NewFromFloat(cash)
	b.positions = make(map[string]*position)
	b.lastPrices = make(map[string]decimal.Decimal)
}

// SetCash replaces the cash balance.
func (b *BacktestTrading) SetCash(cash float64) {
	b.cash = decimal.NewFromFloat(cash)
}

// UpdatePrice records the close of bar as the last price of its symbol.
func (b *BacktestTrading) UpdatePrice(bar types.MarketData) {
	b.lastPrices[bar.Symbol] = decimal.NewFromFloat(bar.Close)
}

// PlaceMarketOrder fills the request at the last price. Orders that cannot be
// afforded or have nothing to sell are recorded as rejected and returned without
// an error. Malformed requests return an error and are not recorded.
func (b *BacktestTrading) PlaceMarketOrder(request OrderRequest) (types.Order, error) {
	quantity := decimal.NewFromFloat(request.Quantity).Truncate(b.decimalPrecision)
	if quantity.IsZero() {
		return types.Order{}, errors.Newf(errors.ErrCodeInvalidOrder,
			"order quantity %v is zero after rounding to %d decimal places", request.Quantity, b.decimalPrecision)
	}

	price, ok := b.lastPrices[request.Symbol]
	if !ok || !price.IsPositive() {
		return types.Order{}, errors.Newf(errors.ErrCodeMarketDataMissing, "no price available for %s", request.Symbol)
	}

	side := types.PurchaseTypeBuy
	if quantity.IsNegative() {
		side = types.PurchaseTypeSell
		quantity = quantity.Abs()
	}

	order := types.Order{
		OrderID:       uuid.New().String(),
		Symbol:        request.Symbol,
		Side:          side,
		OrderType:     types.OrderTypeMarket,
		Quantity:      quantity.InexactFloat64(),
		Price:         price.InexactFloat64(),
		Timestamp:     request.Time,
		Status:        types.OrderStatusFilled,
		Reason:        request.Reason,
		AlgorithmName: request.AlgorithmName,
		Fee:           0,
		RealizedPnL:   0,
	}

	if side == types.PurchaseTypeBuy {
		b.fillBuy(&order, quantity, price)
	} else {
		b.fillSell(&order, quantity, price)
	}

	if err := order.Validate(); err != nil {
		return types.Order{}, err
	}

	if b.state != nil {
		if err := b.state.RecordOrder(order); err != nil {
			return types.Order{}, errors.Wrap(errors.ErrCodeOrderFailed, "failed to record order", err)
		}
	}

	return order, nil
}

func (b *BacktestTrading) fillBuy(order *types.Order, quantity decimal.Decimal, price decimal.Decimal) {
	fee := b.commission.Calculate(quantity, price)
	cost := quantity.Mul(price).Add(fee)

	if cost.GreaterThan(b.cash) {
		reject(order, types.OrderReasonInsufficientBuyPower,
			"order cost "+cost.StringFixed(2)+" exceeds available cash "+b.cash.StringFixed(2))

		return
	}

	b.cash = b.cash.Sub(cost)

	pos, ok := b.positions[order.Symbol]
	if !ok {
		pos = &position{quantity: decimal.Zero, averagePrice: decimal.Zero}
		b.positions[order.Symbol] = pos
	}

	total := pos.quantity.Add(quantity)
	pos.averagePrice = pos.quantity.Mul(pos.averagePrice).Add(quantity.Mul(price)).Div(total)
	pos.quantity = total

	order.Fee = fee.InexactFloat64()
}

func (b *BacktestTrading) fillSell(order *types.Order, quantity decimal.Decimal, price decimal.Decimal) {
	pos, ok := b.positions[order.Symbol]
	if !ok || !pos.quantity.IsPositive() {
		reject(order, types.OrderReasonInsufficientSellPower, "no shares of "+order.Symbol+" to sell")

		return
	}

	// selling more than held closes the position
	quantity = decimal.Min(quantity, pos.quantity)

	fee := b.commission.Calculate(quantity, price)
	realized := quantity.Mul(price.Sub(pos.averagePrice)).Sub(fee)

	b.cash = b.cash.Add(quantity.Mul(price)).Sub(fee)
	pos.quantity = pos.quantity.Sub(quantity)

	if pos.quantity.IsZero() {
		delete(b.positions, order.Symbol)
	}

	order.Quantity = quantity.InexactFloat64()
	order.Fee = fee.InexactFloat64()
	order.RealizedPnL = realized.InexactFloat64()
}

func reject(order *types.Order, reason string, message string) {
	order.Status = types.OrderStatusRejected
	order.Reason = types.Reason{Reason: reason, Message: message}
}

// Cash implements algorithm.PortfolioView.
func (b *BacktestTrading) Cash() float64 {
	return b.cash.InexactFloat64()
}

// HoldingsValue returns the market value of every position at the last prices.
func (b *BacktestTrading) HoldingsValue() float64 {
	value := decimal.Zero
	for symbol, pos := range b.positions {
		value = value.Add(pos.quantity.Mul(b.lastPrices[symbol]))
	}

	return value.InexactFloat64()
}

// TotalValue implements algorithm.PortfolioView.
func (b *BacktestTrading) TotalValue() float64 {
	return b.Cash() + b.HoldingsValue()
}

// Holding implements algorithm.PortfolioView.
func (b *BacktestTrading) Holding(symbol types.Symbol) (algorithm.Holding, bool) {
	pos, ok := b.positions[symbol.Ticker]
	if !ok {
		return algorithm.Holding{}, false
	}

	return algorithm.Holding{
		Symbol:       symbol,
		Quantity:     pos.quantity.InexactFloat64(),
		AveragePrice: pos.averagePrice.InexactFloat64(),
		LastPrice:    b.lastPrices[symbol.Ticker].InexactFloat64(),
	}, true
}

// Holdings implements algorithm.PortfolioView.
func (b *BacktestTrading) Holdings() []algorithm.Holding {
	tickers := make([]string, 0, len(b.positions))
	for ticker := range b.positions {
		tickers = append(tickers, ticker)
	}

	sort.Strings(tickers)

	holdings := make([]algorithm.Holding, 0, len(tickers))

	for _, ticker := range tickers {
		holding, _ := b.Holding(types.NewEquitySymbol(ticker))
		holdings = append(holdings, holding)
	}

	return holdings
}

// Invested implements algorithm.PortfolioView.
func (b *BacktestTrading) Invested() bool {
	return len(b.positions) > 0
}

// BuyingPower implements algorithm.PortfolioView.
func (b *BacktestTrading) BuyingPower(symbol types.Symbol) float64 {
	price, ok := b.lastPrices[symbol.Ticker]
	if !ok || !price.IsPositive() || !b.cash.IsPositive() {
		return 0
	}

	return maxAffordableQuantity(b.cash, price, b.commission, b.decimalPrecision).InexactFloat64()
}
