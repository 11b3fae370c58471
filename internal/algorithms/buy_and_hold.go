package algorithms

import (
	"fmt"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

const BuyAndHoldName = "BuyAndHold"

// BuyAndHold spends all cash on one ticker at the first bar and holds it.
type BuyAndHold struct {
	api        algorithm.Api
	ticker     string
	resolution types.Resolution
	symbol     types.Symbol
}

func NewBuyAndHold(ticker string, resolution types.Resolution) *BuyAndHold {
	return &BuyAndHold{
		api:        nil,
		ticker:     ticker,
		resolution: resolution,
		symbol:     types.Symbol{},
	}
}

func (a *BuyAndHold) Name() string {
	return BuyAndHoldName
}

func (a *BuyAndHold) Initialize(api algorithm.Api) error {
	a.api = api

	symbol, err := api.AddEquity(a.ticker, a.resolution)
	if err != nil {
		return err
	}

	a.symbol = symbol

	return nil
}

func (a *BuyAndHold) OnData(slice types.Slice) error {
	if a.api.IsWarmingUp() || !slice.ContainsKey(a.symbol) {
		return nil
	}

	portfolio := a.api.Portfolio()
	if portfolio.Invested() {
		return nil
	}

	quantity := portfolio.BuyingPower(a.symbol)
	if quantity <= 0 {
		return nil
	}

	order, err := a.api.MarketOrder(a.symbol, quantity)
	if err != nil {
		return err
	}

	if !order.IsFilled() {
		a.api.Error(fmt.Sprintf("Buy %s rejected: %s", a.symbol, order.Reason.Reason))

		return nil
	}

	a.api.Log(fmt.Sprintf("Bought %v %s at %.2f", order.Quantity, a.symbol, order.Price))

	return nil
}
