package commission_fee

import "github.com/shopspring/decimal"

var (
	ibPerShare   = decimal.RequireFromString("0.005")
	ibMinimum    = decimal.NewFromInt(1)
	ibMaxPercent = decimal.RequireFromString("0.01")
)

// InteractiveBrokerCommissionFee is the fixed pricing plan: 0.005 USD per share,
// at least 1 USD and at most 1% of the trade value.
type InteractiveBrokerCommissionFee struct{}

func NewInteractiveBrokerCommissionFee() CommissionFee {
	return &InteractiveBrokerCommissionFee{}
}

func (c *InteractiveBrokerCommissionFee) Calculate(quantity decimal.Decimal, price decimal.Decimal) decimal.Decimal {
	quantity = quantity.Abs()
	fee := decimal.Max(ibPerShare.Mul(quantity), ibMinimum)

	// no cap without a known price
	if price.IsPositive() {
		fee = decimal.Min(fee, quantity.Mul(price).Mul(ibMaxPercent))
	}

	return fee.Round(4)
}
