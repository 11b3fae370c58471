package commission_fee

import "github.com/shopspring/decimal"

// ZeroCommissionFee charges nothing.
type ZeroCommissionFee struct{}

func NewZeroCommissionFee() CommissionFee {
	return &ZeroCommissionFee{}
}

func (c *ZeroCommissionFee) Calculate(quantity decimal.Decimal, price decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}
