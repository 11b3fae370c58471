package engine

import (
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/shopspring/decimal"
)

// getResultFolder returns <results>/<algorithm>/<data file name without extension>.
func getResultFolder(resultsFolder string, algorithmName string, dataPath string) string {
	dataFileName := strings.TrimSuffix(filepath.Base(dataPath), filepath.Ext(dataPath))

	return filepath.Join(resultsFolder, algorithmName, dataFileName)
}

// maxAffordableQuantity returns the largest quantity whose cost plus fee fits in cash.
func maxAffordableQuantity(cash decimal.Decimal, price decimal.Decimal, commission commission_fee.CommissionFee, precision int32) decimal.Decimal {
	step := decimal.New(1, -precision)
	quantity := cash.Div(price).Truncate(precision)

	for i := 0; i < 16 && quantity.IsPositive(); i++ {
		fee := commission.Calculate(quantity, price)
		if quantity.Mul(price).Add(fee).LessThanOrEqual(cash) {
			return quantity
		}

		next := cash.Sub(fee).Div(price).Truncate(precision)
		if next.GreaterThanOrEqual(quantity) {
			next = quantity.Sub(step)
		}

		quantity = next
	}

	return decimal.Max(quantity, decimal.Zero)
}
