package engine

import (
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite
}

func TestUtilsSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

func (suite *UtilsTestSuite) TestGetResultFolder() {
	tests := []struct {
		name          string
		resultsFolder string
		algorithmName string
		dataPath      string
		expectedPath  string
	}{
		{
			name:          "parquet file",
			resultsFolder: "/results",
			algorithmName: "BuyAndHold",
			dataPath:      "/path/to/SPY.parquet",
			expectedPath:  "/results/BuyAndHold/SPY",
		},
		{
			name:          "file name with dots",
			resultsFolder: "/results",
			algorithmName: "StatisticsServiceDemo",
			dataPath:      "/path/to/spy.daily.csv",
			expectedPath:  "/results/StatisticsServiceDemo/spy.daily",
		},
		{
			name:          "relative results folder",
			resultsFolder: "results",
			algorithmName: "BuyAndHold",
			dataPath:      "data.csv",
			expectedPath:  "results/BuyAndHold/data",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			result := getResultFolder(tc.resultsFolder, tc.algorithmName, tc.dataPath)
			suite.Equal(filepath.Clean(tc.expectedPath), filepath.Clean(result))
		})
	}
}

func (suite *UtilsTestSuite) TestMaxAffordableQuantity() {
	zero, err := commission_fee.GetCommissionFeeHandler(commission_fee.BrokerZero)
	suite.Require().NoError(err)

	ib, err := commission_fee.GetCommissionFeeHandler(commission_fee.BrokerInteractiveBroker)
	suite.Require().NoError(err)

	tests := []struct {
		name       string
		commission commission_fee.CommissionFee
		cash       float64
		price      float64
		precision  int32
		expected   float64
	}{
		{"zero commission whole shares", zero, 1000, 30, 0, 33},
		{"zero commission fractional", zero, 100, 30, 2, 3.33},
		// 1000 shares would cost 1000 + 5 in fees
		{"ib fee reduces quantity", ib, 1000, 1, 0, 995},
		// 10 shares at 99 cost 990 plus the 1.0 minimum fee
		{"ib minimum fee", ib, 991, 99, 0, 10},
		{"ib minimum fee does not fit", ib, 990, 99, 0, 9},
		{"price above cash", zero, 10, 20, 0, 0},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			result := maxAffordableQuantity(
				decimal.NewFromFloat(tc.cash), decimal.NewFromFloat(tc.price), tc.commission, tc.precision)
			suite.Equal(tc.expected, result.InexactFloat64())
		})
	}
}
