package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
)

type StatisticsTestSuite struct {
	suite.Suite
	tempDir string
}

func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (suite *StatisticsTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
}

func (suite *StatisticsTestSuite) sampleResults() StatisticsResults {
	return StatisticsResults{
		ID:        "run-1",
		Algorithm: "BuyAndHold",
		Symbols:   []string{"SPY"},
		StartDate: time.Date(2023, 5, 28, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 6, 28, 0, 0, 0, 0, time.UTC),
		DataPath:  "/data/spy.parquet",
		TotalPerformance: PortfolioStatistics{
			StartEquity: 100000,
			EndEquity:   101000,
			TotalReturn: 0.01,
			MaxDrawdown: 0.02,
			SharpeRatio: 1.5,
		},
		Trades: TradeStatistics{
			TotalOrders:  2,
			FilledOrders: 2,
			TotalFees:    2,
			RealizedPnL:  998,
			WinRate:      1,
		},
		Summary: map[string]string{
			"Net Profit": "1.000%",
		},
	}
}

func (suite *StatisticsTestSuite) TestWriteAndReadStatistics() {
	path := filepath.Join(suite.tempDir, "stats.yaml")
	stats := suite.sampleResults()

	suite.NoError(WriteStatistics(path, stats))

	data, err := os.ReadFile(path)
	suite.NoError(err)

	var raw map[string]any
	suite.NoError(yaml.Unmarshal(data, &raw))
	suite.Equal("BuyAndHold", raw["algorithm"])
	suite.Contains(raw, "total_performance")
	suite.Contains(raw, "summary")

	read, err := ReadStatistics(path)
	suite.NoError(err)
	suite.Equal(stats.ID, read.ID)
	suite.Equal(stats.TotalPerformance, read.TotalPerformance)
	suite.Equal(stats.Trades, read.Trades)
	suite.Equal("1.000%", read.Summary["Net Profit"])
}

func (suite *StatisticsTestSuite) TestWriteStatisticsInvalidPath() {
	err := WriteStatistics(filepath.Join(suite.tempDir, "missing", "stats.yaml"), suite.sampleResults())
	suite.Error(err)
	suite.Contains(err.Error(), "failed to write statistics")
}

func (suite *StatisticsTestSuite) TestReadStatisticsMissingFile() {
	_, err := ReadStatistics(filepath.Join(suite.tempDir, "nope.yaml"))
	suite.Error(err)
}

func (suite *StatisticsTestSuite) TestNewStatisticsResults() {
	results := NewStatisticsResults()
	suite.NotNil(results.Summary)
	suite.Empty(results.Summary)
	suite.Contains(results.String(), "summary=0 entries")
}
