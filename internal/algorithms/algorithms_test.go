package algorithms

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine"
	engine_v1 "github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-algorithm/internal/logger"
	"github.com/rxtech-lab/argo-algorithm/internal/statistics"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/mocks"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	dailyConfig = `
initial_capital: 10000
broker: zero_commission
data_resolution: daily
`
	hourlyConfig = `
initial_capital: 100000
broker: zero_commission
data_resolution: hour
`
)

type AlgorithmsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	api  *mocks.MockApi
	spy  types.Symbol
}

func TestAlgorithmsSuite(t *testing.T) {
	suite.Run(t, new(AlgorithmsTestSuite))
}

func (suite *AlgorithmsTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.api = mocks.NewMockApi(suite.ctrl)
	suite.spy = types.NewEquitySymbol("SPY")
}

func (suite *AlgorithmsTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// runBacktest writes bars to a CSV file and runs alg over it with the memory data source.
// It returns the result folder of the run.
func (suite *AlgorithmsTestSuite) runBacktest(alg algorithm.Algorithm, config string, bars []types.MarketData) (string, error) {
	dir := suite.T().TempDir()
	dataPath := filepath.Join(dir, "SPY.csv")
	suite.Require().NoError(mocks.WriteCSVFile(dataPath, bars))

	backtest, ok := engine_v1.NewBacktestEngineV1().(*engine_v1.BacktestEngineV1)
	suite.Require().True(ok)
	backtest.SetLogger(logger.NewNopLogger())

	suite.Require().NoError(backtest.Initialize(config))
	suite.Require().NoError(backtest.SetDataSource(datasource.NewMemoryDataSource(nil)))
	suite.Require().NoError(backtest.SetDataPath(dataPath))

	results := filepath.Join(dir, "results")
	suite.Require().NoError(backtest.SetResultsFolder(results))
	suite.Require().NoError(backtest.LoadAlgorithm(alg))

	err := backtest.Run(context.Background(), engine.LifecycleCallbacks{})

	return filepath.Join(results, alg.Name(), "SPY"), err
}

func hourlyBars(start time.Time, days int) []types.MarketData {
	config := mocks.DefaultBarConfig()
	config.Start = start
	config.Resolution = types.ResolutionHour
	config.Count = days * 24
	config.SkipWeekends = false
	config.Volatility = 0.003
	config.Drift = 0

	return mocks.NewBarGenerator(42).Generate(config)
}

func (suite *AlgorithmsTestSuite) TestRegistry() {
	registry := NewDefaultRegistry(&bytes.Buffer{})

	suite.Equal([]string{
		BuyAndHoldName,
		ConsolidateHourBarsName,
		StatisticsServiceDemoName,
		StochasticWarmUpName,
	}, registry.Names())

	for _, name := range registry.Names() {
		first, err := registry.Create(name)
		suite.Require().NoError(err)
		suite.Equal(name, first.Name())

		second, err := registry.Create(name)
		suite.Require().NoError(err)
		suite.NotSame(first, second)
	}

	_, err := registry.Create("Missing")
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownAlgorithm))

	suite.Error(registry.Register(BuyAndHoldName, func() algorithm.Algorithm { return NewBuyAndHold("QQQ", types.ResolutionDaily) }))
	suite.True(errors.HasCode(registry.Register("Empty", nil), errors.ErrCodeInvalidParameter))
}

func (suite *AlgorithmsTestSuite) TestStatisticsServiceDemoWithMockApi() {
	demo := NewStatisticsServiceDemo(&bytes.Buffer{})

	gomock.InOrder(
		suite.api.EXPECT().SetStartDate(2023, time.May, 28).Return(nil),
		suite.api.EXPECT().SetEndDate(2023, time.June, 28).Return(nil),
		suite.api.EXPECT().AddEquity("SPY", types.ResolutionDaily).Return(suite.spy, nil),
		suite.api.EXPECT().SetStatisticsService(demo.service),
	)

	suite.Require().NoError(demo.Initialize(suite.api))
	suite.NoError(demo.OnData(types.NewSlice(time.Now())))

	suite.api.EXPECT().Statistics().Return(types.NewStatisticsResults())
	suite.api.EXPECT().Log("Statistics: StatisticsResults{id= algorithm= summary=0 entries}")

	suite.NoError(demo.OnEndOfAlgorithm())
}

func (suite *AlgorithmsTestSuite) TestStatisticsServiceDemoPrintsSummary() {
	var output bytes.Buffer

	config := mocks.DefaultBarConfig()
	config.Start = time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	config.Count = 70

	resultFolder, err := suite.runBacktest(NewStatisticsServiceDemo(&output), dailyConfig, mocks.NewBarGenerator(7).Generate(config))
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	suite.Require().Len(lines, 12)

	names := make([]string, len(lines))
	for i, line := range lines {
		suite.True(strings.HasPrefix(line, "Name: "), line)
		names[i] = strings.SplitN(strings.TrimPrefix(line, "Name: "), " Value: ", 2)[0]
	}

	suite.True(sort.StringsAreSorted(names))
	suite.Contains(lines, "Name: "+statistics.TotalOrders+" Value: 0")
	suite.Contains(lines, "Name: "+statistics.StartEquity+" Value: $10000.00")

	// the default service still backs stats.yaml
	stats, err := types.ReadStatistics(filepath.Join(resultFolder, "stats.yaml"))
	suite.Require().NoError(err)
	suite.Equal(StatisticsServiceDemoName, stats.Algorithm)
	suite.True(stats.StartDate.Equal(time.Date(2023, 5, 28, 0, 0, 0, 0, time.UTC)))
	suite.Len(stats.Summary, 12)

	_, err = os.Stat(filepath.Join(resultFolder, "logs.parquet"))
	suite.NoError(err)
}

func (suite *AlgorithmsTestSuite) TestConsolidateHourBarsMatchesHistory() {
	alg := NewConsolidateHourBars()

	_, err := suite.runBacktest(alg, hourlyConfig, hourlyBars(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), 36))
	suite.Require().NoError(err)

	// bars ending May 2 through May 31 were recorded in May
	suite.Equal(30, alg.Checked())
}

func (suite *AlgorithmsTestSuite) initializeConsolidateHourBars() *ConsolidateHourBars {
	alg := NewConsolidateHourBars()

	suite.api.EXPECT().SetStartDate(2020, time.May, 1).Return(nil)
	suite.api.EXPECT().SetEndDate(2020, time.June, 5).Return(nil)
	suite.api.EXPECT().SetCash(100000.0).Return(nil)
	suite.api.EXPECT().AddEquity("SPY", types.ResolutionHour).Return(suite.spy, nil)
	suite.api.EXPECT().RegisterIndicator(suite.spy, gomock.Any(), types.ResolutionDaily).Return(nil)

	suite.Require().NoError(alg.Initialize(suite.api))

	return alg
}

func (suite *AlgorithmsTestSuite) finalMonthSlice() types.Slice {
	now := time.Date(2020, 6, 1, 1, 0, 0, 0, time.UTC)

	suite.api.EXPECT().IsWarmingUp().Return(false)
	suite.api.EXPECT().Time().Return(now)
	suite.api.EXPECT().EndDate().Return(time.Date(2020, 6, 5, 23, 59, 59, 0, time.UTC))

	slice := types.NewSlice(now)
	slice.Bars["SPY"] = types.MarketData{Symbol: "SPY", Time: now.Add(-time.Hour), Period: time.Hour, Close: 100}

	return slice
}

func (suite *AlgorithmsTestSuite) TestConsolidateHourBarsDetectsMismatch() {
	alg := suite.initializeConsolidateHourBars()
	alg.values["2020-05-02"] = 42
	alg.days = 1

	suite.api.EXPECT().History(suite.spy, 1, types.ResolutionDaily).Return([]types.MarketData{
		{Symbol: "SPY", Time: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), Period: 24 * time.Hour, Close: 100},
	}, nil)

	err := alg.OnData(suite.finalMonthSlice())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorCalculation))
	suite.Contains(err.Error(), "First: 42 | Second: 0")
}

func (suite *AlgorithmsTestSuite) TestConsolidateHourBarsWithoutRecordedDays() {
	alg := suite.initializeConsolidateHourBars()

	err := alg.OnData(suite.finalMonthSlice())
	suite.True(errors.HasCode(err, errors.ErrCodeInsufficientData))
}

func (suite *AlgorithmsTestSuite) TestConsolidateHourBarsSkipsWarmUp() {
	alg := suite.initializeConsolidateHourBars()

	suite.api.EXPECT().IsWarmingUp().Return(true)

	suite.NoError(alg.OnData(types.NewSlice(time.Now())))
	suite.Empty(alg.values)
}

func (suite *AlgorithmsTestSuite) TestStochasticWarmUpAgrees() {
	alg := NewStochasticWarmUp()

	_, err := suite.runBacktest(alg, hourlyConfig, hourlyBars(time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC), 94))
	suite.Require().NoError(err)

	suite.True(alg.received)
	suite.True(alg.Ready())
	suite.Equal(alg.sto.StochD().Value, alg.stoHistory.StochD().Value)
}

func (suite *AlgorithmsTestSuite) TestStochasticWarmUpFailsWithoutData() {
	// every bar ends before the start date
	_, err := suite.runBacktest(NewStochasticWarmUp(), hourlyConfig, hourlyBars(time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC), 30))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeAlgorithmRuntimeError))
	suite.Contains(err.Error(), "no data points received")
}

func (suite *AlgorithmsTestSuite) TestBuyAndHoldBuysOnce() {
	alg := NewBuyAndHold("SPY", types.ResolutionDaily)

	resultFolder, err := suite.runBacktest(alg, dailyConfig,
		mocks.Ramp("SPY", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), types.ResolutionDaily, 10, 100, 1))
	suite.Require().NoError(err)

	stats, err := types.ReadStatistics(filepath.Join(resultFolder, "stats.yaml"))
	suite.Require().NoError(err)
	suite.Equal("1", stats.Summary[statistics.TotalOrders])
	suite.Equal("$10900.00", stats.Summary[statistics.EndEquity])
}

func (suite *AlgorithmsTestSuite) TestBuyAndHoldWithMockApi() {
	alg := NewBuyAndHold("spy", types.ResolutionDaily)
	portfolio := mocks.NewMockPortfolioView(suite.ctrl)

	suite.api.EXPECT().AddEquity("spy", types.ResolutionDaily).Return(suite.spy, nil)
	suite.Require().NoError(alg.Initialize(suite.api))

	slice := types.NewSlice(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	slice.Bars["SPY"] = types.MarketData{Symbol: "SPY", Close: 100}

	suite.api.EXPECT().IsWarmingUp().Return(false).Times(3)
	suite.api.EXPECT().Portfolio().Return(portfolio).Times(3)

	// rejected, then filled, then invested
	portfolio.EXPECT().Invested().Return(false).Times(2)
	portfolio.EXPECT().BuyingPower(suite.spy).Return(100.0).Times(2)
	portfolio.EXPECT().Invested().Return(true)

	suite.api.EXPECT().MarketOrder(suite.spy, 100.0).Return(types.Order{
		Status: types.OrderStatusRejected,
		Reason: types.Reason{Reason: types.OrderReasonInsufficientBuyPower},
	}, nil)
	suite.api.EXPECT().Error("Buy SPY rejected: insufficient_buying_power")
	suite.api.EXPECT().MarketOrder(suite.spy, 100.0).Return(types.Order{
		Status:   types.OrderStatusFilled,
		Quantity: 100,
		Price:    100,
	}, nil)
	suite.api.EXPECT().Log("Bought 100 SPY at 100.00")

	for range 3 {
		suite.NoError(alg.OnData(slice))
	}
}
