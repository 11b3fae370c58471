package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithms"
	"github.com/rxtech-lab/argo-algorithm/internal/statistics"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/mocks"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type BacktestCmdTestSuite struct {
	suite.Suite
	tempDir string
	output  bytes.Buffer
}

func TestBacktestCmdSuite(t *testing.T) {
	suite.Run(t, new(BacktestCmdTestSuite))
}

func (suite *BacktestCmdTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
	suite.output.Reset()
}

func (suite *BacktestCmdTestSuite) run(args ...string) error {
	app := newApp()
	app.Writer = &suite.output

	return app.Run(context.Background(), append([]string{"backtest"}, args...))
}

// writeInputs writes a daily zero commission config and ten days of SPY bars.
func (suite *BacktestCmdTestSuite) writeInputs() (string, string) {
	configPath := filepath.Join(suite.tempDir, "config.yaml")
	suite.Require().NoError(os.WriteFile(configPath, []byte("initial_capital: 10000\nbroker: zero_commission\ndata_resolution: daily\n"), 0644))

	dataDir := filepath.Join(suite.tempDir, "data")
	suite.Require().NoError(os.MkdirAll(dataDir, 0755))
	suite.Require().NoError(mocks.WriteCSVFile(filepath.Join(dataDir, "SPY.csv"),
		mocks.Ramp("SPY", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), types.ResolutionDaily, 10, 100, 1)))

	return configPath, filepath.Join(dataDir, "*.csv")
}

func (suite *BacktestCmdTestSuite) TestList() {
	suite.Require().NoError(suite.run("list"))

	lines := strings.Split(strings.TrimSpace(suite.output.String()), "\n")
	suite.Equal(algorithms.NewDefaultRegistry(nil).Names(), lines)
}

func (suite *BacktestCmdTestSuite) TestSchema() {
	suite.Require().NoError(suite.run("schema"))

	suite.Contains(suite.output.String(), `"title": "backtest-engine-v1-config"`)
	suite.Contains(suite.output.String(), `"data_resolution"`)
}

func (suite *BacktestCmdTestSuite) TestRunWithMemoryDataSource() {
	configPath, dataGlob := suite.writeInputs()
	results := filepath.Join(suite.tempDir, "results")
	metricsPath := filepath.Join(suite.tempDir, "backtest.prom")

	err := suite.run("run",
		"--config", configPath,
		"--data", dataGlob,
		"--results", results,
		"--algorithm", algorithms.BuyAndHoldName,
		"--datasource", dataSourceMemory,
		"--metrics", metricsPath,
		"--progress=false",
	)
	suite.Require().NoError(err)

	stats, err := types.ReadStatistics(filepath.Join(results, algorithms.BuyAndHoldName, "SPY", "stats.yaml"))
	suite.Require().NoError(err)
	suite.Equal("$10900.00", stats.Summary[statistics.EndEquity])

	exported, err := os.ReadFile(metricsPath)
	suite.Require().NoError(err)
	suite.Contains(string(exported), `argo_algorithm_runs_total{status="succeeded"} 1`)
}

func (suite *BacktestCmdTestSuite) TestRunUnknownAlgorithm() {
	configPath, dataGlob := suite.writeInputs()

	err := suite.run("run",
		"-c", configPath,
		"-d", dataGlob,
		"-r", filepath.Join(suite.tempDir, "results"),
		"-a", "Missing",
		"--datasource", dataSourceMemory,
	)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownAlgorithm))
}

func (suite *BacktestCmdTestSuite) TestRunUnknownDataSource() {
	configPath, dataGlob := suite.writeInputs()

	err := suite.run("run", "-c", configPath, "-d", dataGlob, "--datasource", "redis")
	suite.ErrorContains(err, `unknown data source "redis"`)
}

func (suite *BacktestCmdTestSuite) TestRunMissingConfig() {
	err := suite.run("run", "-c", filepath.Join(suite.tempDir, "missing.yaml"), "-d", "data/*.csv")
	suite.ErrorContains(err, "failed to read config")
}
