package engine

import (
	"context"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/datasource"
)

// Lifecycle callback types for backtest phases
// All callbacks with error return can abort execution if they return an error

// OnBacktestStartCallback is called when the entire backtest begins.
type OnBacktestStartCallback func(totalAlgorithms int, totalDataFiles int) error

// OnBacktestEndCallback is called when the entire backtest completes (always called via defer).
type OnBacktestEndCallback func(err error)

// OnAlgorithmStartCallback is called when an algorithm iteration begins.
type OnAlgorithmStartCallback func(algorithmIndex int, algorithmName string, totalAlgorithms int) error

// OnAlgorithmEndCallback is called when an algorithm iteration ends.
type OnAlgorithmEndCallback func(algorithmIndex int, algorithmName string)

// OnRunStartCallback is called when processing of an algorithm+data file combination begins.
// runID is a unique identifier for this run, generated before processing starts.
type OnRunStartCallback func(runID string, dataFileIndex int, dataFilePath string, totalDataPoints int) error

// OnRunEndCallback is called when processing of an algorithm+data file combination ends.
type OnRunEndCallback func(runID string, dataFileIndex int, dataFilePath string, resultFolderPath string)

// OnProcessDataCallback is called for each data point processed.
type OnProcessDataCallback func(current int, total int) error

// LifecycleCallbacks holds all lifecycle callback functions for the backtest engine.
// All fields are pointers - nil means no callback will be invoked.
type LifecycleCallbacks struct {
	OnBacktestStart  *OnBacktestStartCallback
	OnBacktestEnd    *OnBacktestEndCallback
	OnAlgorithmStart *OnAlgorithmStartCallback
	OnAlgorithmEnd   *OnAlgorithmEndCallback
	OnRunStart       *OnRunStartCallback
	OnRunEnd         *OnRunEndCallback
	OnProcessData    *OnProcessDataCallback
}

//nolint:interfacebloat // Engine is a core interface that naturally requires multiple methods
type Engine interface {
	// Initialize the engine with the given YAML configuration.
	Initialize(config string) error
	// SetDataPath sets the path to the market data file. Accepts glob patterns
	// for batch loading (e.g., "data/*.parquet"); every matched file is a separate run.
	SetDataPath(path string) error
	// SetResultsFolder sets the output directory for saving backtest results.
	// Results are written to <folder>/<algorithm name>/<data file name>.
	SetResultsFolder(folder string) error
	// LoadAlgorithm adds an algorithm to run. Could be called multiple times to load multiple algorithms.
	LoadAlgorithm(algorithm algorithm.Algorithm) error
	// Run runs every loaded algorithm over every data file.
	// The context can be used to cancel the backtest operation.
	// Use LifecycleCallbacks to receive notifications at different phases of the backtest.
	Run(ctx context.Context, callbacks LifecycleCallbacks) error
	// SetDataSource sets the data source for the engine.
	SetDataSource(dataSource datasource.DataSource) error
	// GetConfigSchema returns the schema of the engine configuration
	GetConfigSchema() (string, error)
}
