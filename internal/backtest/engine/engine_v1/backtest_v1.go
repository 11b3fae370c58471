package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-algorithm/internal/logger"
	"github.com/rxtech-lab/argo-algorithm/internal/metrics"
	"github.com/rxtech-lab/argo-algorithm/internal/statistics"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/internal/version"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type BacktestEngineV1 struct {
	config        BacktestEngineV1Config
	algorithms    []algorithm.Algorithm
	dataPaths     []string
	resultsFolder string
	log           *logger.Logger
	state         *BacktestState
	logStore      *BacktestLog
	datasource    datasource.DataSource
	commission    commission_fee.CommissionFee
	calculator    *statistics.Calculator
	metrics       *metrics.Metrics
}

func NewBacktestEngineV1() engine.Engine {
	return NewBacktestEngineV1WithMetrics(metrics.New())
}

// NewBacktestEngineV1WithMetrics creates an engine reporting to the given metrics.
func NewBacktestEngineV1WithMetrics(m *metrics.Metrics) engine.Engine {
	return &BacktestEngineV1{
		config:        EmptyConfig(),
		algorithms:    nil,
		dataPaths:     nil,
		resultsFolder: "",
		log:           nil,
		state:         nil,
		logStore:      nil,
		datasource:    nil,
		commission:    nil,
		calculator:    statistics.NewCalculator(),
		metrics:       m,
	}
}

// Initialize implements engine.Engine.
func (b *BacktestEngineV1) Initialize(config string) error {
	b.config = EmptyConfig()

	// parse the config
	if err := yaml.Unmarshal([]byte(config), &b.config); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "failed to parse engine config", err)
	}

	if err := b.config.Validate(); err != nil {
		return err
	}

	// initialize the logger
	if b.log == nil {
		var loggerError error

		b.log, loggerError = logger.NewLogger()
		if loggerError != nil {
			return loggerError
		}
	}

	b.log.Debug("Backtest engine initialized",
		zap.String("config", config),
	)

	var err error

	b.commission, err = commission_fee.GetCommissionFeeHandler(b.config.Broker)
	if err != nil {
		return err
	}

	// initialize the state
	b.state, err = NewBacktestState(b.log)
	if err != nil {
		return fmt.Errorf("failed to create backtest state: %w", err)
	}

	if err := b.state.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize state: %w", err)
	}

	b.logStore, err = NewBacktestLog(b.log)
	if err != nil {
		return fmt.Errorf("failed to create backtest log: %w", err)
	}

	return nil
}

// SetLogger replaces the engine logger. Call before Initialize.
func (b *BacktestEngineV1) SetLogger(log *logger.Logger) {
	b.log = log
}

// Metrics returns the metrics the engine reports to.
func (b *BacktestEngineV1) Metrics() *metrics.Metrics {
	return b.metrics
}

// LoadAlgorithm implements engine.Engine.
func (b *BacktestEngineV1) LoadAlgorithm(alg algorithm.Algorithm) error {
	if alg == nil {
		return errors.New(errors.ErrCodeAlgorithmNotLoaded, "algorithm must not be nil")
	}

	b.algorithms = append(b.algorithms, alg)
	b.logDebug("Algorithm loaded",
		zap.String("algorithm", alg.Name()),
		zap.Int("total_algorithms", len(b.algorithms)),
	)

	return nil
}

// SetDataPath implements engine.Engine.
func (b *BacktestEngineV1) SetDataPath(path string) error {
	// use glob to get all the files that match the path
	files, err := filepath.Glob(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeBacktestDataPathError, err, "invalid data path pattern %s", path)
	}

	// Convert all paths to absolute paths
	absolutePaths := make([]string, len(files))

	for i, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeBacktestDataPathError, err, "failed to get absolute path of %s", file)
		}

		absolutePaths[i] = absPath
	}

	b.dataPaths = absolutePaths
	b.logDebug("Data paths set",
		zap.Strings("files", absolutePaths),
	)

	return nil
}

// SetResultsFolder implements engine.Engine.
func (b *BacktestEngineV1) SetResultsFolder(folder string) error {
	b.resultsFolder = folder
	b.logDebug("Results folder set",
		zap.String("folder", folder),
	)

	return nil
}

// SetDataSource implements engine.Engine.
func (b *BacktestEngineV1) SetDataSource(datasource datasource.DataSource) error {
	b.datasource = datasource

	return nil
}

// GetConfigSchema implements engine.Engine.
func (b *BacktestEngineV1) GetConfigSchema() (string, error) {
	config := b.config

	schema, err := config.GenerateSchemaJSON()
	if err != nil {
		return "", fmt.Errorf("failed to generate schema: %w", err)
	}

	return schema, nil
}

func (b *BacktestEngineV1) logDebug(msg string, fields ...zap.Field) {
	if b.log != nil {
		b.log.Debug(msg, fields...)
	}
}

// Run implements engine.Engine.
func (b *BacktestEngineV1) Run(ctx context.Context, callbacks engine.LifecycleCallbacks) (err error) {
	if callbacks.OnBacktestEnd != nil {
		defer func() {
			(*callbacks.OnBacktestEnd)(err)
		}()
	}

	if err := b.preRunCheck(); err != nil {
		return err
	}

	if callbacks.OnBacktestStart != nil {
		if err := (*callbacks.OnBacktestStart)(len(b.algorithms), len(b.dataPaths)); err != nil {
			return errors.Wrap(errors.ErrCodeCallbackFailed, "backtest start callback failed", err)
		}
	}

	// clean the results folder
	if _, statErr := os.Stat(b.resultsFolder); statErr == nil {
		if err := os.RemoveAll(b.resultsFolder); err != nil {
			return fmt.Errorf("failed to clean results folder: %w", err)
		}
	}

	if err := os.MkdirAll(b.resultsFolder, 0755); err != nil {
		return fmt.Errorf("failed to create results folder: %w", err)
	}

	for algorithmIndex, alg := range b.algorithms {
		if err := b.checkVersion(alg); err != nil {
			return err
		}

		if callbacks.OnAlgorithmStart != nil {
			if err := (*callbacks.OnAlgorithmStart)(algorithmIndex, alg.Name(), len(b.algorithms)); err != nil {
				return errors.Wrap(errors.ErrCodeCallbackFailed, "algorithm start callback failed", err)
			}
		}

		for dataFileIndex, dataPath := range b.dataPaths {
			if err := b.runOne(ctx, alg, dataFileIndex, dataPath, callbacks); err != nil {
				return err
			}
		}

		if callbacks.OnAlgorithmEnd != nil {
			(*callbacks.OnAlgorithmEnd)(algorithmIndex, alg.Name())
		}
	}

	return nil
}

func (b *BacktestEngineV1) checkVersion(alg algorithm.Algorithm) error {
	versioned, ok := alg.(algorithm.VersionedAlgorithm)
	if !ok {
		return nil
	}

	if err := version.CheckVersionCompatibility(version.Version, versioned.EngineVersion()); err != nil {
		return fmt.Errorf("algorithm %s is not compatible with engine %s: %w", alg.Name(), version.Version, err)
	}

	return nil
}

// runOne runs one algorithm over one data file and writes its results.
func (b *BacktestEngineV1) runOne(ctx context.Context, alg algorithm.Algorithm, dataFileIndex int, dataPath string, callbacks engine.LifecycleCallbacks) (err error) {
	started := time.Now()
	runID := uuid.New().String()
	runLog := b.log.ForRun(runID, alg.Name())

	defer func() {
		status := metrics.RunStatusSucceeded

		switch {
		case err != nil && ctx.Err() != nil:
			status = metrics.RunStatusCancelled
		case err != nil:
			status = metrics.RunStatusFailed
		}

		b.metrics.ObserveRun(status, time.Since(started))
	}()

	if err := b.cleanUpRun(); err != nil {
		return err
	}

	if err := b.datasource.Initialize(dataPath); err != nil {
		return fmt.Errorf("failed to initialize data source: %w", err)
	}

	trading := NewBacktestTrading(b.state, b.config.InitialCapital, b.commission, b.config.DecimalPrecision)
	host := newAlgorithmHost(hostConfig{
		algorithm:     alg,
		runID:         runID,
		logger:        runLog,
		logs:          b.logStore,
		datasource:    b.datasource,
		trading:       trading,
		metrics:       b.metrics,
		rawResolution: b.config.DataResolution,
		initialCash:   b.config.InitialCapital,
	})

	if err := alg.Initialize(host); err != nil {
		return errors.Wrapf(errors.ErrCodeAlgorithmInitFailed, err, "failed to initialize algorithm %s", alg.Name())
	}

	// the engine config overrides the dates set by the algorithm
	if b.config.StartTime.IsSome() {
		host.startDate = b.config.StartTime.Unwrap()
	}

	if b.config.EndTime.IsSome() {
		host.endDate = b.config.EndTime.Unwrap()
	}

	if !host.startDate.IsZero() && !host.endDate.IsZero() && host.endDate.Before(host.startDate) {
		return errors.Newf(errors.ErrCodeInvalidDate, "end date %s is before start date %s",
			host.endDate.Format(time.DateOnly), host.startDate.Format(time.DateOnly))
	}

	readStart := optional.None[time.Time]()
	if !host.startDate.IsZero() {
		readStart = optional.Some(host.startDate.Add(-host.warmUp))
	}

	readEnd := optional.None[time.Time]()
	if !host.endDate.IsZero() {
		readEnd = optional.Some(host.endDate)
	}

	total, err := b.datasource.Count(readStart, readEnd)
	if err != nil {
		return fmt.Errorf("failed to get data count: %w", err)
	}

	resultFolderPath := getResultFolder(b.resultsFolder, alg.Name(), dataPath)

	runLog.Info("Running algorithm",
		zap.String("data", dataPath),
		zap.String("result", resultFolderPath),
		zap.Int("total_data_points", total),
		zap.Time("start", host.startDate),
		zap.Time("end", host.endDate),
	)

	if callbacks.OnRunStart != nil {
		if err := (*callbacks.OnRunStart)(runID, dataFileIndex, dataPath, total); err != nil {
			return errors.Wrap(errors.ErrCodeCallbackFailed, "run start callback failed", err)
		}
	}

	r := &runner{
		ctx:          ctx,
		host:         host,
		state:        b.state,
		metrics:      b.metrics,
		tradingStart: host.startDate,
	}

	if err := r.replay(b.datasource.ReadAll(readStart, readEnd), total, callbacks.OnProcessData); err != nil {
		return err
	}

	if host.quit {
		runLog.Info("Algorithm quit", zap.String("reason", host.quitReason))
	}

	if err := b.finish(r, dataPath, resultFolderPath); err != nil {
		return err
	}

	if callbacks.OnRunEnd != nil {
		(*callbacks.OnRunEnd)(runID, dataFileIndex, dataPath, resultFolderPath)
	}

	return nil
}

// finish computes the statistics, reports them and writes the results folder.
func (b *BacktestEngineV1) finish(r *runner, dataPath string, resultFolderPath string) error {
	host := r.host

	orders, err := b.state.GetOrders()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStatisticsFailed, "failed to read orders", err)
	}

	equity, err := b.state.GetDailyEquity()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStatisticsFailed, "failed to read equity", err)
	}

	startDate := host.startDate
	if startDate.IsZero() {
		startDate = r.firstTime
	}

	endDate := host.endDate
	if endDate.IsZero() {
		endDate = r.lastTime
	}

	results := b.calculator.Calculate(statistics.Input{
		StartDate:   startDate,
		EndDate:     endDate,
		StartEquity: host.initialCash,
		Equity:      equity,
		Orders:      orders,
	})
	results.ID = host.runID
	results.Algorithm = host.algorithm.Name()
	results.Symbols = host.Symbols()
	results.DataPath = dataPath

	host.defaultStatistics.SetResults(results)

	for _, name := range statistics.SortedNames(results.Summary) {
		host.SetSummaryStatistic(name, results.Summary[name])
	}

	if handler, ok := host.algorithm.(algorithm.EndOfAlgorithmHandler); ok {
		if err := handler.OnEndOfAlgorithm(); err != nil {
			return errors.Wrapf(errors.ErrCodeAlgorithmRuntimeError, err, "algorithm %s failed at end of run", host.algorithm.Name())
		}
	}

	if err := os.MkdirAll(resultFolderPath, 0755); err != nil {
		return fmt.Errorf("failed to create result folder: %w", err)
	}

	if err := types.WriteStatistics(filepath.Join(resultFolderPath, "stats.yaml"), host.defaultStatistics.StatisticsResults()); err != nil {
		return errors.Wrap(errors.ErrCodeStatisticsWriteFailed, "failed to write stats", err)
	}

	if err := b.state.Write(resultFolderPath); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	if err := b.logStore.Write(resultFolderPath); err != nil {
		return fmt.Errorf("failed to write logs: %w", err)
	}

	return nil
}

func (b *BacktestEngineV1) cleanUpRun() error {
	if b.state == nil {
		return errors.New(errors.ErrCodeBacktestStateNil, "backtest state is nil")
	}

	if err := b.state.Cleanup(); err != nil {
		return fmt.Errorf("failed to cleanup state: %w", err)
	}

	if err := b.logStore.Cleanup(); err != nil {
		return fmt.Errorf("failed to cleanup logs: %w", err)
	}

	return nil
}

func (b *BacktestEngineV1) preRunCheck() error {
	if b.log == nil || b.state == nil || b.logStore == nil {
		return errors.New(errors.ErrCodeBacktestInitFailed, "engine is not initialized")
	}

	if len(b.algorithms) == 0 {
		b.log.Error("No algorithms loaded")

		return errors.New(errors.ErrCodeBacktestNoAlgorithms, "no algorithms loaded")
	}

	if len(b.dataPaths) == 0 {
		b.log.Error("No data paths loaded")

		return errors.New(errors.ErrCodeBacktestNoDataPaths, "no data paths loaded")
	}

	if b.resultsFolder == "" {
		b.log.Error("No results folder set")

		return errors.New(errors.ErrCodeBacktestNoResultsDir, "no results folder set")
	}

	if b.datasource == nil {
		b.log.Error("No datasource set")

		return errors.New(errors.ErrCodeBacktestNoDatasource, "no datasource set")
	}

	return nil
}
