package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithms"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine"
	engine_v1 "github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-algorithm/internal/logger"
	"github.com/rxtech-lab/argo-algorithm/internal/metrics"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	dataSourceDuckDB = "duckdb"
	dataSourceMemory = "memory"
)

func newDataSource(kind string, log *logger.Logger) (datasource.DataSource, error) {
	switch kind {
	case dataSourceDuckDB:
		source, err := datasource.NewDataSource(":memory:", log)
		if err != nil {
			return nil, fmt.Errorf("failed to open duckdb: %w", err)
		}

		return source, nil
	case dataSourceMemory:
		return datasource.NewMemoryDataSource(nil), nil
	default:
		return nil, fmt.Errorf("unknown data source %q", kind)
	}
}

// loadAlgorithms creates every named algorithm and loads it into the engine.
func loadAlgorithms(backtest engine.Engine, registry *algorithms.Registry, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("at least one algorithm is required")
	}

	for _, name := range names {
		alg, err := registry.Create(name)
		if err != nil {
			return err
		}

		if err := backtest.LoadAlgorithm(alg); err != nil {
			return fmt.Errorf("failed to load algorithm %s: %w", name, err)
		}
	}

	return nil
}

// progressCallbacks draws one progress bar per run.
func progressCallbacks(log *logger.Logger) engine.LifecycleCallbacks {
	var bar *progressbar.ProgressBar

	onRunStart := engine.OnRunStartCallback(func(runID string, _ int, dataFilePath string, totalDataPoints int) error {
		bar = progressbar.Default(int64(totalDataPoints), fmt.Sprintf("Processing %s", filepath.Base(dataFilePath)))
		log.Debug("Run started", zap.String("run_id", runID), zap.String("data", dataFilePath))

		return nil
	})

	onProcessData := engine.OnProcessDataCallback(func(current int, _ int) error {
		if bar == nil {
			return nil
		}

		return bar.Set(current)
	})

	onRunEnd := engine.OnRunEndCallback(func(runID string, _ int, _ string, resultFolderPath string) {
		if bar != nil {
			_ = bar.Finish()
		}

		log.Info("Run finished", zap.String("run_id", runID), zap.String("results", resultFolderPath))
	})

	return engine.LifecycleCallbacks{
		OnRunStart:    &onRunStart,
		OnProcessData: &onProcessData,
		OnRunEnd:      &onRunEnd,
	}
}

// runAction is the core logic of the run command.
func runAction(ctx context.Context, cmd *cli.Command) error {
	level := zapcore.InfoLevel
	if cmd.Bool("verbose") {
		level = zapcore.DebugLevel
	}

	log, err := logger.NewLoggerWithLevel(level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	config, err := os.ReadFile(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	engineMetrics := metrics.New()

	backtest, ok := engine_v1.NewBacktestEngineV1WithMetrics(engineMetrics).(*engine_v1.BacktestEngineV1)
	if !ok {
		return fmt.Errorf("unexpected engine type")
	}

	backtest.SetLogger(log)

	if err := backtest.Initialize(string(config)); err != nil {
		return fmt.Errorf("failed to initialize backtest engine: %w", err)
	}

	source, err := newDataSource(cmd.String("datasource"), log)
	if err != nil {
		return err
	}
	defer source.Close()

	if err := backtest.SetDataSource(source); err != nil {
		return err
	}

	if err := backtest.SetDataPath(cmd.String("data")); err != nil {
		return err
	}

	if err := backtest.SetResultsFolder(cmd.String("results")); err != nil {
		return err
	}

	registry := algorithms.NewDefaultRegistry(cmd.Root().Writer)
	if err := loadAlgorithms(backtest, registry, cmd.StringSlice("algorithm")); err != nil {
		return err
	}

	callbacks := engine.LifecycleCallbacks{}
	if cmd.Bool("progress") {
		callbacks = progressCallbacks(log)
	}

	runErr := backtest.Run(ctx, callbacks)

	if path := cmd.String("metrics"); path != "" {
		if err := engineMetrics.WriteTextfile(path); err != nil {
			log.Error("Failed to write metrics", zap.String("path", path), zap.Error(err))
		}
	}

	if runErr != nil {
		return fmt.Errorf("backtest failed: %w", runErr)
	}

	return nil
}
