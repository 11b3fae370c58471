package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithms"
	engine_v1 "github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-algorithm/internal/version"
	"github.com/urfave/cli/v3"
)

// schemaAction prints the JSON schema of the engine configuration.
func schemaAction(_ context.Context, cmd *cli.Command) error {
	schema, err := engine_v1.NewBacktestEngineV1().GetConfigSchema()
	if err != nil {
		return fmt.Errorf("failed to generate config schema: %w", err)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, schema)

	return err
}

// listAction prints the names of the sample algorithms.
func listAction(_ context.Context, cmd *cli.Command) error {
	for _, name := range algorithms.NewDefaultRegistry(nil).Names() {
		if _, err := fmt.Fprintln(cmd.Root().Writer, name); err != nil {
			return err
		}
	}

	return nil
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "backtest",
		Usage:   "Run sample algorithms against historical market data",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run one or more algorithms over every matching data file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the backtest engine `YAML` config",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Market data file or glob pattern (e.g. `data/*.parquet`)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "results",
						Aliases: []string{"r"},
						Usage:   "Directory the results are written to",
						Value:   "results",
					},
					&cli.StringSliceFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Usage:   "Name of the algorithm to run, repeatable (see the list command)",
						Value:   []string{algorithms.StatisticsServiceDemoName},
					},
					&cli.StringFlag{
						Name:  "datasource",
						Usage: fmt.Sprintf("Data source to read with (%s or %s)", dataSourceDuckDB, dataSourceMemory),
						Value: dataSourceDuckDB,
					},
					&cli.StringFlag{
						Name:  "metrics",
						Usage: "Write prometheus metrics in text format to this file after the run",
					},
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Show a progress bar per run",
						Value: true,
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Enable debug logging",
					},
				},
				Action: runAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the engine config",
				Action: schemaAction,
			},
			{
				Name:   "list",
				Usage:  "List the available algorithms",
				Action: listAction,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
