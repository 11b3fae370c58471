package engine

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-algorithm/internal/logger"
	"github.com/rxtech-lab/argo-algorithm/internal/statistics"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"go.uber.org/zap"
)

// BacktestState records the orders and the equity curve of one run in DuckDB.
type BacktestState struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewBacktestState opens an in-memory database. Call Initialize before use.
func NewBacktestState(logger *logger.Logger) (*BacktestState, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		logger.Error("Failed to open database", zap.Error(err))

		return nil, errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to open state database", err)
	}

	if _, err := db.Exec(`SET TimeZone = 'UTC'`); err != nil {
		logger.Warn("Failed to set DuckDB time zone", zap.Error(err))
	}

	return &BacktestState{
		db:     db,
		logger: logger,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Initialize creates the orders and equity tables.
func (b *BacktestState) Initialize() error {
	if b == nil || b.db == nil {
		return errors.New(errors.ErrCodeBacktestStateNil, "backtest state is nil")
	}

	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			symbol TEXT,
			side TEXT,
			order_type TEXT,
			quantity DOUBLE,
			price DOUBLE,
			timestamp TIMESTAMP,
			status TEXT,
			reason TEXT,
			message TEXT,
			algorithm_name TEXT,
			fee DOUBLE,
			realized_pnl DOUBLE
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}

	_, err = b.db.Exec(`
		CREATE TABLE IF NOT EXISTS equity (
			time TIMESTAMP,
			cash DOUBLE,
			holdings DOUBLE,
			equity DOUBLE
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create equity table: %w", err)
	}

	return nil
}

// RecordOrder stores a processed order.
func (b *BacktestState) RecordOrder(order types.Order) error {
	_, err := b.sq.
		Insert("orders").
		Columns(
			"order_id", "symbol", "side", "order_type", "quantity", "price", "timestamp",
			"status", "reason", "message", "algorithm_name", "fee", "realized_pnl",
		).
		Values(
			order.OrderID, order.Symbol, string(order.Side), string(order.OrderType), order.Quantity, order.Price,
			order.Timestamp.UTC(), string(order.Status), order.Reason.Reason, order.Reason.Message,
			order.AlgorithmName, order.Fee, order.RealizedPnL,
		).
		RunWith(b.db).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// RecordEquity stores the portfolio value at t.
func (b *BacktestState) RecordEquity(t time.Time, cash float64, holdings float64) error {
	_, err := b.sq.
		Insert("equity").
		Columns("time", "cash", "holdings", "equity").
		Values(t.UTC(), cash, holdings, cash+holdings).
		RunWith(b.db).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to insert equity: %w", err)
	}

	return nil
}

// GetOrders returns every order in time order.
func (b *BacktestState) GetOrders() ([]types.Order, error) {
	rows, err := b.sq.
		Select(
			"order_id", "symbol", "side", "order_type", "quantity", "price", "timestamp",
			"status", "reason", "message", "algorithm_name", "fee", "realized_pnl",
		).
		From("orders").
		OrderBy("timestamp ASC").
		RunWith(b.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []types.Order

	for rows.Next() {
		var order types.Order

		var side, orderType, status string

		err := rows.Scan(
			&order.OrderID, &order.Symbol, &side, &orderType, &order.Quantity, &order.Price, &order.Timestamp,
			&status, &order.Reason.Reason, &order.Reason.Message, &order.AlgorithmName, &order.Fee, &order.RealizedPnL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		order.Side = types.PurchaseType(side)
		order.OrderType = types.OrderType(orderType)
		order.Status = types.OrderStatus(status)
		order.Timestamp = order.Timestamp.UTC()

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetDailyEquity returns the last recorded equity of every day.
func (b *BacktestState) GetDailyEquity() ([]statistics.EquityPoint, error) {
	rows, err := b.sq.
		Select("max(time) AS day_end", "arg_max(equity, time) AS day_equity").
		From("equity").
		GroupBy("CAST(time AS DATE)").
		OrderBy("day_end ASC").
		RunWith(b.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query daily equity: %w", err)
	}
	defer rows.Close()

	var points []statistics.EquityPoint

	for rows.Next() {
		var point statistics.EquityPoint
		if err := rows.Scan(&point.Time, &point.Equity); err != nil {
			return nil, fmt.Errorf("failed to scan equity: %w", err)
		}

		point.Time = point.Time.UTC()
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equity: %w", err)
	}

	return points, nil
}

// Write exports orders.parquet and equity.parquet into the directory at path.
func (b *BacktestState) Write(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// squirrel has no COPY support
	ordersPath := filepath.Join(path, "orders.parquet")

	_, err := b.db.Exec(fmt.Sprintf(`COPY (SELECT * FROM orders ORDER BY timestamp) TO '%s' (FORMAT PARQUET)`, ordersPath))
	if err != nil {
		return fmt.Errorf("failed to export orders to Parquet: %w", err)
	}

	equityPath := filepath.Join(path, "equity.parquet")

	_, err = b.db.Exec(fmt.Sprintf(`COPY (SELECT * FROM equity ORDER BY time) TO '%s' (FORMAT PARQUET)`, equityPath))
	if err != nil {
		return fmt.Errorf("failed to export equity to Parquet: %w", err)
	}

	b.logger.Debug("Exported backtest state to Parquet files",
		zap.String("orders", ordersPath),
		zap.String("equity", equityPath),
	)

	return nil
}

// Cleanup drops every table and recreates them empty.
func (b *BacktestState) Cleanup() error {
	if b == nil || b.db == nil {
		return errors.New(errors.ErrCodeBacktestStateNil, "backtest state is nil")
	}

	_, err := b.db.Exec(`
		DROP TABLE IF EXISTS orders;
		DROP TABLE IF EXISTS equity;
	`)
	if err != nil {
		return fmt.Errorf("failed to cleanup tables: %w", err)
	}

	return b.Initialize()
}

// Close closes the database.
func (b *BacktestState) Close() error {
	if b == nil || b.db == nil {
		return nil
	}

	return b.db.Close()
}
