package engine

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-algorithm/internal/log"
	"github.com/rxtech-lab/argo-algorithm/internal/logger"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"go.uber.org/zap"
)

// BacktestLog stores the messages written by algorithms in DuckDB.
type BacktestLog struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewBacktestLog creates a log store backed by an in-memory database.
func NewBacktestLog(logger *logger.Logger) (*BacktestLog, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		logger.Error("Failed to open database", zap.Error(err))

		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		db.Close()

		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(`SET TimeZone = 'UTC'`); err != nil {
		logger.Warn("Failed to set DuckDB time zone", zap.Error(err))
	}

	logStorage := &BacktestLog{
		logger: logger,
		db:     db,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}

	if err := logStorage.initialize(); err != nil {
		db.Close()

		return nil, err
	}

	return logStorage, nil
}

// Log implements log.Log.
func (l *BacktestLog) Log(entry log.LogEntry) error {
	if l == nil || l.db == nil {
		return fmt.Errorf("backtest log or database is nil")
	}

	_, err := l.sq.
		Insert("logs").
		Columns("id", "timestamp", "algorithm", "level", "message", "warming_up").
		Values(squirrel.Expr("nextval('log_id_seq')"), entry.Timestamp.UTC(), entry.Algorithm, string(entry.Level), entry.Message, entry.WarmingUp).
		RunWith(l.db).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to insert log entry: %w", err)
	}

	return nil
}

// GetLogs implements log.Log.
func (l *BacktestLog) GetLogs() ([]log.LogEntry, error) {
	if l == nil || l.db == nil {
		return nil, fmt.Errorf("backtest log or database is nil")
	}

	rows, err := l.sq.
		Select("timestamp", "algorithm", "level", "message", "warming_up").
		From("logs").
		OrderBy("id ASC").
		RunWith(l.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	var logs []log.LogEntry

	for rows.Next() {
		var entry log.LogEntry

		var level string

		if err := rows.Scan(&entry.Timestamp, &entry.Algorithm, &level, &entry.Message, &entry.WarmingUp); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}

		entry.Timestamp = entry.Timestamp.UTC()
		entry.Level = types.LogLevel(level)
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}

	return logs, nil
}

// Write implements log.Log. The file is written as logs.parquet inside the directory at path.
func (l *BacktestLog) Write(path string) error {
	if l == nil || l.db == nil || l.logger == nil {
		return fmt.Errorf("backtest log, database, or logger is nil")
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	logsPath := filepath.Join(path, "logs.parquet")

	_, err := l.db.Exec(fmt.Sprintf(`COPY (SELECT * FROM logs ORDER BY id) TO '%s' (FORMAT PARQUET)`, logsPath))
	if err != nil {
		return fmt.Errorf("failed to export logs to Parquet: %w", err)
	}

	l.logger.Debug("Exported logs to Parquet file", zap.String("logs", logsPath))

	return nil
}

// Cleanup implements log.Log.
func (l *BacktestLog) Cleanup() error {
	if l == nil || l.db == nil {
		return fmt.Errorf("backtest log or database is nil")
	}

	_, err := l.db.Exec(`
		DROP TABLE IF EXISTS logs;
		DROP SEQUENCE IF EXISTS log_id_seq;
	`)
	if err != nil {
		return fmt.Errorf("failed to cleanup logs table: %w", err)
	}

	return l.initialize()
}

// Close closes the database connection.
func (l *BacktestLog) Close() error {
	if l == nil || l.db == nil {
		return nil
	}

	return l.db.Close()
}

func (l *BacktestLog) initialize() error {
	if l == nil || l.db == nil {
		return fmt.Errorf("backtest log or database is nil")
	}

	if _, err := l.db.Exec(`CREATE SEQUENCE IF NOT EXISTS log_id_seq`); err != nil {
		return fmt.Errorf("failed to create sequence: %w", err)
	}

	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY,
			timestamp TIMESTAMP,
			algorithm TEXT,
			level TEXT,
			message TEXT,
			warming_up BOOLEAN
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create logs table: %w", err)
	}

	return nil
}
