// Package log defines the store for messages written by algorithms during a run.
package log

import (
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// LogEntry is a message written by an algorithm.
type LogEntry struct {
	// Timestamp is the algorithm time when the message was written.
	Timestamp time.Time
	// Algorithm is the name of the algorithm that wrote the message.
	Algorithm string
	Level     types.LogLevel
	Message   string
	// WarmingUp is true for messages written during warm-up.
	WarmingUp bool
}

// Log stores algorithm log entries for one run.
type Log interface {
	// Log stores a log entry.
	Log(entry LogEntry) error
	// GetLogs returns every stored entry in insertion order.
	GetLogs() ([]LogEntry, error)
	// Write exports the entries to a parquet file at path.
	Write(path string) error
	// Cleanup removes every stored entry.
	Cleanup() error
}
