package datasource

import (
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

// FileFormat is the format of a market data file.
type FileFormat string

const (
	FileFormatParquet FileFormat = "parquet"
	FileFormatCSV     FileFormat = "csv"
)

// DetectFileFormat returns the format of path from its extension.
func DetectFileFormat(path string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FileFormatParquet, nil
	case ".csv":
		return FileFormatCSV, nil
	default:
		return "", errors.Newf(errors.ErrCodeBacktestDataPathError, "unsupported data file: %s", path)
	}
}

// escapePath quotes a path for use inside a SQL string literal.
func escapePath(path string) string {
	return strings.ReplaceAll(path, "'", "''")
}
