package datasource

import (
	"os"
	"path/filepath"
	"time"
)

const sampleCSV = `time,symbol,open,high,low,close,volume
2024-01-02T00:00:00Z,SPY,100,101,99,100.5,1000
2024-01-02T00:00:00Z,AAPL,190,191,189,190.5,500
2024-01-03T00:00:00Z,SPY,100.5,102,100,101.5,1100
2024-01-03T00:00:00Z,AAPL,190.5,192,190,191.5,600
2024-01-04T00:00:00Z,SPY,101.5,103,101,102.5,1200
2024-01-05T00:00:00Z,SPY,102.5,104,102,103.5,1300
`

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func writeSampleCSV(dir string) (string, error) {
	path := filepath.Join(dir, "sample.csv")

	return path, os.WriteFile(path, []byte(sampleCSV), 0644)
}
