package datasource

import (
	"testing"

	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type DatasourceUtilsTestSuite struct {
	suite.Suite
}

func TestDatasourceUtilsSuite(t *testing.T) {
	suite.Run(t, new(DatasourceUtilsTestSuite))
}

func (suite *DatasourceUtilsTestSuite) TestDetectFileFormat() {
	tests := []struct {
		path        string
		expected    FileFormat
		expectError bool
	}{
		{"data/spy.parquet", FileFormatParquet, false},
		{"data/SPY.PARQUET", FileFormatParquet, false},
		{"/tmp/spy_hourly.csv", FileFormatCSV, false},
		{"data/spy.json", "", true},
		{"data/spy", "", true},
	}

	for _, tc := range tests {
		suite.Run(tc.path, func() {
			format, err := DetectFileFormat(tc.path)

			if tc.expectError {
				suite.Error(err)
				suite.True(errors.HasCode(err, errors.ErrCodeBacktestDataPathError))

				return
			}

			suite.NoError(err)
			suite.Equal(tc.expected, format)
		})
	}
}

func (suite *DatasourceUtilsTestSuite) TestEscapePath() {
	suite.Equal("/tmp/it''s.csv", escapePath("/tmp/it's.csv"))
	suite.Equal("/tmp/plain.csv", escapePath("/tmp/plain.csv"))
}
