package mocks

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/stretchr/testify/suite"
)

type BarGeneratorTestSuite struct {
	suite.Suite
}

func TestBarGeneratorSuite(t *testing.T) {
	suite.Run(t, new(BarGeneratorTestSuite))
}

func (suite *BarGeneratorTestSuite) TestGenerate() {
	config := DefaultBarConfig()
	config.Count = 30

	bars := NewBarGenerator(42).Generate(config)
	suite.Require().Len(bars, 30)

	for i, bar := range bars {
		suite.Equal("SPY", bar.Symbol)
		suite.Equal(24*time.Hour, bar.Period)
		suite.Positive(bar.Low)
		suite.GreaterOrEqual(bar.High, bar.Low)
		suite.GreaterOrEqual(bar.High, bar.Close)
		suite.LessOrEqual(bar.Low, bar.Close)
		suite.NotEqual(time.Saturday, bar.Time.Weekday())
		suite.NotEqual(time.Sunday, bar.Time.Weekday())

		if i > 0 {
			suite.True(bar.Time.After(bars[i-1].Time))
		}
	}
}

func (suite *BarGeneratorTestSuite) TestGenerateIsReproducible() {
	config := DefaultBarConfig()
	config.Count = 10

	first := NewBarGenerator(7).Generate(config)
	second := NewBarGenerator(7).Generate(config)
	other := NewBarGenerator(8).Generate(config)

	suite.Equal(first, second)
	suite.NotEqual(first, other)
}

func (suite *BarGeneratorTestSuite) TestGenerateHourly() {
	config := DefaultBarConfig()
	config.Resolution = types.ResolutionHour
	config.SkipWeekends = false
	config.Count = 48

	bars := NewBarGenerator(1).Generate(config)
	suite.Require().Len(bars, 48)
	suite.Equal(config.Start.Add(47*time.Hour), bars[47].Time)
}

func (suite *BarGeneratorTestSuite) TestRamp() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := Ramp("AAPL", start, types.ResolutionDaily, 3, 10, 2)

	suite.Require().Len(bars, 3)
	suite.Equal([]float64{10, 12, 14}, []float64{bars[0].Close, bars[1].Close, bars[2].Close})
	suite.Equal(12.0, bars[2].Open)
	suite.Equal(start.AddDate(0, 0, 2), bars[2].Time)
}

func (suite *BarGeneratorTestSuite) TestWriteCSV() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var buffer bytes.Buffer
	suite.Require().NoError(WriteCSV(&buffer, Ramp("AAPL", start, types.ResolutionDaily, 2, 10, 1)))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	suite.Require().Len(lines, 3)
	suite.Equal("id,symbol,time,open,high,low,close,volume", lines[0])
	suite.Contains(lines[1], "AAPL,2024-01-01T00:00:00Z")
}
