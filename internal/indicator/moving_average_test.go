package indicator

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MovingAverageTestSuite struct {
	suite.Suite
	start time.Time
}

func TestMovingAverageSuite(t *testing.T) {
	suite.Run(t, new(MovingAverageTestSuite))
}

func (suite *MovingAverageTestSuite) SetupTest() {
	suite.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *MovingAverageTestSuite) feed(ind ValueIndicator, values ...float64) {
	for i, v := range values {
		suite.Require().NoError(ind.UpdateValue(suite.start.Add(time.Duration(i)*time.Hour), v))
	}
}

func (suite *MovingAverageTestSuite) TestSimpleMovingAverage() {
	sma, err := NewSimpleMovingAverage("", 3)
	suite.Require().NoError(err)
	suite.Equal("SMA(3)", sma.Name())
	suite.Equal(3, sma.WarmUpPeriod())

	suite.feed(sma, 1, 2)
	suite.False(sma.IsReady())
	suite.InDelta(1.5, sma.Current().Value, 1e-9)

	suite.feed(sma, 3)
	suite.True(sma.IsReady())
	suite.InDelta(2.0, sma.Current().Value, 1e-9)

	// window slides: (2+3+10)/3, feed restarts the clock so only the value matters
	suite.Require().NoError(sma.UpdateValue(suite.start.Add(10*time.Hour), 10))
	suite.InDelta(5.0, sma.Current().Value, 1e-9)
	suite.Equal(suite.start.Add(10*time.Hour), sma.Current().Time)
	suite.Equal(4, sma.Samples())

	sma.Reset()
	suite.Equal(0, sma.Samples())
	suite.False(sma.IsReady())
}

func (suite *MovingAverageTestSuite) TestWildersMovingAverage() {
	wilders, err := NewWildersMovingAverage("", 3)
	suite.Require().NoError(err)
	suite.Equal("WWMA(3)", wilders.Name())

	suite.feed(wilders, 3, 6, 9)
	suite.True(wilders.IsReady())
	suite.InDelta(6.0, wilders.Current().Value, 1e-9)

	// 12/3 + 6*2/3
	suite.feed(wilders, 12)
	suite.InDelta(8.0, wilders.Current().Value, 1e-9)
}

func (suite *MovingAverageTestSuite) TestInvalidPeriod() {
	_, err := NewSimpleMovingAverage("", 0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, err = NewWildersMovingAverage("", -1)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *MovingAverageTestSuite) TestNewMovingAverage() {
	ma, err := NewMovingAverage(MovingAverageTypeSimple, "fast", 5)
	suite.NoError(err)
	suite.Equal("fast", ma.Name())

	ma, err = NewMovingAverage(MovingAverageTypeWilders, "", 5)
	suite.NoError(err)
	suite.Equal("WWMA(5)", ma.Name())

	_, err = NewMovingAverage(MovingAverageType("hull"), "", 5)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *MovingAverageTestSuite) TestMaximumMinimum() {
	maximum, err := NewMaximum("", 3)
	suite.Require().NoError(err)

	minimum, err := NewMinimum("", 3)
	suite.Require().NoError(err)

	suite.feed(maximum, 5, 1, 3, 2)
	suite.feed(minimum, 5, 1, 3, 2)

	// last three values are 1, 3, 2
	suite.Equal(3.0, maximum.Current().Value)
	suite.Equal(1.0, minimum.Current().Value)
	suite.True(maximum.IsReady())
	suite.Equal("MAX(3)", maximum.Name())
	suite.Equal("MIN(3)", minimum.Name())
}

func (suite *MovingAverageTestSuite) TestRollingWindow() {
	w := newRollingWindow(2)

	_, evicted := w.add(1)
	suite.False(evicted)
	suite.False(w.isFull())

	w.add(2)
	suite.True(w.isFull())

	value, evicted := w.add(3)
	suite.True(evicted)
	suite.Equal(1.0, value)

	var values []float64
	w.each(func(v float64) { values = append(values, v) })
	suite.Equal([]float64{2, 3}, values)

	w.reset()
	suite.Equal(0, w.len())
}
