package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/stretchr/testify/suite"
)

type MetricsTestSuite struct {
	suite.Suite
	metrics *Metrics
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (suite *MetricsTestSuite) SetupTest() {
	suite.metrics = New()
}

func (suite *MetricsTestSuite) TestCounters() {
	suite.metrics.ObserveBar()
	suite.metrics.ObserveBar()
	suite.metrics.ObserveSlice()

	suite.Equal(2.0, testutil.ToFloat64(suite.metrics.bars))
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.slices))
}

func (suite *MetricsTestSuite) TestOrdersByLabel() {
	suite.metrics.ObserveOrder(types.Order{Side: types.PurchaseTypeBuy, Status: types.OrderStatusFilled})
	suite.metrics.ObserveOrder(types.Order{Side: types.PurchaseTypeBuy, Status: types.OrderStatusFilled})
	suite.metrics.ObserveOrder(types.Order{Side: types.PurchaseTypeSell, Status: types.OrderStatusRejected})

	suite.Equal(2.0, testutil.ToFloat64(suite.metrics.orders.WithLabelValues("BUY", "FILLED")))
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.orders.WithLabelValues("SELL", "REJECTED")))
	suite.Equal(2, testutil.CollectAndCount(suite.metrics.orders))
}

func (suite *MetricsTestSuite) TestRuns() {
	suite.metrics.ObserveRun(RunStatusSucceeded, time.Second)
	suite.metrics.ObserveRun(RunStatusFailed, time.Millisecond)

	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.runs.WithLabelValues(RunStatusSucceeded)))
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.runs.WithLabelValues(RunStatusFailed)))
	suite.Equal(1, testutil.CollectAndCount(suite.metrics.runDuration))
}

func (suite *MetricsTestSuite) TestWriteTextfile() {
	suite.metrics.ObserveBar()

	path := filepath.Join(suite.T().TempDir(), "metrics.prom")
	suite.Require().NoError(suite.metrics.WriteTextfile(path))

	content, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.Contains(string(content), "argo_algorithm_bars_processed_total 1")
}

func (suite *MetricsTestSuite) TestIndependentRegistries() {
	other := New()
	other.ObserveBar()

	suite.Equal(0.0, testutil.ToFloat64(suite.metrics.bars))
	suite.NotSame(suite.metrics.Registry(), other.Registry())
}
