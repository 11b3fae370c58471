package algorithms

import (
	"fmt"
	"io"
	"time"

	"github.com/rxtech-lab/argo-algorithm/internal/algorithm"
	"github.com/rxtech-lab/argo-algorithm/internal/statistics"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// StatisticsServiceDemoName is the registry name of StatisticsServiceDemo.
const StatisticsServiceDemoName = "StatisticsServiceDemo"

// StatisticsServiceDemo subscribes to daily SPY bars and plugs a statistics
// service that prints every summary entry instead of storing it.
type StatisticsServiceDemo struct {
	api     algorithm.Api
	service statistics.Service
}

// NewStatisticsServiceDemo creates the demo printing to w, or to stdout when w is nil.
func NewStatisticsServiceDemo(w io.Writer) *StatisticsServiceDemo {
	return &StatisticsServiceDemo{
		api:     nil,
		service: statistics.NewPrintingService(w),
	}
}

func (a *StatisticsServiceDemo) Name() string {
	return StatisticsServiceDemoName
}

func (a *StatisticsServiceDemo) Initialize(api algorithm.Api) error {
	a.api = api

	if err := api.SetStartDate(2023, time.May, 28); err != nil {
		return err
	}

	if err := api.SetEndDate(2023, time.June, 28); err != nil {
		return err
	}

	if _, err := api.AddEquity("SPY", types.ResolutionDaily); err != nil {
		return err
	}

	api.SetStatisticsService(a.service)

	return nil
}

func (a *StatisticsServiceDemo) OnData(types.Slice) error {
	return nil
}

// OnEndOfAlgorithm logs the results container of the plugged service.
func (a *StatisticsServiceDemo) OnEndOfAlgorithm() error {
	a.api.Log(fmt.Sprintf("Statistics: %s", a.api.Statistics()))

	return nil
}
