// Package statistics holds the pluggable statistics services used by algorithms
// and the calculator that derives run statistics from the equity curve.
package statistics

import (
	"sync"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// Service receives the summary statistics of a run and hands out a results container.
type Service interface {
	// StatisticsResults returns the results container of the service.
	StatisticsResults() types.StatisticsResults
	// SetSummaryStatistic records a summary entry.
	SetSummaryStatistic(name string, value string)
}

// DefaultService keeps the computed results of a run. It is safe for concurrent use.
type DefaultService struct {
	mu      sync.RWMutex
	results types.StatisticsResults
}

// NewDefaultService creates a service holding an empty results container.
func NewDefaultService() *DefaultService {
	return &DefaultService{
		mu:      sync.RWMutex{},
		results: types.NewStatisticsResults(),
	}
}

// SetResults replaces the held results. Summary entries already recorded are kept
// unless the new results carry the same name.
func (s *DefaultService) SetResults(results types.StatisticsResults) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := s.results.Summary
	s.results = results
	s.results.Summary = make(map[string]string, len(summary)+len(results.Summary))

	for name, value := range summary {
		s.results.Summary[name] = value
	}

	for name, value := range results.Summary {
		s.results.Summary[name] = value
	}
}

// StatisticsResults returns a copy of the held results.
func (s *DefaultService) StatisticsResults() types.StatisticsResults {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := s.results
	results.Symbols = append([]string(nil), s.results.Symbols...)
	results.Summary = make(map[string]string, len(s.results.Summary))

	for name, value := range s.results.Summary {
		results.Summary[name] = value
	}

	return results
}

// SetSummaryStatistic records a summary entry, replacing any previous value.
func (s *DefaultService) SetSummaryStatistic(name string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.results.Summary == nil {
		s.results.Summary = map[string]string{}
	}

	s.results.Summary[name] = value
}
