package statistics

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

// PrintingService prints every summary entry it receives and keeps nothing.
type PrintingService struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewPrintingService creates a printing service writing to w, or to stdout when w is nil.
func NewPrintingService(w io.Writer) *PrintingService {
	if w == nil {
		w = os.Stdout
	}

	return &PrintingService{
		mu:     sync.Mutex{},
		writer: w,
	}
}

// StatisticsResults returns a new, empty results container.
func (p *PrintingService) StatisticsResults() types.StatisticsResults {
	return types.NewStatisticsResults()
}

// SetSummaryStatistic writes "Name: <name> Value: <value>" on its own line.
func (p *PrintingService) SetSummaryStatistic(name string, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// a failed print has nowhere to be reported
	_, _ = fmt.Fprintf(p.writer, "Name: %s Value: %s\n", name, value)
}
