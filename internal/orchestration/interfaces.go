package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/agbru/drills/internal/fibonacci"
)

// CalculationResult encapsulates the outcome of a single strategy run.
type CalculationResult struct {
	// Name is the strategy description.
	Name string
	// Result is the computed value. It is nil if an error occurred.
	Result *big.Int
	// Duration is the time taken by the strategy.
	Duration time.Duration
	// Err contains any error returned by the strategy.
	Err error
}

// ProgressReporter displays progress while strategies run.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed, then calls
	// wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter renders a comparison.
type ResultPresenter interface {
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	PresentResult(result CalculationResult, n uint64, out io.Writer)
}
