package orchestration

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/fibonacci"
)

// ProgressBufferMultiplier sizes the progress channel per calculator so that
// a slow display does not stall the strategies.
const ProgressBufferMultiplier = 5

// ExecuteCalculations runs every calculator concurrently for index n and
// returns one result per calculator, in input order. Individual failures are
// recorded in the results rather than aborting the other runs.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, n uint64, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	var g errgroup.Group
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan fibonacci.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		g.Go(func() error {
			start := time.Now()
			res, err := calc.Calculate(ctx, progressChan, i, n)
			results[i] = CalculationResult{
				Name: calc.Name(), Result: res, Duration: time.Since(start), Err: err,
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results fastest-first (failures last),
// presents them, and checks that every successful strategy agrees.
//
// It returns the fastest successful result. If none succeeded it returns
// the first error; if successful results disagree it returns
// apperrors.ErrMismatch.
func AnalyzeComparisonResults(results []CalculationResult, n uint64, presenter ResultPresenter, out io.Writer) (CalculationResult, error) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	presenter.PresentComparisonTable(results, out)

	if len(results) == 0 {
		return CalculationResult{}, apperrors.ValidationError{Field: "algo", Message: "no strategy supports this index"}
	}
	best := results[0]
	if best.Err != nil {
		return best, best.Err
	}
	for _, res := range results[1:] {
		if res.Err == nil && res.Result.Cmp(best.Result) != 0 {
			return best, apperrors.WrapError(apperrors.ErrMismatch, "%s and %s disagree on F(%d)", best.Name, res.Name, n)
		}
	}

	presenter.PresentResult(best, n, out)
	return best, nil
}
