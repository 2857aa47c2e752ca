package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/agbru/drills/internal/fibonacci"
	"github.com/agbru/drills/internal/format"
	"github.com/agbru/drills/internal/orchestration"
	"github.com/agbru/drills/internal/ui"
)

// CLIProgressReporter shows a spinner and progress bar while strategies run.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter renders comparison results for a terminal.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable prints one row per strategy. Padding is computed on
// the uncolored text so ANSI codes do not break alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameWidth, durationWidth := len("Algorithm"), len("Duration")
	for _, res := range results {
		nameWidth = max(nameWidth, len(res.Name))
		durationWidth = max(durationWidth, len(displayDuration(res)))
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorBold(), ui.ColorReset(), padRight("", nameWidth-len("Algorithm")),
		ui.ColorBold(), ui.ColorReset(), padRight("", durationWidth-len("Duration")),
		ui.ColorBold(), ui.ColorReset())

	for _, res := range results {
		status := fmt.Sprintf("%sOK%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%sFailed (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration := displayDuration(res)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorCyan(), res.Name, ui.ColorReset(), padRight("", nameWidth-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", durationWidth-len(duration)),
			status)
	}
}

// PresentResult prints the value agreed on by every strategy.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, n uint64, out io.Writer) {
	fmt.Fprintf(out, "\nAll strategies agree. Fastest: %s%s%s\n", ui.ColorGreen(), result.Name, ui.ColorReset())
	DisplayResult(out, n, result.Result.String(), result.Duration)
}

func displayDuration(res orchestration.CalculationResult) string {
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}
