package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/fibonacci"
	"github.com/agbru/drills/internal/logging"
	"github.com/agbru/drills/internal/orchestration"
)

func newFibCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Compute the N-th Fibonacci number",
		Long: `fib computes F(N) with the strategy chosen by --algo. The int64 strategies
(recursive, iterative, memo) stop at F(92); "fast" uses arbitrary precision.
With --algo all every strategy able to handle N runs concurrently and the
results are cross-checked.`,
		Example: `  drills fib 10
  drills fib 1000 --algo fast
  drills fib 90 --algo all
  drills fib 1000000 --last-digits 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.track(cmd.Context(), "fib", func(ctx context.Context) error {
				n, err := parseIndex(args[0])
				if err != nil {
					return err
				}
				return runFibonacci(ctx, env, n, env.Config.Algo)
			})
		},
	}
	bindFibFlags(cmd, env)

	compare := &cobra.Command{
		Use:   "compare N",
		Short: "Run every strategy that supports N and cross-check the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.track(cmd.Context(), "fib", func(ctx context.Context) error {
				n, err := parseIndex(args[0])
				if err != nil {
					return err
				}
				return runFibonacci(ctx, env, n, orchestration.AllAlgorithms)
			})
		},
	}
	compare.Flags().DurationVar(&env.Config.Timeout, "timeout", env.Config.Timeout, "maximum time for the computation")
	cmd.AddCommand(compare)
	return cmd
}

func bindFibFlags(cmd *cobra.Command, env *Env) {
	fs := cmd.Flags()
	fs.StringVarP(&env.Config.Algo, "algo", "a", env.Config.Algo,
		fmt.Sprintf("strategy: %v or %q", env.Factory.List(), orchestration.AllAlgorithms))
	fs.DurationVar(&env.Config.Timeout, "timeout", env.Config.Timeout, "maximum time for the computation")
	fs.IntVar(&env.Config.LastDigits, "last-digits", env.Config.LastDigits, "print only the last K digits (any N)")
}

// parseIndex accepts a decimal index. Negative values are a validation
// error rather than a parse error.
func parseIndex(s string) (uint64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &apperrors.ParseError{Field: "n", Input: s, Err: err}
	}
	if v < 0 {
		return 0, fibonacci.ValidateIndex(v)
	}
	return uint64(v), nil
}

func runFibonacci(ctx context.Context, env *Env, n uint64, algo string) error {
	ctx, cancel := context.WithTimeout(ctx, env.Config.Timeout)
	defer cancel()

	if k := env.Config.LastDigits; k > 0 {
		start := time.Now()
		digits, err := fibonacci.LastDigits(ctx, n, k)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "Last %d digits of F(%d): %s\n", k, n, digits)
		env.Logger.Debug("last digits", logging.Uint64("n", n), logging.Duration("elapsed", time.Since(start)))
		return nil
	}

	calcs, err := orchestration.GetCalculatorsToRun(algo, env.Factory, n)
	if err != nil {
		return err
	}
	if len(calcs) == 0 {
		return apperrors.ValidationError{Field: "n", Message: fmt.Sprintf("no strategy supports index %d", n)}
	}

	if len(calcs) == 1 {
		start := time.Now()
		result, err := calcs[0].Calculate(ctx, nil, 0, n)
		if err != nil {
			return err
		}
		DisplayResult(env.Out, n, result.String(), time.Since(start))
		return nil
	}

	env.Logger.Info("comparing strategies", logging.Uint64("n", n), logging.Int("count", len(calcs)))
	results := orchestration.ExecuteCalculations(ctx, calcs, n, CLIProgressReporter{}, env.Err)
	_, err = orchestration.AnalyzeComparisonResults(results, n, CLIResultPresenter{}, env.Out)
	return err
}
