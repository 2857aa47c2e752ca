package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agbru/drills/internal/fibonacci"
	"github.com/agbru/drills/internal/logging"
	"github.com/agbru/drills/internal/numeric"
	"github.com/agbru/drills/internal/prompt"
	"github.com/agbru/drills/internal/tui"
)

func newTempCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "temp",
		Short: "Convert a Fahrenheit temperature and compute a Fibonacci number from typed input",
		Long: `temp reads two lines: a temperature in Fahrenheit and a Fibonacci index.
It prints the temperature in Celsius, then the Fibonacci number. A malformed
line ends the exercise with exit code 4 unless --retries allows asking again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.track(cmd.Context(), "temp", func(ctx context.Context) error {
				if env.Config.TUI {
					return runTemperatureForm(ctx, env)
				}
				return runTemperature(ctx, env)
			})
		},
	}
	cmd.Flags().IntVar(&env.Config.Retries, "retries", env.Config.Retries, "times to ask again after malformed input")
	cmd.Flags().BoolVar(&env.Config.TUI, "tui", env.Config.TUI, "use the interactive terminal form")
	return cmd
}

// runTemperature is the line-oriented exercise. Each stage prints its result
// before the next question is asked. A canceled ctx abandons a pending read.
func runTemperature(ctx context.Context, env *Env) error {
	in := prompt.NewContextReader(ctx, prompt.NewScannerReader(env.In))
	p := prompt.New(in, env.Out,
		prompt.WithRetries(env.Config.Retries),
		prompt.WithLogger(env.Logger))

	f, err := p.Float("Enter the temperature in fahrenheit:", "temperature")
	if err != nil {
		return err
	}
	DisplayCelsius(env.Out, numeric.FahrenheitToCelsius(f))

	n, err := p.Int("Enter the number to calculate fibonacci for:", "n")
	if err != nil {
		return err
	}
	v, err := fibonacci.Iterative(n)
	if err != nil {
		return err
	}
	DisplayFibonacci(env.Out, n, v)
	return nil
}

func runTemperatureForm(ctx context.Context, env *Env) error {
	res, err := tui.Run(ctx, env.In, env.Out)
	if err != nil {
		return err
	}
	for range res.Rejected {
		env.Metrics.InputError("form")
	}
	env.Logger.Debug("form submitted",
		logging.Float64("fahrenheit", res.Fahrenheit),
		logging.Int64("n", res.N),
		logging.Int("rejected", res.Rejected))
	return nil
}
