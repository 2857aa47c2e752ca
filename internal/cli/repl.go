package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agbru/drills/internal/arith"
	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/numeric"
	"github.com/agbru/drills/internal/orchestration"
	"github.com/agbru/drills/internal/prompt"
	"github.com/agbru/drills/internal/textview"
	"github.com/agbru/drills/internal/ui"
)

func newREPLCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repl",
		Aliases: []string{"interactive"},
		Short:   "Run the exercises interactively, one command per line",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewREPL(env).Start(cmd.Context())
		},
	}
	bindFibFlags(cmd, env)
	return cmd
}

// REPL is an interactive session over the exercises. Errors in one command
// are printed and the session continues.
type REPL struct {
	env  *Env
	algo string
	in   io.Reader
	out  io.Writer
}

// NewREPL creates a session reading env.In and writing env.Out.
func NewREPL(env *Env) *REPL {
	algo := env.Config.Algo
	if algo == "" {
		algo = "iterative"
	}
	return &REPL{env: env, algo: algo, in: env.In, out: env.Out}
}

// Start reads commands until exit, EOF or cancellation of ctx.
func (r *REPL) Start(ctx context.Context) error {
	r.printBanner()
	r.printHelp()

	in := prompt.NewContextReader(ctx, prompt.NewScannerReader(r.in))
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"drills> "+ui.ColorReset())
		raw, err := in.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.out, "\nGoodbye!")
			return nil
		case apperrors.IsContextError(err):
			fmt.Fprintln(r.out)
			return err
		case err != nil:
			return apperrors.WrapError(err, "reading command")
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !r.processCommand(ctx, line) {
			return nil
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "%sdrills interactive mode%s\n", ui.ColorBold(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, c := range [][2]string{
		{"view <text>", "Print the first three characters of text"},
		{"celsius <f>", "Convert a Fahrenheit temperature"},
		{"fahrenheit <c>", "Convert a Celsius temperature"},
		{"fib <n>", "Compute F(n) with the current strategy"},
		{"compare <n>", "Run every strategy for F(n)"},
		{"algo <name>", "Change strategy (" + strings.Join(r.env.Factory.List(), ", ") + ")"},
		{"sum <x...>", "Sum integers"},
		{"rect <w> <h>...", "Compare rectangles given as width/height pairs"},
		{"help", "Display this help"},
		{"exit", "Leave interactive mode"},
	} {
		fmt.Fprintf(r.out, "  %s%-16s%s %s\n", ui.ColorYellow(), c[0], ui.ColorReset(), c[1])
	}
}

// processCommand runs one line. It returns false when the session should end.
func (r *REPL) processCommand(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	var err error
	switch cmd {
	case "view":
		err = r.cmdView(ctx, args)
	case "celsius", "c":
		err = r.cmdCelsius(ctx, args)
	case "fahrenheit", "fahr":
		err = r.cmdFahrenheit(ctx, args)
	case "fib", "f":
		err = r.cmdFib(ctx, args, r.algo)
	case "compare", "cmp":
		err = r.cmdFib(ctx, args, orchestration.AllAlgorithms)
	case "algo", "a":
		err = r.cmdAlgo(args)
	case "sum", "s":
		err = r.cmdSum(ctx, args)
	case "rect", "r":
		err = r.cmdRect(ctx, args)
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	if err != nil {
		r.printError(err)
	}
	return true
}

func (r *REPL) printError(err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("timed out after %s", r.env.Config.Timeout)
	}
	fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
}

func usage(s string) error {
	return apperrors.ValidationError{Field: "usage", Message: s}
}

func (r *REPL) cmdView(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("view <text>")
	}
	return r.env.track(ctx, "slices", func(context.Context) error {
		return textview.PrintView(r.out, strings.Join(args, " "))
	})
}

func (r *REPL) cmdCelsius(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("celsius <f>")
	}
	return r.env.track(ctx, "temp", func(context.Context) error {
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return &apperrors.ParseError{Field: "temperature", Input: args[0], Err: err}
		}
		DisplayCelsius(r.out, numeric.FahrenheitToCelsius(f))
		return nil
	})
}

func (r *REPL) cmdFahrenheit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("fahrenheit <c>")
	}
	return r.env.track(ctx, "temp", func(context.Context) error {
		c, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return &apperrors.ParseError{Field: "temperature", Input: args[0], Err: err}
		}
		DisplayFahrenheit(r.out, numeric.CelsiusToFahrenheit(c))
		return nil
	})
}

func (r *REPL) cmdFib(ctx context.Context, args []string, algo string) error {
	if len(args) != 1 {
		return usage("fib <n>")
	}
	return r.env.track(ctx, "fib", func(ctx context.Context) error {
		n, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return runFibonacci(ctx, r.env, n, algo)
	})
}

func (r *REPL) cmdAlgo(args []string) error {
	if len(args) != 1 {
		return usage("algo <name>")
	}
	name := strings.ToLower(args[0])
	calc, err := r.env.Factory.Get(name)
	if err != nil {
		return err
	}
	r.algo = name
	fmt.Fprintf(r.out, "Strategy changed to: %s%s%s\n", ui.ColorGreen(), calc.Name(), ui.ColorReset())
	return nil
}

func (r *REPL) cmdSum(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("sum <x...>")
	}
	return r.env.track(ctx, "sum", func(context.Context) error {
		values, err := parseInts(args)
		if err != nil {
			return err
		}
		total, err := arith.Sum(values)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "The sum is: %d\n", total)
		return nil
	})
}

func (r *REPL) cmdRect(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("rect <w> <h> [<w> <h>...]")
	}
	return r.env.track(ctx, "rect", func(context.Context) error {
		rects, err := parseRectangles(args)
		if err != nil {
			return err
		}
		DisplayRectangles(r.out, rects)
		return nil
	})
}
