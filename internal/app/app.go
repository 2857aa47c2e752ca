// Package app wires the command tree to the process: streams, signals,
// exit codes and the metrics textfile.
package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/drills/internal/cli"
	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/fibonacci"
	"github.com/agbru/drills/internal/ui"
)

// Version is set at build time with -ldflags "-X github.com/agbru/drills/internal/app.Version=...".
var Version = "dev"

// Application is one drills process.
type Application struct {
	Env  *cli.Env
	Args []string
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Env.Factory = f }
}

// New creates an Application for the given arguments (without the program
// name).
func New(args []string, in io.Reader, out, errOut io.Writer, opts ...AppOption) *Application {
	a := &Application{
		Env:  cli.NewEnv(in, out, errOut, Version),
		Args: args,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command line and returns the process exit code.
func (a *Application) Run(ctx context.Context) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, a.Env, a.Args)
	if cerr := a.Env.Close(context.Background()); cerr != nil && err == nil {
		err = cerr
	}

	if path := a.Env.Config.MetricsFile; path != "" {
		if werr := a.Env.Metrics.WriteTextfile(path); werr != nil {
			fmt.Fprintf(a.Env.Err, "%sError writing metrics: %v%s\n", ui.ColorRed(), werr, ui.ColorReset())
			if err == nil {
				err = werr
			}
		}
	}

	if err != nil {
		fmt.Fprintf(a.Env.Err, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return apperrors.ExitCode(err)
}
