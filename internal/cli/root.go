// Package cli implements the drills command tree: one subcommand per
// exercise plus an interactive REPL, all sharing an Env.
package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agbru/drills/internal/config"
	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/logging"
	"github.com/agbru/drills/internal/ui"
)

// NewRootCommand builds the drills command tree around env.
func NewRootCommand(env *Env) *cobra.Command {
	root := &cobra.Command{
		Use:   "drills",
		Short: "Small numeric and text exercises",
		Long: `drills bundles four small exercises: printing a truncated view of a string,
summing an array, converting a temperature and computing a Fibonacci number
from typed input, and comparing rectangles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.prepare(cmd)
		},
	}
	root.SetIn(env.In)
	root.SetOut(env.Out)
	root.SetErr(env.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	config.BindFlags(root.PersistentFlags(), &env.Config)

	root.AddCommand(
		newSlicesCommand(env),
		newSumCommand(env),
		newTempCommand(env),
		newFibCommand(env),
		newRectCommand(env),
		newREPLCommand(env),
		newVersionCommand(env),
	)
	return root
}

// prepare resolves configuration for cmd and builds the services that depend
// on it.
func (e *Env) prepare(cmd *cobra.Command) error {
	config.ApplyEnvOverrides(&e.Config, cmd.Flags())
	if err := e.Config.Validate(e.Factory); err != nil {
		return err
	}

	lvl, err := logging.ParseLevel(e.Config.LogLevel)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	writer := zerolog.ConsoleWriter{Out: e.Err, NoColor: e.Config.NoColor, TimeFormat: time.Kitchen}
	e.Logger = logging.NewZerologAdapter(
		zerolog.New(writer).Level(lvl).With().Timestamp().Str("command", cmd.Name()).Logger(),
	)

	ui.InitTheme(e.Config.NoColor)

	if err := e.setupTracing(); err != nil {
		return err
	}

	inputs, err := config.LoadInputs(e.Config.InputFile)
	if err != nil {
		return err
	}
	e.Inputs = inputs
	return nil
}
