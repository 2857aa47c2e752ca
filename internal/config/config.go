// Package config holds the drills runtime configuration. Values are resolved
// in priority order: command-line flags, then DRILLS_* environment variables,
// then defaults. Exercise inputs can additionally come from a YAML file.
package config

import (
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable name read by drills.
const EnvPrefix = "DRILLS_"

// AppConfig aggregates the settings shared by all subcommands.
type AppConfig struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// NoColor disables ANSI colors in human-readable output.
	NoColor bool
	// MetricsFile, if set, receives a Prometheus text dump after the run.
	MetricsFile string
	// InputFile is an optional YAML file with exercise inputs.
	InputFile string
	// Timeout bounds Fibonacci computations.
	Timeout time.Duration
	// Retries is how many times the interactive exercise re-asks after
	// malformed input.
	Retries int
	// Algo selects the Fibonacci strategy, or "all".
	Algo string
	// LastDigits, when positive, prints only the last K digits of F(n).
	LastDigits int
	// TUI runs the interactive exercise as a terminal form.
	TUI bool
	// Trace prints an OpenTelemetry span per exercise run to stderr.
	Trace bool
}

// Default returns the configuration used when nothing is overridden.
func Default() AppConfig {
	return AppConfig{
		LogLevel: "warn",
		Timeout:  time.Minute,
		Algo:     "iterative",
	}
}

// BindFlags registers the persistent flags on fs, storing into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error, disabled)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this file on exit")
	fs.StringVarP(&cfg.InputFile, "file", "f", cfg.InputFile, "YAML file with exercise inputs")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "print a trace span per exercise run to stderr")
}

// Validate checks cross-field constraints once flags and env are applied.
func (c AppConfig) Validate(factory fibonacci.CalculatorFactory) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return apperrors.NewConfigError("retries must be non-negative, got %d", c.Retries)
	}
	if c.LastDigits < 0 || c.LastDigits > fibonacci.MaxLastDigits {
		return apperrors.NewConfigError("last-digits must be between 0 and %d, got %d", fibonacci.MaxLastDigits, c.LastDigits)
	}
	if c.Algo != "all" {
		if _, err := factory.Get(c.Algo); err != nil {
			return apperrors.NewConfigError("unknown algorithm %q (available: %v)", c.Algo, factory.List())
		}
	}
	return nil
}
