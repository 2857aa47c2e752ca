// This file contains environment variable overrides for flags.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// envOverride maps an env key (without the DRILLS_ prefix) to the flag it
// shadows and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

var envOverrides = []envOverride{
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v string) { c.LogLevel = v }},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"FILE", "file", func(c *AppConfig, v string) { c.InputFile = v }},
	{"ALGO", "algo", func(c *AppConfig, v string) { c.Algo = v }},

	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"RETRIES", "retries", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Retries = parsed
		}
	}},
	{"LAST_DIGITS", "last-digits", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.LastDigits = parsed
		}
	}},

	{"NO_COLOR", "no-color", func(c *AppConfig, v string) { c.NoColor = parseBoolEnv(v, c.NoColor) }},
	{"TUI", "tui", func(c *AppConfig, v string) { c.TUI = parseBoolEnv(v, c.TUI) }},
	{"TRACE", "trace", func(c *AppConfig, v string) { c.Trace = parseBoolEnv(v, c.Trace) }},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no"
// (case-insensitive), returning defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// ApplyEnvOverrides copies DRILLS_* environment values into cfg for every
// flag that was not set explicitly. Flags unknown to fs (belonging to other
// subcommands) are skipped, as is the standard NO_COLOR variable which is
// honored by the ui package instead.
func ApplyEnvOverrides(cfg *AppConfig, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		f := fs.Lookup(o.flag)
		if f == nil || f.Changed {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
