package main

import (
	"runtime"
	"time"

	"github.com/a-peyrard/luarray/luabind"
	"github.com/spf13/pflag"
)

const envPrefix = "LUARRAY"

// Config is read from LUARRAY_* environment variables, overridden by flags.
type Config struct {
	Output      string        `mapstructure:"output"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Parallelism int           `mapstructure:"parallelism"`
	LogLevel    string        `mapstructure:"log-level"`
	Natural     bool          `mapstructure:"natural"`
}

func (c *Config) ApplyDefault() {
	if c.Output == "" {
		c.Output = formatDescribe
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("luarray", pflag.ContinueOnError)
	flags.StringP("output", "o", formatDescribe, "rendering of script results: describe, json or yaml")
	flags.Duration("timeout", luabind.DefaultTimeout, "maximum duration of each script, 0 to disable")
	flags.IntP("parallelism", "p", runtime.NumCPU(), "number of scripts running at the same time")
	flags.String("log-level", "info", "log level: trace, debug, info, warn or error")
	flags.Bool("natural", false, "sort strings in natural order by default")
	flags.StringArrayP("eval", "e", nil, "inline script to run, can be repeated")
	return flags
}
