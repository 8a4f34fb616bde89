// Command luarray runs Lua scripts with the Array library loaded and prints what each
// script returns.
//
//	luarray [--output describe|json|yaml] [--timeout 5s] [-p N] script.lua... [-e code]...
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/a-peyrard/luarray/config"
	"github.com/a-peyrard/luarray/luabind"
	"github.com/a-peyrard/luarray/option"
	"github.com/a-peyrard/luarray/runner"
	"github.com/a-peyrard/luarray/slices"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

var errNoScript = errors.New("no script to run")

type (
	script struct {
		name string
		code string
	}

	outcome struct {
		value any
		err   error
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	flags := newFlagSet()
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("unable to parse arguments:\n\t%w", err)
	}

	conf, err := config.Load[Config](config.WithEnvPrefix(envPrefix), config.WithFlags(flags))
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, conf.LogLevel)
	if err != nil {
		return err
	}

	render, err := rendererFor(conf.Output)
	if err != nil {
		return err
	}

	inline, _ := flags.GetStringArray("eval")
	scripts, err := loadScripts(flags.Args(), inline)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return errNoScript
	}

	var binding []option.Option[luabind.Options]
	if conf.Natural {
		binding = append(binding, luabind.WithNaturalSort())
	}
	executor := luabind.NewExecutor(
		luabind.WithTimeout(conf.Timeout),
		luabind.WithLogger(logger),
		luabind.WithBinding(binding...),
	)

	logger.Debug().
		Int("scripts", len(scripts)).
		Int("parallelism", conf.Parallelism).
		Str("output", conf.Output).
		Msg("running scripts")

	// a failing script must not cancel the others, outcomes are reported in order
	outcomes := make([]outcome, len(scripts))
	runnables := make([]runner.Runnable, len(scripts))
	for i, s := range scripts {
		runnables[i] = runner.RunnableFunc(func(ctx context.Context) error {
			value, err := executor.Run(ctx, s.name, s.code)
			outcomes[i] = outcome{value: value, err: err}
			return nil
		})
	}
	if err := runner.RunAllLimited(ctx, conf.Parallelism, runnables...); err != nil {
		return err
	}

	var errs []error
	for i, s := range scripts {
		if outcomes[i].err != nil {
			errs = append(errs, outcomes[i].err)
			continue
		}
		text, err := render(outcomes[i].value)
		if err != nil {
			errs = append(errs, fmt.Errorf("unable to render result of %s:\n\t%w", s.name, err))
			continue
		}
		fmt.Fprintf(stdout, "%s => %s\n", s.name, text)
	}
	return errors.Join(errs...)
}

func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("unable to parse log level %q:\n\t%w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// loadScripts reads the script files, named after their base name, followed by the
// inline scripts, named eval#1, eval#2...
func loadScripts(paths []string, inline []string) ([]script, error) {
	scripts, err := slices.UnsafeMap(paths, func(path string) (script, error) {
		code, err := os.ReadFile(path)
		if err != nil {
			return script{}, fmt.Errorf("unable to read script %s:\n\t%w", path, err)
		}
		return script{name: filepath.Base(path), code: string(code)}, nil
	})
	if err != nil {
		return nil, err
	}

	for i, code := range inline {
		scripts = append(scripts, script{name: fmt.Sprintf("eval#%d", i+1), code: code})
	}
	return scripts, nil
}
