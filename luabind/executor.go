package luabind

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/a-peyrard/luarray/option"
	"github.com/a-peyrard/luarray/set"
	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds the execution of a script.
const DefaultTimeout = 5 * time.Second

// ErrTimeout is returned when a script runs past its timeout.
var ErrTimeout = errors.New("script timed out")

// unsafeGlobals are removed from the base library: they reach the filesystem or
// compile code at runtime.
var unsafeGlobals = set.NewWithValues("dofile", "loadfile", "load", "loadstring", "require", "module")

type (
	// ExecutorOptions configures an Executor, see WithTimeout, WithLogger and WithBinding.
	ExecutorOptions struct {
		timeout time.Duration
		logger  zerolog.Logger
		binding []option.Option[Options]
	}

	// Executor runs scripts, each one in a fresh sandboxed state where the array
	// constructor is registered. Only the base, table, string and math libraries are
	// available. An Executor is safe for concurrent use.
	Executor struct {
		options ExecutorOptions
	}
)

// WithTimeout bounds each script run. Zero or less disables the timeout.
func WithTimeout(timeout time.Duration) option.Option[ExecutorOptions] {
	return func(opts *ExecutorOptions) {
		opts.timeout = timeout
	}
}

// WithLogger sets the logger receiving execution events and the output of print.
func WithLogger(logger zerolog.Logger) option.Option[ExecutorOptions] {
	return func(opts *ExecutorOptions) {
		opts.logger = logger
	}
}

// WithBinding forwards options to Open for every state.
func WithBinding(opts ...option.Option[Options]) option.Option[ExecutorOptions] {
	return func(options *ExecutorOptions) {
		options.binding = append(options.binding, opts...)
	}
}

// NewExecutor creates an executor with a DefaultTimeout and a no-op logger, unless
// overridden by opts.
func NewExecutor(opts ...option.Option[ExecutorOptions]) *Executor {
	return &Executor{
		options: option.Build(ExecutorOptions{
			timeout: DefaultTimeout,
			logger:  zerolog.Nop(),
		}, opts...),
	}
}

// Run executes code and returns its first return value, exported with Export.
func (e *Executor) Run(ctx context.Context, name string, code string) (result any, err error) {
	logger := e.options.logger.With().Str("script", name).Logger()
	if e.options.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.timeout)
		defer cancel()
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	e.openSafeLibraries(L, logger)
	Open(L, e.options.binding...)
	L.SetContext(ctx)

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic in script %s: %v", name, r)
		}
		if err != nil {
			logger.Warn().Err(err).Msg("script failed")
			return
		}
		logger.Debug().Dur("elapsed", time.Since(start)).Msg("script executed")
	}()

	chunk, err := L.LoadString(code)
	if err != nil {
		return nil, fmt.Errorf("unable to compile script %s:\n\t%w", name, err)
	}

	L.Push(chunk)
	if err := L.PCall(0, 1, nil); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("unable to run script %s: %w", name, ErrTimeout)
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("unable to run script %s:\n\t%w", name, ctx.Err())
		}
		return nil, fmt.Errorf("unable to run script %s:\n\t%w", name, err)
	}

	result = Export(L.Get(-1))
	L.Pop(1)
	return result, nil
}

func (e *Executor) openSafeLibraries(L *lua.LState, logger zerolog.Logger) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	L.SetTop(0)

	for name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		logger.Info().Msg(strings.Join(parts, "\t"))
		return 0
	}))
}
