package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/dshills/simevents/internal/action"
	"github.com/dshills/simevents/internal/config"
	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/event/dispatch"
	"github.com/dshills/simevents/internal/logging"
	"github.com/dshills/simevents/internal/metrics"
	"github.com/dshills/simevents/internal/plugin/lua"
	"github.com/dshills/simevents/internal/registry"
)

// app holds everything a command needs once the configuration is applied.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	metrics    *metrics.Metrics
	lua        *lua.State
	dispatcher *dispatch.SyncDispatcher
	actions    *action.Registry
	root       *registry.NameSpace
}

// newApp loads the configuration and builds the registry from it.
// Handler output goes to stdout, logs go to stderr.
func newApp(path string, opts []config.LoadOption, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(path, opts...)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if !logging.ValidFormat(cfg.Log.Format) {
		return nil, fmt.Errorf("invalid log format %q", cfg.Log.Format)
	}
	a := &app{
		cfg:    cfg,
		logger: logging.New(stderr, level, cfg.Log.Format),
	}

	a.metrics, err = metrics.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	if len(cfg.Scripts) > 0 {
		if err := a.loadScripts(path, stdout); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.actions = action.Defaults(action.Deps{
		Logger:  a.logger,
		Output:  stdout,
		Metrics: a.metrics,
		Lua:     a.lua,
	})
	if err := cfg.Validate(a.actions); err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}

	dispatchOpts := []dispatch.SyncOption{
		dispatch.WithLogger(a.logger),
		dispatch.WithMetrics(a.metrics),
		dispatch.WithPanicHandler(func(ctx *event.Context, v any, _ []byte) {
			a.logger.Error("handler panicked", "hook", ctx.Hook, "event", ctx.Event.String(), "panic", v)
		}),
	}
	if cfg.Dispatch.Isolate {
		dispatchOpts = append(dispatchOpts, dispatch.WithIsolation())
	}
	a.dispatcher = dispatch.NewSyncDispatcher(dispatchOpts...)

	a.root = registry.NewRoot(
		registry.WithDispatcher(a.dispatcher),
		registry.WithLogger(a.logger),
	)
	if err := config.Apply(a.root, cfg, a.actions); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// loadScripts runs the configured Lua files. Relative paths are resolved
// against the directory of the configuration file.
func (a *app) loadScripts(configPath string, stdout io.Writer) error {
	state, err := lua.NewState(lua.WithOutput(stdout))
	if err != nil {
		return fmt.Errorf("creating lua state: %w", err)
	}
	a.lua = state

	for _, script := range a.cfg.Scripts {
		if !filepath.IsAbs(script) && configPath != "" {
			script = filepath.Join(filepath.Dir(configPath), script)
		}
		if err := state.DoFile(script); err != nil {
			return fmt.Errorf("loading script %s: %w", script, err)
		}
		a.logger.Debug("script loaded", "path", script)
	}
	return nil
}

// Close releases the Lua state.
func (a *app) Close() {
	if a.lua != nil {
		a.lua.Close()
	}
}
