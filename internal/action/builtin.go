package action

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/logging"
	"github.com/dshills/simevents/internal/metrics"
	"github.com/dshills/simevents/internal/plugin/lua"
)

// Deps holds what the built-in actions write to.
type Deps struct {
	// Logger receives log action records. Nil discards them.
	Logger *slog.Logger

	// Output receives print action lines. Nil means os.Stdout.
	Output io.Writer

	// Metrics receives count action increments. Nil makes count a no-op.
	Metrics *metrics.Metrics

	// Lua runs lua actions. Nil makes the lua action fail to build.
	Lua *lua.State
}

// Names of the built-in actions.
const (
	Log   = "log"
	Print = "print"
	Count = "count"
	Lua   = "lua"
)

// Defaults returns a registry holding the built-in actions.
func Defaults(deps Deps) *Registry {
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	if deps.Output == nil {
		deps.Output = os.Stdout
	}

	r := NewRegistry()
	r.Register(Log, logAction(deps.Logger))
	r.Register(Print, printAction(deps.Output))
	r.Register(Count, countAction(deps.Metrics))
	r.Register(Lua, luaAction(deps.Lua))
	return r
}

// valuer is implemented by scheduler events.
type valuer interface {
	Value() any
}

func unwrap(data any) any {
	if v, ok := data.(valuer); ok {
		return v.Value()
	}
	return data
}

func logAction(logger *slog.Logger) Factory {
	return func(params Params) (event.Handler, error) {
		levelName, err := params.String("level", "info")
		if err != nil {
			return nil, err
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
		}
		msg, err := params.String("message", "event")
		if err != nil {
			return nil, err
		}

		return func(ctx *event.Context, data any) error {
			attrs := []slog.Attr{slog.String("hook", ctx.Hook)}
			for _, f := range ctx.Metadata().Fields() {
				attrs = append(attrs, slog.Any(f.Key, f.Value))
			}
			if v := unwrap(data); v != nil {
				attrs = append(attrs, slog.Any("value", v))
			}
			logger.LogAttrs(context.Background(), level, msg, attrs...)
			return nil
		}, nil
	}
}

func printAction(w io.Writer) Factory {
	return func(params Params) (event.Handler, error) {
		prefix, err := params.String("prefix", "")
		if err != nil {
			return nil, err
		}
		return func(ctx *event.Context, data any) error {
			_, err := fmt.Fprintf(w, "%s%s %s: %v\n", prefix, ctx.Hook, ctx.Metadata(), unwrap(data))
			return err
		}, nil
	}
}

func countAction(m *metrics.Metrics) Factory {
	return func(params Params) (event.Handler, error) {
		counter, err := params.String("counter", "")
		if err != nil {
			return nil, err
		}
		return func(ctx *event.Context, _ any) error {
			name := counter
			if name == "" {
				name = ctx.Metadata().Name()
			}
			m.RecordCount(name, ctx.Hook)
			return nil
		}, nil
	}
}

func luaAction(state *lua.State) Factory {
	return func(params Params) (event.Handler, error) {
		fn, err := params.Required("function")
		if err != nil {
			return nil, err
		}
		if state == nil {
			return nil, fmt.Errorf("%w: no lua state", ErrUnavailable)
		}
		return state.Handler(fn)
	}
}
