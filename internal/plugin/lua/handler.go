package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/simevents/internal/event"
)

// valuer is implemented by scheduler events.
type valuer interface {
	Value() any
}

// Handler returns an event.Handler that calls the global Lua function name.
// The function must exist when Handler is called.
func (s *State) Handler(name string) (event.Handler, error) {
	fn, err := s.Function(name)
	if err != nil {
		return nil, err
	}
	return s.FuncHandler(name, fn), nil
}

// FuncHandler returns an event.Handler that calls fn. name is only used in
// error messages.
func (s *State) FuncHandler(name string, fn *lua.LFunction) event.Handler {
	return func(ctx *event.Context, data any) error {
		if v, ok := data.(valuer); ok {
			data = v.Value()
		}
		if _, err := s.call(fn, s.contextTable(ctx), data); err != nil {
			return fmt.Errorf("lua handler %s: %w", name, err)
		}
		return nil
	}
}

// contextTable builds the first handler argument:
//
//	{hook = "...", event = "...", metadata = {key = value, ...}}
func (s *State) contextTable(ctx *event.Context) *lua.LTable {
	t := s.L.NewTable()
	t.RawSetString("hook", lua.LString(ctx.Hook))

	md := s.L.NewTable()
	if ctx.Event != nil {
		t.RawSetString("event", lua.LString(ctx.Event.String()))
		for _, f := range ctx.Metadata().Fields() {
			md.RawSetString(f.Key, s.bridge.ToLuaValue(f.Value))
		}
	}
	t.RawSetString("metadata", md)
	return t
}
