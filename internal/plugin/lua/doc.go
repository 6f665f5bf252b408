// Package lua runs event handlers written in Lua.
//
// This package wraps the gopher-lua library to provide:
//   - Lua state management with a restricted standard library
//   - Go-Lua type conversion bridge
//   - Execution timeouts
//   - Lua functions as event.Handler values
//
// # State
//
// The State type manages a Lua runtime:
//
//	state, err := lua.NewState(
//	    lua.WithExecutionTimeout(time.Second),
//	    lua.WithOutput(os.Stdout),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer state.Close()
//
//	if err := state.DoFile("handlers.lua"); err != nil {
//	    log.Fatal(err)
//	}
//
// Only the base, table, string and math libraries are opened. The loaders
// (dofile, loadfile, load, loadstring, require, module) are removed and print
// writes to the configured output.
//
// # Handlers
//
// A global Lua function becomes a handler with State.Handler:
//
//	function on_arrival(ctx, value)
//	    print(ctx.hook, ctx.metadata.name, value)
//	end
//
//	h, err := state.Handler("on_arrival")
//	topic.After().Register(h)
//
// The first argument is a table with the hook name and the event metadata.
// The second argument is the dispatched data, or its Value() if it has one,
// so scheduler events arrive as their trigger value. Raising a Lua error
// makes the handler return an error.
package lua
