// Package action provides named handler factories.
//
// Configuration refers to handlers by action name plus parameters:
//
//	[[topics."::receiver::log".handlers]]
//	hook = "after"
//	action = "print"
//	params = { prefix = "rx " }
//
// A Registry maps each name to a Factory that builds the event.Handler.
// Defaults registers the built-in actions:
//
//	log    one slog record per dispatch (params: level, message)
//	print  one line per dispatch on the output (params: prefix)
//	count  increments a Prometheus counter (params: counter)
//	lua    calls a global Lua function (params: function)
package action
