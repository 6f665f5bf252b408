// Package dispatch provides an instrumented event.Dispatcher.
//
// SyncDispatcher walks the same handler snapshot as event.EventDispatcher,
// in the caller's goroutine, and adds timing, statistics, logging and
// Prometheus metrics on top.
//
// # Error Policy
//
// By default the first handler error aborts the dispatch and is returned,
// exactly like event.EventDispatcher. Panics are not recovered.
//
// With WithIsolation every handler of the snapshot runs regardless of earlier
// failures. Panics are recovered and reported as *PanicError, and all
// failures are returned joined with errors.Join:
//
//	d := dispatch.NewSyncDispatcher(
//	    dispatch.WithIsolation(),
//	    dispatch.WithLogger(logger),
//	    dispatch.WithPanicHandler(func(ctx *event.Context, v any, stack []byte) {
//	        logger.Error("handler panic", "hook", ctx.Hook, "value", v)
//	    }),
//	)
//	root := registry.NewRoot(registry.WithDispatcher(d))
//
// # Result Handling
//
// The Result type captures the outcome of one handler call including
// success/failure status, error details, execution duration, and panic
// information if applicable.
package dispatch
