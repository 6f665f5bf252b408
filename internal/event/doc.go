// Package event provides the hook dispatch engine.
//
// An Event is an addressable endpoint that dispatches named hooks to the
// handlers of every topic mapping linked to it. Events may additionally be
// attached to an event owned by an external scheduler, in which case the
// before, callbacks and after hooks are spliced around the scheduler's own
// callback invocation.
//
// # Architecture
//
//	          ┌───────────────────────────────┐
//	          │            Event              │
//	          │  - metadata (ns, name, ...)   │
//	          │  - linked topic mappings      │
//	          │  - dispatcher, enabled        │
//	          └───────────────────────────────┘
//	                 │ Dispatch(hook, data)
//	                 ▼
//	          ┌───────────────────────────────┐
//	          │          Dispatcher           │
//	          │  snapshot every mapping's     │
//	          │  handlers for hook, then call │
//	          └───────────────────────────────┘
//	                 │
//	     ┌───────────┼───────────┐
//	     ▼           ▼           ▼
//	  Mapping     Mapping     Mapping      hook -> Handlers
//
// # Hooks
//
// A hook is a plain string. The standard ones are:
//
//	before     - the scheduler event is about to run its callbacks
//	callbacks  - runs among the scheduler event's ordinary callbacks
//	after      - all ordinary callbacks have run
//	enable     - the event was enabled (flag already true)
//	disable    - the event is being disabled (flag still true)
//
// Any other string may be dispatched explicitly with Event.Dispatch.
//
// # Snapshot Semantics
//
// A dispatch captures the handler lists of every linked mapping before the
// first handler runs. Handlers may freely add or remove topics and handlers;
// the dispatch in flight completes the captured sequence and only later
// dispatches observe the change.
//
// # Scheduler Splicing
//
// The scheduler event's callback list is replaced by a Splice holding three
// segments:
//
//	before ++ raw ++ after
//
// Attaching several events to the same scheduler event reuses the Splice, so
// all before hooks run first, then the ordinary callbacks (including each
// event's callbacks hook), then all after hooks. Callbacks appended by other
// code land in the raw segment.
//
// Everything in this package is meant to be driven from a single goroutine.
package event
