// Package sim is a minimal discrete-event scheduler.
//
// An Environment owns simulated time and a queue of triggered events.
// Events are processed in order of scheduled time, then trigger order.
// Processing an event invokes its callback list once, in order, with the
// event as argument. The callback list satisfies event.CallbackList and can
// be replaced until the event is processed, so hook events can be spliced
// onto it with event.Event.Attach:
//
//	env := sim.NewEnvironment()
//	evt.Attach(env.Timeout(1, "payload"))
//	if err := env.Run(0); err != nil {
//		...
//	}
//
// The scheduler has no processes. Callbacks schedule follow-up events to
// model sequential behavior.
package sim
