// Package registry organizes events into a hierarchy of namespaces.
//
// A registry is a tree of NameSpace nodes rooted at the value returned by
// NewRoot. Each namespace holds three independent key spaces: child
// namespaces, event types and topics. All of them are created lazily the
// first time their path is accessed.
//
// # Paths
//
// Paths use "::" as separator. A path starting with the separator is
// absolute and resolved from the root; any other path is resolved from the
// namespace it is given to. Repeated and trailing separators are ignored and
// a single ':' is part of a name:
//
//	root.NS("::a::::b::")   // same namespace as root.NS("a::b")
//	a.NS("::b")             // root.NS("b")
//	a.NS("b")               // root.NS("a::b")
//	root.EventType("a::e")  // event type "e" in namespace "a"
//	root.EventType("::e")   // event type "e" in the root namespace
//
// # Event types and topics
//
// An EventType creates events. Every event it creates carries the metadata
// "ns" (the owning namespace) and "name" (the event type name).
//
// A Topic is an ordered list of event type paths plus one handler mapping.
// Adding a path links the mapping into the event type and every event it has
// created or will create. Handlers registered on the topic then run for all
// of those events:
//
//	root := registry.NewRoot()
//	topic, _ := root.Topic("receiver::signals")
//	_ = topic.Append("::satellite::signal")
//	topic.After().Register(func(ctx *event.Context, data any) error {
//		...
//	})
//	signal, _ := root.Event("satellite::signal", event.F("sat", "sat1"))
//
// # Cascaded properties
//
// Namespaces and event types hold the dispatcher and enabled values of the
// events below them as cascade nodes (see package cascade). The root holds
// concrete values, every other node inherits until it is given its own:
//
//	_ = root.Enabled().Set(true)
//	ns, _ := root.NS("satellite")
//	_ = ns.Enabled().Set(false)  // overrides the root for this subtree
//	_ = ns.Enabled().Unset()     // inherits again
//
// The registry is not safe for concurrent use.
package registry
