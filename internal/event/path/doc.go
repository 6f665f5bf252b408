// Package path implements the path grammar used to address namespaces,
// event types and topics in the registry.
//
// # Format
//
// Segments are joined with a two-character separator:
//
//	satellite::signal
//	::receiver::process
//	app::sub::arrival
//
// A leading separator makes the path absolute, resolved from the root
// namespace. Without it the path is resolved relative to the namespace it is
// given to. Runs of separators collapse and trailing separators are ignored,
// so "::a::::b::" and "a::b" name the same segments. A single colon is an
// ordinary character: "a:::" is the two segments "a" and ":".
//
// # Leaves
//
// Event types and topics are addressed by a namespace path followed by a leaf
// name. SplitLeaf cuts at the last separator:
//
//	app::sub::arrival  -> "app::sub", "arrival"
//	::arrival          -> root, "arrival"
//	arrival            -> current namespace, "arrival"
package path
