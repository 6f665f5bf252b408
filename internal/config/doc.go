// Package config describes a simulation setup and applies it to a registry.
//
// Configuration is assembled from layers (see package layer): built-in
// defaults, then a TOML or YAML file, then SIMEVENTS_* environment variables.
// The merged map is decoded into a Config.
//
// A file describes cascade values per namespace and event type, topics with
// their linked event types and handlers, and the sources that create event
// instances on the scheduler:
//
//	enabled = true
//	scripts = ["handlers.lua"]
//
//	[run]
//	until = 10.0
//
//	[namespaces."::noisy"]
//	silent = true
//
//	[topics."::rx::log"]
//	event_types = ["::rx::arrival"]
//
//	[[topics."::rx::log".handlers]]
//	hook = "after"
//	action = "print"
//
//	[[sources]]
//	event_type = "::rx::arrival"
//	interval = 1.0
//	count = 3
//	meta = { station = "north" }
//
// Namespace, event type and topic keys are registry paths. Dots are not used
// in paths, so the layer dot paths stay unambiguous.
package config
