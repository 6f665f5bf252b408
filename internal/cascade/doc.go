// Package cascade implements hierarchical property values with live
// propagation to attached targets.
//
// A cascade is a tree of nodes mirroring some containment hierarchy. Every
// node holds either a concrete value or inherits the value of its nearest
// concrete ancestor. The root always holds a concrete value.
//
//	root (enabled=false)
//	 ├── a (inherited)      effective false
//	 │    └── a::b (true)   effective true
//	 │         └── e        effective true
//	 └── c (inherited)      effective false
//
// Targets attached to a node receive the node's effective value through an
// apply function, once when attached and again whenever the effective value
// changes. Setting a value propagates down the tree and stops at nodes that
// hold their own concrete value:
//
//	enabled := cascade.NewRoot("enabled", false, func(e *event.Event, v bool) error {
//		return e.SetEnabled(v)
//	})
//	child := enabled.NewChild()
//	_ = child.Attach(evt)   // evt.SetEnabled(false)
//	_ = enabled.Set(true)   // evt.SetEnabled(true)
//	_ = child.Set(false)    // evt.SetEnabled(false)
//	_ = child.Unset()       // evt.SetEnabled(true), inherited from the root
//
// Nodes are not safe for concurrent use.
package cascade
