package cascade

import "slices"

// ApplyFunc sets the effective value v on target.
type ApplyFunc[T any, E comparable] func(target E, v T) error

// Node is one level of a cascade.
type Node[T any, E comparable] struct {
	name     string
	own      Value[T]
	parent   *Node[T, E]
	children []*Node[T, E]
	targets  []E
	apply    ApplyFunc[T, E]
}

// NewRoot creates the root of a cascade named name holding v.
// apply is shared by every node of the cascade.
func NewRoot[T any, E comparable](name string, v T, apply ApplyFunc[T, E]) *Node[T, E] {
	return &Node[T, E]{
		name:  name,
		own:   Concrete(v),
		apply: apply,
	}
}

// NewChild creates a child node that inherits n's effective value.
func (n *Node[T, E]) NewChild() *Node[T, E] {
	child := &Node[T, E]{
		name:   n.name,
		parent: n,
		apply:  n.apply,
	}
	n.children = append(n.children, child)
	return child
}

// Name returns the name of the cascade.
func (n *Node[T, E]) Name() string {
	return n.name
}

// Parent returns the parent node, or nil for the root.
func (n *Node[T, E]) Parent() *Node[T, E] {
	return n.parent
}

// IsRoot returns true if n has no parent.
func (n *Node[T, E]) IsRoot() bool {
	return n.parent == nil
}

// Children returns the child nodes in creation order.
func (n *Node[T, E]) Children() []*Node[T, E] {
	return slices.Clone(n.children)
}

// Targets returns the attached targets in attach order.
func (n *Node[T, E]) Targets() []E {
	return slices.Clone(n.targets)
}

// Value returns the node's own value.
func (n *Node[T, E]) Value() Value[T] {
	return n.own
}

// Own returns the node's own value and true, or false if it inherits.
func (n *Node[T, E]) Own() (T, bool) {
	return n.own.Get()
}

// Effective returns the node's own value or the nearest concrete ancestor's.
func (n *Node[T, E]) Effective() T {
	node := n
	for !node.own.concrete {
		node = node.parent
	}
	return node.own.v
}

// Attach records target and applies the effective value to it.
// Attaching a target twice applies the value again without a second record.
func (n *Node[T, E]) Attach(target E) error {
	if !slices.Contains(n.targets, target) {
		n.targets = append(n.targets, target)
	}
	return n.apply(target, n.Effective())
}

// Detach removes target from n. The target keeps its current value.
func (n *Node[T, E]) Detach(target E) error {
	i := slices.Index(n.targets, target)
	if i < 0 {
		return ErrNotAttached
	}
	n.targets = slices.Delete(n.targets, i, i+1)
	return nil
}

// Set stores v as the node's own value and applies it to the targets of n
// and of every descendant that inherits it.
func (n *Node[T, E]) Set(v T) error {
	n.own = Concrete(v)
	return n.propagate(v)
}

// Unset makes n inherit its parent's value and applies the inherited value
// the same way Set does. It panics with ErrUnsetRoot if n is the root.
func (n *Node[T, E]) Unset() error {
	if n.parent == nil {
		panic(ErrUnsetRoot)
	}
	n.own = Inherited[T]()
	return n.propagate(n.Effective())
}

// Assign calls Set for a concrete value and Unset otherwise.
func (n *Node[T, E]) Assign(v Value[T]) error {
	if x, ok := v.Get(); ok {
		return n.Set(x)
	}
	return n.Unset()
}

// propagate applies v to the targets of n, then descends into children that
// inherit. The first apply error stops the walk.
func (n *Node[T, E]) propagate(v T) error {
	for _, target := range slices.Clone(n.targets) {
		if err := n.apply(target, v); err != nil {
			return err
		}
	}
	for _, child := range slices.Clone(n.children) {
		if child.own.concrete {
			continue
		}
		if err := child.propagate(v); err != nil {
			return err
		}
	}
	return nil
}
