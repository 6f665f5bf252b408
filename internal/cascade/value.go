package cascade

import "fmt"

// Value is either a concrete value or a marker to inherit from the parent.
type Value[T any] struct {
	v        T
	concrete bool
}

// Concrete returns a value holding v.
func Concrete[T any](v T) Value[T] {
	return Value[T]{v: v, concrete: true}
}

// Inherited returns the inherit marker.
func Inherited[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and true, or the zero value and false if v
// inherits.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.concrete
}

// IsConcrete returns true if v holds a value.
func (v Value[T]) IsConcrete() bool {
	return v.concrete
}

// String implements fmt.Stringer.
func (v Value[T]) String() string {
	if !v.concrete {
		return "inherited"
	}
	return fmt.Sprint(v.v)
}
