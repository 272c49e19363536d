// Package cell contains a typed value cell that either holds a value or knows a
// provider capable of producing one.
package cell

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/coerce"
)

// A Cell is a variant that holds exactly one of a literal value, a reference to
// a provider capable of producing a value, or nothing at all. The zero value is
// the empty cell.
//
// A provider backed cell resolves on every access. Nothing is cached by the
// cell, so a provider that varies its answer per client or over time is
// reflected by each Get. The cell holds a plain reference to the provider and
// takes no part in its life cycle.
type Cell[T any] struct {
	value    T
	provider api.Provider
	name     api.Name
	literal  bool
}

// Value returns a cell that holds the given literal
func Value[T any](v T) Cell[T] {
	return Cell[T]{value: v, literal: true}
}

// Provider returns a cell backed by the given provider. The provider is asked
// for a value of type T on every access
func Provider[T any](p api.Provider) Cell[T] {
	return Cell[T]{provider: p}
}

// NamedProvider returns a cell backed by the given provider where each access
// asks for the given dotted name. The provider answers for the root of the name
// and the remaining parts are dug out of its answer
func NamedProvider[T any](p api.Provider, name string) Cell[T] {
	return Cell[T]{provider: p, name: api.ParseName(name)}
}

// Empty returns the empty cell. It is equal to the zero value
func Empty[T any]() Cell[T] {
	return Cell[T]{}
}

// Get resolves the cell on behalf of the invocation's client. A literal cell
// yields its value regardless of client. A provider backed cell yields exactly
// what the provider produces for a request of type T, converted to T. An empty
// cell, a declining provider, and a literal that boxes to nil all yield the
// zero value and false.
//
// A value that was produced but cannot be converted to T is a programming
// error and raises a panic. The invocation is not used by literal and empty
// cells and may then be nil.
func (c Cell[T]) Get(ic api.Invocation) (T, bool) {
	var zero T
	if c.literal {
		if av := any(c.value); av == nil {
			return zero, false
		}
		return c.value, true
	}
	if c.provider == nil {
		return zero, false
	}

	req := api.WithName(reflect.TypeFor[T](), c.name)
	v, ok := c.provider.TryGetFor(req, ic)
	if ok && c.name != nil {
		v, ok = c.name.Dig(ic, v)
	}
	if !ok {
		return zero, false
	}
	cv, err := coerce.To(v, req.Type())
	if err != nil {
		panic(fmt.Errorf(`cell %s: %s`, c, err))
	}
	return cv.(T), true
}

// GetOr resolves the cell and returns the given default when nothing is found
func (c Cell[T]) GetOr(ic api.Invocation, dflt T) T {
	if v, ok := c.Get(ic); ok {
		return v
	}
	return dflt
}

// CanResolve reports whether a Get would find a value. The probe resolves the
// cell and discards the result, so the answer cannot disagree with a Get made
// in the same state
func (c Cell[T]) CanResolve(ic api.Invocation) bool {
	_, ok := c.Get(ic)
	return ok
}

func (c Cell[T]) String() string {
	switch {
	case c.literal:
		return fmt.Sprintf(`literal %v`, c.value)
	case c.provider == nil:
		return `empty`
	case c.name != nil:
		return fmt.Sprintf(`%s '%s' from %s`, reflect.TypeFor[T](), c.name.Source(), c.provider.FullName())
	default:
		return fmt.Sprintf(`%s from %s`, reflect.TypeFor[T](), c.provider.FullName())
	}
}
