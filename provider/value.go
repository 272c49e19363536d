package provider

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/provide/api"
)

type valueProvider struct {
	value any
}

// Value returns a Provider that provides the given value to every request. A
// nil value yields a provider that never provides anything.
func Value(value any) api.Provider {
	return &valueProvider{value: value}
}

func (p *valueProvider) FullName() string {
	return fmt.Sprintf(`value of type %T`, p.value)
}

func (p *valueProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if p.value == nil {
		return nil, false
	}
	return p.value, true
}

type typedProvider[T any] struct {
	f func(ic api.Invocation) (T, bool)
}

// Typed returns a Provider that serves requests whose type can hold values of
// type T. Requests for other types are declined without calling f.
func Typed[T any](f func(ic api.Invocation) (T, bool)) api.Provider {
	return &typedProvider[T]{f: f}
}

// FromTyped returns a Provider backed by the given TypedProvider
func FromTyped[T any](tp api.TypedProvider[T]) api.Provider {
	return Typed[T](tp.TryGet)
}

func (p *typedProvider[T]) FullName() string {
	return fmt.Sprintf(`typed provider for %s`, reflect.TypeFor[T]())
}

func (p *typedProvider[T]) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if t := req.Type(); t != anyType && !reflect.TypeFor[T]().AssignableTo(t) {
		return nil, false
	}
	v, ok := p.f(ic)
	if !ok {
		return nil, false
	}
	var vi any = v
	if vi == nil {
		return nil, false
	}
	return vi, true
}

type funcProvider struct {
	name string
	f    func(req api.Request, ic api.Invocation) (any, bool)
}

// Func returns a Provider with the given presentation name that delegates to f.
// A found nil is reported as a miss.
func Func(name string, f func(req api.Request, ic api.Invocation) (any, bool)) api.Provider {
	return &funcProvider{name: name, f: f}
}

func (p *funcProvider) FullName() string {
	return p.name
}

func (p *funcProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	v, ok := p.f(req, ic)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
