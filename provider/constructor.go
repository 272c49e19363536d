package provider

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lyraproj/provide/api"
)

var errorType = reflect.TypeFor[error]()

type ctorProvider struct {
	fn  reflect.Value
	typ reflect.Type
}

// Constructor returns a Provider that builds values of the type returned by the
// given function. Each function argument is resolved recursively through the
// invocation, so a constructor can depend on values served by other providers.
// The function may return an error as a second value in which case a non nil
// error is reported as a miss.
func Constructor(fn any) api.Provider {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func || t.NumOut() < 1 || t.NumOut() > 2 {
		panic(errors.New(`constructor must be a function returning a value and an optional error`))
	}
	if t.NumOut() == 2 && t.Out(1) != errorType {
		panic(errors.New(`second return value of a constructor must be an error`))
	}
	if t.IsVariadic() {
		panic(errors.New(`constructor cannot be variadic`))
	}
	return &ctorProvider{fn: reflect.ValueOf(fn), typ: t.Out(0)}
}

func (p *ctorProvider) FullName() string {
	return fmt.Sprintf(`constructor for %s`, p.typ)
}

func (p *ctorProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if t := req.Type(); t != anyType && !p.typ.AssignableTo(t) {
		return nil, false
	}
	ft := p.fn.Type()
	args := make([]reflect.Value, ft.NumIn())
	for i := range args {
		av, ok := ic.Lookup(api.WithName(ft.In(i), nil), nil)
		if !ok {
			return nil, false
		}
		args[i] = reflect.ValueOf(av)
	}
	rs := p.fn.Call(args)
	if len(rs) == 2 && !rs[1].IsNil() {
		return nil, false
	}
	v := rs[0].Interface()
	if v == nil {
		return nil, false
	}
	return v, true
}
