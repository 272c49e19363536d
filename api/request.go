package api

import (
	"fmt"
	"reflect"
)

// A Request describes one value requirement: the static type that the requester
// needs, optionally qualified by a dotted Name. The type is captured at the call
// site and travels with the request. It is never reconstructed from a produced
// value
type (
	Request interface {
		fmt.Stringer

		// Type returns the static type of the required value. It is never nil. A request
		// for an unconstrained value has the empty interface type
		Type() reflect.Type

		// Name returns the parsed name that qualifies this request or nil when the
		// request is qualified by type alone
		Name() Name
	}

	request struct {
		typ  reflect.Type
		name Name
	}
)

var anyType = reflect.TypeFor[any]()

// NewRequest creates a Request for the given type and dotted name. A nil type
// denotes an unconstrained value and an empty name a request that is qualified
// by type alone
func NewRequest(typ reflect.Type, name string) Request {
	var n Name
	if name != `` {
		n = ParseName(name)
	}
	return WithName(typ, n)
}

// WithName creates a Request for the given type and parsed name. The name may
// be nil
func WithName(typ reflect.Type, name Name) Request {
	if typ == nil {
		typ = anyType
	}
	return &request{typ: typ, name: name}
}

// RequestFor creates a Request for the type T and the given dotted name. The
// name may be empty
func RequestFor[T any](name string) Request {
	return NewRequest(reflect.TypeFor[T](), name)
}

func (r *request) Name() Name {
	return r.name
}

func (r *request) String() string {
	switch {
	case r.name == nil:
		return r.typ.String()
	case r.typ == anyType:
		return r.name.Source()
	default:
		return fmt.Sprintf(`%s '%s'`, r.typ, r.name.Source())
	}
}

func (r *request) Type() reflect.Type {
	return r.typ
}
