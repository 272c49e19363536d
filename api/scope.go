package api

import (
	"fmt"
)

// A Scope provides named variables to interpolation expressions and to the
// 'scope' lookup_key provider function
type Scope interface {
	// Get returns the value of the named variable together with a flag indicating
	// if the variable exists
	Get(name string) (any, bool)
}

type mapScope map[string]any

func (s mapScope) Get(name string) (any, bool) {
	v, ok := s[name]
	return v, ok
}

// ToScope coerces the given argument to a Scope. The argument may be nil, a Scope,
// a map[string]any, or a map[string]string. A panic is raised for anything else
func ToScope(argName string, vi any) Scope {
	switch vi := vi.(type) {
	case nil:
		return mapScope{}
	case Scope:
		return vi
	case map[string]any:
		return mapScope(vi)
	case map[string]string:
		m := make(map[string]any, len(vi))
		for k, v := range vi {
			m[k] = v
		}
		return mapScope(m)
	default:
		panic(fmt.Errorf(`%s does not represent a scope`, argName))
	}
}
