package api

import (
	"fmt"
)

// Options is a string keyed map of configuration values. It is used for session
// options, call options, and hierarchy entry options
type Options map[string]any

// Merge returns a copy of this map with all entries of the given map added,
// replacing existing entries with the same key. The receiver is never modified
func (o Options) Merge(other Options) Options {
	if len(other) == 0 {
		return o
	}
	m := make(Options, len(o)+len(other))
	for k, v := range o {
		m[k] = v
	}
	for k, v := range other {
		m[k] = v
	}
	return m
}

// ToOptions coerces the given argument to an Options map and returns it. The
// argument may be nil, an Options, or a map[string]any. A panic is raised if the
// argument cannot be coerced into a map
func ToOptions(argName string, vi any) Options {
	switch vi := vi.(type) {
	case nil:
		return Options{}
	case Options:
		return vi
	case map[string]any:
		return Options(vi)
	default:
		panic(fmt.Errorf(`%s does not represent a map`, argName))
	}
}
