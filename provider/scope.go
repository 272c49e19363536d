package provider

import (
	"github.com/lyraproj/provide/api"
)

// Scope is a lookup_key function that resolves values from the scope of the
// current invocation
func Scope(pc api.ProviderContext, name string) (any, bool) {
	if v, ok := pc.Invocation().Scope().Get(name); ok && v != nil {
		return v, true
	}
	return nil, false
}
