package provider

import (
	"github.com/lyraproj/provide/api"
)

// ProvidersKey is the session option that the Mux provider reads to find the
// providers that it delegates to.
const ProvidersKey = `provide::lookup::providers`

type muxProvider struct{}

// Mux is a Provider that delegates to all providers registered in the session
// option ProvidersKey, in the order they appear in the slice, and combines the
// results using the current merge strategy. The intended use for this provider
// is when a very simplistic setup is desired that requires no configuration
// files.
var Mux api.Provider = &muxProvider{}

func (m *muxProvider) FullName() string {
	return `multiplexing provider`
}

func (m *muxProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	rpv, ok := ic.SessionOptions()[ProvidersKey].([]api.Provider)
	if !ok {
		return nil, false
	}
	return ic.WithLookup(req, func() (any, bool) {
		ic.SetMergeStrategy(ic.CallOptions()[`merge`], nil)
		return wrapSensitive(ic, func() (any, bool) {
			return ic.MergeStrategy().MergeLookup(rpv, ic, func(pv any) (any, bool) {
				return pv.(api.Provider).TryGetFor(req, ic)
			})
		})
	})
}
