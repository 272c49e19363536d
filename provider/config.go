// Package provider contains the built-in providers and the provider functions
// that hierarchy entries can name.
package provider

import (
	"reflect"

	"github.com/lyraproj/provide/api"
)

var anyType = reflect.TypeFor[any]()

type configProvider struct{}

// Config is a Provider that resolves values according to a hierarchy of data
// providers specified in a yaml based configuration stored on disk. It serves
// named requests only: the root of the name is presented to each data provider
// in the hierarchy and the results are combined using the current merge
// strategy. When the hierarchy has no value and a default_hierarchy is
// configured, the default hierarchy is consulted before giving up.
var Config api.Provider = &configProvider{}

func (c *configProvider) FullName() string {
	return `configured hierarchy`
}

func (c *configProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if req.Name() == nil {
		return nil, false
	}
	cfg := ic.Config(``)
	return ic.WithLookup(req, func() (any, bool) {
		ic.SetMergeStrategy(ic.CallOptions()[`merge`], cfg.Config().Defaults().Options())
		ms := ic.MergeStrategy()
		return wrapSensitive(ic, func() (any, bool) {
			v, ok := ic.MergeHierarchy(req, cfg.Hierarchy(), ms)
			if !ok && len(cfg.DefaultHierarchy()) > 0 {
				ic.ReportText(func() string { return `using default hierarchy` })
				v, ok = ic.MergeHierarchy(req, cfg.DefaultHierarchy(), ms)
			}
			return v, ok
		})
	})
}

// wrapSensitive redacts the resolution and wraps the result in a Sensitive when
// the `sensitive` call option is true
func wrapSensitive(ic api.Invocation, f func() (any, bool)) (any, bool) {
	if sensitive, _ := ic.CallOptions()[`sensitive`].(bool); sensitive {
		var v any
		var ok bool
		ic.DoRedacted(func() { v, ok = f() })
		if !ok {
			return nil, false
		}
		return api.NewSensitive(v), true
	}
	return f()
}
