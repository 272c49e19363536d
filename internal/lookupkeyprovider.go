package internal

import (
	"fmt"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/provider"
)

type lookupKeyProvider struct {
	hierarchyEntry api.Entry
	providerFunc   api.LookupKey
}

func (lk *lookupKeyProvider) Hierarchy() api.Entry {
	return lk.hierarchyEntry
}

func (lk *lookupKeyProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if req.Name() == nil {
		return nil, false
	}
	return ic.MergeLocations(req, lk, currentStrategy(ic))
}

func (lk *lookupKeyProvider) TryGetAt(req api.Request, ic api.Invocation, location api.Location) (any, bool) {
	root := req.Name().Root()
	opts := lk.hierarchyEntry.Options()
	if location != nil {
		opts = optionsWithLocation(opts, location.Resolved())
	}
	value, ok := lk.providerFunction(ic)(ic.ProviderContext(opts), root)
	if ok && value != nil {
		ic.ReportFound(root, value)
		return value, true
	}
	ic.ReportNotFound(root)
	return nil, false
}

func (lk *lookupKeyProvider) providerFunction(ic api.Invocation) api.LookupKey {
	if lk.providerFunc == nil {
		lk.providerFunc = lk.loadFunction(ic)
	}
	return lk.providerFunc
}

func (lk *lookupKeyProvider) loadFunction(ic api.Invocation) api.LookupKey {
	n := lk.hierarchyEntry.Function().Name()
	switch n {
	case `environment`:
		return provider.Environment
	case `scope`:
		return provider.Scope
	case `azure_key_vault`:
		return provider.AzureSecrets
	}

	if fn, ok := ic.LoadFunction(lk.hierarchyEntry); ok {
		switch fn := fn.(type) {
		case api.LookupKey:
			return fn
		case func(api.ProviderContext, string) (any, bool):
			return fn
		}
	}

	ic.ReportText(func() string { return fmt.Sprintf(`unresolved function '%s'`, n) })
	return func(pc api.ProviderContext, name string) (any, bool) {
		return nil, false
	}
}

func (lk *lookupKeyProvider) FullName() string {
	return fmt.Sprintf(`lookup_key function '%s'`, lk.hierarchyEntry.Function().Name())
}

// NewLookupKeyProvider creates a new provider with a lookup_key function configured
// from the given entry
func NewLookupKeyProvider(he api.Entry) api.DataProvider {
	return &lookupKeyProvider{hierarchyEntry: he}
}
