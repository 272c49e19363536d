package provider

import (
	"fmt"

	"github.com/lyraproj/provide/api"
)

type lookupKeyProvider struct {
	name    string
	options api.Options
	f       api.LookupKey
}

// FromLookupKey adapts a lookup_key function to a Provider that answers named
// requests without a configured hierarchy entry. The function is called with
// the root of the requested name and a provider context carrying the given
// options
func FromLookupKey(name string, f api.LookupKey, options api.Options) api.Provider {
	return &lookupKeyProvider{name: name, options: options, f: f}
}

func (p *lookupKeyProvider) FullName() string {
	return fmt.Sprintf(`lookup_key function '%s'`, p.name)
}

func (p *lookupKeyProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if req.Name() == nil {
		return nil, false
	}
	v, ok := p.f(ic.ProviderContext(p.options), req.Name().Root())
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

type dataHashProvider struct {
	name    string
	options api.Options
	f       api.DataHash
}

// FromDataHash adapts a data_hash function to a Provider that answers named
// requests without a configured hierarchy entry. The hash is produced anew on
// every access, so wrap the result in a Singleton when the function reads an
// expensive source
func FromDataHash(name string, f api.DataHash, options api.Options) api.Provider {
	return &dataHashProvider{name: name, options: options, f: f}
}

func (p *dataHashProvider) FullName() string {
	return fmt.Sprintf(`data_hash function '%s'`, p.name)
}

func (p *dataHashProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if req.Name() == nil {
		return nil, false
	}
	v, ok := p.f(ic.ProviderContext(p.options))[req.Name().Root()]
	if !ok || v == nil {
		return nil, false
	}
	return ic.Interpolate(v, true), true
}
