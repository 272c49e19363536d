package session

import (
	"fmt"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/internal"
)

type (
	resolvedConfig struct {
		cfg              api.Config
		providers        []api.DataProvider
		defaultProviders []api.DataProvider
	}
)

// kindProviders maps each function kind to the constructor for the DataProvider that
// serves entries of that kind
var kindProviders = map[api.FunctionKind]func(api.Entry) api.DataProvider{
	api.KindDataHash:  internal.NewDataHashProvider,
	api.KindLookupKey: internal.NewLookupKeyProvider,
}

// CreateProvider creates and returns the DataProvider configured by the given entry
func CreateProvider(e api.Entry) api.DataProvider {
	kind := e.Function().Kind()
	if nf, ok := kindProviders[kind]; ok {
		return nf(e)
	}
	panic(fmt.Errorf(`unknown function kind '%s'`, kind))
}

// Resolve resolves the given Config into a ResolvedConfig. Resolving means creating
// the proper DataProviders for all hierarchy entries
func Resolve(ic api.Invocation, hc api.Config) api.ResolvedConfig {
	r := &resolvedConfig{cfg: hc}
	r.Resolve(ic)
	return r
}

func (r *resolvedConfig) Config() api.Config {
	return r.cfg
}

func (r *resolvedConfig) Hierarchy() []api.DataProvider {
	return r.providers
}

func (r *resolvedConfig) DefaultHierarchy() []api.DataProvider {
	return r.defaultProviders
}

func (r *resolvedConfig) Resolve(ic api.Invocation) {
	icc := ic.ForConfig()
	r.providers = r.CreateProviders(icc, r.cfg.Hierarchy())
	r.defaultProviders = r.CreateProviders(icc, r.cfg.DefaultHierarchy())
}

func (r *resolvedConfig) CreateProviders(ic api.Invocation, hierarchy []api.Entry) []api.DataProvider {
	providers := make([]api.DataProvider, len(hierarchy))
	defaults := r.cfg.Defaults().Resolve(ic, nil)
	for i, he := range hierarchy {
		providers[i] = CreateProvider(he.Resolve(ic, defaults))
	}
	return providers
}
